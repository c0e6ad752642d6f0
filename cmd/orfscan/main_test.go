package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "orfscan v0.1.0")
}

func TestFrames(t *testing.T) {
	out, err := run(t, "frames", "--seq", "ATGAAATAGATGCCCGGGTAA", "--direction", "FWD")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME: sequence")
	assert.Contains(t, out, "Frame #1 (FWD): MK-MPG-")
	assert.Contains(t, out, "ORFs: MK, MPG")
	assert.Contains(t, out, "Most likely AA sequence (Frame #1, Length - 3, Start Position - 3):\nMPG")
	assert.NotContains(t, out, "REV")
}

func TestFramesJSON(t *testing.T) {
	in := writeFile(t, "q.fasta", ">q1\nATGAAATAG\n>q2\nCCCCCC\n")

	out, err := run(t, "frames", "--in", in, "--json")
	require.NoError(t, err)

	var got []recordFrames
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Len(t, got[0].Frames, 6)
	assert.Equal(t, "MK", got[0].Longest.ORF)
	assert.Nil(t, got[1].Longest)
}

func TestFramesErrors(t *testing.T) {
	_, err := run(t, "frames")
	assert.Error(t, err)

	_, err = run(t, "frames", "--seq", "ATGQ")
	assert.Error(t, err)

	_, err = run(t, "frames", "--seq", "ATG", "--direction", "UP")
	assert.Error(t, err)
}

func TestAlign(t *testing.T) {
	queries := writeFile(t, "q.fasta", ">q1\nATGAAATAG\n>q2\nCCCCCC\n")
	targets := writeFile(t, "t.fasta", ">P1 kinase\nMK\n")

	out, err := run(t, "align", "-q", queries, "-t", targets,
		"--show-alignment", "--stats", "--progress", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME: q1 (1 ORFs)")
	assert.Contains(t, out, "Target: P1")
	assert.Contains(t, out, "LCA: length 2, start 0, end 1")
	assert.Contains(t, out, "CIGAR: 2=")
	assert.Contains(t, out, "NAME: q2 (0 ORFs)\n  "+batch.DetailNoORFs)
	assert.Contains(t, out, "Top hits for P1:")
	assert.Contains(t, out, "Aligned 1 ORF/target pairs for 2 records against 1 targets")
	assert.Contains(t, out, "Records: 2 (ok 1, no ORFs 1, no alignment 0)")
	assert.Contains(t, out, "ORF length histogram:")
}

func TestAlignJSON(t *testing.T) {
	out, err := run(t, "align",
		"--query-seq", "ATGAAATAG", "--target-seq", "MK",
		"--direction", "FWD", "--threshold", "0.9", "--workers", "2", "--json")
	require.NoError(t, err)

	var report batch.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 0.9, report.Threshold)
	assert.EqualValues(t, "FWD", report.Direction)

	o, ok := report.Outcome("query")
	require.True(t, ok)
	assert.Equal(t, "target", o.Result.Target)
	assert.Equal(t, 100.0, o.Result.Identity)
}

func TestAlignSettingsFile(t *testing.T) {
	settings := writeFile(t, "orfscan.yaml", "threshold: 0.5\ndirection: REV\n")

	out, err := run(t, "align", "-s", settings, "--query-seq", "ATGAAATAG", "--target-seq", "MK", "--json")
	require.NoError(t, err)

	var report batch.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 0.5, report.Threshold)
	assert.EqualValues(t, "REV", report.Direction)
}

func TestAlignErrors(t *testing.T) {
	_, err := run(t, "align", "--query-seq", "ATG")
	assert.Error(t, err)

	_, err = run(t, "align", "--query-seq", "ATG", "--target-seq", "MK", "--threshold", "1.5")
	assert.Error(t, err)

	_, err = run(t, "align", "-q", filepath.Join(t.TempDir(), "missing.fasta"), "--target-seq", "MK")
	assert.Error(t, err)
}

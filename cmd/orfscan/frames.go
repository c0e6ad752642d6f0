package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/internal/frame"
	"github.com/aria-lang/orfscan-go/internal/sequence"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// recordFrames is the JSON shape of one record's frames.
type recordFrames struct {
	ID      string           `json:"id"`
	Frames  frame.Set        `json:"frames"`
	Longest *frame.Candidate `json:"longest,omitempty"`
}

func newFramesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Translate sequences in six frames and list their ORFs",
		Long: `
Translate every input record in the requested direction and list the ORFs of
each frame, followed by the longest ORF of the record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v, map[string]string{"direction": "direction"})
			if err != nil {
				return err
			}
			dir, _ := frame.ParseDirection(cfg.Direction)

			records, err := readRecords(cmd, "in", "seq", "sequence")
			if err != nil {
				return err
			}

			results := make([]recordFrames, 0, len(records))
			for _, rec := range records {
				seq, err := sequence.WithID(rec.Seq, rec.ID)
				if err != nil {
					return err
				}
				rf := recordFrames{ID: seq.ID, Frames: frame.Generate(seq, dir)}
				if c, ok := rf.Frames.Longest(); ok {
					rf.Longest = &c
				}
				results = append(results, rf)
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, rf := range results {
				printFrames(cmd.OutOrStdout(), rf)
			}
			return nil
		},
	}

	cmd.Flags().StringP("in", "i", "", "input FASTA with nucleotide sequences")
	cmd.Flags().String("seq", "", "a single nucleotide sequence")
	cmd.Flags().StringP("direction", "d", "BOTH", "strands to translate: FWD, REV or BOTH")
	cmd.Flags().Bool("json", false, "print JSON")

	return cmd
}

func printFrames(w io.Writer, rf recordFrames) {
	fmt.Fprintf(w, "NAME: %s\n", rf.ID)
	for _, f := range rf.Frames {
		fmt.Fprintf(w, "%s: %s\n", f.Label(), f.AA)
		if len(f.ORFs) > 0 {
			fmt.Fprintf(w, "  ORFs: %s\n", strings.Join(f.ORFs, ", "))
		}
	}
	if rf.Longest == nil {
		fmt.Fprintf(w, "%s\n\n", batch.DetailNoORFs)
		return
	}
	fmt.Fprintf(w, "Most likely AA sequence (Frame #%d, Length - %d, Start Position - %d):\n%s\n\n",
		rf.Longest.Frame, len(rf.Longest.ORF), rf.Longest.Start, rf.Longest.ORF)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/aria-lang/orfscan-go/internal/alignment"
	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/internal/logging"
	"github.com/aria-lang/orfscan-go/internal/stats"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAlignCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Match the ORFs of query records against target proteins",
		Long: `
Translate every query record in six frames, extract its ORFs and globally
align each ORF against every target protein (BLOSUM62, gap open 10, gap
extend 0.5). For each record the ORF/target pair with the longest continuous
alignment at the identity threshold is reported, followed by the top hits of
every target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v, map[string]string{
				"direction": "direction",
				"threshold": "threshold",
				"workers":   "workers",
				"topk":      "topk",
			})
			if err != nil {
				return err
			}

			queries, err := readRecords(cmd, "query", "query-seq", "query")
			if err != nil {
				return err
			}
			targets, err := readRecords(cmd, "target", "target-seq", "target")
			if err != nil {
				return err
			}

			log, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts := []batch.Option{batch.WithLogger(log)}

			var bars *progress
			if show, _ := cmd.Flags().GetBool("progress"); show {
				bars = newProgress(cmd.ErrOrStderr())
				opts = append(opts, batch.WithProgress(bars.update))
			}

			orch, err := batch.New(cfg, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			start := time.Now()
			report, err := orch.Run(ctx, batch.Request{Queries: queries, Targets: targets})
			if bars != nil {
				bars.wait()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			showAln, _ := cmd.Flags().GetBool("show-alignment")
			printReport(out, report, targets, showAln)

			if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
				summary := stats.FromReport(report)
				fmt.Fprintf(out, "\n%s", summary)
				if h, err := stats.NewLengthHistogram(stats.ORFLengths(report), 5); err == nil {
					fmt.Fprint(out, h)
				}
			}
			fmt.Fprintf(out, "\nAligned %s ORF/target pairs for %s records against %s targets in %s\n",
				humanize.Comma(int64(report.Pairs)),
				humanize.Comma(int64(len(report.Outcomes))),
				humanize.Comma(int64(len(report.Targets))),
				time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringP("query", "q", "", "input FASTA with nucleotide query records")
	cmd.Flags().String("query-seq", "", "a single nucleotide query sequence")
	cmd.Flags().StringP("target", "t", "", "input FASTA with target proteins")
	cmd.Flags().String("target-seq", "", "a single target protein sequence")
	cmd.Flags().StringP("direction", "d", "BOTH", "strands to translate: FWD, REV or BOTH")
	cmd.Flags().Float64P("threshold", "r", 0.98, "minimum identity of a continuous alignment window")
	cmd.Flags().IntP("workers", "w", 0, "alignment workers (default: number of CPUs)")
	cmd.Flags().Int("topk", 5, "hits kept per target")
	cmd.Flags().Bool("json", false, "print the report as JSON")
	cmd.Flags().Bool("progress", false, "show a progress bar per record on stderr")
	cmd.Flags().Bool("show-alignment", false, "print the best alignment of every record")
	cmd.Flags().Bool("stats", false, "print ORF and result statistics")

	return cmd
}

func printReport(w io.Writer, report *batch.Report, targets []batch.Record, showAln bool) {
	seqs := make(map[string]string, len(targets))
	for _, t := range targets {
		seqs[t.ID] = t.Seq
	}

	for _, o := range report.Outcomes {
		fmt.Fprintf(w, "NAME: %s (%d ORFs)\n", o.Record, o.ORFs)
		if o.Status != batch.StatusOK {
			fmt.Fprintf(w, "  %s\n", o.Detail)
			continue
		}

		r := o.Result
		fmt.Fprintf(w, "  Target: %s\n  ORF: %s\n  Identity: %.1f%%\n  LCA: length %d, start %d, end %d\n",
			r.Target, r.ORF, r.Identity, r.Length, r.Start, r.End)

		if showAln {
			if aln, err := alignment.Global(seqs[r.Target], r.ORF, nil); err == nil {
				fmt.Fprintf(w, "%s\n", aln.Format())
			}
		}
	}

	for _, target := range report.Targets {
		hits := report.TopHits[target]
		if len(hits) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nTop hits for %s:\n", target)
		for i, h := range hits {
			fmt.Fprintf(w, "  %d. %5.1f%%  LCA %-4d %s (%s)\n", i+1, h.Identity, h.LCALength, h.ORF, h.Record)
		}
	}
}

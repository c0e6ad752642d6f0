package main

import (
	"errors"
	"fmt"

	"github.com/aria-lang/orfscan-go/internal/batch"
	"github.com/aria-lang/orfscan-go/internal/config"
	"github.com/aria-lang/orfscan-go/pkg/orfscan"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree. Every invocation gets its own viper
// instance so flags, environment and settings file never leak between runs.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use: "orfscan",
		Short: `Find the open reading frames of nucleotide sequences and match them
against reference proteins`,
		Version:       orfscan.Version(),
		SilenceUsage:  true,
	}

	// settings is an optional settings file that overrides the built-in defaults
	rootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (default ./orfscan.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newFramesCmd(v))
	rootCmd.AddCommand(newAlignCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig binds the running command's flags to their settings keys and
// resolves the settings. Binding happens here, not at construction, because
// several commands share a key.
func loadConfig(cmd *cobra.Command, v *viper.Viper, keys map[string]string) (config.Config, error) {
	for key, name := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return config.Config{}, err
		}
	}
	file, _ := cmd.Flags().GetString("settings")
	return config.Load(v, file)
}

// readRecords collects records from a FASTA file and/or a literal sequence.
func readRecords(cmd *cobra.Command, fileFlag, seqFlag, literalID string) ([]batch.Record, error) {
	file, _ := cmd.Flags().GetString(fileFlag)
	literal, _ := cmd.Flags().GetString(seqFlag)

	var records []batch.Record
	if file != "" {
		rs, err := orfscan.ReadFASTA(file)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", fileFlag, err)
		}
		records = append(records, rs...)
	}
	if literal != "" {
		records = append(records, batch.Record{ID: literalID, Seq: literal})
	}

	if len(records) == 0 {
		return nil, errors.New("no sequences: pass --" + fileFlag + " or --" + seqFlag)
	}
	return records, nil
}

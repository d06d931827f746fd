package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/satvik1402/Security-Attacks/internal/vigenere"
	"github.com/spf13/cobra"
)

// searchFlags override the config file for one run.
type searchFlags struct {
	maxKeyLength int
	workers      int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.maxKeyLength, "max-key-length", "m", 0, "longest key length to try (default from config)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "key lengths evaluated at once (default from config)")
}

func (f *searchFlags) analyzer(a *app, cmd *cobra.Command) (*vigenere.Analyzer, error) {
	if cmd.Flags().Changed("max-key-length") {
		a.cfg.Search.MaxKeyLength = f.maxKeyLength
	}
	if cmd.Flags().Changed("workers") {
		a.cfg.Search.Workers = f.workers
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	return vigenere.NewAnalyzer(
		vigenere.WithMaxKeyLength(a.cfg.Search.MaxKeyLength),
		vigenere.WithWorkers(a.cfg.Search.Workers),
		vigenere.WithLogger(a.logger),
	), nil
}

func newCryptanalyzeCmd(a *app) *cobra.Command {
	var (
		flags     searchFlags
		keyLength int
	)
	cmd := &cobra.Command{
		Use:   "cryptanalyze [FILE]",
		Short: "Recover the key from ciphertext alone and decrypt it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := flags.analyzer(a, cmd)
			if err != nil {
				return err
			}
			ciphertext, err := readInput(cmd, args, 0)
			if err != nil {
				return err
			}

			var result *vigenere.Result
			if cmd.Flags().Changed("length") {
				result, err = analyzer.AnalyzeLength(cmd.Context(), ciphertext, keyLength)
			} else {
				result, err = analyzer.Analyze(cmd.Context(), ciphertext)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Predicted Key: %s\n", result.Key)
			fmt.Fprintf(out, "Decrypted Message: %s\n", result.Plaintext)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&keyLength, "length", "l", 0, "solve for this key length only")
	return cmd
}

func newKeyLengthCmd(a *app) *cobra.Command {
	var flags searchFlags
	cmd := &cobra.Command{
		Use:   "keylength [FILE]",
		Short: "Rank candidate key lengths by deviation from English",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := flags.analyzer(a, cmd)
			if err != nil {
				return err
			}
			ciphertext, err := readInput(cmd, args, 0)
			if err != nil {
				return err
			}

			result, err := analyzer.Analyze(cmd.Context(), ciphertext)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LENGTH\tKEY\tSCORE")
			for _, c := range result.Candidates {
				fmt.Fprintf(w, "%d\t%s\t%.4f\n", c.Length, c.Key, c.Score)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Best key length: %d\n", len(result.Key))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

package main

import (
	"fmt"

	"github.com/satvik1402/Security-Attacks/internal/vigenere"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncryptCmd(a *app) *cobra.Command {
	var lettersOnly bool
	cmd := &cobra.Command{
		Use:   "encrypt KEY [FILE]",
		Short: "Encrypt text under a key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(a, cmd, args, lettersOnly, vigenere.EncryptText)
		},
	}
	cmd.Flags().BoolVar(&lettersOnly, "letters-only", false, "drop non-letters and upper-case the output")
	return cmd
}

func newDecryptCmd(a *app) *cobra.Command {
	var lettersOnly bool
	cmd := &cobra.Command{
		Use:   "decrypt KEY [FILE]",
		Short: "Decrypt text under a known key",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(a, cmd, args, lettersOnly, vigenere.DecryptText)
		},
	}
	cmd.Flags().BoolVar(&lettersOnly, "letters-only", false, "drop non-letters and upper-case the output")
	return cmd
}

func runCipher(a *app, cmd *cobra.Command, args []string, lettersOnly bool, apply func(text, key string) (string, error)) error {
	text, err := readInput(cmd, args, 1)
	if err != nil {
		return err
	}
	if lettersOnly {
		text = vigenere.Filter(text)
	}

	result, err := apply(text, args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	a.logger.Debug("applied key", zap.String("command", cmd.Name()), zap.Int("chars", len(text)))

	fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}

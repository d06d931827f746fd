// Command vigenere encrypts, decrypts and breaks Vigenère ciphertexts.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/satvik1402/Security-Attacks/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "vigenere",
		Short: "Vigenère cipher toolkit",
		Long: `vigenere encrypts and decrypts text under a known key, and recovers an
unknown key from ciphertext alone by matching per-column letter frequencies
against English.

Text is read from the file named on the command line, or from stdin when the
file is omitted or "-".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.Logging.Level, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every candidate key")

	rootCmd.AddCommand(
		newEncryptCmd(a),
		newDecryptCmd(a),
		newKeyLengthCmd(a),
		newCryptanalyzeCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds state shared by the subcommands of one invocation.
type cli struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "complexcalc",
		Short: "Evaluate complex-number operations",
		Long: `complexcalc evaluates operations on double-precision complex numbers.

Operands are given as separate real and imaginary components; a binary
operation takes either a complex right-hand side (two numbers) or a real
one (a single number). Results are printed as "re + imi".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			c.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newEvalCmd(c),
		newRunCmd(c),
		newOpsCmd(),
	)

	return root
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/script"
)

func newRunCmd(c *cli) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Evaluate every step of a YAML script",
		Long: `Evaluate a YAML list of steps concurrently and print one line per step
in script order. Each step has an op, an operand z: [re, im] and, for binary
operations, either w: [re, im] or n: <real>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := script.Load(args[0])
			if err != nil {
				return err
			}

			r := &script.Runner{Workers: workers, Logger: c.logger}

			results, err := r.Run(cmd.Context(), steps)
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), steps, results)

			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent evaluations (0 = GOMAXPROCS)")

	return cmd
}

func printResults(w io.Writer, steps []script.Step, results []script.Result) {
	for i, s := range steps {
		fmt.Fprintf(w, "%s(%s", s.Op, s.Z.Complex())

		switch {
		case s.W != nil:
			fmt.Fprintf(w, ", %s", s.W.Complex())
		case s.N != nil:
			fmt.Fprintf(w, ", %s", algocomplex.FromReal(*s.N))
		}

		fmt.Fprintf(w, ") = %s\n", results[i])
	}
}

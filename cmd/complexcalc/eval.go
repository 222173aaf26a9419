package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-complex/internal/script"
)

var errArgs = errors.New("wrong number of operands")

func newEvalCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> <re> <im> [<re> <im> | <n>]",
		Short: "Evaluate a single operation",
		Long: `Evaluate one operation on z = re + im·i.

Binary operations (add, sub, mul, div, pow, eq, ne) also take either a
complex right-hand side w given as two numbers or a real n given as one.

Flags must precede the operation name so that negative operands are not
mistaken for flags.

Example:
  complexcalc eval sqrt -4 0      # 0 + 2i
  complexcalc eval div 1 2 3 4    # z / w
  complexcalc eval pow 1 1 0.5    # principal z**0.5`,
		Args: cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := stepFromArgs(args)
			if err != nil {
				return err
			}

			res, err := script.Eval(step)
			if err != nil {
				return err
			}

			c.logger.Debug("evaluated", zap.String("op", step.Op), zap.Stringer("result", res))
			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}

	cmd.Flags().SetInterspersed(false)

	return cmd
}

func stepFromArgs(args []string) (script.Step, error) {
	info, ok := script.Lookup(args[0])
	if !ok {
		return script.Step{}, fmt.Errorf("%w: %q", script.ErrUnknownOp, args[0])
	}

	nums := make([]float64, 0, len(args)-1)
	for _, a := range args[1:] {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return script.Step{}, fmt.Errorf("operand %q: %w", a, err)
		}

		nums = append(nums, x)
	}

	step := script.Step{Op: info.Name, Z: script.Pair{nums[0], nums[1]}}
	rest := nums[2:]

	switch {
	case !info.Binary && len(rest) == 0:
	case info.Binary && len(rest) == 1:
		step.N = &rest[0]
	case info.Binary && len(rest) == 2:
		step.W = &script.Pair{rest[0], rest[1]}
	case info.Binary:
		return script.Step{}, fmt.Errorf("%s: %w: want z and w or n", info.Name, errArgs)
	default:
		return script.Step{}, fmt.Errorf("%s: %w: want only z", info.Name, errArgs)
	}

	return step, nil
}

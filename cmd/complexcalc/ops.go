package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-complex/internal/script"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			for _, op := range script.Ops() {
				operands := "z"
				if op.Binary {
					operands = "z, w|n"
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\n", op.Name, operands, op.Usage)
			}

			return tw.Flush()
		},
	}
}

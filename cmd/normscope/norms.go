package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/normscope/normscope/pkg/norms"
	"github.com/normscope/normscope/pkg/surface"
)

func newNormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "norms [subtest]",
		Short: "Print the norm tables",
		Long: `Without arguments, lists the subtests, index definitions and category bands.
With a subtest key, prints its raw-to-scaled conversion table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := norms.Default()
			if len(args) == 0 {
				return surface.RenderBattery(cmd.OutOrStdout(), b)
			}
			key, ok := b.ParseSubtestKey(args[0])
			if !ok {
				return fmt.Errorf("unknown subtest %q", args[0])
			}
			s, _ := b.Subtest(key)
			return surface.RenderSubtestTable(cmd.OutOrStdout(), s)
		},
	}
}

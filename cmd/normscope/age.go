package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/normscope/normscope/pkg/age"
	"github.com/normscope/normscope/pkg/session"
)

func newAgeCmd() *cobra.Command {
	var birth, assessed string

	cmd := &cobra.Command{
		Use:   "age",
		Short: "Compute chronological age at assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := time.Parse(session.DateLayout, birth)
			if err != nil {
				return fmt.Errorf("invalid --birth %q: want YYYY-MM-DD", birth)
			}
			d, err := time.Parse(session.DateLayout, assessed)
			if err != nil {
				return fmt.Errorf("invalid --assessed %q: want YYYY-MM-DD", assessed)
			}
			a, err := age.Between(b, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d months)\n", a, a.TotalMonths())
			return nil
		},
	}

	cmd.Flags().StringVar(&birth, "birth", "", "Birth date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&assessed, "assessed", "", "Assessment date (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("birth")
	_ = cmd.MarkFlagRequired("assessed")

	return cmd
}

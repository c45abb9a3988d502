// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/ellpack/pipeline"
	"github.com/spf13/cobra"
)

func (a *app) benchCmd() *cobra.Command {
	var (
		suitePath string
		tol       float64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a YAML benchmark suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(tol >= 0) {
				return fmt.Errorf("--tolerance must be >= 0, got %g", tol)
			}
			s, err := pipeline.LoadSuite(suitePath)
			if err != nil {
				return err
			}
			results, err := pipeline.RunSuite(cmd.Context(), s,
				pipeline.WithLogger(a.logger), pipeline.WithTolerance(tol))

			w := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(w, "%s: FAILED\n", r.Name)
					continue
				}
				fmt.Fprintf(w, "%s: ", r.Name)
				if perr := r.Report.Print(w); perr != nil {
					return perr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&suitePath, "suite", "s", "", "suite file (YAML)")
	cmd.Flags().Float64Var(&tol, "tolerance", 0, "relative tolerance when comparing with expect files")
	_ = cmd.MarkFlagRequired("suite")
	return cmd
}

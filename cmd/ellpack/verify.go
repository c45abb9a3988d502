// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/ellpack/reference"
	"github.com/spf13/cobra"
)

func (a *app) verifyCmd() *cobra.Command {
	var (
		pathA, pathB, pathR string
		atol, rtol          float64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a result against a dense A·B",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := reference.VerifyFiles(pathA, pathB, pathR, atol, rtol); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", pathR)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&pathA, "a", "a", "", "matrix A")
	f.StringVarP(&pathB, "b", "b", "", "matrix B")
	f.StringVarP(&pathR, "result", "r", "", "result to check")
	f.Float64Var(&atol, "atol", reference.DefaultTolerance, "absolute tolerance")
	f.Float64Var(&rtol, "rtol", reference.DefaultTolerance, "relative tolerance")
	for _, name := range []string{"a", "b", "result"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/ellpack/matmul"
	"github.com/spf13/cobra"
)

func (a *app) cpuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show detected vector features and the selected dot kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "arch:   %s\n", runtime.GOARCH)
			for _, f := range matmul.Features() {
				mark := "no"
				if f.Present {
					mark = "yes"
				}
				fmt.Fprintf(w, "  %-8s %s\n", f.Name, mark)
			}
			fmt.Fprintf(w, "kernel: %s\n", matmul.ActiveKernel())
			if matmul.NoSimdEnv() {
				fmt.Fprintf(w, "%s is set\n", matmul.NoSimdEnvVar)
			}
			return nil
		},
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/pipeline"
	"github.com/spf13/cobra"
)

// DefaultOutput is where mul writes when -o is not given.
const DefaultOutput = "gen/matrix.txt"

func (a *app) mulCmd() *cobra.Command {
	var (
		pathA, pathB, out string
		reps              int
		variant, strategy strategyFlag
		bufSize           int
	)
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Multiply A·B and write the result",
		Long: `Multiply the ELLPACK matrices A and B.

Variants (-V) keep the historic numbering:
  0  auto: simd when both operands are sorted, unsorted otherwise
  1  sorted, vector dot product
  2  sorted, scalar dot product (small or very sparse inputs)
  3  unsorted (much slower)

-B=N times N repetitions and prints a report; a bare -B means one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := strategy.s
			if cmd.Flags().Changed("variant") {
				s = variant.s
			}
			if cmd.Flags().Changed("bench") && reps < 1 {
				return fmt.Errorf("-B must be >= 1 when set, got %d", reps)
			}
			if bufSize < codec.MinBufferSize {
				return fmt.Errorf("--buffer must be >= %d, got %d", codec.MinBufferSize, bufSize)
			}
			if out == "" {
				out = DefaultOutput
				a.logger.Info("ellpack: -o not set, using default", "path", out)
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			report, err := pipeline.Run(cmd.Context(), pathA, pathB, out, reps, s,
				pipeline.WithLogger(a.logger), pipeline.WithBufferSize(bufSize))
			if err != nil {
				return err
			}
			if reps > 0 {
				return report.Print(cmd.OutOrStdout())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&pathA, "a", "a", "", "input file containing matrix A")
	f.StringVarP(&pathB, "b", "b", "", "input file containing matrix B")
	f.StringVarP(&out, "output", "o", "", "output file (default "+DefaultOutput+")")
	f.IntVarP(&reps, "bench", "B", 0, "benchmark with this many repetitions")
	f.Lookup("bench").NoOptDefVal = "1"
	f.VarP(&variant, "variant", "V", "implementation number 0..3")
	f.Var(&strategy, "strategy", "implementation name: auto, simd, scalar, unsorted")
	f.IntVar(&bufSize, "buffer", codec.DefaultBufferSize, "reader buffer size in bytes")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	cmd.MarkFlagsMutuallyExclusive("variant", "strategy")
	return cmd
}

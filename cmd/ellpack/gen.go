// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/ellpack/generator"
	"github.com/spf13/cobra"
)

func (a *app) genCmd() *cobra.Command {
	var (
		dir         string
		seed        int64
		bench       bool
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write the generated test cases (or benchmark matrices) into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if concurrency < 1 {
				return fmt.Errorf("--jobs must be >= 1, got %d", concurrency)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			opts := []generator.Option{
				generator.WithSeed(seed),
				generator.WithConcurrency(concurrency),
				generator.WithLogger(a.logger),
			}
			a.logger.Info("ellpack: generating", "dir", dir, "seed", seed, "bench", bench)

			w := cmd.OutOrStdout()
			if bench {
				paths, err := generator.BenchSuite(cmd.Context(), dir, generator.BenchConfigs(), opts...)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(w, p)
				}
				return nil
			}

			files, err := generator.Suite(cmd.Context(), dir, generator.DefaultCases(), opts...)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(w, "%s %s %s\n", f.A, f.B, f.Expect)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&dir, "dir", "d", "dev/inputs", "output directory")
	f.Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	f.BoolVar(&bench, "bench", false, "write the banded benchmark matrices instead of test cases")
	f.IntVarP(&concurrency, "jobs", "j", 4, "files generated concurrently")
	return cmd
}

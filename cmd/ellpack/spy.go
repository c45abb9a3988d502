// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/spy"
	"github.com/spf13/cobra"
)

func (a *app) spyCmd() *cobra.Command {
	var (
		in, out   string
		maxPoints int
	)
	cmd := &cobra.Command{
		Use:   "spy",
		Short: "Plot the non-zero pattern of a matrix (png, svg, pdf, ...)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxPoints < 1 {
				return fmt.Errorf("--max-points must be >= 1, got %d", maxPoints)
			}
			m, err := codec.Read(in, codec.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if out == "" {
				out = in + ".png"
			}
			err = spy.Save(out, m, spy.WithTitle(filepath.Base(in)), spy.WithMaxPoints(maxPoints))
			if err != nil {
				return err
			}
			a.logger.Info("ellpack: plot written", "path", out, "nnz", m.TotalNonZero())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&in, "input", "i", "", "matrix to plot")
	f.StringVarP(&out, "output", "o", "", "image file; the extension picks the format (default <input>.png)")
	f.IntVar(&maxPoints, "max-points", 200_000, "thin the plot above this many entries")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/ellpack/matmul"
	"github.com/spf13/pflag"
)

// strategyFlag parses a matmul.Strategy (name, alias or variant number)
// while the command line is read.
type strategyFlag struct {
	s matmul.Strategy
}

var _ pflag.Value = (*strategyFlag)(nil)

func (f *strategyFlag) String() string { return f.s.String() }

func (f *strategyFlag) Set(v string) error {
	s, err := matmul.ParseStrategy(v)
	if err != nil {
		return err
	}
	f.s = s
	return nil
}

func (f *strategyFlag) Type() string { return "strategy" }

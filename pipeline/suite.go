// SPDX-License-Identifier: MIT
// Package: ellpack/pipeline
//
// suite.go: YAML-configured benchmark suites.
//
//	base_dir: dev/inputs
//	repetitions: 3
//	strategy: auto        # auto | simd | scalar | unsorted | 0..3
//	cooldown: 1s
//	cases:
//	  - name: square
//	    a: 1a.txt
//	    b: 1b.txt
//	    expect: expect1.txt  # optional, compared after the run
//	    output: out1.txt     # optional
//
// Relative paths are resolved against base_dir, and base_dir against the
// directory of the suite file. Cases run sequentially so timings do not
// interfere.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/matmul"
	"gopkg.in/yaml.v3"
)

// Suite is a list of multiplications sharing repetitions and strategy.
type Suite struct {
	BaseDir     string        `yaml:"base_dir"`
	Repetitions int           `yaml:"repetitions"`
	Strategy    string        `yaml:"strategy"`
	Cooldown    time.Duration `yaml:"cooldown"`
	Cases       []SuiteCase   `yaml:"cases"`
}

// SuiteCase is one multiplication of a Suite.
type SuiteCase struct {
	Name   string `yaml:"name"`
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Expect string `yaml:"expect,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// SuiteResult is the outcome of one SuiteCase.
type SuiteResult struct {
	Name   string
	Report *Report
	Err    error
}

// LoadSuite parses the suite file at path. Unknown keys are rejected.
func LoadSuite(path string) (*Suite, error) {
	const method = "LoadSuite"
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ellpack.ErrIO, err)
	}
	defer f.Close()

	var s Suite
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, ErrSuite, err)
	}
	if !filepath.IsAbs(s.BaseDir) {
		s.BaseDir = filepath.Join(filepath.Dir(path), s.BaseDir)
	}
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return &s, nil
}

// Validate checks repetitions, strategy, cooldown and that every case names
// both operands.
func (s *Suite) Validate() error {
	if s.Repetitions < 0 {
		return fmt.Errorf("repetitions %d: %w", s.Repetitions, ErrSuite)
	}
	if s.Cooldown < 0 {
		return fmt.Errorf("cooldown %v: %w", s.Cooldown, ErrSuite)
	}
	if _, err := s.strategy(); err != nil {
		return fmt.Errorf("%w: %w", ErrSuite, err)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("no cases: %w", ErrSuite)
	}
	for i, c := range s.Cases {
		if c.A == "" || c.B == "" {
			return fmt.Errorf("case %d (%s): a and b are required: %w", i, c.Name, ErrSuite)
		}
	}
	return nil
}

func (s *Suite) strategy() (matmul.Strategy, error) {
	if s.Strategy == "" {
		return matmul.Auto, nil
	}
	return matmul.ParseStrategy(s.Strategy)
}

func (s *Suite) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.BaseDir, p)
}

// RunSuite runs every case in order. A failing case does not stop the suite;
// all failures are returned joined, and each SuiteResult carries its own.
// Cancelling ctx stops before the next case.
func RunSuite(ctx context.Context, s *Suite, opts ...Option) ([]SuiteResult, error) {
	const method = "RunSuite"
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	strategy, _ := s.strategy()
	cfg := newConfig(opts...)
	if s.Cooldown > 0 {
		opts = append(opts, WithCooldown(s.Cooldown))
	}

	results := make([]SuiteResult, 0, len(s.Cases))
	var errs []error
	for i, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("%s: %w", method, err)
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case-%d", i+1)
		}
		report, err := runCase(ctx, s, c, strategy, opts)
		if err != nil {
			err = fmt.Errorf("%s: %w", name, err)
			errs = append(errs, err)
			cfg.logger.Error("pipeline: suite case failed", "case", name, "err", err)
		}
		results = append(results, SuiteResult{Name: name, Report: report, Err: err})
	}

	if err := errors.Join(errs...); err != nil {
		return results, fmt.Errorf("%s: %w", method, err)
	}
	return results, nil
}

func runCase(ctx context.Context, s *Suite, c SuiteCase, strategy matmul.Strategy, opts []Option) (*Report, error) {
	out := s.resolve(c.Output)
	if out == "" && c.Expect != "" {
		tmp, err := os.CreateTemp("", "ellpack-suite-*.txt")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ellpack.ErrIO, err)
		}
		tmp.Close()
		out = tmp.Name()
		defer os.Remove(out)
	}

	report, err := Run(ctx, s.resolve(c.A), s.resolve(c.B), out, s.Repetitions, strategy, opts...)
	if err != nil {
		return nil, err
	}
	if c.Expect != "" {
		if err = Compare(out, s.resolve(c.Expect), opts...); err != nil {
			return report, err
		}
	}
	return report, nil
}

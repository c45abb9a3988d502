// SPDX-License-Identifier: MIT
// Package: ellpack/generator
//
// cases.go: test-case and benchmark-set writers.
//
// A test case is an A (rows×cols), a B (cols×rows) and their expected product,
// written as <n>a.txt, <n>b.txt and expect<n>.txt. The expected product is
// computed densely with gonum and stores every non-zero cell.

package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/reference"
	"golang.org/x/sync/errgroup"
)

// TestCase sizes one generated multiplication.
type TestCase struct {
	Rows     uint64  `yaml:"rows"`
	Cols     uint64  `yaml:"cols"`
	Sparsity float64 `yaml:"sparsity"`
}

// CaseFiles are the paths written for one TestCase.
type CaseFiles struct {
	A, B, Expect string
}

// DefaultCases returns the standard fixture set.
func DefaultCases() []TestCase {
	return []TestCase{
		{4, 3, 0.75},
		{5, 4, 0.80},
		{6, 5, 0.85},
		{2, 4, 0.90},
		{209, 200, 0.2},
		{100, 100, 0.5},
	}
}

// CaseFilesFor returns the file names for case n in dir.
func CaseFilesFor(dir string, n int) CaseFiles {
	id := strconv.Itoa(n)
	return CaseFiles{
		A:      filepath.Join(dir, id+"a.txt"),
		B:      filepath.Join(dir, id+"b.txt"),
		Expect: filepath.Join(dir, "expect"+id+".txt"),
	}
}

// Case generates and writes test case n into dir.
//
// Errors: generator validation errors, reference product errors and
// codec write errors (ellpack.ErrIO).
func Case(dir string, n int, tc TestCase, opts ...Option) (CaseFiles, error) {
	const method = "Case"
	cfg := newConfig(opts...)
	files := CaseFilesFor(dir, n)
	if err := validateRNG(cfg); err != nil {
		return files, fmt.Errorf("%s %d: %w", method, n, err)
	}
	// One RNG stream for both operands.
	draw := append(slices.Clip(opts), WithRand(cfg.rng))

	a, err := Random(tc.Rows, tc.Cols, tc.Sparsity, draw...)
	if err != nil {
		return files, fmt.Errorf("%s %d: a: %w", method, n, err)
	}
	b, err := Random(tc.Cols, tc.Rows, tc.Sparsity, draw...)
	if err != nil {
		return files, fmt.Errorf("%s %d: b: %w", method, n, err)
	}
	dense, err := reference.Multiply(a, b)
	if err != nil {
		return files, fmt.Errorf("%s %d: %w", method, n, err)
	}
	want, err := reference.FromDense(dense)
	if err != nil {
		return files, fmt.Errorf("%s %d: %w", method, n, err)
	}

	outputs := []struct {
		path string
		m    *ellpack.Matrix
	}{{files.A, a}, {files.B, b}, {files.Expect, want}}
	for _, o := range outputs {
		if err = codec.WriteMatrix(o.path, o.m); err != nil {
			return files, fmt.Errorf("%s %d: %w", method, n, err)
		}
	}
	cfg.logger.Debug("generator: case written", "case", n, "a", files.A, "b", files.B, "expect", files.Expect)

	return files, nil
}

// Suite writes every case of cases into dir, numbered from 1, with at most
// WithConcurrency cases in flight. Each case gets its own RNG seeded from the
// configured one before any work starts.
//
// The first failure cancels the remaining cases and is returned.
func Suite(ctx context.Context, dir string, cases []TestCase, opts ...Option) ([]CaseFiles, error) {
	const method = "Suite"
	cfg := newConfig(opts...)
	if err := validateRNG(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	seeds := make([]int64, len(cases))
	for i := range seeds {
		seeds[i] = cfg.rng.Int63()
	}

	out := make([]CaseFiles, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, tc := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := Case(dir, i+1, tc, append(slices.Clip(opts), WithSeed(seeds[i]))...)
			out[i] = files
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

// BenchSuite writes one Banded matrix per config into dir under its Name,
// concurrently like Suite. It returns the written paths in config order.
func BenchSuite(ctx context.Context, dir string, configs []BandConfig, opts ...Option) ([]string, error) {
	const method = "BenchSuite"
	cfg := newConfig(opts...)
	if err := validateRNG(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	seeds := make([]int64, len(configs))
	for i := range seeds {
		seeds[i] = cfg.rng.Int63()
	}

	out := make([]string, len(configs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, bc := range configs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := Banded(bc, append(slices.Clip(opts), WithSeed(seeds[i]))...)
			if err != nil {
				return fmt.Errorf("%s: %w", bc.Name, err)
			}
			out[i] = filepath.Join(dir, bc.Name)
			if err = codec.WriteMatrix(out[i], m); err != nil {
				return fmt.Errorf("%s: %w", bc.Name, err)
			}
			cfg.logger.Debug("generator: benchmark matrix written", "path", out[i], "nnz", m.TotalNonZero())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

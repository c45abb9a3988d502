package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/matmul"
	"github.com/stretchr/testify/require"
)

// exec runs the CLI and returns the exit status with both streams.
func exec(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestMul(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "2,2,1\n2,3\n0,1\n")
	b := writeFile(t, dir, "b.txt", "2,1,2\n5,7\n0,1\n")

	cases := []struct {
		name string
		args []string
	}{
		{"default", nil},
		{"variant", []string{"-V", "2"}},
		{"strategy", []string{"--strategy", "unsorted"}},
		{"benchmark", []string{"-B=3", "--strategy", "simd"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := filepath.Join(t.TempDir(), "nested", "c.txt")
			args := append([]string{"mul", "-a", a, "-b", b, "-o", out}, tc.args...)
			code, stdout, stderr := exec(t, args...)
			require.Equal(t, 0, code, stderr)

			m, err := codec.Read(out)
			require.NoError(t, err)
			require.Equal(t, []float32{10, 21}, m.Values)
			if tc.name == "benchmark" {
				require.Contains(t, stdout, "3 iteration(s)")
			}
		})
	}
}

func TestMul_Failures(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "2,2,1\n2,3\n0,1\n")
	tall := writeFile(t, dir, "tall.txt", "3,1,1\n1\n2\n")
	out := filepath.Join(dir, "c.txt")

	cases := map[string][]string{
		"missing b":           {"mul", "-a", a, "-o", out},
		"unknown variant":     {"mul", "-a", a, "-b", a, "-o", out, "-V", "7"},
		"variant and name":    {"mul", "-a", a, "-b", a, "-o", out, "-V", "1", "--strategy", "scalar"},
		"zero repetitions":    {"mul", "-a", a, "-b", a, "-o", out, "-B=0"},
		"incompatible shapes": {"mul", "-a", a, "-b", tall, "-o", out},
		"tiny buffer":         {"mul", "-a", a, "-b", a, "-o", out, "--buffer", "4"},
		"bad log level":       {"--log-level", "loud", "cpu"},
		"bad log format":      {"--log-format", "xml", "cpu"},
	}
	for name, args := range cases {
		name, args := name, args
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			code, _, stderr := exec(t, args...)
			require.Equal(t, 1, code)
			require.Contains(t, stderr, "ellpack: failed")
		})
	}
}

func TestGenVerifyBench(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	code, stdout, stderr := exec(t, "gen", "-d", dir, "--seed", "7", "-j", "2")
	require.Equal(t, 0, code, stderr)
	require.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 6)

	for _, n := range []string{"1", "3", "5"} {
		out := filepath.Join(dir, "out"+n+".txt")
		code, _, stderr = exec(t, "mul", "-a", filepath.Join(dir, n+"a.txt"), "-b", filepath.Join(dir, n+"b.txt"), "-o", out)
		require.Equal(t, 0, code, stderr)
		code, stdout, stderr = exec(t, "verify", "-a", filepath.Join(dir, n+"a.txt"), "-b", filepath.Join(dir, n+"b.txt"), "-r", out)
		require.Equal(t, 0, code, stderr)
		require.Contains(t, stdout, "ok")
	}

	suite := writeFile(t, dir, "suite.yaml", `
base_dir: .
repetitions: 2
strategy: auto
cases:
  - name: small
    a: 1a.txt
    b: 1b.txt
  - name: large
    a: 5a.txt
    b: 5b.txt
`)
	code, stdout, stderr = exec(t, "bench", "--suite", suite, "--log-format", "json", "--log-level", "debug")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "small: strategy")
	require.Contains(t, stdout, "large: strategy")
	require.Contains(t, stderr, `"msg":"pipeline: benchmark done"`)
}

func TestSpy(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "m.txt", "4,2,3\n1.0,5.0,*,2.0,*,*\n0,3,*,1,*,*\n")
	out := filepath.Join(dir, "m.svg")
	code, _, stderr := exec(t, "spy", "-i", in, "-o", out)
	require.Equal(t, 0, code, stderr)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestCPU(t *testing.T) {
	t.Parallel()
	code, stdout, _ := exec(t, "cpu")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "kernel: "+matmul.ActiveKernel())
}

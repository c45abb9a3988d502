// SPDX-License-Identifier: MIT

// Command ellpack multiplies sparse matrices stored in the ELLPACK text
// layout and bundles the tooling around it.
//
// Usage:
//
//	ellpack mul -a A.txt -b B.txt [-o gen/matrix.txt] [-B=5] [-V 0..3 | --strategy simd]
//	ellpack gen -d dev/inputs [--seed 42] [--bench]
//	ellpack verify -a A.txt -b B.txt -r C.txt
//	ellpack bench --suite suite.yaml
//	ellpack spy -i C.txt -o c.png
//	ellpack cpu
//
// Any failure is logged and exits with status 1.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	if c, err := cmd.ExecuteContextC(ctx); err != nil {
		a.logger.Error("ellpack: failed", "command", c.Name(), "err", err)
		return 1
	}
	return 0
}

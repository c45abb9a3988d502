// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// features.go: CPU feature report for diagnostics.

package matmul

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is one named CPU capability and whether it was detected.
type Feature struct {
	Name    string
	Present bool
}

// Features lists the vector capabilities relevant to the dot kernels on the
// running architecture. Other architectures yield an empty list.
func Features() []Feature {
	switch runtime.GOARCH {
	case "amd64":
		return []Feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse4.1", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []Feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fp", cpu.ARM64.HasFP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	default:
		return nil
	}
}

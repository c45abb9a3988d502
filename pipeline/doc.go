// Package pipeline wires the stages of a sparse multiplication together:
//
//	codec.Read(A), codec.Read(B) → accumulator.FromOperands → matmul.Run
//	→ codec.Write(result)
//
// On top of the single run it offers a stopwatch benchmark (Benchmark), a
// file-level comparison of two ELLPACK files (Compare) and YAML-configured
// benchmark suites (LoadSuite, RunSuite).
package pipeline

// Package octree is an in-memory index for 4-component points that answers
// "is there a stored point within tol of q on every component?" without
// scanning the whole batch.
//
// 🚀 What is in the module?
//
//	• Chained index: every point is linked to its neighbors on four nested
//	  sorted chains, one per coordinate; bulk load, single insert, tolerance
//	  search and a stack-free teardown.
//	• Generators: reproducible batches (uniform, chained, grouped by shared
//	  coordinates) and perturbed queries for tests and benchmarks.
//	• Benchmark harness: octree search against linear scans, with HDR latency
//	  statistics, Prometheus metrics and TSV or SQLite output.
//
// ✨ Why?
//
//   - Small – one arena, eight links per node, no per-node allocation
//   - Predictable – search and teardown use O(1) extra memory
//   - Generic – any integer or float coordinate type
//
// Layout:
//
//	octree/           Tree, SyncTree, Point, Find options
//	builder/          batch and query generators
//	bench/            sweep runner, statistics, metrics and sinks
//	internal/logging/ zap logger configured through viper
//	cmd/octbench/     benchmark command
//	examples/         runnable scenarios
//
// Quick ASCII example, the x1 chain (across) and the x2 chain through its
// middle node (down); points on one x2 chain share x1:
//
//	                (2,0,·,·)
//	                    │
//	(1,5,·,·) ─── (2,3,·,·) ─── (4,1,·,·)
//	                    │
//	                (2,9,·,·)
//
//	go get github.com/katalvlaran/octree/octree
package octree

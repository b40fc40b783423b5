// Package bench measures octree lookups against plain scans.
//
// For each batch size InitPoints + k*DeltaPoints (k < Increments, sizes
// below MinPoints skipped) the Runner performs Runs runs. A run draws a
// grouped batch, bulk-loads it, derives one perturbed query per point and
// times three lookups per query:
//
//   - octree:      Tree.Find on the loaded tree.
//   - linear:      first match of a scan over the unsorted batch.
//   - sort+linear: sort a copy lexicographically, then scan it.
//
// Per-run mean latencies go into HdrHistogram histograms; each batch size
// yields a Row with the mean and standard deviation across runs, in
// microseconds. A query on which Find disagrees with the linear scan, or
// returns a point outside the tolerance, counts as a mismatch and is logged.
//
// Rows are handed to every configured Sink (tab-separated file, SQLite
// table) and, optionally, every single lookup is observed by Prometheus
// histograms that can be written to a node-exporter textfile.
package bench

// Package harness runs repeated clustering/MFC trials over randomly
// generated datasets and writes aggregate and per-replicate results to
// CSV, mirroring the original TestRunner: one seeded RNG drives sequential
// dataset generation, replicates then run concurrently over a bounded
// worker pool, and results are written in submission order.
package harness

// Package fairdiv divides indivisible objects among players with unequal
// entitlements.
//
// 🚀 What is fairdiv?
//
//	A small, deterministic library around Weighted Round Robin: each round,
//	the player with the largest right/(taken+y) takes their favorite
//	remaining object. It brings together:
//		• The allocation loop with explicit tie-break, floor and zero-denominator policies
//		• A validated valuation matrix with column retirement
//		• Observer adapters for structured logs and Prometheus metrics
//		• Instance documents (YAML/JSON) and a seeded random generator
//		• The wrr command-line tool
//
// ✨ Why choose fairdiv?
//
//   - Reproducible – no hidden randomness, documented tie-breaks
//   - Safe by default – caller data is copied, not mutated
//   - Explicit numerics – zero denominators fail loudly or saturate, by choice
//   - Observable – plug in logrus or Prometheus without touching the core
//
// Under the hood, everything is organized in these subpackages:
//
//	wrr/       — the Weighted Round Robin allocator, options, records, summaries
//	valuation/ — players × objects matrix with validation and retirement
//	observe/   — logrus and Prometheus observers, Tee fan-out
//	instance/  — instance documents and random instance generation
//	cmd/wrr/   — CLI: allocate, generate, demo, print-config
//
// Quick example:
//
//	rights:     [1, 2, 4]         y = 0.5
//	valuations: P0 [11 11 22 33 44]
//	            P1 [11 22 44 55 66]
//	            P2 [11 33 22 11 66]
//
//	→ P2 takes 4, P1 takes 3, P2 takes 1, P0 takes 2, P2 takes 0.
//
//	go get github.com/katalvlaran/fairdiv
package fairdiv

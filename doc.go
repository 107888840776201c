// Package eventidx is your in-memory toolkit for aligning event tables —
// discrete, possibly irregularly-timed records — with the coordinate system
// of a labeled multi-dimensional array.
//
// 🚀 What is eventidx?
//
//	A small, thread-aware, pure-Go library that brings together:
//		• Normalization: raw rows + explicit schema → immutable event tables
//		• Indexing: sorted anchors augmented with subtree max-end for
//		  O(log n + k) point & range queries
//		• Resolution: exact, nearest, all-overlapping, first and last policies
//		• Alignment: project matched events onto a host array's coordinates
//		  as a derived label, with explicit cache invalidation
//		• Merging: combine event sources under deterministic collision rules
//
// ✨ Why choose eventidx?
//
//   - Minimal API, clear, intuitive naming
//   - Immutable tables & copy-on-write indexes – safe concurrent reads
//   - Pure Go – no cgo, no hidden deps
//   - Explicit schemas & caches – validation and invalidation you can test
//
// Under the hood, everything is organized under four subpackages:
//
//	event/ — Anchor, Record, Table, Schema & the row normalizer
//	index/ — the coordinate index builder and the Resolve query engine
//	merge/ — union of multiple event tables with collision policies
//	align/ — projection of resolved events onto host array coordinates
//
// Quick ASCII example:
//
//	host coords:   0───1───2───3───4───5
//	events:            [1───────3)      ← "calibration"
//	                               4    ← "spike"
//
//	aligning under AllOverlapping labels positions 1 and 2 with
//	"calibration", position 4 with "spike", the rest with NoMatch.
//
// Dive into the per-package doc.go files and example_test.go files for
// full walkthroughs.
//
//	go get github.com/katalvlaran/eventidx
package eventidx

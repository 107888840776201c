package index_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/eventidx/event"
	"github.com/katalvlaran/eventidx/index"
)

// benchIndex builds an index over n random intervals on [0, 1000).
func benchIndex(b *testing.B, n int) *index.Index {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	recs := make([]event.Record, n)
	for i := range recs {
		start := rng.Float64() * 1000
		recs[i] = event.Record{Anchor: event.Anchor{Start: start, End: start + rng.Float64()*5}}
	}
	tbl, err := event.NewTable("time", recs)
	if err != nil {
		b.Fatalf("NewTable failed: %v", err)
	}

	return index.Build(tbl)
}

// benchmarkResolve runs one policy over random point queries.
func benchmarkResolve(b *testing.B, n int, policy index.Policy) {
	ix := benchIndex(b, n)
	rng := rand.New(rand.NewSource(2))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := ix.Resolve(index.At(rng.Float64()*1000), policy); err != nil {
			b.Fatalf("Resolve failed: %v", err)
		}
	}
}

// BenchmarkBuild_Small benchmarks index construction over 1k records.
func BenchmarkBuild_Small(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	recs := make([]event.Record, 1000)
	for i := range recs {
		start := rng.Float64() * 1000
		recs[i] = event.Record{Anchor: event.Anchor{Start: start, End: start + rng.Float64()*5}}
	}
	tbl, err := event.NewTable("time", recs)
	if err != nil {
		b.Fatalf("NewTable failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = index.Build(tbl)
	}
}

// BenchmarkResolve_OverlapSmall benchmarks AllOverlapping over 1k records.
func BenchmarkResolve_OverlapSmall(b *testing.B) {
	benchmarkResolve(b, 1_000, index.AllOverlapping)
}

// BenchmarkResolve_OverlapLarge benchmarks AllOverlapping over 100k records.
func BenchmarkResolve_OverlapLarge(b *testing.B) {
	benchmarkResolve(b, 100_000, index.AllOverlapping)
}

// BenchmarkResolve_NearestLarge benchmarks Nearest over 100k records.
func BenchmarkResolve_NearestLarge(b *testing.B) {
	benchmarkResolve(b, 100_000, index.Nearest)
}

// BenchmarkResolve_ExactLarge benchmarks Exact over 100k records.
func BenchmarkResolve_ExactLarge(b *testing.B) {
	benchmarkResolve(b, 100_000, index.Exact)
}

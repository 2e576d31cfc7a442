package anneal_test

import (
	"testing"

	"github.com/katalvlaran/mincover/anneal"
	"github.com/katalvlaran/mincover/builder"
)

func benchSearch(b *testing.B, n int, p float64, maxNode int) {
	b.Helper()

	g, err := builder.RandomSparse(n, p, 1)
	if err != nil {
		b.Fatalf("build graph: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := anneal.Search(g, maxNode, anneal.WithSeed(int64(i+1))); err != nil {
			b.Fatalf("search: %v", err)
		}
	}
}

func BenchmarkSearch_Sparse100(b *testing.B)  { benchSearch(b, 100, 0.05, 20) }
func BenchmarkSearch_Sparse500(b *testing.B)  { benchSearch(b, 500, 0.01, 60) }
func BenchmarkSearch_Sparse1000(b *testing.B) { benchSearch(b, 1000, 0.005, 100) }

func BenchmarkCoverage_Sparse1000(b *testing.B) {
	g, err := builder.RandomSparse(1000, 0.005, 1)
	if err != nil {
		b.Fatalf("build graph: %v", err)
	}
	members := g.Vertices()[:100]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := anneal.Coverage(g, members); err != nil {
			b.Fatalf("coverage: %v", err)
		}
	}
}

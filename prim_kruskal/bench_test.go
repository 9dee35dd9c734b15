package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/internal/graphtest"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

func BenchmarkKruskal(b *testing.B) {
	g := graphtest.RandomConnected(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := prim_kruskal.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrim(b *testing.B) {
	g := graphtest.RandomConnected(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prim_kruskal.Prim(g); err != nil {
			b.Fatal(err)
		}
	}
}

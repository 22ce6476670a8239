package mst_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/cvrp/mst"
)

func BenchmarkPrim_500(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	pts := make([][2]float64, 500)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 1000, rng.Float64() * 1000}
	}
	w := points(pts)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mst.Prim(len(pts), 0, w); err != nil {
			b.Fatal(err)
		}
	}
}

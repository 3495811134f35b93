package rrt_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/mrpeteypoo/rrtgrid/gridmap"
	"github.com/mrpeteypoo/rrtgrid/rrt"
)

// benchField builds an n×n all-Terrain map without testing.T helpers.
func benchField(b *testing.B, n int) *gridmap.GridMap {
	b.Helper()
	src := "type octile\nheight " + strconv.Itoa(n) + "\nwidth " + strconv.Itoa(n) + "\nmap\n" +
		strings.Repeat(strings.Repeat(".", n)+"\n", n)
	m, err := gridmap.Load(strings.NewReader(src), "bench")
	if err != nil {
		b.Fatalf("load: %v", err)
	}

	return m
}

func benchmarkGrowth(b *testing.B, n int, opts ...rrt.Option) {
	m := benchField(b, n)
	opts = append(opts, rrt.WithSeed(1))
	p := rrt.New(opts...)
	if err := p.PrepareTree(m, rrt.Point{}, rrt.Point{X: n - 1, Y: n - 1}); err != nil {
		b.Fatalf("prepare: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.GenerateBranch()
		if p.HasFinished() {
			b.StopTimer()
			if err := p.PrepareTree(m, rrt.Point{}, rrt.Point{X: n - 1, Y: n - 1}); err != nil {
				b.Fatalf("prepare: %v", err)
			}
			b.StartTimer()
		}
	}
}

func BenchmarkGenerateBranch_Linear64(b *testing.B)  { benchmarkGrowth(b, 64) }
func BenchmarkGenerateBranch_Spatial64(b *testing.B) { benchmarkGrowth(b, 64, rrt.WithSpatialIndex()) }

package visibility

import (
	"testing"

	"github.com/katalvlaran/visnet/series"
)

func benchSeries(b *testing.B, n int) *series.Series {
	b.Helper()
	s, err := series.RandomWalk(n, 1)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkBuild_Natural(b *testing.B) {
	s := benchSeries(b, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_Horizontal(b *testing.B) {
	s := benchSeries(b, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(s, WithKind(Horizontal)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRetardedBetweenness(b *testing.B) {
	s := benchSeries(b, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := Build(s)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := g.RetardedBetweenness(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRetardedCloseness_Cached(b *testing.B) {
	g, err := Build(benchSeries(b, 256))
	if err != nil {
		b.Fatal(err)
	}
	if _, err := g.RetardedCloseness(); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.RetardedCloseness(); err != nil {
			b.Fatal(err)
		}
	}
}

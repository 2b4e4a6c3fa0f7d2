package iso_test

import (
	"testing"

	"github.com/katalvlaran/isograph/builder"
	"github.com/katalvlaran/isograph/iso"
)

// BenchmarkIsIsomorphic_Cycle measures the exact query on a positive pair;
// cycles keep the frontier to two vertices, so this is close to best-case.
func BenchmarkIsIsomorphic_Cycle(b *testing.B) {
	g0, err := builder.BuildGraph(nil, builder.Cycle(64))
	if err != nil {
		b.Fatal(err)
	}
	g1, err := builder.BuildGraph(nil, builder.Cycle(64))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := iso.IsIsomorphic(g0, g1); err != nil || !ok {
			b.Fatalf("ok=%v err=%v", ok, err)
		}
	}
}

// BenchmarkIsIsomorphic_PathVsStar measures a negative pair that survives
// the count precondition and forces a real search.
func BenchmarkIsIsomorphic_PathVsStar(b *testing.B) {
	g0, err := builder.BuildGraph(nil, builder.Path(32))
	if err != nil {
		b.Fatal(err)
	}
	g1, err := builder.BuildGraph(nil, builder.Star(32))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, err := iso.IsIsomorphic(g0, g1); err != nil || ok {
			b.Fatalf("ok=%v err=%v", ok, err)
		}
	}
}

// BenchmarkSubgraphIsomorphisms_Drain enumerates every embedding of P4
// into C16, including matcher construction each iteration.
func BenchmarkSubgraphIsomorphisms_Drain(b *testing.B) {
	p4, err := builder.BuildGraph(nil, builder.Path(4))
	if err != nil {
		b.Fatal(err)
	}
	c16, err := builder.BuildGraph(nil, builder.Cycle(16))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := iso.SubgraphIsomorphisms(p4, c16, nil, nil)
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, ok := m.Next(); !ok {
				break
			}
		}
	}
}

// BenchmarkMatcher_FirstResult measures time to the first embedding only,
// the lazy-consumer profile.
func BenchmarkMatcher_FirstResult(b *testing.B) {
	p6, err := builder.BuildGraph(nil, builder.Path(6))
	if err != nil {
		b.Fatal(err)
	}
	c32, err := builder.BuildGraph(nil, builder.Cycle(32))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := iso.SubgraphIsomorphisms(p6, c32, nil, nil)
		if err != nil {
			b.Fatal(err)
		}
		if _, ok := m.Next(); !ok {
			b.Fatal("no embedding found")
		}
	}
}

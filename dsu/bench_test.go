package dsu_test

import (
	"testing"

	"github.com/katalvlaran/mstrace/dsu"
)

func BenchmarkTraceFind(b *testing.B) {
	const n = 1 << 12
	opts := dsu.FindOptions{MaxHops: 16}
	for i := 0; i < b.N; i++ {
		d := dsu.New(n)
		for step := 1; step < n; step *= 2 {
			for u := 1; u+step <= n; u += 2 * step {
				d.Union(d.Find(u), d.Find(u+step))
			}
		}
		for u := 1; u <= n; u++ {
			_, _ = d.TraceFind(u, opts, nil)
		}
	}
}

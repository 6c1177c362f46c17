package flow_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/network"
)

// layeredNetwork builds source → k senders → k receivers → sink with random
// costs and an arc between every sender/receiver pair.
func layeredNetwork(k int, seed int64) []network.Edge {
	r := rand.New(rand.NewSource(seed))
	sink := 2*k + 1
	edges := make([]network.Edge, 0, k*k+2*k)
	for s := 1; s <= k; s++ {
		edges = append(edges, network.Edge{From: 0, To: s, Capacity: int64(1 + r.Intn(3))})
	}
	for s := 1; s <= k; s++ {
		for rcv := k + 1; rcv <= 2*k; rcv++ {
			edges = append(edges, network.Edge{
				From:     s,
				To:       rcv,
				Capacity: int64(1 + r.Intn(2)),
				Cost:     int64(r.Intn(100)),
			})
		}
	}
	for rcv := k + 1; rcv <= 2*k; rcv++ {
		edges = append(edges, network.Edge{From: rcv, To: sink, Capacity: int64(1 + r.Intn(3))})
	}

	return edges
}

// BenchmarkSolve compares the two worklist disciplines on growing networks.
func BenchmarkSolve(b *testing.B) {
	for _, k := range []int{10, 40, 100} {
		edges := layeredNetwork(k, 42)
		for _, kind := range worklists {
			b.Run(fmt.Sprintf("k=%d/%s", k, kind), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := flow.Solve(edges, flow.WithWorklist(kind)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkMaxFlow measures the Dinic feasibility check alone.
func BenchmarkMaxFlow(b *testing.B) {
	net, err := network.Build(layeredNetwork(100, 42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.MaxFlow(net); err != nil {
			b.Fatal(err)
		}
	}
}

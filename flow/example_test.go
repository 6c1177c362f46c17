package flow_test

import (
	"fmt"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/network"
)

// ExampleSolve assigns three senders to three receivers at minimum cost.
// Node 0 is the source, 1..3 the senders, 4..6 the receivers and 7 the sink.
func ExampleSolve() {
	costs := [3][3]int64{{2, 4, 6}, {6, 2, 4}, {4, 6, 2}}
	var edges []network.Edge
	for s := 1; s <= 3; s++ {
		edges = append(edges, network.Edge{From: 0, To: s, Capacity: 1})
		for r := 4; r <= 6; r++ {
			edges = append(edges, network.Edge{From: s, To: r, Capacity: 1, Cost: costs[s-1][r-4]})
		}
	}
	for r := 4; r <= 6; r++ {
		edges = append(edges, network.Edge{From: r, To: 7, Capacity: 1})
	}

	solved, err := flow.Solve(edges)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range solved {
		if e.From != 0 && e.To != 7 && e.Flow > 0 {
			fmt.Printf("%d→%d\n", e.From, e.To)
		}
	}
	fmt.Println("flow:", flow.TotalFlow(solved, 0), "cost:", flow.TotalCost(solved))
	// Output:
	// 1→4
	// 2→5
	// 3→6
	// flow: 3 cost: 6
}

// ExampleSolve_desiredFlow stops after two units: the cheap path is used
// first, then the expensive one.
func ExampleSolve_desiredFlow() {
	edges := []network.Edge{
		{From: 0, To: 1, Capacity: 1, Cost: 1},
		{From: 0, To: 2, Capacity: 5, Cost: 10},
		{From: 1, To: 3, Capacity: 5, Cost: 1},
		{From: 2, To: 3, Capacity: 5, Cost: 1},
	}

	solved, _ := flow.Solve(edges, flow.WithDesiredFlow(2))
	fmt.Println("flow:", flow.TotalFlow(solved, 0), "cost:", flow.TotalCost(solved))
	// Output:
	// flow: 2 cost: 13
}

// ExampleSuccessiveShortestPaths resumes a partial solve on the same network.
func ExampleSuccessiveShortestPaths() {
	net, _ := network.Build([]network.Edge{
		{From: 0, To: 1, Capacity: 3, Cost: 2},
		{From: 1, To: 2, Capacity: 2, Cost: 1},
		{From: 0, To: 2, Capacity: 1, Cost: 9},
	})

	first, _ := flow.SuccessiveShortestPaths(net, flow.WithDesiredFlow(1))
	rest, _ := flow.SuccessiveShortestPaths(net)
	fmt.Println(first.Flow, first.Cost)
	fmt.Println(rest.Flow, rest.Cost, rest.Augmentations)
	// Output:
	// 1 3
	// 3 12 2
}

// ExampleMaxFlow checks feasibility before a min-cost solve.
func ExampleMaxFlow() {
	net, _ := network.Build([]network.Edge{
		{From: 0, To: 1, Capacity: 4},
		{From: 0, To: 2, Capacity: 2},
		{From: 1, To: 3, Capacity: 3},
		{From: 2, To: 3, Capacity: 5},
	})

	mf, _ := flow.MaxFlow(net)
	fmt.Println(mf)
	// Output:
	// 5
}

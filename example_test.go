package mcflow_test

import (
	"fmt"

	"github.com/katalvlaran/mcflow"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/network"
)

// ExampleSolve ships goods from two warehouses to one shop, preferring the
// cheaper route until it is full.
func ExampleSolve() {
	edges := []network.Arc[string]{
		{From: "SOURCE", To: "north", Capacity: 3},
		{From: "SOURCE", To: "south", Capacity: 3},
		{From: "north", To: "shop", Capacity: 2, Cost: 1},
		{From: "south", To: "shop", Capacity: 3, Cost: 4},
		{From: "shop", To: "SINK", Capacity: 4},
	}

	solved, err := mcflow.Solve(edges)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range solved {
		fmt.Printf("%s→%s %d\n", e.From, e.To, e.Flow)
	}
	fmt.Println("cost:", flow.TotalCost(solved))
	// Output:
	// SOURCE→north 2
	// SOURCE→south 2
	// north→shop 2
	// south→shop 2
	// shop→SINK 4
	// cost: 10
}

package matching_test

import (
	"fmt"

	"github.com/katalvlaran/mcflow/matching"
)

func ExampleMinWeight() {
	pairs := []matching.Pair[string]{
		{Left: "ann", Right: "night", Weight: 5},
		{Left: "ann", Right: "day", Weight: 1},
		{Left: "ben", Right: "day", Weight: 2},
		{Left: "ben", Right: "night", Weight: 9},
	}

	matched, err := matching.MinWeight(pairs)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range matched {
		fmt.Println(p.Left, "→", p.Right)
	}
	fmt.Println("weight:", matching.Weight(matched))
	// Output:
	// ann → night
	// ben → day
	// weight: 7
}

package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/mincover/anneal"
	"github.com/katalvlaran/mincover/builder"
)

// ExampleSearch anneals a 1-vertex cover on a 6-vertex star. The hub
// touches every edge, so the walk locks onto it immediately.
func ExampleSearch() {
	g, err := builder.Star(6)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := anneal.Search(g, 1, anneal.WithSeed(42))
	if err != nil {
		fmt.Println("search:", err)
		return
	}

	fmt.Println("cover:", res.Cover)
	fmt.Println("covered edges:", res.Covered)
	// Output:
	// cover: [Center]
	// covered edges: 5
}

// ExampleCoverage scores a hand-picked member set without running the
// annealer.
func ExampleCoverage() {
	g, err := builder.Path(5)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	covered, err := anneal.Coverage(g, []string{"V1", "V3"})
	if err != nil {
		fmt.Println("coverage:", err)
		return
	}

	fmt.Println("covered edges:", covered)
	// Output:
	// covered edges: 4
}

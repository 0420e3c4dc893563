package core_test

import (
	"fmt"

	"github.com/graphmint/tinygraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and the reachability walk.
func ExampleGraph() {
	// 1) Create a graph with string payloads:
	g := core.NewGraph[string]()
	cat := g.AddNode("cat")
	car := g.AddNode("car")
	cow := g.AddNode("cow")

	// 2) Wire edges (duplicates are ignored, self-loops allowed):
	g.AddEdge(cat, car)
	g.AddEdge(cat, cow)
	g.AddEdge(cow, cat)

	// 3) Enumerate everything reachable from node 0, discovery order:
	order, _ := g.NodeIDs()
	fmt.Println("Reachable:", order)

	// 4) Remove a node; its incoming references disappear with it:
	g.RemoveNode(car)
	adj, _ := g.AdjacentIDs(cat)
	fmt.Println("cat now points at:", adj)

	// Output:
	// Reachable: [0 1 2]
	// cat now points at: [2]
}

// ExampleGraph_payloads shows validated payload lookups.
func ExampleGraph_payloads() {
	type city struct {
		Name string
		Pop  int
	}

	g := core.NewGraph[city]()
	id := g.AddNode(city{Name: "Lviv", Pop: 717_000})

	c, _ := g.Data(id)
	fmt.Println(c.Name)

	_, err := g.Data(42)
	fmt.Println(err)

	// Output:
	// Lviv
	// core: node id not found
}

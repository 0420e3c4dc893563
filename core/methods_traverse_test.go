package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphmint/tinygraph/core"
)

// buildGraph creates n string nodes 0..n-1 and wires the given edges.
func buildGraph(t *testing.T, n int, edges [][2]core.NodeID) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for i := 0; i < n; i++ {
		g.AddNode("n")
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestNodeIDs_EmptyGraph(t *testing.T) {
	g := core.NewGraph[string]()
	order, err := g.NodeIDs()
	assert.ErrorIs(t, err, core.ErrIDNotFound)
	assert.Nil(t, order)
}

func TestNodeIDs_SingleNode(t *testing.T) {
	g := buildGraph(t, 1, nil)
	order, err := g.NodeIDs()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, order)
}

func TestNodeIDs_SelfLoop(t *testing.T) {
	g := buildGraph(t, 1, [][2]core.NodeID{{0, 0}})
	order, err := g.NodeIDs()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, order, "self-loop must not revisit")
}

func TestNodeIDs_UnreachableOmitted(t *testing.T) {
	// 0→1 plus an isolated 2: reachability, not full enumeration.
	g := buildGraph(t, 3, [][2]core.NodeID{{0, 1}})
	order, err := g.NodeIDs()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, order)
}

func TestNodeIDs_FirstAdjacencyExploredFirst(t *testing.T) {
	// Diamond: 0→{1,2}, 1→3, 2→3. Pre-order explores 1's subtree fully
	// before touching 2, so 3 is discovered through 1.
	g := buildGraph(t, 4, [][2]core.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	order, err := g.NodeIDs()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 3, 2}, order)
}

func TestNodeIDs_CycleTerminates(t *testing.T) {
	g := buildGraph(t, 3, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 0}})
	order, err := g.NodeIDs()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, order)
}

func TestNodeIDs_NoDuplicatesAndBounded(t *testing.T) {
	g := buildGraph(t, 5, [][2]core.NodeID{
		{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 1}, {3, 0}, {2, 0},
	})
	order, err := g.NodeIDs()
	require.NoError(t, err)

	assert.LessOrEqual(t, len(order), g.NodeCount())
	seen := make(map[core.NodeID]bool, len(order))
	for _, id := range order {
		assert.False(t, seen[id], "id %d visited twice", id)
		seen[id] = true
	}
}

func TestNodeIDs_RootRemoved(t *testing.T) {
	g := buildGraph(t, 2, [][2]core.NodeID{{0, 1}})
	require.NoError(t, g.RemoveNode(0))

	order, err := g.NodeIDs()
	assert.ErrorIs(t, err, core.ErrIDNotFound)
	assert.Nil(t, order)
}

func TestReachableFrom_AlternateRoot(t *testing.T) {
	g := buildGraph(t, 4, [][2]core.NodeID{{0, 1}, {2, 3}, {3, 2}})

	order, err := g.ReachableFrom(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 3}, order)

	_, err = g.ReachableFrom(42)
	assert.ErrorIs(t, err, core.ErrIDNotFound)
}

func TestReachableFrom_DeepChain(t *testing.T) {
	// A chain far deeper than any default goroutine stack would allow a
	// recursive walk: the iterative walk must enumerate it fully.
	const n = 200_000
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(core.NodeID(i), core.NodeID(i+1)))
	}

	order, err := g.NodeIDs()
	require.NoError(t, err)
	require.Len(t, order, n)
	assert.Equal(t, core.NodeID(0), order[0])
	assert.Equal(t, core.NodeID(n-1), order[n-1])
}

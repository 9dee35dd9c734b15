// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, directed and undirected graphs,
// unreachable targets and agreement with brute-force path enumeration.
package dijkstra_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/internal/graphtest"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Distances(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_EmptySource(t *testing.T) {
	g := core.NewGraph(false)
	_, _, err := dijkstra.ShortestPath(g, "", "B")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestShortestPath_UnknownVertices(t *testing.T) {
	g := core.NewGraph(false)
	g.AddVertex("A")

	_, _, err := dijkstra.ShortestPath(g, "X", "A")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(g, "A", "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.Contains(t, err.Error(), `"X"`)
}

func TestShortestPath_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph(true)
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddVertex("C")
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "B", -5) // unreachable from A, still rejected

	_, _, err := dijkstra.ShortestPath(g, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "C→B")
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	g := graphtest.Named(t, "triangle").Build(t)

	w, ok, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := graphtest.Named(t, "triangle").Build(t)

	w, ok, err := dijkstra.ShortestPath(g, "B", "B")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, w)
}

func TestShortestPath_Fixtures(t *testing.T) {
	for _, f := range graphtest.Load(t) {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			g := f.Build(t)
			for _, p := range f.Paths {
				w, ok, err := dijkstra.ShortestPath(g, p.From, p.To)
				require.NoError(t, err)
				if p.Unreachable {
					assert.False(t, ok, "%s→%s", p.From, p.To)
					continue
				}
				assert.True(t, ok, "%s→%s", p.From, p.To)
				assert.Equal(t, p.Weight, w, "%s→%s", p.From, p.To)
			}
		})
	}
}

func TestShortestPath_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(true)
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddEdge("A", "B", 4)

	w, ok, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4.0, w)

	_, ok, err = dijkstra.ShortestPath(g, "B", "A")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph(false)
	for _, id := range []string{"A", "B", "C"} {
		g.AddVertex(id)
	}
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 1)

	w, ok, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, w)
}

func TestDistances_Unreachable(t *testing.T) {
	g := graphtest.Named(t, "one-way").Build(t)

	dist, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 5, "C": 6, "D": math.Inf(1)}, dist)
}

// bruteForce enumerates every simple path from s to t and returns the
// minimum total weight, or +Inf when none exists.
func bruteForce(g *core.Graph, s, t string) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{s: true}
	var walk func(v *core.Vertex, acc float64)
	walk = func(v *core.Vertex, acc float64) {
		if v.ID() == t {
			best = math.Min(best, acc)
			return
		}
		for _, n := range v.NeighborsWithWeights() {
			id := n.Vertex.ID()
			if onPath[id] {
				continue
			}
			onPath[id] = true
			walk(n.Vertex, acc+n.Weight)
			onPath[id] = false
		}
	}
	start, _ := g.Vertex(s)
	walk(start, 0)

	return best
}

// TestShortestPath_MatchesBruteForce checks the min-over-simple-paths property
// on small random directed graphs.
func TestShortestPath_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := graphtest.RandomDirected(7, 0.35, seed)
		for i := 0; i < 7; i++ {
			for j := 0; j < 7; j++ {
				s, d := fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", j)
				want := bruteForce(g, s, d)

				w, ok, err := dijkstra.ShortestPath(g, s, d)
				require.NoError(t, err)
				if math.IsInf(want, 1) {
					assert.False(t, ok, "seed %d %s→%s", seed, s, d)
					continue
				}
				assert.True(t, ok, "seed %d %s→%s", seed, s, d)
				assert.Equal(t, want, w, "seed %d %s→%s", seed, s, d)
			}
		}
	}
}

// TestShortestPath_ReadOnly verifies the graph is unchanged by a run.
func TestShortestPath_ReadOnly(t *testing.T) {
	g := graphtest.Named(t, "seven").Build(t)
	before := g.Edges()

	_, _, err := dijkstra.ShortestPath(g, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
	assert.Equal(t, 7, g.VertexCount())
}

// TestShortestPath_EarlyExit: settling stops at the target.
func TestShortestPath_EarlyExit(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := graphtest.Named(t, "path4").Build(t, core.WithLogger(zap.New(obs)))

	_, ok, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.True(t, ok)

	settled := logs.FilterMessage("dijkstra: settled vertex").All()
	require.Len(t, settled, 2)
	assert.Equal(t, "B", settled[1].ContextMap()["id"])
}

// SPDX-License-Identifier: MIT

// Package graphtest loads the shared YAML graph fixtures used by the package
// tests and builds core graphs from them.
package graphtest

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

//go:embed testdata/graphs.yaml
var graphsYAML []byte

// EdgeSpec is one AddEdge call.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// PathSpec is an expected shortest-path weight between two vertices.
type PathSpec struct {
	From        string  `yaml:"from"`
	To          string  `yaml:"to"`
	Weight      float64 `yaml:"weight"`
	Unreachable bool    `yaml:"unreachable"`
}

// Fixture describes a graph and the results expected from it.
type Fixture struct {
	Name     string     `yaml:"name"`
	Directed bool       `yaml:"directed"`
	Vertices []string   `yaml:"vertices"`
	Edges    []EdgeSpec `yaml:"edges"`
	MST      *float64   `yaml:"mst"` // nil when no spanning tree is expected
	Paths    []PathSpec `yaml:"paths"`
}

// Load decodes every fixture, failing the test on malformed YAML.
func Load(t testing.TB) []Fixture {
	t.Helper()

	var fixtures []Fixture
	require.NoError(t, yaml.Unmarshal(graphsYAML, &fixtures), "decode graphs.yaml")
	require.NotEmpty(t, fixtures)

	return fixtures
}

// Named returns the fixture called name.
func Named(t testing.TB, name string) Fixture {
	t.Helper()

	for _, f := range Load(t) {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("graphtest: no fixture named %q", name)

	return Fixture{}
}

// Build creates the graph described by f. Every construction call must succeed.
func (f Fixture) Build(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g := core.NewGraph(f.Directed, opts...)
	for _, id := range f.Vertices {
		require.True(t, g.AddVertex(id), "%s: AddVertex(%q)", f.Name, id)
	}
	for _, e := range f.Edges {
		require.True(t, g.AddEdge(e.From, e.To, e.Weight), "%s: AddEdge(%s,%s)", f.Name, e.From, e.To)
	}

	return g
}

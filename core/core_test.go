package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pathtree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRoadmap returns the eight-vertex directed fixture shared across packages:
//
//	A→B(10) A→C(5) B→D(1) C→B(4) C→D(3) D→A(6) D→E(2) D→F(4)
//	E→F(1)  F→B(7) F→G(2) G→F(3) H (isolated)
func buildRoadmap(t *testing.T) core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 10}, {"A", "C", 5}, {"B", "D", 1}, {"C", "B", 4}, {"C", "D", 3},
		{"D", "A", 6}, {"D", "E", 2}, {"D", "F", 4}, {"E", "F", 1}, {"F", "B", 7},
		{"F", "G", 2}, {"G", "F", 3},
	} {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}
	require.NoError(t, g.AddVertex("H"))

	return g
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddVertex("A"))

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, edges, 1, "re-adding A must keep its edges")
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_AutoAddsEndpointsAndKeepsOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("A", "B", 10))
	require.NoError(t, g.AddEdge("A", "B", 2)) // parallel edge kept

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, []core.Edge{{To: "C", Weight: 5}, {To: "B", Weight: 10}, {To: "B", Weight: 2}}, g["A"])
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())

	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
}

func TestNeighbors_Missing(t *testing.T) {
	_, err := core.NewGraph().Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_IsDeep(t *testing.T) {
	g := buildRoadmap(t)
	c := g.Clone()
	assert.Equal(t, g, c)

	c["A"][0].Weight = 99
	require.NoError(t, c.AddEdge("H", "A", 1))
	assert.Equal(t, 10.0, g["A"][0].Weight, "original edge untouched")
	assert.Empty(t, g["H"], "original sink untouched")

	assert.Nil(t, core.Graph(nil).Clone())
}

func TestValidate_RoadmapIsValid(t *testing.T) {
	g := buildRoadmap(t)
	// Validating twice is idempotent.
	assert.NoError(t, core.Validate(g))
	assert.NoError(t, core.Validate(g))
	assert.Empty(t, core.Violations(g))
	assert.NoError(t, core.Validate(core.NewGraph()))
}

func TestValidate_DanglingEdge(t *testing.T) {
	g := core.Graph{
		"A": {{To: "B", Weight: 1}},
		"B": {{To: "X", Weight: 2}},
	}
	err := core.Validate(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrDanglingEdge)
	assert.False(t, errors.Is(err, core.ErrNegativeWeight))

	var ee *core.EdgeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "B", ee.From)
	assert.Equal(t, "X", ee.To)
	assert.Equal(t, `invalid graph: node "B" links to a non-existent node "X"`, err.Error())
}

func TestValidate_NegativeWeight(t *testing.T) {
	g := core.Graph{
		"A": {{To: "B", Weight: 1}},
		"B": {{To: "A", Weight: -1.5}},
	}
	err := core.Validate(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	var ee *core.EdgeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "B", ee.From)
	assert.Equal(t, "A", ee.To)
	assert.Equal(t, -1.5, ee.Weight)
	assert.Equal(t, `invalid graph: negative weight -1.5 in edge from "B" to "A"`, err.Error())
}

func TestValidate_NaNAndEmptyIDs(t *testing.T) {
	err := core.Validate(core.Graph{"A": {{To: "A", Weight: math.NaN()}}})
	assert.ErrorIs(t, err, core.ErrBadWeight)

	err = core.Validate(core.Graph{"": nil})
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	err = core.Validate(core.Graph{"": nil, "A": {{To: "", Weight: 1}}})
	var ee *core.EdgeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "", ee.From, "the empty key sorts first")
}

// TestValidate_FirstFailureIsDeterministic checks that the sorted scan always
// surfaces the same offending pair, whatever Go's map iteration order.
func TestValidate_FirstFailureIsDeterministic(t *testing.T) {
	g := core.Graph{
		"C": {{To: "Z", Weight: 1}},
		"A": {{To: "B", Weight: 1}, {To: "B", Weight: -3}, {To: "Y", Weight: 1}},
		"B": nil,
	}
	for i := 0; i < 20; i++ {
		var ee *core.EdgeError
		require.ErrorAs(t, core.Validate(g), &ee)
		assert.Equal(t, "A", ee.From)
		assert.Equal(t, "B", ee.To)
		assert.ErrorIs(t, ee, core.ErrNegativeWeight)
	}

	all := core.Violations(g)
	require.Len(t, all, 3)
	assert.Equal(t, core.ErrNegativeWeight, all[0].Reason)
	assert.Equal(t, core.ErrDanglingEdge, all[1].Reason)
	assert.Equal(t, "Y", all[1].To)
	assert.Equal(t, core.ErrDanglingEdge, all[2].Reason)
	assert.Equal(t, "C", all[2].From)
}

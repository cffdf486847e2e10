package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathtree/bfs"
	"github.com/katalvlaran/pathtree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds A→B→C→D plus a shortcut A→C and an isolated E.
func chain() core.Graph {
	return core.Graph{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 9}},
		"B": {{To: "C", Weight: 1}},
		"C": {{To: "D", Weight: 1}},
		"D": nil,
		"E": nil,
	}
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(chain(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "C"}, res.Parent)
	assert.False(t, res.Reached("E"))

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, path, "fewest hops, weights ignored")

	_, err = res.PathTo("E")
	assert.Error(t, err)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(chain(), "Z")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(chain(), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = bfs.BFS(chain(), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(chain(), "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	heavy := func(_ string, e core.Edge) bool { return e.Weight < 5 }
	res, err = bfs.BFS(chain(), "A", bfs.WithFilterEdge(heavy))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, res.Depth)
}

func TestReachable(t *testing.T) {
	seen, err := bfs.Reachable(chain(), "C")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"C": true, "D": true}, seen)

	_, err = bfs.Reachable(chain(), "Z")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DexerMatters/reactivity/graph"
	"github.com/DexerMatters/reactivity/solo"
)

// a diamond is acyclic and wires fine
//
//	    x
//	  /   \
//	 b     c
//	  \   /
//	    d
func TestDiamondAccepted(t *testing.T) {
	a := graph.NewArena()

	x := solo.New(1)
	b := solo.Driven(func() int { return x.Get() + 1 }, nil)
	c := solo.Driven(func() int { return x.Get() + 2 }, nil)
	d := solo.Driven(func() int { return b.Get() + c.Get() }, nil)

	require.NoError(t, a.Connect(x, b))
	require.NoError(t, a.Connect(x, c))
	require.NoError(t, a.Connect(b, d))
	require.NoError(t, a.Connect(c, d))

	x.Update(2)
	assert.Equal(t, 7, d.Get())
}

// a direct back-edge is refused before any wiring happens
func TestDirectCycleRefused(t *testing.T) {
	a := graph.NewArena()

	x := solo.New(1)
	y := solo.Driven(func() int { return x.Get() }, nil)

	require.NoError(t, a.Connect(x, y))

	err := a.Connect(y, x)
	require.ErrorIs(t, err, graph.ErrCycle)

	// the refused edge left no receiver behind
	y.Update(9)
	assert.Equal(t, 1, x.Get())
}

// a transitive back-edge is refused too
func TestTransitiveCycleRefused(t *testing.T) {
	a := graph.NewArena()

	x := solo.New(1)
	y := solo.Driven(func() int { return x.Get() }, nil)
	z := solo.Driven(func() int { return y.Get() }, nil)

	require.NoError(t, a.Connect(x, y))
	require.NoError(t, a.Connect(y, z))

	assert.ErrorIs(t, a.Connect(z, x), graph.ErrCycle)
}

// a self-edge is the smallest cycle
func TestSelfEdgeRefused(t *testing.T) {
	a := graph.NewArena()

	x := solo.New(1)
	assert.ErrorIs(t, a.Connect(x, x), graph.ErrCycle)
}

// accepted edges are recorded per source id
func TestEdgesRecorded(t *testing.T) {
	a := graph.NewArena()

	x := solo.New(1)
	y := solo.Driven(func() int { return x.Get() }, nil)
	z := solo.Driven(func() int { return x.Get() }, nil)

	require.NoError(t, a.Connect(x, y))
	require.NoError(t, a.Connect(x, z))

	assert.ElementsMatch(t, []uint64{y.ID(), z.ID()}, a.Edges(x.ID()))
	assert.Empty(t, a.Edges(y.ID()))
}

package shared_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DexerMatters/reactivity/lockcell"
	"github.com/DexerMatters/reactivity/shared"
)

// the shared variant keeps the same contract as solo
func TestBasicContract(t *testing.T) {
	x := shared.New(1)
	assert.Equal(t, 1, x.Get())

	y := shared.Driven(func() int {
		return x.Get() * 2
	}, nil)
	x.AddReceiver(y)
	assert.Equal(t, 2, y.Get())

	x.Update(5)
	assert.Equal(t, 10, y.Get())
}

// the diamond scenario holds under locks too
//
//	    x
//	  /   \
//	 d     t
//	  \   /
//	    s
func TestDiamondRecomputesOnce(t *testing.T) {
	x := shared.New(1)
	d := shared.Driven(func() int { return x.Get() * 2 }, nil)
	tr := shared.Driven(func() int { return x.Get() * 3 }, nil)

	effectRuns := 0
	s := shared.Driven(func() int {
		return d.Get() + tr.Get()
	}, func(self *shared.Signal[int], next int) {
		effectRuns++
	})

	x.AddReceiver(d)
	x.AddReceiver(tr)
	d.AddReceiver(s)
	tr.AddReceiver(s)

	x.Update(2)
	assert.Equal(t, 10, s.Get())
	assert.Equal(t, 1, effectRuns)
}

// while suspended, sends mutate silently and nothing replays on resume
func TestSuspendDropsNotifications(t *testing.T) {
	effectRuns := 0

	x := shared.New(1)
	y := shared.Driven(func() int {
		return x.Get() * 2
	}, func(self *shared.Signal[int], next int) {
		effectRuns++
	})
	x.AddReceiver(y)

	x.Suspend()
	assert.Empty(t, x.Send(5))
	assert.Equal(t, 5, x.Get())
	assert.Equal(t, 2, y.Get())

	x.Resume()
	x.Update(7)
	assert.Equal(t, 14, y.Get())
	assert.Equal(t, 1, effectRuns)
}

// a held wave defers recomputation until the caller settles it
func TestHeldWave(t *testing.T) {
	x := shared.New(1)
	y := shared.Driven(func() int {
		return x.Get() * 2
	}, nil)
	x.AddReceiver(y)

	w := x.Send(5)
	require.Len(t, w, 1)
	assert.Equal(t, 1, y.Dirty())
	assert.Equal(t, 2, y.Get())

	w.Settle()
	assert.Equal(t, 0, y.Dirty())
	assert.Equal(t, 10, y.Get())
}

// N goroutines send distinct values concurrently; afterwards the cell
// holds exactly one of them, never a torn value, and no dirty count
// lingers
func TestConcurrentSends(t *testing.T) {
	const goroutines = 32
	const sendsEach = 200

	x := shared.New(0)
	y := shared.Driven(func() int {
		return x.Get() + 1
	}, nil)
	x.AddReceiver(y)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < sendsEach; i++ {
				x.Update(g*sendsEach + i)
			}
		}()
	}
	wg.Wait()

	final := x.Get()
	assert.GreaterOrEqual(t, final, 0)
	assert.Less(t, final, goroutines*sendsEach)
	assert.Equal(t, 0, y.Dirty())
}

// readers racing a wave always see a full value
func TestConcurrentReadersDuringSends(t *testing.T) {
	x := shared.New(int64(0))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := int64(0); i < 5000; i++ {
			x.Update(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 5000; i++ {
			v := x.Get()
			assert.GreaterOrEqual(t, v, int64(0))
			assert.Less(t, v, int64(5000))
		}
	}()
	wg.Wait()
}

// handles are freely copyable; every clone sees the same cell
func TestCloneSharesCell(t *testing.T) {
	x := shared.New(1)
	h := x.Clone()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.Update(9)
	}()
	wg.Wait()

	assert.Equal(t, 9, x.Get())
	assert.Equal(t, x.ID(), h.ID())
}

// a signal built over a caller-supplied cell shares that storage
func TestFromCellSharesStorage(t *testing.T) {
	v := 10
	cell := lockcell.Wrap(&v)
	x := shared.FromCell(cell)

	assert.Equal(t, 10, x.Get())

	cell.Store(20)
	assert.Equal(t, 20, x.Get())

	x.Update(30)
	assert.Equal(t, 30, cell.Load())
	assert.Equal(t, 30, v)
}

// deep clones snapshot value and registry and then live on their own
func TestDeepClone(t *testing.T) {
	effectRuns := 0

	x := shared.New(1)
	y := shared.Driven(func() int {
		return x.Get() + 1
	}, func(self *shared.Signal[int], next int) {
		effectRuns++
	})
	x.AddReceiver(y)

	clone := x.DeepClone()
	clone.Update(5)

	assert.Equal(t, 5, clone.Get())
	assert.Equal(t, 1, x.Get())
	assert.Equal(t, 1, effectRuns, "cloned registry still notifies y")
	assert.NotEqual(t, x.ID(), clone.ID())
}

// labels hash to stable ids in the shared variant too
func TestNamedIDs(t *testing.T) {
	a := shared.NewNamed("gauge", 0)
	b := shared.NewNamed("gauge", 0)
	c := shared.DrivenNamed("doubled", func() int { return a.Get() * 2 }, nil)

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
}

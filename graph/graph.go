// Package graph offers cycle-safe wiring on top of the raw AddReceiver
// primitive. The propagation protocol assumes an acyclic graph; a cycle
// makes counters never reach zero or recomputation never terminate. The
// core deliberately performs no check, so callers building topology from
// dynamic input can route edges through an Arena, which refuses any edge
// that would close a cycle.
package graph

import (
	"errors"
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/DexerMatters/reactivity/wave"
)

// ErrCycle is returned when an edge would make the source reachable from
// itself.
var ErrCycle = errors.New("edge would close a dependency cycle")

// Source is the sending half of an edge: anything with a stable id that
// can register a receiver. Both signal variants qualify.
type Source interface {
	ID() uint64
	AddReceiver(wave.Receiver)
}

// Arena records the adjacency of every edge wired through it, keyed by
// stable signal id. It only knows about its own edges; wiring some edges
// directly through AddReceiver and others through the Arena voids the
// guarantee.
type Arena struct {
	mu    sync.Mutex
	edges map[uint64]mapset.Set[uint64]
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{edges: make(map[uint64]mapset.Set[uint64])}
}

// Connect wires dst as a receiver of src after proving that src is not
// reachable from dst over previously recorded edges. On success the edge
// is recorded and src.AddReceiver(dst) runs; on ErrCycle nothing changes.
func (a *Arena) Connect(src Source, dst wave.Receiver) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if src.ID() == dst.ID() || a.reaches(dst.ID(), src.ID()) {
		return fmt.Errorf("%w: %d -> %d", ErrCycle, src.ID(), dst.ID())
	}

	set, ok := a.edges[src.ID()]
	if !ok {
		set = mapset.NewSet[uint64]()
		a.edges[src.ID()] = set
	}
	set.Add(dst.ID())

	src.AddReceiver(dst)
	return nil
}

// Edges returns the recorded receiver ids of the given source id.
func (a *Arena) Edges(id uint64) []uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	set, ok := a.edges[id]
	if !ok {
		return nil
	}
	return set.ToSlice()
}

// reaches reports whether to is reachable from from. Iterative DFS; the
// visited set keeps diamonds from being walked twice.
func (a *Arena) reaches(from, to uint64) bool {
	visited := mapset.NewSet[uint64]()
	stack := []uint64{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		if !visited.Add(id) {
			continue
		}
		if set, ok := a.edges[id]; ok {
			stack = append(stack, set.ToSlice()...)
		}
	}
	return false
}

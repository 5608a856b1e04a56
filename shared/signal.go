// Package shared is the cross-goroutine signal variant. It implements the
// same contract as solo with locks in place of confinement: the value sits
// in a lockcell, the receiver registry behind an RWMutex, the dirty counter
// behind its own mutex. Each lock is held only for a single primitive
// operation and never across another signal's recomputation, so diamond
// graphs cannot deadlock; the price is that a reader racing a wave may see
// distinct ancestors at different update generations. Whole-wave atomicity
// holds only at the dirty-count gate on derived signals.
package shared

import (
	"sync"
	"sync/atomic"

	"github.com/DexerMatters/reactivity/lockcell"
	"github.com/DexerMatters/reactivity/wave"
)

// Signal is a handle over a shared cell. Handles are freely copyable
// across goroutines; the cell lives as long as its longest holder.
// Send, Get and AddReceiver are individually goroutine-safe. No atomicity
// across multiple calls is provided; batch by holding tokens.
type Signal[T any] struct {
	cell *cell[T]
}

type cell[T any] struct {
	id        uint64
	value     *lockcell.Cell[T]
	processor func() T
	effect    func(*Signal[T], T)

	recvMu    sync.RWMutex
	receivers []wave.Receiver

	dirtyMu sync.Mutex
	dirty   int

	suspended atomic.Bool
}

// New creates an independent signal holding value.
func New[T any](value T) *Signal[T] {
	return &Signal[T]{cell: &cell[T]{
		id:    wave.NextID(),
		value: lockcell.Own(value),
	}}
}

// NewNamed is New with a label-derived stable id.
func NewNamed[T any](label string, value T) *Signal[T] {
	s := New(value)
	s.cell.id = wave.Symbol(label)
	return s
}

// FromCell creates an independent signal over storage the caller already
// guards. The signal and the embedding application then share one value
// location; the application keeps the ownership decision.
func FromCell[T any](c *lockcell.Cell[T]) *Signal[T] {
	return &Signal[T]{cell: &cell[T]{
		id:    wave.NextID(),
		value: c,
	}}
}

// Driven creates a derived signal, seeding the value with one processor
// call. The effect runs only on later recomputation.
func Driven[T any](processor func() T, effect func(*Signal[T], T)) *Signal[T] {
	return &Signal[T]{cell: &cell[T]{
		id:        wave.NextID(),
		value:     lockcell.Own(processor()),
		processor: processor,
		effect:    effect,
	}}
}

// DrivenNamed is Driven with a label-derived stable id.
func DrivenNamed[T any](label string, processor func() T, effect func(*Signal[T], T)) *Signal[T] {
	s := Driven(processor, effect)
	s.cell.id = wave.Symbol(label)
	return s
}

// ID returns the signal's stable identity.
func (s *Signal[T]) ID() uint64 { return s.cell.id }

// Get returns a copy of the current value under the read lock.
func (s *Signal[T]) Get() T { return s.cell.value.Load() }

// Inspect exposes the stored value in place, holding the read lock for
// the duration of fn. fn must not send on this signal.
func (s *Signal[T]) Inspect(fn func(*T)) { s.cell.value.View(fn) }

// Send unconditionally overwrites the stored value, then arms every
// registered receiver unless the gate is closed. The registry is copied
// before fan-out so no lock is held while downstream counters move.
func (s *Signal[T]) Send(v T) wave.Wave {
	c := s.cell
	c.value.Store(v)
	if c.suspended.Load() {
		return nil
	}
	return s.ReceiverPromises()
}

// Update is Send with the wave settled immediately.
func (s *Signal[T]) Update(v T) {
	s.Send(v).Settle()
}

// AddReceiver appends dependent to the registry. No cycle check; see
// graph.Arena.
func (s *Signal[T]) AddReceiver(dependent wave.Receiver) {
	c := s.cell
	c.recvMu.Lock()
	c.receivers = append(c.receivers, dependent.Duplicate())
	c.recvMu.Unlock()
}

// Suspend closes the notification gate; sends still mutate the value.
func (s *Signal[T]) Suspend() { s.cell.suspended.Store(true) }

// Resume reopens the gate. Suspended sends are not replayed.
func (s *Signal[T]) Resume() { s.cell.suspended.Store(false) }

// Suspended reports the gate state.
func (s *Signal[T]) Suspended() bool { return s.cell.suspended.Load() }

// Clone returns a new handle over the same cell.
func (s *Signal[T]) Clone() *Signal[T] {
	return &Signal[T]{cell: s.cell}
}

// DeepClone produces an independent signal with its own storage holding a
// snapshot of the current value, sharing processor and effect references,
// and copying the receiver list, dirty counter and suspended flag.
func (s *Signal[T]) DeepClone() *Signal[T] {
	c := s.cell

	c.recvMu.RLock()
	receivers := make([]wave.Receiver, len(c.receivers))
	copy(receivers, c.receivers)
	c.recvMu.RUnlock()

	c.dirtyMu.Lock()
	dirty := c.dirty
	c.dirtyMu.Unlock()

	clone := &Signal[T]{cell: &cell[T]{
		id:        wave.NextID(),
		value:     lockcell.Own(c.value.Load()),
		processor: c.processor,
		effect:    c.effect,
		receivers: receivers,
		dirty:     dirty,
	}}
	clone.cell.suspended.Store(c.suspended.Load())
	return clone
}

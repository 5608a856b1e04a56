// Package solo is the single-owner signal variant: handles share one cell
// through a plain pointer, there are no locks, and everything is confined
// to one goroutine. Use shared when signals cross goroutines.
package solo

import "github.com/DexerMatters/reactivity/wave"

// Signal owns one value, an optional pure processor that recomputes it
// from other signals, an optional effect run after every recomputation,
// and a registry of dependents. Copying a Signal handle shares the cell.
type Signal[T any] struct {
	cell *cell[T]
}

type cell[T any] struct {
	id        uint64
	value     T
	processor func() T
	effect    func(*Signal[T], T)
	receivers []wave.Receiver
	dirty     int
	suspended bool
}

// New creates an independent signal holding value. It has no processor,
// so it never recomputes; it only changes through Send.
func New[T any](value T) *Signal[T] {
	return &Signal[T]{cell: &cell[T]{id: wave.NextID(), value: value}}
}

// NewNamed is New with a label-derived stable id.
func NewNamed[T any](label string, value T) *Signal[T] {
	s := New(value)
	s.cell.id = wave.Symbol(label)
	return s
}

// Driven creates a derived signal. The processor runs once here to seed
// the value; the effect is not called at construction, only on later
// recomputation. Dependencies are wired afterwards with AddReceiver on
// each dependency (or through the derive package).
func Driven[T any](processor func() T, effect func(*Signal[T], T)) *Signal[T] {
	return &Signal[T]{cell: &cell[T]{
		id:        wave.NextID(),
		value:     processor(),
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

// Get returns a copy of the current value. It never triggers
// recomputation or notification.
func (s *Signal[T]) Get() T { return s.cell.value }

// Inspect exposes the stored value in place, without copying.
func (s *Signal[T]) Inspect(fn func(*T)) { fn(&s.cell.value) }

// Send unconditionally overwrites the stored value. While suspended it
// returns nil and notifies nobody. Otherwise every registered receiver is
// armed in registration order and the full pre-walked token list comes
// back; the caller decides when the wave settles.
func (s *Signal[T]) Send(v T) wave.Wave {
	c := s.cell
	c.value = v
	if c.suspended {
		return nil
	}
	return s.ReceiverPromises()
}

// Update is Send with the wave settled immediately.
func (s *Signal[T]) Update(v T) {
	s.Send(v).Settle()
}

// AddReceiver appends dependent to the registry. No cycle check is
// performed here; wire through graph.Arena when topology is dynamic.
func (s *Signal[T]) AddReceiver(dependent wave.Receiver) {
	c := s.cell
	c.receivers = append(c.receivers, dependent.Duplicate())
}

// Suspend closes the notification gate: sends still mutate the value but
// fan out nothing.
func (s *Signal[T]) Suspend() { s.cell.suspended = true }

// Resume reopens the gate. Sends that happened while suspended are not
// replayed.
func (s *Signal[T]) Resume() { s.cell.suspended = false }

// Suspended reports the gate state.
func (s *Signal[T]) Suspended() bool { return s.cell.suspended }

// Clone returns a new handle over the same cell.
func (s *Signal[T]) Clone() *Signal[T] {
	return &Signal[T]{cell: s.cell}
}

// DeepClone produces an independent signal with its own copy of the
// current value, dirty counter and suspended flag, sharing the processor
// and effect references, and holding a copy of the current receiver list.
func (s *Signal[T]) DeepClone() *Signal[T] {
	c := s.cell
	receivers := make([]wave.Receiver, len(c.receivers))
	copy(receivers, c.receivers)
	return &Signal[T]{cell: &cell[T]{
		id:        wave.NextID(),
		value:     c.value,
		processor: c.processor,
		effect:    c.effect,
		receivers: receivers,
		dirty:     c.dirty,
		suspended: c.suspended,
	}}
}

package solo

import "github.com/DexerMatters/reactivity/wave"

// wave.Receiver implementation. Counter mutations are plain integer
// arithmetic; the variant is confined to one goroutine.

func (s *Signal[T]) Dirty() int { return s.cell.dirty }

func (s *Signal[T]) IncreaseDirty() { s.cell.dirty++ }

func (s *Signal[T]) DecreaseDirty() int {
	s.cell.dirty--
	return s.cell.dirty
}

func (s *Signal[T]) ReceiverPromises() wave.Wave {
	return wave.Fan(s.cell.receivers)
}

// React recomputes the value from live dependency reads, runs the effect
// with (self, new value) while Get still returns the old value, then
// re-sends. Independent signals have nothing to recompute.
func (s *Signal[T]) React() wave.Wave {
	c := s.cell
	if c.processor == nil {
		return nil
	}
	next := c.processor()
	if c.effect != nil {
		c.effect(s, next)
	}
	return s.Send(next)
}

func (s *Signal[T]) Duplicate() wave.Receiver {
	return &Signal[T]{cell: s.cell}
}

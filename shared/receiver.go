package shared

import "github.com/DexerMatters/reactivity/wave"

// wave.Receiver implementation. The counter lives behind its own mutex so
// increments from concurrent waves and the decrement-then-check in token
// resolution stay atomic.

func (s *Signal[T]) Dirty() int {
	c := s.cell
	c.dirtyMu.Lock()
	defer c.dirtyMu.Unlock()
	return c.dirty
}

func (s *Signal[T]) IncreaseDirty() {
	c := s.cell
	c.dirtyMu.Lock()
	c.dirty++
	c.dirtyMu.Unlock()
}

func (s *Signal[T]) DecreaseDirty() int {
	c := s.cell
	c.dirtyMu.Lock()
	defer c.dirtyMu.Unlock()
	c.dirty--
	return c.dirty
}

func (s *Signal[T]) ReceiverPromises() wave.Wave {
	c := s.cell
	c.recvMu.RLock()
	receivers := make([]wave.Receiver, len(c.receivers))
	copy(receivers, c.receivers)
	c.recvMu.RUnlock()
	return wave.Fan(receivers)
}

// React recomputes from live dependency reads, each dependency taking its
// own read lock through Get, runs the effect, then re-sends. No lock of
// this cell is held while dependencies are read.
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

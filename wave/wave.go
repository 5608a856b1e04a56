// Package wave implements the dirty-counting propagation protocol shared by
// every signal variant. A write to a signal arms the whole transitive
// fan-out first (every affected receiver's dirty counter is incremented and
// a Promise token is handed back per notification), and only then are the
// tokens settled. A receiver recomputes exactly when its counter falls back
// to zero, which is what keeps diamond-shaped graphs glitch free: the
// counter at settle time equals the number of distinct update paths still
// outstanding, so no receiver ever runs against a half-updated ancestor set.
package wave

// Receiver is the minimal capability a signal exposes to take part in
// propagation. Signals of different value types sit behind this interface
// in one registry.
type Receiver interface {
	// Dirty reports the number of notifications not yet absorbed for the
	// current propagation wave. Never negative.
	Dirty() int

	// IncreaseDirty arms one pending notification.
	IncreaseDirty()

	// DecreaseDirty absorbs one notification and returns the new count.
	// Returning the post-decrement value keeps the zero check atomic in
	// the locked variant.
	DecreaseDirty() int

	// ReceiverPromises arms every registered receiver of this signal in
	// registration order, recursively, and returns the flattened tokens.
	ReceiverPromises() Wave

	// React recomputes the signal's value from its live dependencies,
	// runs the effect callback, then re-sends the new value, returning
	// the tokens that re-send produced. Signals without a processor
	// return nil.
	React() Wave

	// Duplicate returns an owned handle over the same underlying cell,
	// suitable for storage in a heterogeneous registry.
	Duplicate() Receiver

	// ID is a stable identity for graph bookkeeping and diagnostics.
	ID() uint64
}

// Promise is a one-shot completion token bound to exactly one
// (receiver, notification) pair. It represents "this receiver has been
// told an ancestor changed, but not yet that every ancestor in this wave
// has changed". The number of live tokens bound to a receiver always
// equals that receiver's dirty counter.
type Promise struct {
	receiver Receiver
	settled  bool
}

// Bound returns the receiver this token will decrement.
func (p *Promise) Bound() Receiver { return p.receiver }

// Settled reports whether the token has already been resolved.
func (p *Promise) Settled() bool { return p.settled }

// Resolve releases the token: the bound receiver's dirty counter drops by
// one, and if that was the last outstanding notification the receiver
// recomputes and its re-send settles in place. Resolving twice is a no-op,
// so deferred and explicit release can coexist.
func (p *Promise) Resolve() {
	if p == nil || p.settled {
		return
	}
	p.settled = true
	if p.receiver.DecreaseDirty() == 0 {
		p.receiver.React().Settle()
	}
}

// Wave is the flattened token list produced by one send: the direct
// notification first, then the pre-armed transitive downstream.
type Wave []*Promise

// Settle resolves every token in returned order. Settling the wave as one
// batch is what the ordering guarantee is conditioned on; interleaving
// tokens of unrelated waves is the caller's own risk.
func (w Wave) Settle() {
	for _, p := range w {
		p.Resolve()
	}
}

// Notify arms one (source, receiver) edge. The receiver's counter is
// incremented, a token bound to it is created, and the receiver's entire
// downstream is pre-armed before anything anywhere recomputes. The token
// for the direct edge comes first.
func Notify(r Receiver) Wave {
	r.IncreaseDirty()
	w := Wave{&Promise{receiver: r}}
	return append(w, r.ReceiverPromises()...)
}

// Fan arms every receiver in order and flattens the result. Both signal
// variants implement ReceiverPromises with it.
func Fan(receivers []Receiver) Wave {
	var w Wave
	for _, r := range receivers {
		w = append(w, Notify(r)...)
	}
	return w
}

package wave

// Batch accumulates the waves of several sends so one logical update
// settles as a unit. Useful when two independent sources feed the same
// derived signal and neither send should trigger recomputation on its own.
type Batch struct {
	pending Wave
}

// Add appends a send's tokens to the batch without resolving any of them.
func (b *Batch) Add(w Wave) {
	b.pending = append(b.pending, w...)
}

// Pending reports the number of unresolved tokens held.
func (b *Batch) Pending() int {
	n := 0
	for _, p := range b.pending {
		if !p.Settled() {
			n++
		}
	}
	return n
}

// Settle resolves everything held, in arrival order, and empties the batch.
func (b *Batch) Settle() {
	w := b.pending
	b.pending = nil
	w.Settle()
}

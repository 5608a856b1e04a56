// Package derive is the construction-sugar layer outside the protocol
// core: arity helpers that build a derived signal from explicitly listed
// dependencies and wire the notification edge on each one, in order. It
// adds no semantics of its own; everything reduces to Driven plus
// AddReceiver calls.
//
// driven.go and driven_sync.go are generated; run cmd/codegen after
// changing the template.
package derive

import "github.com/DexerMatters/reactivity/wave"

// Dep is the read half of a dependency a generated processor closes over.
// Both signal variants satisfy it.
type Dep[T any] interface {
	Get() T
	AddReceiver(wave.Receiver)
}

package online

import (
	"fmt"
	"iter"

	"github.com/eugenenazirov/packit"
)

// Packer is implemented by online bin-packing algorithms. Items are offered
// one at a time; each offer may close bins as a side effect, handing their
// ownership to the caller.
//
// A Packer is a state machine with two states: open, in which it accepts
// items, and finalized, which is terminal. Finalize performs the transition;
// using the packer afterwards is a programming error and panics.
type Packer[T any] interface {
	// Add attempts to place one item. It returns the bins closed as a side
	// effect of this call (usually none), or an *ItemTooLargeError carrying
	// the rejected item back to the caller. On the error path no packer
	// state is mutated.
	Add(item T) ([]packit.Bin[T], error)

	// Finalize closes and returns, in slot order, every open bin that holds
	// at least one item. Bins that never received an item are dropped, never
	// emitted empty. The packer must not be used afterwards.
	Finalize() []packit.Bin[T]
}

// ItemTooLargeError reports an item whose size exceeds the packer's bin
// capacity, so it can never be placed. The rejected item rides along so the
// caller loses nothing.
type ItemTooLargeError[T any] struct {
	Item        T
	Size        int
	BinCapacity int
}

func (e *ItemTooLargeError[T]) Error() string {
	return fmt.Sprintf("item of size %d cannot fit into bins of capacity %d", e.Size, e.BinCapacity)
}

// MustAdd is Add for callers that have pre-validated that no item exceeds the
// bin capacity: it panics instead of returning an error.
func MustAdd[T any](p Packer[T], item T) []packit.Bin[T] {
	bins, err := p.Add(item)
	if err != nil {
		panic(fmt.Sprintf("packit: %v", err))
	}
	return bins
}

// PackAllError is returned by PackAll when an item is rejected partway
// through a sequence. It bundles everything needed to inspect, resume, or
// abandon the run without losing prior work; the packer itself stays in the
// caller's hands, still open and untouched by the failing item.
type PackAllError[T any] struct {
	// Err is the *ItemTooLargeError that interrupted the run.
	Err error
	// Remaining yields the unconsumed input, positioned exactly after the
	// failing item. It is single-use.
	Remaining iter.Seq[T]
	// Closed holds the bins successfully closed before the failure.
	Closed []packit.Bin[T]

	stop func()
}

// Stop releases the unconsumed input without draining it. Callers that
// abandon the run instead of iterating Remaining must call it; after Stop,
// Remaining yields nothing.
func (e *PackAllError[T]) Stop() {
	e.stop()
}

func (e *PackAllError[T]) Error() string {
	return fmt.Sprintf("pack all: %v", e.Err)
}

func (e *PackAllError[T]) Unwrap() error {
	return e.Err
}

// PackAll drives Add over an entire item sequence and then finalizes the
// packer. On success it returns all closed bins in emission order: bins
// closed mid-stream first, then the bins emitted at finalize. Items already
// inside the packer before the call are included in the result.
//
// On a too-large item it stops consuming immediately and returns a
// *PackAllError; the packer is not finalized and remains usable. Callers
// that abandon the run rather than iterating the error's Remaining sequence
// must release it with the error's Stop method.
func PackAll[T any](p Packer[T], items iter.Seq[T]) ([]packit.Bin[T], error) {
	next, stop := iter.Pull(items)

	var closed []packit.Bin[T]
	for {
		item, ok := next()
		if !ok {
			break
		}

		bins, err := p.Add(item)
		if err != nil {
			remaining := func(yield func(T) bool) {
				defer stop()
				for {
					item, ok := next()
					if !ok || !yield(item) {
						return
					}
				}
			}
			return nil, &PackAllError[T]{Err: err, Remaining: remaining, Closed: closed, stop: stop}
		}
		closed = append(closed, bins...)
	}
	stop()

	return append(closed, p.Finalize()...), nil
}

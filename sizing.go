package packit

// Sized is implemented by item types that can report their own size. The size
// must be non-negative and is the only thing the packing algorithms ever ask
// of an item.
type Sized interface {
	Size() int
}

// Wrapped pairs an item with an external size function, letting types that do
// not implement Sized participate in packing unchanged. The wrapped item is
// exposed directly through the Item field for reading and mutation; Wrapped
// only adds the ability to answer size queries.
//
// Unlike its zero-cost equivalents in languages with monomorphized closures,
// a Wrapped value carries one func value per item in addition to whatever the
// size function itself captures.
type Wrapped[T any] struct {
	Item T

	size func(T) int
}

// Wrap pairs item with size. The function is consulted on every Size call, so
// it should be cheap.
func Wrap[T any](item T, size func(T) int) Wrapped[T] {
	return Wrapped[T]{Item: item, size: size}
}

// Size reports the wrapped item's size by calling the stored size function.
func (w Wrapped[T]) Size() int {
	return w.size(w.Item)
}

// Unwrap returns the bare item, discarding the size function.
func (w Wrapped[T]) Unwrap() T {
	return w.Item
}

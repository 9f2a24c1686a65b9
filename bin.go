package packit

// Bin is an ordered, capacity-bounded container of items. Items are only ever
// appended; a bin never shrinks until it is discarded as a whole. The
// remaining capacity saturates at zero, so a force-inserted oversized item
// leaves the bin full rather than driving the counter negative.
//
// A Bin exclusively owns its contents. Once a packer emits a bin, ownership
// transfers to the caller.
type Bin[T any] struct {
	contents  []T
	remaining int
}

// NewBin returns an empty bin with the given capacity. Capacity is not
// validated here; packing entry points reject non-positive capacities before
// any bin is created.
func NewBin[T any](capacity int) Bin[T] {
	return Bin[T]{remaining: capacity}
}

// NewBinWithItem returns a bin pre-seeded with a single item.
func NewBinWithItem[T Sized](capacity int, item T) Bin[T] {
	return NewBinWithItemSize(capacity, item, item.Size())
}

// NewBinWithItemSize is NewBinWithItem for callers that already know the
// item's size, avoiding a recomputation.
func NewBinWithItemSize[T any](capacity int, item T, size int) Bin[T] {
	b := NewBin[T](capacity)
	b.AddSized(item, size)
	return b
}

// AddSized appends item to the bin, decrementing the remaining capacity by
// the caller-supplied size. The counter saturates at zero.
func (b *Bin[T]) AddSized(item T, size int) {
	b.remaining -= size
	if b.remaining < 0 {
		b.remaining = 0
	}
	b.contents = append(b.contents, item)
}

// Add appends item to b, taking the size from the item itself.
func Add[T Sized](b *Bin[T], item T) {
	b.AddSized(item, item.Size())
}

// Contents returns the bin's items in insertion order. The returned slice is
// a view into the bin and must not be modified.
func (b *Bin[T]) Contents() []T {
	return b.contents
}

// TakeContents transfers ownership of the bin's items to the caller. The bin
// must not be used afterwards.
func (b *Bin[T]) TakeContents() []T {
	contents := b.contents
	b.contents = nil
	return contents
}

// RemainingCapacity reports how much room is left in the bin.
func (b *Bin[T]) RemainingCapacity() int {
	return b.remaining
}

// Len reports the number of items in the bin.
func (b *Bin[T]) Len() int {
	return len(b.contents)
}

// Map transforms a bin's contents element-wise into a new type, preserving
// order and count. The remaining capacity is copied verbatim: this is a
// relabeling operation, not a repack, and the counter is never validated
// against the new type's sizes.
func Map[T, U any](b Bin[T], fn func(T) U) Bin[U] {
	mapped := Bin[U]{
		contents:  make([]U, 0, len(b.contents)),
		remaining: b.remaining,
	}
	for _, item := range b.contents {
		mapped.contents = append(mapped.contents, fn(item))
	}
	return mapped
}

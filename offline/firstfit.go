package offline

import (
	"iter"

	"github.com/eugenenazirov/packit"
)

// FirstFit packs items using the first-fit algorithm: each item goes into the
// first open bin, in creation order, with enough remaining capacity. A new
// bin is opened only when no open bin fits; bins are never closed mid-stream.
// An item larger than binCapacity gets a bin of its own, filled to the brim.
//
// Returns packit.ErrInvalidBinCapacity when binCapacity is not positive.
func FirstFit[T packit.Sized](binCapacity int, items iter.Seq[T]) ([]packit.Bin[T], error) {
	if binCapacity < 1 {
		return nil, packit.ErrInvalidBinCapacity
	}
	return firstFitInto(binCapacity, items, 1), nil
}

// firstFitInto is the scan-and-place primitive shared with
// FirstFitDecreasing. lowerBound pre-sizes the bin list; it is purely a
// capacity hint and never changes the result.
func firstFitInto[T packit.Sized](binCapacity int, items iter.Seq[T], lowerBound int) []packit.Bin[T] {
	bins := make([]packit.Bin[T], 0, lowerBound)

	for item := range items {
		size := item.Size()

		placed := false
		for i := range bins {
			if size <= bins[i].RemainingCapacity() {
				bins[i].AddSized(item, size)
				placed = true
				break
			}
		}
		if !placed {
			bins = append(bins, packit.NewBinWithItemSize(binCapacity, item, size))
		}
	}

	return bins
}

package offline

import (
	"cmp"
	"slices"

	"github.com/eugenenazirov/packit"
)

// FirstFitDecreasing packs items using the first-fit-decreasing algorithm: a
// copy of the items is stable-sorted by descending size and then fed through
// the first-fit scan. Placing large items first is what earns the better bin
// counts over plain FirstFit on the same data.
//
// The sort is stable: equal-size items keep their input order, so the output
// is deterministic and reproducible. The input slice is not modified.
//
// Returns packit.ErrInvalidBinCapacity when binCapacity is not positive.
func FirstFitDecreasing[T packit.Sized](binCapacity int, items []T) ([]packit.Bin[T], error) {
	if binCapacity < 1 {
		return nil, packit.ErrInvalidBinCapacity
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(b.Size(), a.Size())
	})

	return firstFitInto(binCapacity, slices.Values(sorted), lowerBound(binCapacity, sorted)), nil
}

// FirstFitDecreasingFunc is FirstFitDecreasing for item types without a Size
// method: size supplies each item's size instead.
func FirstFitDecreasingFunc[T any](binCapacity int, items []T, size func(T) int) ([]packit.Bin[T], error) {
	if binCapacity < 1 {
		return nil, packit.ErrInvalidBinCapacity
	}

	wrapped := make([]packit.Wrapped[T], 0, len(items))
	for _, item := range items {
		wrapped = append(wrapped, packit.Wrap(item, size))
	}

	packed, err := FirstFitDecreasing(binCapacity, wrapped)
	if err != nil {
		return nil, err
	}

	bins := make([]packit.Bin[T], 0, len(packed))
	for _, bin := range packed {
		bins = append(bins, packit.Map(bin, packit.Wrapped[T].Unwrap))
	}
	return bins, nil
}

// lowerBound computes ceil(total_size / binCapacity), the minimum number of
// bins any packing could use. Used only to pre-size the bin list.
func lowerBound[T packit.Sized](binCapacity int, items []T) int {
	total := 0
	for _, item := range items {
		total += item.Size()
	}
	return (total + binCapacity - 1) / binCapacity
}

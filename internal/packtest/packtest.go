// Package packtest provides the shared fixtures used by the packing tests:
// a minimal sized item type, a well-known reference dataset, and go-cmp
// helpers for comparing bins structurally.
package packtest

import (
	"slices"

	"github.com/google/go-cmp/cmp"

	"github.com/eugenenazirov/packit"
)

// Item is a minimal item that reports its own size.
type Item struct {
	Width int
}

// Size implements packit.Sized.
func (i Item) Size() int { return i.Width }

// Plain is the same shape as Item but without a Size method, for exercising
// the size-function code paths.
type Plain struct {
	Width int
}

// SetA returns the reference dataset and its bin capacity:
//
//	sizes    1,1,1,1,3,4,10,10,10,19,19
//	capacity 20
//
// First-Fit packs it into 5 bins ([1 1 1 1 3 4] [10 10] [10] [19] [19]);
// First-Fit-Decreasing reaches the optimal 4 ([19 1] [19 1] [10 10]
// [10 4 3 1 1]).
func SetA() ([]Item, int) {
	sizes := []int{1, 1, 1, 1, 3, 4, 10, 10, 10, 19, 19}
	items := make([]Item, 0, len(sizes))
	for _, size := range sizes {
		items = append(items, Item{Width: size})
	}
	return items, 20
}

// Bin builds a bin of the given capacity holding one Item per size, in order.
func Bin(capacity int, sizes []int) packit.Bin[Item] {
	bin := packit.NewBin[Item](capacity)
	for _, size := range sizes {
		packit.Add(&bin, Item{Width: size})
	}
	return bin
}

// Bins builds one bin per size group, all with the same capacity.
func Bins(capacity int, groups [][]int) []packit.Bin[Item] {
	bins := make([]packit.Bin[Item], 0, len(groups))
	for _, sizes := range groups {
		bins = append(bins, Bin(capacity, sizes))
	}
	return bins
}

// Comparer returns a go-cmp option that compares bins of T by their contents
// and remaining capacity.
func Comparer[T comparable]() cmp.Option {
	return cmp.Comparer(func(a, b packit.Bin[T]) bool {
		return a.RemainingCapacity() == b.RemainingCapacity() &&
			slices.Equal(a.Contents(), b.Contents())
	})
}

// TotalItems sums the item counts across bins.
func TotalItems[T any](bins []packit.Bin[T]) int {
	total := 0
	for _, bin := range bins {
		total += bin.Len()
	}
	return total
}

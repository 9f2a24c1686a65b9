// Package offline implements bin-packing algorithms that see the whole item
// collection upfront: First-Fit and First-Fit-Decreasing. Knowing all items
// allows preprocessing (sorting by descending size) before placement, which
// First-Fit-Decreasing uses to reach materially better bin counts than a
// plain single pass.
package offline

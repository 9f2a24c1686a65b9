// Package packit implements approximate solutions to the bin-packing problem:
// assigning items with a non-negative size to a small number of fixed-capacity
// bins. Bin packing is NP-hard; every algorithm here is a fast deterministic
// heuristic, not an optimizer.
//
// The root package holds the shared abstractions: the Sized capability that
// lets arbitrary item types report their size (or the Wrapped adapter for
// types that don't), and the generic Bin container with its running
// remaining-capacity counter.
//
// Two algorithm families build on them:
//
//   - offline: the full item collection is known upfront. FirstFit places each
//     item in the first open bin it fits; FirstFitDecreasing sorts by
//     descending size first, which usually needs noticeably fewer bins.
//   - online: items arrive one at a time. NextKFit keeps exactly K bins open,
//     closing the most-filled one whenever a new item fits nowhere.
//
// A minimal offline run:
//
//	type file struct {
//		name  string
//		bytes int
//	}
//
//	func (f file) Size() int { return f.bytes }
//
//	bins, err := offline.FirstFitDecreasing(1_000, files)
//	if err != nil {
//		// non-positive bin capacity
//	}
//	for _, bin := range bins {
//		upload(bin.Contents())
//	}
//
// All types are plain values with no shared state: each Bin and each packer is
// exclusively owned by one caller, so no locking is ever needed. Callers that
// want to pack several streams in parallel create one packer per stream.
package packit

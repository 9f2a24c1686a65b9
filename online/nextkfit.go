package online

import (
	"math"

	"go.uber.org/zap"

	"github.com/eugenenazirov/packit"
	"github.com/eugenenazirov/packit/config"
)

// NextKFit implements the next-k-fit online bin packing algorithm.
//
// Exactly K bins are kept open at all times. Each arriving item is placed in
// the first open bin with room for it; when none has room, the most-filled
// bin is closed, handed to the caller, and replaced by a fresh bin seeded
// with the item. Bounded lookahead trades optimality for O(K) work and O(K)
// memory per item, so the packer can process unbounded streams.
type NextKFit[T any] struct {
	bins        []packit.Bin[T]
	binCapacity int
	size        func(T) int
	logger      *zap.Logger
	finalized   bool
}

// New creates a NextKFit keeping k bins open, each of capacity binCapacity.
// All k bins start empty; both parameters are fixed for the packer's
// lifetime.
//
// Returns packit.ErrInvalidOpenBins when k is not positive and
// packit.ErrInvalidBinCapacity when binCapacity is not positive.
func New[T packit.Sized](k, binCapacity int, opts ...Option) (*NextKFit[T], error) {
	return NewFunc(k, binCapacity, func(item T) int { return item.Size() }, opts...)
}

// NewFunc is New for item types without a Size method: size supplies each
// item's size instead.
func NewFunc[T any](k, binCapacity int, size func(T) int, opts ...Option) (*NextKFit[T], error) {
	if k < 1 {
		return nil, packit.ErrInvalidOpenBins
	}
	if binCapacity < 1 {
		return nil, packit.ErrInvalidBinCapacity
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	bins := make([]packit.Bin[T], k)
	for i := range bins {
		bins[i] = packit.NewBin[T](binCapacity)
	}

	return &NextKFit[T]{
		bins:        bins,
		binCapacity: binCapacity,
		size:        size,
		logger:      o.logger,
	}, nil
}

// FromConfig creates a NextKFit from a Config, validating it first.
func FromConfig[T packit.Sized](cfg config.Config, opts ...Option) (*NextKFit[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New[T](cfg.OpenBins, cfg.BinCapacity, opts...)
}

// Add implements Packer. A single scan over the K open bins both places the
// item first-fit and tracks the most-filled bin (ties broken by slot order);
// only a miss across all K slots forces a close, so each call closes at most
// one bin.
func (p *NextKFit[T]) Add(item T) ([]packit.Bin[T], error) {
	if p.finalized {
		panic("packit: Add on a finalized packer")
	}

	size := p.size(item)
	if size > p.binCapacity {
		return nil, &ItemTooLargeError[T]{Item: item, Size: size, BinCapacity: p.binCapacity}
	}

	mostFilled := 0
	mostFilledRemaining := math.MaxInt
	for i := range p.bins {
		if p.bins[i].RemainingCapacity() < mostFilledRemaining {
			mostFilled = i
			mostFilledRemaining = p.bins[i].RemainingCapacity()
		}

		if size <= p.bins[i].RemainingCapacity() {
			p.bins[i].AddSized(item, size)
			return nil, nil
		}
	}

	closed := p.bins[mostFilled]
	p.bins[mostFilled] = packit.NewBinWithItemSize(p.binCapacity, item, size)

	p.logger.Debug("closed most-filled bin",
		zap.Int("slot", mostFilled),
		zap.Int("items", closed.Len()),
		zap.Int("remaining_capacity", closed.RemainingCapacity()),
		zap.Int("item_size", size),
	)

	return []packit.Bin[T]{closed}, nil
}

// Finalize implements Packer: it closes and returns, in slot order, the open
// bins that received at least one item, dropping the rest. The packer cannot
// be used afterwards.
func (p *NextKFit[T]) Finalize() []packit.Bin[T] {
	if p.finalized {
		panic("packit: Finalize on a finalized packer")
	}
	p.finalized = true

	closed := make([]packit.Bin[T], 0, len(p.bins))
	for _, bin := range p.bins {
		if bin.Len() > 0 {
			closed = append(closed, bin)
		}
	}
	p.bins = nil

	p.logger.Debug("finalized packer", zap.Int("closed_bins", len(closed)))

	return closed
}

package packit

import "errors"

var (
	// ErrInvalidBinCapacity is returned when a packing entry point is given a
	// bin capacity smaller than one. Proceeding would produce meaningless
	// bins, so the value is never clamped or defaulted.
	ErrInvalidBinCapacity = errors.New("bin capacity must be a positive integer")

	// ErrInvalidOpenBins is returned when an online packer is asked to keep
	// fewer than one bin open.
	ErrInvalidOpenBins = errors.New("open bin count must be a positive integer")
)

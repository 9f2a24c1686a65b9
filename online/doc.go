// Package online implements bin packing over item streams: items are offered
// one at a time and the packer must decide placement without seeing future
// items, closing bins along the way. The Packer interface is the protocol;
// NextKFit, which keeps exactly K bins open, is the concrete algorithm.
package online

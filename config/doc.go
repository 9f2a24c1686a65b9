// Package config provides typed packing parameters loadable from YAML, with
// validation that reports every violation at once. It exists for callers that
// keep bin capacity and open-bin counts in configuration files rather than
// hard-coding them at the call site; nothing in the packing algorithms
// requires it.
package config

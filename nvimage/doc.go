// Package nvimage computes the on-device memory layout of NVIDIA GPU images:
// block-linear tiling selection, per-mip-level byte offsets and strides,
// overall size and alignment, the sparse-residency mip-tail boundary, and the
// page-table-entry kind the memory controller uses to interpret each page.
//
// Everything in this package is synchronous, allocation-free arithmetic over
// small value types. A computed Image is an immutable fact: deriving a
// sub-image (single level, uncompressed alias, 3-D-as-array alias,
// supersample alias) copies and adjusts, it never mutates a shared instance,
// so Image values may be read from any number of goroutines without
// synchronization.
//
// The package trusts its caller to be an API-layer validator that has already
// rejected malformed requests. Detectable misuse - a bad dimensionality
// combination, an out-of-range level or layer index, an unsupported engine
// class - is a contract violation and panics rather than returning an error.
package nvimage

// Package combined provides cross-container benchmarks and equivalence
// tests that exercise multiple shims together.
//
// The per-package benchmarks measure each container in isolation; the
// ones here pit containers against each other over identical inputs
// (vector vs deque, builtin map vs pluggable-hash table vs btree,
// container/heap vs comparator heap), which is the comparison the whole
// harness exists to make.
package combined

// Package hashing provides the pluggable integer hash used by the
// hash-container benchmarks.
//
// A single package-level slot holds a caller-installed hash function.
// The hash-table benchmarks that want to measure a non-default hash read
// the slot indirectly through Hash1, one adapter call per probe. The slot is installed once before
// benchmarks run and overwritten, never cleared.
//
// The harness is single-threaded; the slot is deliberately unsynchronized.
package hashing

import "github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"

// Fn hashes an integer key to a bucket-selection digest.
type Fn func(v int) uint64

// fn is the global custom hash slot. Defaults to Default so the
// hash-table shims work before SetFunc is ever called.
var fn Fn = Default

// SetFunc installs the custom hash function.
func SetFunc(f Fn) {
	fn = f
}

// Hash1 hashes a single value through the installed slot. The thin
// adapter the hash-table shims call on every probe; the slot read is
// repeated per call so the indirection cost is part of what gets
// measured.
func Hash1(v int) uint64 {
	return fn(v)
}

// Default is the built-in integer hash: a splitmix64-style finalizer.
// Full avalanche, no allocation.
func Default(v int) uint64 {
	z := uint64(v)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Hash hashes every value with the default hash, sinking each digest.
// Measures default hashing cost in isolation.
func Hash(values []int) {
	for _, v := range values {
		blackhole.ConsumeUint(Default(v))
	}
}

// CustomHash hashes every value through the installed slot, sinking each
// digest. Measures pluggable hashing cost, indirection included.
func CustomHash(values []int) {
	for _, v := range values {
		blackhole.ConsumeUint(Hash1(v))
	}
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package bitsets defines the contract shared by every bitset representation
// in this module: the roaring engine in package roaring and the uncompressed
// variant in package uncompressed.
package bitsets

import "io"

// MaxRange is the exclusive upper bound of any range, one past the largest
// uint32 element.
const MaxRange = uint64(1) << 32

// Bitset is a set of uint32 elements. T is the concrete implementation, so that
// set algebra returns and accepts values of the same representation.
type Bitset[T any] interface {
	// Get reports whether x is a member of the set.
	Get(x uint32) bool

	// Set adds x to the set when value is true and removes it otherwise.
	Set(x uint32, value bool)

	// SetRange sets or clears every element in the half-open range [lo, hi).
	SetRange(lo, hi uint64, value bool) error

	// Flip toggles the membership of x.
	Flip(x uint32)

	// FlipRange toggles every element in the half-open range [lo, hi).
	FlipRange(lo, hi uint64) error

	// And, Or, Xor and Difference return a new set and never mutate either
	// operand.
	And(other T) T
	Or(other T) T
	Xor(other T) T
	Difference(other T) T

	// AndWith, OrWith, XorWith and DifferenceWith mutate the receiver and leave
	// the other operand untouched.
	AndWith(other T)
	OrWith(other T)
	XorWith(other T)
	DifferenceWith(other T)

	// Cardinality returns the number of elements in the set.
	Cardinality() int

	// Clone returns a deep copy of the set.
	Clone() T

	// Range calls fn for each element in ascending order until fn returns false.
	Range(fn func(x uint32) bool)

	// Equals reports whether both sets hold the same elements.
	Equals(other T) bool

	// Hash returns a hash of the elements, equal for equal sets.
	Hash() uint64

	io.WriterTo
	io.ReaderFrom
}

// CheckRange validates a half-open range [lo, hi) over the uint32 universe.
func CheckRange(lo, hi uint64) error {
	switch {
	case lo > hi:
		return errorf(ErrInvalidRange, "lower bound %d exceeds upper bound %d", lo, hi)
	case hi > MaxRange:
		return errorf(ErrInvalidRange, "upper bound %d exceeds %d", hi, MaxRange)
	default:
		return nil
	}
}

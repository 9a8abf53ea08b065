// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package roaring implements a compressed bitmap of uint32 values. Elements are
// grouped in chunks of 65536 values sharing the same high 16 bits, and every
// chunk is stored in a container which is either a sorted array of offsets or a
// dense bitmap, depending on how many values it holds.
//
// A Bitmap is not safe for concurrent mutation, concurrent reads of a bitmap
// that is not being mutated are safe.
package roaring

import (
	"slices"

	"github.com/kelindar/bitsets"
)

var _ bitsets.Bitset[*Bitmap] = (*Bitmap)(nil)

// Bitmap represents a roaring bitmap for uint32 values
type Bitmap struct {
	dir directory
}

// New creates a new empty roaring bitmap
func New() *Bitmap {
	return &Bitmap{}
}

// FromIndices creates a roaring bitmap containing the given values, which may be
// unsorted and may contain duplicates
func FromIndices(values ...uint32) *Bitmap {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	rb := New()
	for i := 0; i < len(sorted); {
		hi, j := uint16(sorted[i]>>16), i
		for j < len(sorted) && uint16(sorted[j]>>16) == hi {
			j++
		}

		offsets := make([]uint16, 0, j-i)
		for _, v := range sorted[i:j] {
			offsets = append(offsets, uint16(v&0xFFFF))
		}

		rb.dir.append(hi, fromOffsets(offsets))
		i = j
	}
	return rb
}

// Get checks whether a value is contained in the bitmap or not
func (rb *Bitmap) Get(x uint32) bool {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	i, exists := rb.dir.getIndex(hi)
	return exists && rb.dir.containers[i].contains(lo)
}

// Set adds the value x to the bitmap when value is true, or removes it otherwise
func (rb *Bitmap) Set(x uint32, value bool) {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	i, exists := rb.dir.getIndex(hi)
	switch {
	case exists && value:
		rb.dir.containers[i].set(lo)
	case exists:
		if c := rb.dir.containers[i]; c.remove(lo) && c.isEmpty() {
			rb.dir.removeAt(i)
		}
	case value:
		c := newArray(8)
		c.set(lo)
		rb.dir.insertAt(i, hi, c)
	}
}

// Flip toggles the value x in the bitmap
func (rb *Bitmap) Flip(x uint32) {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	i, exists := rb.dir.getIndex(hi)
	if !exists {
		c := newArray(8)
		c.set(lo)
		rb.dir.insertAt(i, hi, c)
		return
	}

	c := rb.dir.containers[i]
	if c.flip(lo); c.isEmpty() {
		rb.dir.removeAt(i)
	}
}

// Cardinality returns the total number of values in the bitmap
func (rb *Bitmap) Cardinality() int {
	return rb.dir.cardinality()
}

// IsEmpty returns true if the bitmap holds no values
func (rb *Bitmap) IsEmpty() bool {
	return rb.dir.len() == 0
}

// Clear removes every value from the bitmap
func (rb *Bitmap) Clear() {
	rb.dir.resize(0)
}

// Clone returns a deep copy of the bitmap
func (rb *Bitmap) Clone() *Bitmap {
	return &Bitmap{dir: rb.dir.clone()}
}

// Equals checks whether both bitmaps contain the same values. A nil bitmap is
// considered equal to an empty one.
func (rb *Bitmap) Equals(other *Bitmap) bool {
	switch {
	case rb == other:
		return true
	case other == nil:
		return rb.IsEmpty()
	case rb == nil:
		return other.IsEmpty()
	default:
		return rb.dir.equals(&other.dir)
	}
}

// Hash returns a hash of the values in the bitmap. Equal bitmaps have equal
// hashes, regardless of how their containers are represented.
func (rb *Bitmap) Hash() uint64 {
	return rb.dir.hash()
}

// Stats describes the containers of a bitmap
type Stats struct {
	Cardinality      int // Number of values
	Containers       int // Number of containers
	ArrayContainers  int // Number of array containers
	BitmapContainers int // Number of bitmap containers
}

// Stats returns statistics about the containers of the bitmap
func (rb *Bitmap) Stats() (stats Stats) {
	stats.Containers = rb.dir.len()
	for _, c := range rb.dir.containers {
		stats.Cardinality += c.cardinality()
		switch c.Type {
		case typeArray:
			stats.ArrayContainers++
		case typeBitmap:
			stats.BitmapContainers++
		}
	}
	return
}

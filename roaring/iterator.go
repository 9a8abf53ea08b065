// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "iter"

// Range calls the given function for each value in the bitmap, in ascending
// order, until the function returns false
func (rb *Bitmap) Range(fn func(x uint32) bool) {
	rb.dir.rangeValues(fn)
}

// All returns an iterator over the values of the bitmap, in ascending order
func (rb *Bitmap) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		rb.dir.rangeValues(yield)
	}
}

// ToArray returns the values of the bitmap, in ascending order
func (rb *Bitmap) ToArray() []uint32 {
	out := make([]uint32, 0, rb.Cardinality())
	rb.dir.rangeValues(func(x uint32) bool {
		out = append(out, x)
		return true
	})
	return out
}

// Min returns the smallest value of the bitmap, if any
func (rb *Bitmap) Min() (uint32, bool) {
	if rb.dir.len() == 0 {
		return 0, false
	}

	return uint32(rb.dir.keys[0])<<16 | uint32(rb.dir.containers[0].min()), true
}

// Max returns the largest value of the bitmap, if any
func (rb *Bitmap) Max() (uint32, bool) {
	n := rb.dir.len()
	if n == 0 {
		return 0, false
	}

	return uint32(rb.dir.keys[n-1])<<16 | uint32(rb.dir.containers[n-1].max()), true
}

// Filter iterates over the bitmap elements and calls a predicate provided for each
// containing element. If the predicate returns false, the element is removed.
func (rb *Bitmap) Filter(f func(x uint32) bool) {
	d, n := &rb.dir, 0
	for i, c := range d.containers {
		key := d.keys[i]
		base := uint32(key) << 16
		if c.filter(func(v uint16) bool { return f(base | uint32(v)) }); !c.isEmpty() {
			d.replaceAt(n, key, c)
			n++
		}
	}

	d.resize(n)
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"math/bits"

	"github.com/kelindar/bitmap"
)

// bmp views the container data as a bitmap
func (c *container) bmp() bitmap.Bitmap {
	return asBitmap(c.Data)
}

// bmpSet sets a value in a bitmap container
func (c *container) bmpSet(value uint16) bool {
	bm := c.bmp()
	if bm.Contains(uint32(value)) {
		return false // Already exists
	}

	bm.Set(uint32(value))
	c.Size++
	return true
}

// bmpDel removes a value from a bitmap container
func (c *container) bmpDel(value uint16) bool {
	bm := c.bmp()
	if !bm.Contains(uint32(value)) {
		return false
	}

	bm.Remove(uint32(value))
	c.Size--
	return true
}

// bmpHas checks if a value exists in a bitmap container
func (c *container) bmpHas(value uint16) bool {
	return c.bmp().Contains(uint32(value))
}

// bmpToArr converts this container from bitmap to array
func (c *container) bmpToArr() {
	out := make([]uint16, 0, c.Size)
	c.bmpRange(func(v uint16) bool {
		out = append(out, v)
		return true
	})

	c.Type = typeArray
	c.Data = out
}

// bmpRange iterates over the set bits in ascending order
func (c *container) bmpRange(fn func(v uint16) bool) bool {
	for i, word := range c.bmp() {
		base := i << 6
		for word != 0 {
			if !fn(uint16(base + bits.TrailingZeros64(word))) {
				return false
			}
			word &= word - 1
		}
	}
	return true
}

// bmpSetRange sets or clears [lo, hi) in a bitmap container
func (c *container) bmpSetRange(lo, hi int, value bool) {
	bm := c.bmp()
	switch value {
	case true:
		applyRange(bm, lo, hi, func(w, mask uint64) uint64 { return w | mask })
	default:
		applyRange(bm, lo, hi, func(w, mask uint64) uint64 { return w &^ mask })
	}

	c.bmpRecount()
}

// bmpFlipRange toggles [lo, hi) in a bitmap container
func (c *container) bmpFlipRange(lo, hi int) {
	applyRange(c.bmp(), lo, hi, func(w, mask uint64) uint64 { return w ^ mask })
	c.bmpRecount()
}

// bmpRecount refreshes the cardinality and converts to an array if small enough
func (c *container) bmpRecount() {
	c.Size = uint32(c.bmp().Count())
	if c.Size <= arrMinSize {
		c.bmpToArr()
	}
}

// applyRange applies fn to every word overlapping [lo, hi), with the mask
// selecting the bits of the word that fall within the range
func applyRange(words []uint64, lo, hi int, fn func(w, mask uint64) uint64) {
	if lo >= hi {
		return
	}

	first, last := lo>>6, (hi-1)>>6
	for i := first; i <= last; i++ {
		mask := ^uint64(0)
		if i == first {
			mask &= ^uint64(0) << (lo & 63)
		}
		if i == last {
			mask &= ^uint64(0) >> (63 - ((hi - 1) & 63))
		}
		words[i] = fn(words[i], mask)
	}
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "slices"

// arrSet sets a value in an array container
func (c *container) arrSet(value uint16) bool {
	i, found := find16(c.Data, value)
	if found {
		return false // Already exists
	}

	c.Data = slices.Insert(c.Data, i, value)
	c.Size++
	return true
}

// arrDel removes a value from an array container
func (c *container) arrDel(value uint16) bool {
	i, found := find16(c.Data, value)
	if !found {
		return false
	}

	c.Data = slices.Delete(c.Data, i, i+1)
	c.Size--
	return true
}

// arrHas checks if a value exists in an array container
func (c *container) arrHas(value uint16) bool {
	_, found := find16(c.Data, value)
	return found
}

// arrToBmp converts this container from array to bitmap
func (c *container) arrToBmp() {
	data := newBitmapData()
	bm := asBitmap(data)
	for _, v := range c.Data {
		bm.Set(uint32(v))
	}

	c.Type = typeBitmap
	c.Data = data
}

// arrSetRange sets or clears [lo, hi) in an array container
func (c *container) arrSetRange(lo, hi int, value bool) {
	i, j := lowerBound(c.Data, lo), lowerBound(c.Data, hi)
	if !value {
		c.Data = slices.Delete(c.Data, i, j)
		c.Size = uint32(len(c.Data))
		return
	}

	size := len(c.Data) - (j - i) + (hi - lo)
	if size > arrMinSize {
		c.arrToBmp()
		c.bmpSetRange(lo, hi, true)
		return
	}

	out := make([]uint16, 0, size)
	out = append(out, c.Data[:i]...)
	for v := lo; v < hi; v++ {
		out = append(out, uint16(v))
	}

	c.Data = append(out, c.Data[j:]...)
	c.Size = uint32(len(c.Data))
}

// arrFlipRange toggles [lo, hi) in an array container
func (c *container) arrFlipRange(lo, hi int) {
	i, j := lowerBound(c.Data, lo), lowerBound(c.Data, hi)
	inside := j - i
	size := len(c.Data) - inside + (hi - lo - inside)
	if size > arrMinSize {
		c.arrToBmp()
		c.bmpFlipRange(lo, hi)
		return
	}

	out := make([]uint16, 0, size)
	out = append(out, c.Data[:i]...)

	// Emit the gaps between existing values within the range
	next := lo
	for _, v := range c.Data[i:j] {
		for ; next < int(v); next++ {
			out = append(out, uint16(next))
		}
		next = int(v) + 1
	}
	for ; next < hi; next++ {
		out = append(out, uint16(next))
	}

	c.Data = append(out, c.Data[j:]...)
	c.Size = uint32(len(c.Data))
}

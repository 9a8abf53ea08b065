// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "slices"

const arrMinSize = 4096

type ctype byte

const (
	typeArray ctype = iota
	typeBitmap
)

// String returns the name of the container type
func (t ctype) String() string {
	switch t {
	case typeArray:
		return "array"
	case typeBitmap:
		return "bitmap"
	default:
		return "unknown"
	}
}

// container holds the low 16 bits of every element sharing one chunk key. Array
// containers keep sorted offsets in Data, bitmap containers keep 65536 bits.
type container struct {
	Type ctype    // Type of the container
	Size uint32   // Cardinality
	Data []uint16 // Data of the container
}

// newArray creates an empty array container
func newArray(capacity int) *container {
	return &container{
		Type: typeArray,
		Data: make([]uint16, 0, capacity),
	}
}

// newRange creates a container holding every offset in [lo, hi)
func newRange(lo, hi int) *container {
	if hi-lo > arrMinSize {
		c := &container{Type: typeBitmap, Data: newBitmapData()}
		c.bmpSetRange(lo, hi, true)
		return c
	}

	c := newArray(hi - lo)
	for v := lo; v < hi; v++ {
		c.Data = append(c.Data, uint16(v))
	}
	c.Size = uint32(len(c.Data))
	return c
}

// fromOffsets creates a container owning the sorted, distinct offsets and picks
// the representation from their count
func fromOffsets(offsets []uint16) *container {
	c := &container{
		Type: typeArray,
		Size: uint32(len(offsets)),
		Data: offsets,
	}

	if c.Size > arrMinSize {
		c.arrToBmp()
	}
	return c
}

// fromWords creates a container owning the bitmap data, counting its bits and
// picking the representation from the count
func fromWords(data []uint16) *container {
	c := &container{
		Type: typeBitmap,
		Data: data,
	}

	c.Size = uint32(c.bmp().Count())
	if c.Size <= arrMinSize {
		c.bmpToArr()
	}
	return c
}

// set sets a value in the container and returns true if the value was added (didn't exist before)
func (c *container) set(value uint16) (ok bool) {
	switch c.Type {
	case typeArray:
		if ok = c.arrSet(value); ok && c.Size > arrMinSize {
			c.arrToBmp()
		}
	case typeBitmap:
		ok = c.bmpSet(value)
	}
	return
}

// remove removes a value from the container and returns true if the value was removed (existed before)
func (c *container) remove(value uint16) (ok bool) {
	switch c.Type {
	case typeArray:
		ok = c.arrDel(value)
	case typeBitmap:
		if ok = c.bmpDel(value); ok && c.Size <= arrMinSize {
			c.bmpToArr()
		}
	}
	return
}

// flip toggles a value in the container
func (c *container) flip(value uint16) {
	if !c.remove(value) {
		c.set(value)
	}
}

// contains checks if a value exists in the container
func (c *container) contains(value uint16) bool {
	switch c.Type {
	case typeArray:
		return c.arrHas(value)
	case typeBitmap:
		return c.bmpHas(value)
	}
	return false
}

// setRange sets or clears every offset in [lo, hi), with hi <= 65536
func (c *container) setRange(lo, hi int, value bool) {
	if lo >= hi {
		return
	}

	switch c.Type {
	case typeArray:
		c.arrSetRange(lo, hi, value)
	case typeBitmap:
		c.bmpSetRange(lo, hi, value)
	}
}

// flipRange toggles every offset in [lo, hi), with hi <= 65536
func (c *container) flipRange(lo, hi int) {
	if lo >= hi {
		return
	}

	switch c.Type {
	case typeArray:
		c.arrFlipRange(lo, hi)
	case typeBitmap:
		c.bmpFlipRange(lo, hi)
	}
}

// cardinality returns the number of elements in the container
func (c *container) cardinality() int {
	return int(c.Size)
}

// isEmpty returns true if the container has no elements
func (c *container) isEmpty() bool {
	return c.Size == 0
}

// clone returns a deep copy of the container
func (c *container) clone() *container {
	data := make([]uint16, len(c.Data))
	copy(data, c.Data)
	return &container{
		Type: c.Type,
		Size: c.Size,
		Data: data,
	}
}

// optimize converts the container to the representation matching its cardinality
func (c *container) optimize() {
	switch {
	case c.Type == typeArray && c.Size > arrMinSize:
		c.arrToBmp()
	case c.Type == typeBitmap && c.Size <= arrMinSize:
		c.bmpToArr()
	}
}

// rangeOffsets calls fn for every offset in ascending order, stopping early and
// returning false once fn returns false
func (c *container) rangeOffsets(fn func(v uint16) bool) bool {
	switch c.Type {
	case typeArray:
		for _, v := range c.Data {
			if !fn(v) {
				return false
			}
		}
	case typeBitmap:
		return c.bmpRange(fn)
	}
	return true
}

// min returns the smallest offset of a non-empty container
func (c *container) min() uint16 {
	if c.Type == typeArray {
		return c.Data[0]
	}

	v, _ := c.bmp().Min()
	return uint16(v)
}

// max returns the largest offset of a non-empty container
func (c *container) max() uint16 {
	if c.Type == typeArray {
		return c.Data[len(c.Data)-1]
	}

	v, _ := c.bmp().Max()
	return uint16(v)
}

// equals compares the members of both containers, regardless of their type
func (c *container) equals(other *container) bool {
	if c.Size != other.Size {
		return false
	}

	switch {
	case c.Type == other.Type:
		return slices.Equal(c.Data, other.Data)
	case c.Type == typeArray:
		return other.containsAll(c.Data)
	default:
		return c.containsAll(other.Data)
	}
}

// containsAll checks whether every value exists in the container
func (c *container) containsAll(values []uint16) bool {
	for _, v := range values {
		if !c.contains(v) {
			return false
		}
	}
	return true
}

// filter keeps only the offsets for which fn returns true
func (c *container) filter(fn func(v uint16) bool) {
	switch c.Type {
	case typeArray:
		out := c.Data[:0]
		for _, v := range c.Data {
			if fn(v) {
				out = append(out, v)
			}
		}
		c.Data = out
		c.Size = uint32(len(out))
	case typeBitmap:
		bm := c.bmp()
		c.bmpRange(func(v uint16) bool {
			if !fn(v) {
				bm.Remove(uint32(v))
				c.Size--
			}
			return true
		})
	}

	c.optimize()
}

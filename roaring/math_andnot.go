// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Difference returns a new bitmap with the elements of this bitmap which are
// not present in the other one
func (rb *Bitmap) Difference(other *Bitmap) *Bitmap {
	if other == nil {
		return rb.Clone()
	}

	out := New()
	a, b := &rb.dir, &other.dir
	i, j := 0, 0
	for i < a.len() && j < b.len() {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			if c := a.containers[i].andNot(b.containers[j]); !c.isEmpty() {
				out.dir.append(k1, c)
			}
			i++
			j++
		case k1 < k2:
			next := a.advanceUntil(k2, i)
			out.dir.appendCopyRange(a, i, next)
			i = next
		default:
			j = b.advanceUntil(k1, j)
		}
	}

	out.dir.appendCopyRange(a, i, a.len())
	return out
}

// DifferenceWith removes every element of the other bitmap from this one
func (rb *Bitmap) DifferenceWith(other *Bitmap) {
	switch {
	case other == nil:
		return
	case other == rb:
		rb.Clear()
		return
	}

	// Surviving containers are compacted towards the front of the directory
	a, b, n := &rb.dir, &other.dir, 0
	i, j := 0, 0
	for i < a.len() && j < b.len() {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			if c := a.containers[i].andNot(b.containers[j]); !c.isEmpty() {
				a.replaceAt(n, k1, c)
				n++
			}
			i++
			j++
		case k1 < k2:
			next := a.advanceUntil(k2, i)
			if i != n {
				a.copyRange(i, next, n)
			}
			n += next - i
			i = next
		default:
			j = b.advanceUntil(k1, j)
		}
	}

	if i < a.len() {
		a.copyRange(i, a.len(), n)
		n += a.len() - i
	}
	a.resize(n)
}

// arrAndNotArr performs AND NOT between two array containers
func arrAndNotArr(c1, c2 *container) *container {
	a, b := c1.Data, c2.Data
	out := make([]uint16, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch av, bv := a[i], b[j]; {
		case av == bv:
			i++
			j++
		case av < bv:
			out = append(out, av)
			i++
		default: // av > bv
			j++
		}
	}

	out = append(out, a[i:]...)
	return fromOffsets(out)
}

// arrAndNotBmp performs AND NOT between array and bitmap containers
func arrAndNotBmp(c1, c2 *container) *container {
	b := c2.bmp()
	out := make([]uint16, 0, len(c1.Data))
	for _, v := range c1.Data {
		if !b.Contains(uint32(v)) {
			out = append(out, v)
		}
	}

	return fromOffsets(out)
}

// bmpAndNotArr performs AND NOT between bitmap and array containers
func bmpAndNotArr(c1, c2 *container) *container {
	data := cloneWords(c1)
	a := asBitmap(data)
	for _, v := range c2.Data {
		a[v>>6] &^= 1 << (v & 63)
	}

	return fromWords(data)
}

// bmpAndNotBmp performs AND NOT between two bitmap containers
func bmpAndNotBmp(c1, c2 *container) *container {
	data := cloneWords(c1)
	a := asBitmap(data)
	a.AndNot(c2.bmp())
	return fromWords(data)
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Xor returns a new bitmap with the elements present in exactly one bitmap
func (rb *Bitmap) Xor(other *Bitmap) *Bitmap {
	if other == nil {
		return rb.Clone()
	}

	out := New()
	a, b := &rb.dir, &other.dir
	i, j := 0, 0
	for i < a.len() && j < b.len() {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			if c := a.containers[i].xor(b.containers[j]); !c.isEmpty() {
				out.dir.append(k1, c)
			}
			i++
			j++
		case k1 < k2:
			next := a.advanceUntil(k2, i)
			out.dir.appendCopyRange(a, i, next)
			i = next
		default:
			next := b.advanceUntil(k1, j)
			out.dir.appendCopyRange(b, j, next)
			j = next
		}
	}

	out.dir.appendCopyRange(a, i, a.len())
	out.dir.appendCopyRange(b, j, b.len())
	return out
}

// XorWith toggles every element of the other bitmap in this one
func (rb *Bitmap) XorWith(other *Bitmap) {
	switch {
	case other == nil:
		return
	case other == rb:
		rb.Clear()
		return
	}

	a, b := &rb.dir, &other.dir
	i, j := 0, 0
	for i < a.len() && j < b.len() {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			if c := a.containers[i].xor(b.containers[j]); c.isEmpty() {
				a.removeAt(i)
			} else {
				a.containers[i] = c
				i++
			}
			j++
		case k1 < k2:
			i = a.advanceUntil(k2, i)
		default:
			a.insertAt(i, k2, b.containers[j].clone())
			i++
			j++
		}
	}

	a.appendCopyRange(b, j, b.len())
}

// arrXorArr performs XOR between two array containers
func arrXorArr(c1, c2 *container) *container {
	a, b := c1.Data, c2.Data
	out := make([]uint16, 0, len(a)+len(b))
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
			out = append(out, bv)
			j++
		}
	}

	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return fromOffsets(out)
}

// arrXorBmp performs XOR between array and bitmap containers
func arrXorBmp(c1, c2 *container) *container {
	return bmpXorArr(c2, c1)
}

// bmpXorArr performs XOR between bitmap and array containers
func bmpXorArr(c1, c2 *container) *container {
	data := cloneWords(c1)
	a := asBitmap(data)
	for _, v := range c2.Data {
		a[v>>6] ^= 1 << (v & 63)
	}

	return fromWords(data)
}

// bmpXorBmp performs XOR between two bitmap containers
func bmpXorBmp(c1, c2 *container) *container {
	data := cloneWords(c1)
	a := asBitmap(data)
	a.Xor(c2.bmp())
	return fromWords(data)
}

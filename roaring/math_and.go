// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// And returns a new bitmap with the elements present in both bitmaps
func (rb *Bitmap) And(other *Bitmap) *Bitmap {
	out := New()
	if other == nil {
		return out
	}

	a, b := &rb.dir, &other.dir
	for i, j := 0, 0; i < a.len() && j < b.len(); {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			if c := a.containers[i].and(b.containers[j]); !c.isEmpty() {
				out.dir.append(k1, c)
			}
			i++
			j++
		case k1 < k2:
			i = a.advanceUntil(k2, i)
		default:
			j = b.advanceUntil(k1, j)
		}
	}
	return out
}

// AndWith keeps only the elements which are also present in the other bitmap
func (rb *Bitmap) AndWith(other *Bitmap) {
	switch {
	case other == nil:
		rb.Clear()
		return
	case other == rb:
		return
	}

	// Surviving containers are compacted towards the front of the directory
	a, b, n := &rb.dir, &other.dir, 0
	for i, j := 0, 0; i < a.len() && j < b.len(); {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			if c := a.containers[i].and(b.containers[j]); !c.isEmpty() {
				a.replaceAt(n, k1, c)
				n++
			}
			i++
			j++
		case k1 < k2:
			i = a.advanceUntil(k2, i)
		default:
			j = b.advanceUntil(k1, j)
		}
	}

	a.resize(n)
}

// arrAndArr performs AND between two array containers
func arrAndArr(c1, c2 *container) *container {
	a, b := c1.Data, c2.Data
	out := make([]uint16, 0, min(len(a), len(b)))
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch av, bv := a[i], b[j]; {
		case av == bv:
			out = append(out, av)
			i++
			j++
		case av < bv:
			i++
		default: // av > bv
			j++
		}
	}

	return fromOffsets(out)
}

// arrAndBmp performs AND between array and bitmap containers
func arrAndBmp(c1, c2 *container) *container {
	b := c2.bmp()
	out := make([]uint16, 0, len(c1.Data))
	for _, v := range c1.Data {
		if b.Contains(uint32(v)) {
			out = append(out, v)
		}
	}

	return fromOffsets(out)
}

// bmpAndArr performs AND between bitmap and array containers
func bmpAndArr(c1, c2 *container) *container {
	return arrAndBmp(c2, c1)
}

// bmpAndBmp performs AND between two bitmap containers
func bmpAndBmp(c1, c2 *container) *container {
	data := cloneWords(c1)
	a := asBitmap(data)
	a.And(c2.bmp())
	return fromWords(data)
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Or returns a new bitmap with the elements present in either bitmap
func (rb *Bitmap) Or(other *Bitmap) *Bitmap {
	if other == nil {
		return rb.Clone()
	}

	out := New()
	a, b := &rb.dir, &other.dir
	i, j := 0, 0
	for i < a.len() && j < b.len() {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			out.dir.append(k1, a.containers[i].or(b.containers[j]))
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

// OrWith adds every element of the other bitmap to this one
func (rb *Bitmap) OrWith(other *Bitmap) {
	if other == nil || other == rb {
		return
	}

	a, b := &rb.dir, &other.dir
	i, j := 0, 0
	for i < a.len() && j < b.len() {
		switch k1, k2 := a.keys[i], b.keys[j]; {
		case k1 == k2:
			a.containers[i] = a.containers[i].or(b.containers[j])
			i++
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

// arrOrArr performs OR between two array containers
func arrOrArr(c1, c2 *container) *container {
	a, b := c1.Data, c2.Data
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch av, bv := a[i], b[j]; {
		case av == bv:
			out = append(out, av)
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

// arrOrBmp performs OR between array and bitmap containers
func arrOrBmp(c1, c2 *container) *container {
	return bmpOrArr(c2, c1)
}

// bmpOrArr performs OR between bitmap and array containers
func bmpOrArr(c1, c2 *container) *container {
	data := cloneWords(c1)
	a := asBitmap(data)
	for _, v := range c2.Data {
		a.Set(uint32(v))
	}

	return fromWords(data)
}

// bmpOrBmp performs OR between two bitmap containers
func bmpOrBmp(c1, c2 *container) *container {
	data := cloneWords(c1)
	a := asBitmap(data)
	a.Or(c2.bmp())
	return fromWords(data)
}

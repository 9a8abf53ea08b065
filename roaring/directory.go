// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// directory maps the high 16 bits of each element to the container holding its
// low 16 bits. Keys are strictly ascending and entry i owns containers[i]. The
// logical size is the length of both slices, slots past it are always zeroed.
type directory struct {
	keys       []uint16
	containers []*container
}

// len returns the logical size of the directory
func (d *directory) len() int {
	return len(d.keys)
}

// grow makes sure there is capacity for at least k more entries
func (d *directory) grow(k int) {
	size := len(d.keys) + k
	if size <= cap(d.keys) {
		return
	}

	capacity := 2 * size
	if cap(d.keys) >= 1024 {
		capacity = 5 * size / 4
	}

	keys := make([]uint16, len(d.keys), capacity)
	copy(keys, d.keys)
	containers := make([]*container, len(d.containers), capacity)
	copy(containers, d.containers)
	d.keys, d.containers = keys, containers
}

// append adds an entry past the end, the key must exceed every existing key
func (d *directory) append(key uint16, c *container) {
	d.grow(1)
	d.keys = append(d.keys, key)
	d.containers = append(d.containers, c)
}

// appendCopy appends a copy of the entry at index i of another directory
func (d *directory) appendCopy(src *directory, i int) {
	d.append(src.keys[i], src.containers[i].clone())
}

// appendCopyRange appends copies of the entries [start, end) of another directory
func (d *directory) appendCopyRange(src *directory, start, end int) {
	if start >= end {
		return
	}

	d.grow(end - start)
	for i := start; i < end; i++ {
		d.appendCopy(src, i)
	}
}

// advanceUntil returns the smallest index greater than pos whose key is at
// least x, or the logical size if there is no such key. The search gallops
// from pos so its cost depends on the distance advanced.
func (d *directory) advanceUntil(x uint16, pos int) int {
	lower, size := pos+1, len(d.keys)
	switch {
	case lower >= size:
		return size
	case d.keys[lower] >= x:
		return lower
	}

	// Bootstrap an upper limit by doubling the span while keys remain below x,
	// comparing against the remaining length so the span never overflows.
	span := 1
	for span < size-lower && d.keys[lower+span] < x {
		span <<= 1
	}

	upper := size - 1
	if span < size-lower {
		upper = lower + span
	}

	switch {
	case d.keys[upper] == x:
		return upper
	case d.keys[upper] < x:
		return size // No key reaches x
	}

	// The previous span was too small, so keys[lower] < x < keys[upper]
	lower += span >> 1
	for lower+1 != upper {
		mid := int(uint(lower+upper) >> 1)
		switch k := d.keys[mid]; {
		case k == x:
			return mid
		case k < x:
			lower = mid
		default:
			upper = mid
		}
	}
	return upper
}

// getIndex finds the entry with the given key. Returns (index, found) where
// index is the insertion point if not found
func (d *directory) getIndex(key uint16) (int, bool) {
	if n := len(d.keys); n > 0 && d.keys[n-1] == key {
		return n - 1, true
	}

	return search16(d.keys, 0, len(d.keys), key)
}

// insertAt inserts a new entry at index i, the key must not exist yet
func (d *directory) insertAt(i int, key uint16, c *container) {
	d.grow(1)
	n := len(d.keys)
	d.keys = d.keys[:n+1]
	d.containers = d.containers[:n+1]
	copy(d.keys[i+1:], d.keys[i:n])
	copy(d.containers[i+1:], d.containers[i:n])
	d.keys[i] = key
	d.containers[i] = c
}

// replaceAt overwrites the key and the container at index i
func (d *directory) replaceAt(i int, key uint16, c *container) {
	d.keys[i] = key
	d.containers[i] = c
}

// removeAt removes the entry at index i
func (d *directory) removeAt(i int) {
	d.removeRange(i, i+1)
}

// removeRange removes the entries [begin, end)
func (d *directory) removeRange(begin, end int) {
	if end <= begin {
		return
	}

	n := len(d.keys)
	copy(d.keys[begin:], d.keys[end:n])
	copy(d.containers[begin:], d.containers[end:n])
	d.resize(n - (end - begin))
}

// copyRange moves the entries [begin, end) so that they start at newBegin
func (d *directory) copyRange(begin, end, newBegin int) {
	copy(d.keys[newBegin:], d.keys[begin:end])
	copy(d.containers[newBegin:], d.containers[begin:end])
}

// resize truncates or extends the directory to the given size, clearing every
// slot past the new end
func (d *directory) resize(size int) {
	n := len(d.keys)
	switch {
	case size < n:
		fill(d.keys, size, n, 0)
		fill(d.containers, size, n, nil)
	case size > n:
		d.grow(size - n)
	}

	d.keys = d.keys[:size]
	d.containers = d.containers[:size]
}

// clone returns a deep copy of the live entries
func (d *directory) clone() directory {
	out := directory{
		keys:       make([]uint16, len(d.keys)),
		containers: make([]*container, len(d.containers)),
	}

	copy(out.keys, d.keys)
	for i, c := range d.containers {
		out.containers[i] = c.clone()
	}
	return out
}

// cardinality returns the total number of elements across containers
func (d *directory) cardinality() (count int) {
	for _, c := range d.containers {
		count += c.cardinality()
	}
	return
}

// rangeValues calls fn for every element in ascending order until it returns false
func (d *directory) rangeValues(fn func(x uint32) bool) bool {
	for i, c := range d.containers {
		base := uint32(d.keys[i]) << 16
		if !c.rangeOffsets(func(v uint16) bool {
			return fn(base | uint32(v))
		}) {
			return false
		}
	}
	return true
}

// equals compares both directories entry by entry
func (d *directory) equals(other *directory) bool {
	if len(d.keys) != len(other.keys) {
		return false
	}

	for i, key := range d.keys {
		if key != other.keys[i] || !d.containers[i].equals(other.containers[i]) {
			return false
		}
	}
	return true
}

// hash digests every element in ascending order
func (d *directory) hash() uint64 {
	var buf [4]byte
	h := xxhash.New()
	d.rangeValues(func(x uint32) bool {
		binary.LittleEndian.PutUint32(buf[:], x)
		h.Write(buf[:])
		return true
	})
	return h.Sum64()
}

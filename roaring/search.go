// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// find16 performs a binary search for the target in the whole array.
// Returns (index, found) where index is the insertion point if not found
func find16(array []uint16, target uint16) (int, bool) {
	return search16(array, 0, len(array), target)
}

// search16 performs an unsigned binary search for the target within keys[begin:end].
// Returns (index, found) where index is the insertion point if not found
func search16(keys []uint16, begin, end int, target uint16) (int, bool) {
	switch {
	case begin >= end:
		return begin, false
	case target < keys[begin]:
		return begin, false
	case target > keys[end-1]:
		return end, false
	case end-begin <= 16:
		return searchBlock(keys, begin, end, target)
	}

	lo, hi := begin, end-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch v := keys[mid]; {
		case v < target:
			lo = mid + 1
		case v > target:
			hi = mid - 1
		default:
			return mid, true
		}
	}
	return lo, false
}

// searchBlock performs a linear search within a small block
func searchBlock(keys []uint16, start, end int, target uint16) (int, bool) {
	for i := start; i < end; i++ {
		if keys[i] >= target {
			return i, keys[i] == target
		}
	}
	return end, false
}

// lowerBound returns the index of the first value >= target, where target may
// be one past the largest uint16.
func lowerBound(array []uint16, target int) int {
	if target > 0xFFFF {
		return len(array)
	}

	i, _ := find16(array, uint16(target))
	return i
}

// fill overwrites s[from:to] with v
func fill[T any](s []T, from, to int, v T) {
	for i := from; i < to; i++ {
		s[i] = v
	}
}

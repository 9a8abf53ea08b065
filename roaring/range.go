// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitsets"

// SetRange adds every value in [lo, hi) to the bitmap when value is true, or
// removes them otherwise
func (rb *Bitmap) SetRange(lo, hi uint64, value bool) error {
	if err := bitsets.CheckRange(lo, hi); err != nil {
		return err
	}

	chunks(lo, hi, func(key uint16, start, end int) {
		i, exists := rb.dir.getIndex(key)
		switch {
		case exists:
			c := rb.dir.containers[i]
			if c.setRange(start, end, value); c.isEmpty() {
				rb.dir.removeAt(i)
			}
		case value:
			rb.dir.insertAt(i, key, newRange(start, end))
		}
	})
	return nil
}

// FlipRange toggles every value in [lo, hi)
func (rb *Bitmap) FlipRange(lo, hi uint64) error {
	if err := bitsets.CheckRange(lo, hi); err != nil {
		return err
	}

	chunks(lo, hi, func(key uint16, start, end int) {
		i, exists := rb.dir.getIndex(key)
		if !exists {
			rb.dir.insertAt(i, key, newRange(start, end))
			return
		}

		c := rb.dir.containers[i]
		if c.flipRange(start, end); c.isEmpty() {
			rb.dir.removeAt(i)
		}
	})
	return nil
}

// chunks splits the range [lo, hi) into per-chunk offset ranges [start, end)
func chunks(lo, hi uint64, fn func(key uint16, start, end int)) {
	if lo >= hi {
		return
	}

	first, last := lo>>16, (hi-1)>>16
	for key := first; key <= last; key++ {
		start, end := 0, 1<<16
		if key == first {
			start = int(lo & 0xFFFF)
		}
		if key == last {
			end = int((hi-1)&0xFFFF) + 1
		}
		fn(uint16(key), start, end)
	}
}

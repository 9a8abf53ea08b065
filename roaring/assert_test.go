// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/kelindar/bitmap"
	"github.com/stretchr/testify/assert"
)

func newArr(data ...uint16) *container {
	return newContainer(typeArray, data...)
}

func newBmp(data ...uint16) *container {
	return newContainer(typeBitmap, data...)
}

// newContainer creates a container of the given type, regardless of its size
func newContainer(typ ctype, data ...uint16) *container {
	c := newArray(len(data))
	if typ == typeBitmap {
		c = &container{Type: typeBitmap, Data: newBitmapData()}
	}

	for _, v := range data {
		switch c.Type {
		case typeArray:
			c.arrSet(v)
		case typeBitmap:
			c.bmpSet(v)
		}
	}
	return c
}

// seq returns the offsets [from, to)
func seq(from, to int) []uint16 {
	out := make([]uint16, 0, to-from)
	for v := from; v < to; v++ {
		out = append(out, uint16(v))
	}
	return out
}

// every returns every step-th offset in [from, to)
func every(from, to, step int) []uint16 {
	out := make([]uint16, 0, (to-from)/step)
	for v := from; v < to; v += step {
		out = append(out, uint16(v))
	}
	return out
}

// valuesOf returns the offsets of a container
func valuesOf(c *container) []uint16 {
	out := []uint16{}
	c.rangeOffsets(func(v uint16) bool {
		out = append(out, v)
		return true
	})
	return out
}

// assertContainer checks the cached size and the canonical representation
func assertContainer(t *testing.T, c *container) {
	t.Helper()

	switch c.Type {
	case typeArray:
		assert.Equal(t, len(c.Data), int(c.Size), "array size mismatch")
		assert.LessOrEqual(t, int(c.Size), arrMinSize, "array too large")
		for i := 1; i < len(c.Data); i++ {
			assert.Less(t, c.Data[i-1], c.Data[i], "array not sorted")
		}
	case typeBitmap:
		count := 0
		for _, w := range c.bmp() {
			count += bits.OnesCount64(w)
		}
		assert.Equal(t, count, int(c.Size), "bitmap size mismatch")
		assert.Greater(t, int(c.Size), arrMinSize, "bitmap too small")
	}
}

// assertInvariants checks the directory invariants of a bitmap
func assertInvariants(t *testing.T, rb *Bitmap) {
	t.Helper()

	d := &rb.dir
	assert.Equal(t, len(d.keys), len(d.containers))
	for i, c := range d.containers {
		if i > 0 {
			assert.Less(t, d.keys[i-1], d.keys[i], "keys not ascending")
		}

		assert.NotNil(t, c)
		assert.False(t, c.isEmpty(), "empty container at key %d", d.keys[i])
		assertContainer(t, c)
	}

	// Vacated slots hold no stale references
	tail := d.containers[len(d.containers):cap(d.containers)]
	for _, c := range tail {
		assert.Nil(t, c)
	}
}

// ---------------------------------------- Test Helpers ----------------------------------------

// testPair creates both our bitmap and reference bitmap with same data
func testPair(data []uint32) (*Bitmap, *bitmap.Bitmap) {
	our := New()
	var ref bitmap.Bitmap
	for _, v := range data {
		our.Set(v, true)
		ref.Set(v)
	}
	return our, &ref
}

// assertEqualBitmaps compares our bitmap with reference bitmap
func assertEqualBitmaps(t *testing.T, ref *bitmap.Bitmap, our *Bitmap) {
	t.Helper()
	assert.Equal(t, ref.Count(), our.Cardinality(), "Count mismatch")

	// Compare all values
	refValues := make([]uint32, 0, ref.Count())
	ref.Range(func(x uint32) { refValues = append(refValues, x) })
	assert.Equal(t, refValues, our.ToArray(), "Range mismatch")
	assertInvariants(t, our)
}

// ---------------------------------------- Data Generators ----------------------------------------

type dataGen = func() ([]uint32, string)

// genSeq creates consecutive integers starting from offset
func genSeq(size int, offset uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = offset + uint32(i)
		}
		return data, "seq"
	}
}

// genRand creates random integers within a range
func genRand(size int, maxVal uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(int(maxVal)))
		}
		return data, "rnd"
	}
}

// genSparse creates sparse integers (large gaps)
func genSparse(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(i * 1000)
		}
		return data, "sps"
	}
}

// genDense creates dense integers in small range
func genDense(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(size / 10))
		}
		return data, "dns"
	}
}

// genMixed creates values across multiple containers
func genMixed() dataGen {
	return func() ([]uint32, string) {
		var data []uint32
		// Container 0: array values
		data = append(data, 1, 5, 10, 100, 500, 1000)
		// Container 1: bitmap values
		for i := 0; i < 5000; i++ {
			data = append(data, uint32(65536+i*3))
		}
		// Container 2: consecutive values
		for i := 131072; i <= 131172; i++ {
			data = append(data, uint32(i))
		}
		return data, "mix"
	}
}

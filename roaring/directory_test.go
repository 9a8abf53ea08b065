// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newDir creates a directory with a single-value container for every key
func newDir(keys ...uint16) *directory {
	d := new(directory)
	for _, k := range keys {
		d.append(k, newArr(k))
	}
	return d
}

func TestAdvanceUntil(t *testing.T) {
	d := newDir(1, 3, 5, 7, 9, 11, 13, 15, 17, 19)
	tests := []struct {
		name   string
		x      uint16
		pos    int
		result int
	}{
		{"next", 3, 0, 1},
		{"next not exact", 2, 0, 1},
		{"exact", 11, 0, 5},
		{"between", 12, 0, 6},
		{"last", 19, 0, 9},
		{"beyond", 20, 0, 10},
		{"from last", 5, 9, 10},
		{"past end", 5, 15, 10},
		{"behind", 1, 4, 5},
		{"far", 18, 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.result, d.advanceUntil(tt.x, tt.pos))
		})
	}
}

func TestAdvanceUntilLarge(t *testing.T) {
	d := new(directory)
	for k := 0; k < 65536; k += 2 {
		d.append(uint16(k), newArr(1))
	}

	for _, x := range []int{0, 2, 3, 1000, 40001, 65532, 65534} {
		want, _ := search16(d.keys, 1, d.len(), uint16(x))
		assert.Equal(t, want, d.advanceUntil(uint16(x), 0), "x=%d", x)
	}

	assert.Equal(t, d.len(), d.advanceUntil(65535, 0))
	assert.Equal(t, d.len(), d.advanceUntil(65535, d.len()-2))
}

func TestGetIndex(t *testing.T) {
	d := newDir(2, 4, 6)

	i, ok := d.getIndex(6)
	assert.Equal(t, 2, i)
	assert.True(t, ok)

	i, ok = d.getIndex(4)
	assert.Equal(t, 1, i)
	assert.True(t, ok)

	i, ok = d.getIndex(5)
	assert.Equal(t, 2, i)
	assert.False(t, ok)

	i, ok = new(directory).getIndex(5)
	assert.Equal(t, 0, i)
	assert.False(t, ok)
}

func TestDirectoryInsertRemove(t *testing.T) {
	d := newDir(2, 6)
	d.insertAt(1, 4, newArr(4))
	d.insertAt(0, 0, newArr(0))
	d.insertAt(4, 8, newArr(8))
	assert.Equal(t, []uint16{0, 2, 4, 6, 8}, d.keys)
	for i, c := range d.containers {
		assert.Equal(t, []uint16{d.keys[i]}, valuesOf(c))
	}

	d.removeAt(0)
	assert.Equal(t, []uint16{2, 4, 6, 8}, d.keys)

	d.removeRange(1, 3)
	assert.Equal(t, []uint16{2, 8}, d.keys)
	assert.Equal(t, []uint16{8}, valuesOf(d.containers[1]))
	assertTail(t, d)

	d.removeRange(1, 1)
	assert.Equal(t, []uint16{2, 8}, d.keys)
}

func TestDirectoryCopyRange(t *testing.T) {
	d := newDir(1, 2, 3, 4, 5)
	d.copyRange(3, 5, 1)
	d.resize(3)

	assert.Equal(t, []uint16{1, 4, 5}, d.keys)
	assert.Equal(t, []uint16{5}, valuesOf(d.containers[2]))
	assertTail(t, d)
}

func TestDirectoryResize(t *testing.T) {
	d := newDir(1, 2, 3)
	d.resize(1)
	assert.Equal(t, 1, d.len())
	assertTail(t, d)

	d.resize(0)
	assert.Equal(t, 0, d.len())
	assertTail(t, d)

	d.resize(2)
	assert.Equal(t, []uint16{0, 0}, d.keys)
	assert.Equal(t, []*container{nil, nil}, d.containers)
}

func TestDirectoryGrow(t *testing.T) {
	d := new(directory)
	d.grow(1)
	assert.Equal(t, 2, cap(d.keys))

	d.grow(3)
	assert.Equal(t, 6, cap(d.keys))
	assert.Equal(t, cap(d.keys), cap(d.containers))

	// Large directories grow by a quarter
	d = &directory{
		keys:       make([]uint16, 1024),
		containers: make([]*container, 1024),
	}
	d.grow(1)
	assert.Equal(t, 1025*5/4, cap(d.keys))
	assert.Equal(t, 1024, d.len())
}

func TestDirectoryClone(t *testing.T) {
	d := newDir(1, 2, 3)
	clone := d.clone()
	assert.True(t, d.equals(&clone))

	clone.containers[0].set(100)
	clone.keys[2] = 4
	assert.Equal(t, []uint16{1}, valuesOf(d.containers[0]))
	assert.Equal(t, uint16(3), d.keys[2])
	assert.False(t, d.equals(&clone))
}

func TestDirectoryEquals(t *testing.T) {
	assert.True(t, newDir().equals(newDir()))
	assert.True(t, newDir(1, 2).equals(newDir(1, 2)))
	assert.False(t, newDir(1, 2).equals(newDir(1)))
	assert.False(t, newDir(1, 2).equals(newDir(1, 3)))
}

// assertTail checks that every slot past the logical size is cleared
func assertTail(t *testing.T, d *directory) {
	t.Helper()
	for _, k := range d.keys[len(d.keys):cap(d.keys)] {
		assert.Zero(t, k)
	}
	for _, c := range d.containers[len(d.containers):cap(d.containers)] {
		assert.Nil(t, c)
	}
}

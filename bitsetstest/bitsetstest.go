// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package bitsetstest provides a conformance suite for implementations of the
// bitsets.Bitset contract.
package bitsetstest

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/kelindar/bitsets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Length is the universe used by the randomized checks
const Length = 10

// Factory creates a bitset of the given length holding the given values
type Factory[T any] func(values []uint32, length int) T

// Run runs the conformance suite against the bitsets produced by the factory
func Run[T bitsets.Bitset[T]](t *testing.T, create Factory[T]) {
	s := &suite[T]{create: create, rng: rand.New(rand.NewPCG(1, 2))}
	t.Run("get", s.testGet)
	t.Run("set", s.testSet)
	t.Run("set range", s.testSetRange)
	t.Run("flip", s.testFlip)
	t.Run("flip range", s.testFlipRange)
	t.Run("invalid range", s.testInvalidRange)
	t.Run("and", s.testAlgebra(and[T], andWith[T], func(a, b bool) bool { return a && b }))
	t.Run("or", s.testAlgebra(or[T], orWith[T], func(a, b bool) bool { return a || b }))
	t.Run("xor", s.testAlgebra(xor[T], xorWith[T], func(a, b bool) bool { return a != b }))
	t.Run("difference", s.testAlgebra(difference[T], differenceWith[T], func(a, b bool) bool { return a && !b }))
	t.Run("difference scenario", s.testDifference)
	t.Run("self", s.testSelf)
	t.Run("clone", s.testClone)
	t.Run("cardinality", s.testCardinality)
	t.Run("range", s.testRange)
	t.Run("equals", s.testEquals)
	t.Run("hash", s.testHash)
	t.Run("codec", s.testCodec)
}

type suite[T bitsets.Bitset[T]] struct {
	create Factory[T]
	rng    *rand.Rand
}

// random returns sorted distinct values from [0, n)
func (s *suite[T]) random(n int) []uint32 {
	var out []uint32
	for i := 0; i < n; i++ {
		if s.rng.IntN(2) == 0 {
			out = append(out, uint32(i))
		}
	}
	return out
}

func (s *suite[T]) testGet(t *testing.T) {
	values := s.random(Length)
	set := s.create(values, Length)
	for i := uint32(0); i < Length; i++ {
		assert.Equal(t, slices.Contains(values, i), set.Get(i), "index %d", i)
	}
}

func (s *suite[T]) testSet(t *testing.T) {
	set := s.create(s.random(Length), Length)
	set.Set(8, true)
	assert.True(t, set.Get(8))

	set = s.create([]uint32{1, 2, 3}, 4)
	set.Set(2, false)
	assert.False(t, set.Get(2))
	assert.True(t, set.Get(1))
	assert.True(t, set.Get(3))

	// Setting twice or clearing an absent value does not change the cardinality
	set.Set(1, true)
	set.Set(0, false)
	assert.Equal(t, 2, set.Cardinality())
}

func (s *suite[T]) testSetRange(t *testing.T) {
	set := s.create(s.random(Length), Length)
	require.NoError(t, set.SetRange(7, 9, true))
	assert.True(t, set.Get(7))
	assert.True(t, set.Get(8))

	set = s.create([]uint32{1, 2, 3}, 4)
	require.NoError(t, set.SetRange(1, 3, false))
	assert.False(t, set.Get(1))
	assert.False(t, set.Get(2))
	assert.True(t, set.Get(3))

	empty := s.create(nil, Length)
	require.NoError(t, empty.SetRange(0, 1, true))
	assert.True(t, empty.Get(0))
	assert.Equal(t, 1, empty.Cardinality())

	// An empty range is a no-op
	require.NoError(t, empty.SetRange(5, 5, true))
	assert.Equal(t, 1, empty.Cardinality())
}

func (s *suite[T]) testFlip(t *testing.T) {
	set := s.create([]uint32{1, 2, 3, 5}, 6)
	set.Flip(4)
	assert.True(t, set.Get(4))

	set.Flip(2)
	assert.False(t, set.Get(2))
	assert.Equal(t, 4, set.Cardinality())
}

func (s *suite[T]) testFlipRange(t *testing.T) {
	set := s.create([]uint32{1, 2, 3, 7}, 8)
	require.NoError(t, set.FlipRange(4, 6))
	assert.True(t, set.Get(4))
	assert.True(t, set.Get(5))
	assert.False(t, set.Get(6))

	set = s.create([]uint32{1, 2, 3, 7}, 8)
	require.NoError(t, set.FlipRange(2, 4))
	assert.False(t, set.Get(2))
	assert.False(t, set.Get(3))
	assert.True(t, set.Get(1))
	assert.Equal(t, 2, set.Cardinality())
}

func (s *suite[T]) testInvalidRange(t *testing.T) {
	set := s.create([]uint32{1, 2, 3}, 4)
	assert.ErrorIs(t, set.SetRange(3, 1, true), bitsets.ErrInvalidRange)
	assert.ErrorIs(t, set.FlipRange(3, 1), bitsets.ErrInvalidRange)
	assert.ErrorIs(t, set.SetRange(0, bitsets.MaxRange+1, false), bitsets.ErrInvalidRange)
	assert.Equal(t, 3, set.Cardinality())
}

func and[T bitsets.Bitset[T]](a, b T) T          { return a.And(b) }
func or[T bitsets.Bitset[T]](a, b T) T           { return a.Or(b) }
func xor[T bitsets.Bitset[T]](a, b T) T          { return a.Xor(b) }
func difference[T bitsets.Bitset[T]](a, b T) T   { return a.Difference(b) }
func andWith[T bitsets.Bitset[T]](a, b T)        { a.AndWith(b) }
func orWith[T bitsets.Bitset[T]](a, b T)         { a.OrWith(b) }
func xorWith[T bitsets.Bitset[T]](a, b T)        { a.XorWith(b) }
func differenceWith[T bitsets.Bitset[T]](a, b T) { a.DifferenceWith(b) }

// testAlgebra checks an operation bit by bit against its truth table, for both
// the copying and the in-place form
func (s *suite[T]) testAlgebra(op func(a, b T) T, opWith func(a, b T), truth func(a, b bool) bool) func(*testing.T) {
	return func(t *testing.T) {
		for round := 0; round < 20; round++ {
			v1, v2 := s.random(Length), s.random(Length)
			a, b := s.create(v1, Length), s.create(v2, Length)

			out := op(a, b)
			for i := uint32(0); i < Length; i++ {
				assert.Equal(t, truth(a.Get(i), b.Get(i)), out.Get(i), "index %d", i)
			}

			// Operands are left untouched
			assert.True(t, a.Equals(s.create(v1, Length)))
			assert.True(t, b.Equals(s.create(v2, Length)))

			// The in-place form yields the same result
			opWith(a, b)
			assert.True(t, out.Equals(a))
			assert.True(t, b.Equals(s.create(v2, Length)))
		}
	}
}

func (s *suite[T]) testDifference(t *testing.T) {
	a := s.create([]uint32{1, 2, 3, 7}, 8)
	b := s.create([]uint32{1, 4, 7}, 8)
	diff := a.Difference(b)
	assert.False(t, diff.Get(1))
	assert.True(t, diff.Get(3))

	// Dense sets
	full := contiguous(0, 5000)
	holed := slices.DeleteFunc(contiguous(0, 5000), func(v uint32) bool { return v == 4 })
	c, d := s.create(full, 5000), s.create(holed, 5000)

	diff = c.Difference(d)
	assert.False(t, diff.Get(1))
	assert.True(t, diff.Get(4))
	assert.Equal(t, 1, diff.Cardinality())

	// Mixed dense and sparse sets
	diff = d.Difference(b)
	assert.False(t, diff.Get(1))
	assert.True(t, diff.Get(3))

	diff = b.Difference(d)
	assert.False(t, diff.Get(1))
	assert.True(t, diff.Get(4))

	// In place
	c.DifferenceWith(d)
	assert.False(t, c.Get(2))
	assert.True(t, c.Get(4))

	b.DifferenceWith(d)
	assert.False(t, b.Get(1))
	assert.True(t, b.Get(4))

	d.DifferenceWith(a)
	assert.False(t, d.Get(2))
	assert.True(t, d.Get(6))
}

func (s *suite[T]) testSelf(t *testing.T) {
	values := s.random(Length)
	a := s.create(values, Length)
	a.AndWith(a)
	assert.True(t, a.Equals(s.create(values, Length)))

	a.OrWith(a)
	assert.True(t, a.Equals(s.create(values, Length)))

	a.XorWith(a)
	assert.Equal(t, 0, a.Cardinality())

	b := s.create(values, Length)
	b.DifferenceWith(b)
	assert.Equal(t, 0, b.Cardinality())
}

func (s *suite[T]) testClone(t *testing.T) {
	set := s.create(s.random(Length), Length)
	clone := set.Clone()
	assert.True(t, clone.Equals(set))

	clone.Flip(3)
	assert.NotEqual(t, set.Get(3), clone.Get(3))
	assert.False(t, clone.Equals(set))
}

func (s *suite[T]) testCardinality(t *testing.T) {
	values := contiguous(1, 5000)
	set := s.create(values, 5000)
	assert.Equal(t, len(values), set.Cardinality())

	set.Set(10, false)
	set.Set(20, false)
	assert.Equal(t, len(values)-2, set.Cardinality())
}

func (s *suite[T]) testRange(t *testing.T) {
	values := s.random(Length)
	set := s.create(values, Length)

	var out []uint32
	set.Range(func(x uint32) bool {
		out = append(out, x)
		return true
	})
	assert.Equal(t, values, out)

	// Stops early
	count := 0
	set.Range(func(x uint32) bool {
		count++
		return false
	})
	assert.Equal(t, min(1, len(values)), count)
}

func (s *suite[T]) testEquals(t *testing.T) {
	values := s.random(Length)
	assert.True(t, s.create(values, Length).Equals(s.create(values, Length)))
	assert.True(t, s.create(nil, Length).Equals(s.create(nil, 100)))
	assert.False(t, s.create([]uint32{1}, Length).Equals(s.create([]uint32{2}, Length)))
}

func (s *suite[T]) testHash(t *testing.T) {
	for round := 0; round < 20; round++ {
		values := s.random(Length)
		a, b := s.create(values, Length), s.create(values, Length)
		assert.Equal(t, a.Hash(), b.Hash())

		b.Flip(uint32(s.rng.IntN(Length)))
		assert.NotEqual(t, a.Hash(), b.Hash())
	}
}

func (s *suite[T]) testCodec(t *testing.T) {
	dense := contiguous(0, 5000)
	for _, values := range [][]uint32{
		nil,
		s.random(Length),
		append(dense, 70000, 70001, 140000),
	} {
		set := s.create(values, Length)

		var buf bytes.Buffer
		n, err := set.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)

		out := s.create(nil, 0)
		m, err := out.ReadFrom(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, n, m)
		assert.True(t, set.Equals(out))
		assert.Equal(t, set.Hash(), out.Hash())
	}

	// Truncated input fails and leaves the target untouched
	set := s.create([]uint32{1, 2, 3}, Length)
	var buf bytes.Buffer
	_, err := set.WriteTo(&buf)
	require.NoError(t, err)

	out := s.create([]uint32{5}, Length)
	_, err = out.ReadFrom(bytes.NewReader(buf.Bytes()[:buf.Len()-1]))
	assert.Error(t, err)
	assert.True(t, out.Get(5))
	assert.Equal(t, 1, out.Cardinality())
}

// contiguous returns the values [from, to)
func contiguous(from, to uint32) []uint32 {
	out := make([]uint32, 0, to-from)
	for v := from; v < to; v++ {
		out = append(out, v)
	}
	return out
}

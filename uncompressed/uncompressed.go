// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package uncompressed implements the bitset contract on a plain bit vector, one
// bit per element up to the largest element ever set. It serves as the
// reference representation the compressed engines are checked against.
package uncompressed

import (
	"encoding/binary"
	"io"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
	"github.com/kelindar/bitsets"
	"github.com/pkg/errors"
)

var _ bitsets.Bitset[*Bitset] = (*Bitset)(nil)

// Bitset is an uncompressed bit vector. Its length grows to cover the largest
// element that was set, and never shrinks.
type Bitset struct {
	bits *bitset.BitSet
}

// New creates an empty bitset with room for the given number of elements
func New(length uint) *Bitset {
	return &Bitset{bits: bitset.New(length)}
}

// FromIndices creates a bitset of the given length containing the values. The
// length is extended when a value does not fit.
func FromIndices(length uint, values ...uint32) *Bitset {
	b := New(length)
	for _, v := range values {
		b.bits.Set(uint(v))
	}
	return b
}

// Length returns the number of elements the bit vector covers
func (b *Bitset) Length() uint {
	return b.bits.Len()
}

// Get checks whether a value is contained in the bitset or not
func (b *Bitset) Get(x uint32) bool {
	return b.bits.Test(uint(x))
}

// Set adds the value x to the bitset when value is true, or removes it otherwise
func (b *Bitset) Set(x uint32, value bool) {
	b.bits.SetTo(uint(x), value)
}

// SetRange adds every value in [lo, hi) when value is true, or removes them otherwise
func (b *Bitset) SetRange(lo, hi uint64, value bool) error {
	if err := bitsets.CheckRange(lo, hi); err != nil {
		return err
	}

	for i := lo; i < hi; i++ {
		b.bits.SetTo(uint(i), value)
	}
	return nil
}

// Flip toggles the value x
func (b *Bitset) Flip(x uint32) {
	b.bits.Flip(uint(x))
}

// FlipRange toggles every value in [lo, hi)
func (b *Bitset) FlipRange(lo, hi uint64) error {
	if err := bitsets.CheckRange(lo, hi); err != nil {
		return err
	}

	if lo < hi {
		b.bits.FlipRange(uint(lo), uint(hi))
	}
	return nil
}

// And returns a new bitset with the values present in both bitsets
func (b *Bitset) And(other *Bitset) *Bitset {
	return &Bitset{bits: b.bits.Intersection(bitsOf(other))}
}

// Or returns a new bitset with the values present in either bitset
func (b *Bitset) Or(other *Bitset) *Bitset {
	return &Bitset{bits: b.bits.Union(bitsOf(other))}
}

// Xor returns a new bitset with the values present in exactly one bitset
func (b *Bitset) Xor(other *Bitset) *Bitset {
	return &Bitset{bits: b.bits.SymmetricDifference(bitsOf(other))}
}

// Difference returns a new bitset with the values not present in the other one
func (b *Bitset) Difference(other *Bitset) *Bitset {
	return &Bitset{bits: b.bits.Difference(bitsOf(other))}
}

// AndWith keeps only the values which are also present in the other bitset
func (b *Bitset) AndWith(other *Bitset) {
	b.bits.InPlaceIntersection(bitsOf(other))
}

// OrWith adds every value of the other bitset
func (b *Bitset) OrWith(other *Bitset) {
	b.bits.InPlaceUnion(bitsOf(other))
}

// XorWith toggles every value of the other bitset
func (b *Bitset) XorWith(other *Bitset) {
	b.bits.InPlaceSymmetricDifference(bitsOf(other))
}

// DifferenceWith removes every value of the other bitset
func (b *Bitset) DifferenceWith(other *Bitset) {
	b.bits.InPlaceDifference(bitsOf(other))
}

// Cardinality returns the number of values in the bitset
func (b *Bitset) Cardinality() int {
	return int(b.bits.Count())
}

// Clone returns a deep copy of the bitset
func (b *Bitset) Clone() *Bitset {
	return &Bitset{bits: b.bits.Clone()}
}

// Range calls fn for every value in ascending order until it returns false
func (b *Bitset) Range(fn func(x uint32) bool) {
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		if !fn(uint32(i)) {
			return
		}
	}
}

// Equals checks whether both bitsets contain the same values, regardless of
// their length
func (b *Bitset) Equals(other *Bitset) bool {
	o := bitsOf(other)
	count := b.bits.Count()
	return count == o.Count() && count == b.bits.IntersectionCardinality(o)
}

// Hash returns a hash of the values of the bitset
func (b *Bitset) Hash() uint64 {
	var buf [4]byte
	h := xxhash.New()
	b.Range(func(x uint32) bool {
		binary.LittleEndian.PutUint32(buf[:], x)
		h.Write(buf[:])
		return true
	})
	return h.Sum64()
}

// WriteTo writes the length of the bitset followed by its words
func (b *Bitset) WriteTo(w io.Writer) (int64, error) {
	length, words := b.bits.Len(), b.bits.Bytes()
	count := min(len(words), int((length+63)/64))

	out := make([]byte, 8+8*((length+63)/64))
	binary.LittleEndian.PutUint64(out, uint64(length))
	for i, v := range words[:count] {
		binary.LittleEndian.PutUint64(out[8+8*i:], v)
	}

	n, err := w.Write(out)
	return int64(n), err
}

// ReadFrom reads the bitset from a reader, replacing its content. On failure
// the bitset is left untouched.
func (b *Bitset) ReadFrom(r io.Reader) (int64, error) {
	var header [8]byte
	if err := readFull(r, header[:]); err != nil {
		return 0, err
	}

	length := binary.LittleEndian.Uint64(header[:])
	if length > bitsets.MaxRange {
		return 8, bitsets.Corruptf("uncompressed: length %d out of bounds", length)
	}

	payload := make([]byte, 8*((length+63)/64))
	if err := readFull(r, payload); err != nil {
		return 8, err
	}

	words := make([]uint64, len(payload)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(payload[8*i:])
	}

	// Bits past the length must be clear
	if tail := length % 64; tail != 0 && words[len(words)-1]>>tail != 0 {
		return int64(8 + len(payload)), bitsets.Corruptf("uncompressed: bits set past length %d", length)
	}

	b.bits = bitset.FromWithLength(uint(length), words)
	return int64(8 + len(payload)), nil
}

// readFull reads exactly len(buf) bytes, reporting a short read as unexpected EOF
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return errors.Wrap(err, "uncompressed: unable to read bitset")
	}
	return nil
}

// bitsOf returns the bit vector of a bitset, treating nil as empty
func bitsOf(b *Bitset) *bitset.BitSet {
	if b == nil {
		return bitset.New(0)
	}
	return b.bits
}

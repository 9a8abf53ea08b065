// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/RoaringBitmap/roaring"
)

func BenchmarkOps(b *testing.B) {
	benchAll(b, "set", func(rb *Bitmap, v uint32) {
		rb.Set(v, true)
	}, func(rb *roaring.Bitmap, v uint32) {
		rb.Add(v)
	})
	benchAll(b, "get", func(rb *Bitmap, v uint32) {
		rb.Get(v)
	}, func(rb *roaring.Bitmap, v uint32) {
		rb.Contains(v)
	})
	benchAll(b, "del", func(rb *Bitmap, v uint32) {
		rb.Set(v, false)
	}, func(rb *roaring.Bitmap, v uint32) {
		rb.Remove(v)
	})
	benchAll(b, "flip", func(rb *Bitmap, v uint32) {
		rb.Flip(v)
	}, func(rb *roaring.Bitmap, v uint32) {
		rb.Flip(uint64(v), uint64(v)+1)
	})
}

func BenchmarkRange(b *testing.B) {
	for _, size := range []int{1000, 1000000} {
		for _, shape := range shapes(size) {
			benchRange(b, fmt.Sprintf("rng-%d", size), shape)
		}
	}
}

func BenchmarkMath(b *testing.B) {
	ops := []struct {
		name string
		our  func(a, b *Bitmap) *Bitmap
		ref  func(a, b *roaring.Bitmap) *roaring.Bitmap
	}{
		{"and", (*Bitmap).And, roaring.And},
		{"or", (*Bitmap).Or, roaring.Or},
		{"xor", (*Bitmap).Xor, roaring.Xor},
		{"andnot", (*Bitmap).Difference, roaring.AndNot},
	}

	for _, op := range ops {
		for _, size := range []int{1000, 1000000} {
			for _, shape := range shapes(size) {
				benchMath(b, fmt.Sprintf("%s-%d", op.name, size), shape, op.our, op.ref)
			}
		}
	}
}

func BenchmarkCodec(b *testing.B) {
	data, _ := genRand(1e6, 1e7)()
	our, ref := random(data)

	b.Run("our", func(b *testing.B) {
		var buf bytes.Buffer
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.Reset()
			our.WriteTo(&buf)
			New().ReadFrom(&buf)
		}
	})

	b.Run("ref", func(b *testing.B) {
		var buf bytes.Buffer
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.Reset()
			ref.WriteTo(&buf)
			roaring.New().ReadFrom(&buf)
		}
	})
}

func BenchmarkClone(b *testing.B) {
	data, _ := genRand(1e6, 1e6)()
	rb, _ := random(data)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		clone := rb.Clone()
		_ = clone
	}
}

// ---------------------------------------- Benchmarking ----------------------------------------

// shapes returns the data generators for a given size
func shapes(size int) []dataGen {
	return []dataGen{genSeq(size, 0), genRand(size, uint32(size)), genSparse(size), genDense(size)}
}

// benchRange runs a benchmark for the Range operation
func benchRange(b *testing.B, name string, gen dataGen) {
	data, shape := gen()
	our, ref := random(data)

	b.Run(fmt.Sprintf("%s-%s", name, shape), func(b *testing.B) {
		f0 := loopFor(time.Second, func() {
			ref.Iterate(func(uint32) bool { return true })
		})

		b.ResetTimer()
		b.ReportAllocs()
		f1 := loopFor(time.Second, func() {
			our.Range(func(uint32) bool { return true })
		})

		count := float64(max(1, our.Cardinality()))
		b.ReportMetric(1e9/(f1*count), "ns/op") // Per element
		b.ReportMetric(f1*count/1e6, "M/s")     // Elements per second
		b.ReportMetric(f1/f0*100, "%")          // Speedup
	})
}

func benchAll(b *testing.B, name string, fn func(rb *Bitmap, v uint32), fnRef func(rb *roaring.Bitmap, v uint32)) {
	for _, size := range []int{1000, 1000000} {
		for _, shape := range shapes(size) {
			bench(b, fmt.Sprintf("%s-%d", name, size), shape, fn, fnRef)
		}
	}
}

// bench runs a benchmark for a given generator and function
func bench(b *testing.B, name string, gen dataGen, fnOur func(rb *Bitmap, v uint32), fnRef func(rb *roaring.Bitmap, v uint32)) {
	data, shape := gen()
	our, ref := random(data)
	b.Run(fmt.Sprintf("%s-%s", name, shape), func(b *testing.B) {
		f0 := loopFor(time.Second, func() {
			for _, v := range data {
				fnRef(ref, v)
			}
		}) * float64(len(data))

		b.ResetTimer()
		b.ReportAllocs()
		f1 := loopFor(time.Second, func() {
			for _, v := range data {
				fnOur(our, v)
			}
		}) * float64(len(data))

		b.ReportMetric(1e9/f1, "ns/op")
		b.ReportMetric(f1/1e6, "M/s")  // Throughput
		b.ReportMetric(f1/f0*100, "%") // Speedup
	})
}

// benchMath runs a benchmark for a copying binary operation
func benchMath(b *testing.B, name string, gen dataGen, fnOur func(a, b *Bitmap) *Bitmap, fnRef func(a, b *roaring.Bitmap) *roaring.Bitmap) {
	data, shape := gen()
	our1, ref1 := random(data)
	our2, ref2 := random(data)

	b.Run(fmt.Sprintf("%s-%s", name, shape), func(b *testing.B) {
		f0 := loopFor(time.Second, func() {
			fnRef(ref1, ref2)
		})

		b.ResetTimer()
		b.ReportAllocs()
		f1 := loopFor(time.Second, func() {
			fnOur(our1, our2)
		})

		b.ReportMetric(f1/1e6, "M/s")  // Operations per second (in millions)
		b.ReportMetric(f1/f0*100, "%") // Speedup ratio
	})
}

// loopFor calls fn repeatedly for the interval and returns the calls per second
func loopFor(interval time.Duration, fn func()) float64 {
	start, ops := time.Now(), float64(0)
	for time.Since(start) < interval {
		fn()
		ops++
	}
	return ops / time.Since(start).Seconds()
}

// random creates a bitmap with 50% of the values set
func random(data []uint32) (*Bitmap, *roaring.Bitmap) {
	out := New()
	ref := roaring.NewBitmap()
	for _, v := range data {
		if rand.IntN(2) == 0 {
			out.Set(v, true)
			ref.Add(v)
		}
	}
	return out, ref
}

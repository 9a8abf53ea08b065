// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"unsafe"

	"github.com/kelindar/bitmap"
)

const (
	bmpWords = 4096 // uint16 words backing a bitmap container (65536 bits)
	bmpBytes = bmpWords * 2
)

// newBitmapData allocates the zeroed backing array for a bitmap container
func newBitmapData() []uint16 {
	return make([]uint16, bmpWords)
}

// asBitmap views the uint16 backing array as a bitmap of uint64 words
func asBitmap(data []uint16) bitmap.Bitmap {
	if len(data) == 0 {
		return nil
	}

	return bitmap.Bitmap(unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4))
}

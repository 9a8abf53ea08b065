// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// binaryFn combines two containers into a new one, never mutating either operand
type binaryFn = func(c1, c2 *container) *container

// dispatch is indexed by the receiver type, then by the other operand type
type dispatch = [2][2]binaryFn

var (
	andTable = dispatch{
		typeArray:  {typeArray: arrAndArr, typeBitmap: arrAndBmp},
		typeBitmap: {typeArray: bmpAndArr, typeBitmap: bmpAndBmp},
	}
	orTable = dispatch{
		typeArray:  {typeArray: arrOrArr, typeBitmap: arrOrBmp},
		typeBitmap: {typeArray: bmpOrArr, typeBitmap: bmpOrBmp},
	}
	xorTable = dispatch{
		typeArray:  {typeArray: arrXorArr, typeBitmap: arrXorBmp},
		typeBitmap: {typeArray: bmpXorArr, typeBitmap: bmpXorBmp},
	}
	andNotTable = dispatch{
		typeArray:  {typeArray: arrAndNotArr, typeBitmap: arrAndNotBmp},
		typeBitmap: {typeArray: bmpAndNotArr, typeBitmap: bmpAndNotBmp},
	}
)

// and returns the intersection of both containers
func (c *container) and(other *container) *container {
	return andTable[c.Type][other.Type](c, other)
}

// or returns the union of both containers
func (c *container) or(other *container) *container {
	return orTable[c.Type][other.Type](c, other)
}

// xor returns the symmetric difference of both containers
func (c *container) xor(other *container) *container {
	return xorTable[c.Type][other.Type](c, other)
}

// andNot returns the members of c which are not in other
func (c *container) andNot(other *container) *container {
	return andNotTable[c.Type][other.Type](c, other)
}

// cloneWords copies the bitmap data of a container
func cloneWords(c *container) []uint16 {
	data := newBitmapData()
	copy(data, c.Data)
	return data
}

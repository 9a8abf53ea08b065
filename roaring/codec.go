// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/kelindar/bitsets"
	"github.com/pkg/errors"
)

const (
	maxContainers = 1 << 16 // One per possible chunk key
	headerSize    = 5       // Container type (uint8) and cardinality (uint32)
)

// ToBytes converts the bitmap to a byte slice
func (rb *Bitmap) ToBytes() []byte {
	var buf bytes.Buffer
	if _, err := rb.WriteTo(&buf); err != nil {
		panic(err) // bytes.Buffer never fails
	}

	return buf.Bytes()
}

// WriteTo writes the bitmap to a writer
func (rb *Bitmap) WriteTo(w io.Writer) (int64, error) {
	dst := bufio.NewWriter(w)
	n, err := rb.dir.writeTo(dst)
	if err != nil {
		return n, err
	}

	return n, dst.Flush()
}

// ReadFrom reads the bitmap from a reader, replacing its content. On failure the
// bitmap is left untouched.
func (rb *Bitmap) ReadFrom(r io.Reader) (int64, error) {
	dir, n, err := readDirectory(r)
	if err != nil {
		return n, err
	}

	rb.dir = dir
	return n, nil
}

// FromBytes creates a roaring bitmap from a byte buffer
func FromBytes(buffer []byte) (*Bitmap, error) {
	return ReadFrom(bytes.NewReader(buffer))
}

// ReadFrom reads a roaring bitmap from an io.Reader
func ReadFrom(r io.Reader) (*Bitmap, error) {
	rb := New()
	if _, err := rb.ReadFrom(r); err != nil {
		return nil, err
	}
	return rb, nil
}

// ---------------------------------------- Directory ----------------------------------------

// writeTo writes the number of entries, then every key followed by its container
func (d *directory) writeTo(w io.Writer) (int64, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(len(d.keys)))
	if _, err := w.Write(buf[:4]); err != nil {
		return 0, err
	}

	n := int64(4)
	for i, c := range d.containers {
		binary.LittleEndian.PutUint16(buf[:2], d.keys[i])
		if _, err := w.Write(buf[:2]); err != nil {
			return n, err
		}
		n += 2

		m, err := c.writeTo(w)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// readDirectory reads a directory written by writeTo
func readDirectory(r io.Reader) (directory, int64, error) {
	var buf [4]byte
	if err := readFull(r, buf[:4], "size"); err != nil {
		return directory{}, 0, err
	}

	n := int64(4)
	size := binary.LittleEndian.Uint32(buf[:4])
	if size > maxContainers {
		return directory{}, n, bitsets.Corruptf("roaring: %d containers exceed %d", size, maxContainers)
	}

	dir := directory{
		keys:       make([]uint16, 0, size),
		containers: make([]*container, 0, size),
	}

	for i := 0; i < int(size); i++ {
		if err := readFull(r, buf[:2], "key"); err != nil {
			return directory{}, n, err
		}
		n += 2

		key := binary.LittleEndian.Uint16(buf[:2])
		if i > 0 && key <= dir.keys[i-1] {
			return directory{}, n, bitsets.Corruptf("roaring: key %d follows key %d", key, dir.keys[i-1])
		}

		c, m, err := readContainer(r)
		n += m
		if err != nil {
			return directory{}, n, errors.Wrapf(err, "roaring: container %d", key)
		}

		dir.append(key, c)
	}
	return dir, n, nil
}

// ---------------------------------------- Container ----------------------------------------

// writeTo writes the container type, its cardinality and its payload
func (c *container) writeTo(w io.Writer) (int64, error) {
	var out []byte
	switch c.Type {
	case typeArray:
		out = make([]byte, headerSize+2*len(c.Data))
		for i, v := range c.Data {
			binary.LittleEndian.PutUint16(out[headerSize+2*i:], v)
		}
	case typeBitmap:
		out = make([]byte, headerSize+bmpBytes)
		for i, v := range c.bmp() {
			binary.LittleEndian.PutUint64(out[headerSize+8*i:], v)
		}
	default:
		return 0, errors.Errorf("roaring: unknown container type %d", c.Type)
	}

	out[0] = byte(c.Type)
	binary.LittleEndian.PutUint32(out[1:headerSize], c.Size)
	n, err := w.Write(out)
	return int64(n), err
}

// readContainer reads a container written by writeTo and validates its content
func readContainer(r io.Reader) (*container, int64, error) {
	var header [headerSize]byte
	if err := readFull(r, header[:], "container header"); err != nil {
		return nil, 0, err
	}

	n := int64(headerSize)
	typ, size := ctype(header[0]), binary.LittleEndian.Uint32(header[1:])
	switch {
	case size == 0:
		return nil, n, bitsets.Corruptf("roaring: empty container")
	case size > 1<<16:
		return nil, n, bitsets.Corruptf("roaring: cardinality %d out of bounds", size)
	}

	switch typ {
	case typeArray:
		payload := make([]byte, 2*size)
		if err := readFull(r, payload, "array payload"); err != nil {
			return nil, n, err
		}
		n += int64(len(payload))

		data := make([]uint16, size)
		for i := range data {
			data[i] = binary.LittleEndian.Uint16(payload[2*i:])
			if i > 0 && data[i] <= data[i-1] {
				return nil, n, bitsets.Corruptf("roaring: array values are not strictly ascending")
			}
		}
		return fromOffsets(data), n, nil

	case typeBitmap:
		payload := make([]byte, bmpBytes)
		if err := readFull(r, payload, "bitmap payload"); err != nil {
			return nil, n, err
		}
		n += int64(len(payload))

		data := newBitmapData()
		bm := asBitmap(data)
		for i := range bm {
			bm[i] = binary.LittleEndian.Uint64(payload[8*i:])
		}

		c := fromWords(data)
		if c.Size != size {
			return nil, n, bitsets.Corruptf("roaring: bitmap holds %d values, expected %d", c.Size, size)
		}
		return c, n, nil

	default:
		return nil, n, bitsets.Corruptf("roaring: unknown container type %d", typ)
	}
}

// readFull reads exactly len(buf) bytes, reporting a short read as unexpected EOF
func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return errors.Wrapf(err, "roaring: unable to read %s", what)
	}
	return nil
}

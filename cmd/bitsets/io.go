// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kelindar/bitsets"
	"github.com/kelindar/bitsets/roaring"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// open opens a file for reading, "-" being the standard input
func (a *app) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(a.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	return f, nil
}

// readBitmap reads a serialized bitmap from a file
func (a *app) readBitmap(path string) (*roaring.Bitmap, error) {
	r, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rb, err := roaring.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read bitmap from %s", path)
	}

	a.log.Debug("bitmap read",
		zap.String("path", path),
		zap.Int("cardinality", rb.Cardinality()))
	return rb, nil
}

// writeBitmap serializes a bitmap into a file, an empty path or "-" being the
// standard output
func (a *app) writeBitmap(rb *roaring.Bitmap, path string) error {
	var w io.Writer = a.stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "unable to create %s", path)
		}

		defer f.Close()
		w = f
	}

	n, err := rb.WriteTo(w)
	if err != nil {
		return errors.Wrapf(err, "unable to write bitmap to %s", path)
	}

	a.log.Info("bitmap written",
		zap.String("path", path),
		zap.Int("cardinality", rb.Cardinality()),
		zap.Int64("bytes", n))
	return nil
}

// parseIndices adds every index of the whitespace-separated list to the bitmap.
// An entry is either a decimal index or an inclusive range "lo-hi".
func parseIndices(rb *roaring.Bitmap, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if err := parseIndex(rb, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseIndex adds a single index or inclusive range to the bitmap
func parseIndex(rb *roaring.Bitmap, token string) error {
	lo, hi, isRange := strings.Cut(token, "-")
	from, err := strconv.ParseUint(lo, 10, 32)
	if err != nil {
		return errors.Wrapf(bitsets.ErrInvalidRange, "invalid index %q", token)
	}

	if !isRange {
		rb.Set(uint32(from), true)
		return nil
	}

	to, err := strconv.ParseUint(hi, 10, 32)
	if err != nil {
		return errors.Wrapf(bitsets.ErrInvalidRange, "invalid index %q", token)
	}

	return rb.SetRange(from, to+1, true)
}

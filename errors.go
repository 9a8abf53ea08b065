// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package bitsets

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange is returned when a range is reversed or exceeds the universe.
	ErrInvalidRange = errors.New("bitsets: invalid range")

	// ErrCorrupt is returned when serialized input is malformed.
	ErrCorrupt = errors.New("bitsets: corrupt input")
)

// Corruptf returns an error wrapping ErrCorrupt with a formatted message.
func Corruptf(format string, args ...any) error {
	return errorf(ErrCorrupt, format, args...)
}

func errorf(cause error, format string, args ...any) error {
	return errors.Wrapf(cause, format, args...)
}

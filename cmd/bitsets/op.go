// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package main

import (
	"github.com/kelindar/bitsets/roaring"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// operations lists the binary operations by their command line name
var operations = map[string]func(a, b *roaring.Bitmap) *roaring.Bitmap{
	"and":  (*roaring.Bitmap).And,
	"or":   (*roaring.Bitmap).Or,
	"xor":  (*roaring.Bitmap).Xor,
	"diff": (*roaring.Bitmap).Difference,
}

func newOpCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "op <and|or|xor|diff> <a> <b>",
		Short: "Combine two bitmaps.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := operations[args[0]]
			if !ok {
				return errors.Errorf("unknown operation %q", args[0])
			}

			lhs, err := a.readBitmap(args[1])
			if err != nil {
				return err
			}

			rhs, err := a.readBitmap(args[2])
			if err != nil {
				return err
			}

			out := fn(lhs, rhs)
			a.log.Debug("bitmaps combined",
				zap.String("op", args[0]),
				zap.Int("cardinality", out.Cardinality()))
			return a.writeBitmap(out, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout.")
	return cmd
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package main

import (
	"strings"

	"github.com/kelindar/bitsets/roaring"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCommand(a *app) *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "build [index...]",
		Short: "Build a bitmap from decimal indices or ranges such as 10-20.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rb := roaring.New()
			if err := parseIndices(rb, strings.NewReader(strings.Join(args, " "))); err != nil {
				return err
			}

			if input != "" {
				r, err := a.open(input)
				if err != nil {
					return err
				}

				defer r.Close()
				if err := parseIndices(rb, r); err != nil {
					return err
				}
			}

			a.log.Debug("bitmap built",
				zap.Int("args", len(args)),
				zap.String("input", input),
				zap.Int("cardinality", rb.Cardinality()))
			return a.writeBitmap(rb, output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "File with whitespace-separated indices, - for stdin.")
	flags.StringVarP(&output, "output", "o", "-", "Output file, - for stdout.")
	return cmd
}

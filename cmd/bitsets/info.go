// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the cardinality, bounds and container statistics of a bitmap.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := a.readBitmap(args[0])
			if err != nil {
				return err
			}

			stats := rb.Stats()
			fmt.Fprintf(a.stdout, "cardinality: %d\n", stats.Cardinality)
			fmt.Fprintf(a.stdout, "containers:  %d (array %d, bitmap %d)\n",
				stats.Containers, stats.ArrayContainers, stats.BitmapContainers)
			if lo, ok := rb.Min(); ok {
				hi, _ := rb.Max()
				fmt.Fprintf(a.stdout, "min:         %d\n", lo)
				fmt.Fprintf(a.stdout, "max:         %d\n", hi)
			}
			fmt.Fprintf(a.stdout, "hash:        %016x\n", rb.Hash())
			return nil
		},
	}
}

func newDumpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the indices of a bitmap, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rb, err := a.readBitmap(args[0])
			if err != nil {
				return err
			}

			w := bufio.NewWriter(a.stdout)
			buf := make([]byte, 0, 11)
			for v := range rb.All() {
				buf = strconv.AppendUint(buf[:0], uint64(v), 10)
				buf = append(buf, '\n')
				if _, err := w.Write(buf); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}

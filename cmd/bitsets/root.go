// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "BITSETS"

// app carries the streams and the logger shared by every command
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	level  string
	log    *zap.Logger
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: zap.NewNop()}
	rc := &cobra.Command{
		Use:   "bitsets",
		Short: "Build, combine and inspect roaring bitmaps.",
		Long: `Build, combine and inspect roaring bitmaps.

Bitmaps are read from and written to files in the portable roaring format,
where "-" stands for the standard input or output.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setAllConfig(viper.New(), cmd.Flags()); err != nil {
				return err
			}

			log, err := newLogger(a.level, a.stderr)
			if err != nil {
				return err
			}

			a.log = log.With(zap.String("cmd", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	rc.PersistentFlags().StringVar(&a.level, "log-level", "warn", "Logging level (debug, info, warn, error).")

	rc.AddCommand(newBuildCommand(a))
	rc.AddCommand(newOpCommand(a))
	rc.AddCommand(newInfoCommand(a))
	rc.AddCommand(newDumpCommand(a))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	rc.SetIn(stdin)
	return rc
}

// setAllConfig applies the configuration of every flag from the command line,
// the environment and a TOML file (if specified), in that priority order.
// Environment variables are the upper-cased flag names with dashes replaced by
// underscores, prefixed with BITSETS_.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "error reading configuration file '%s'", c)
		}

		for _, key := range v.AllKeys() {
			if !validTags[key] {
				return errors.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			return
		}

		value := v.GetString(f.Name)
		if f.Value.Type() == "stringSlice" {
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		}

		flagErr = f.Value.Set(value)
	})
	return flagErr
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-jiter/jiter/ast"
	"github.com/go-jiter/jiter/internal/config"
	"github.com/go-jiter/jiter/internal/jlog"
)

func newDecodeCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a JSON file into a value tree and write it back out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[0], err)
			}
			v, err := ast.Parse(data, opts)
			if err != nil {
				return fmt.Errorf("decoding %q: %w", args[0], err)
			}
			jlog.Debugf("decoded %q (%d bytes) as %s", args[0], len(data), v.Kind())
			out, err := ast.Marshal(v)
			if err != nil {
				return err
			}
			if pretty {
				out = append(out, '\n')
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&pretty, "newline", true, "append a trailing newline to the output")
	return cmd
}

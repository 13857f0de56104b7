// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Command jiter is a thin host around the core decoder: a collaborator, not
// part of the core it drives.
package main

import (
	"github.com/spf13/cobra"

	"github.com/go-jiter/jiter/internal/jlog"
)

var (
	configPath string
	verbose    bool
)

func main() {
	cmd := &cobra.Command{
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Decode JSON with the jiter core decoder",
		Use:               "jiter",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			jlog.Init(verbose)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML decode-options file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newIterateCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newCacheCmd())

	if err := cmd.Execute(); err != nil {
		jlog.Fatalf("%s", err)
	}
	jlog.Sync()
}

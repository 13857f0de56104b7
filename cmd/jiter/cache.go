// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-jiter/jiter"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or reset the process-wide string interning cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "usage",
		Short: "Print the number of entries currently interned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(jiter.CacheUsage())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the string interning cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jiter.CacheClear()
			return nil
		},
	})
	return cmd
}

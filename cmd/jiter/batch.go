// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/go-jiter/jiter/ast"
	"github.com/go-jiter/jiter/internal/config"
	"github.com/go-jiter/jiter/internal/jlog"
)

// defaultWorkers picks a pool size proportional to available CPUs, the way
// an optimal fixed-size pool is sized elsewhere in this codebase's stack.
func defaultWorkers() int { return runtime.NumCPU() * 4 }

func newBatchCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Decode many JSON files concurrently and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}

			pool, err := ants.NewPool(workers)
			if err != nil {
				return fmt.Errorf("creating worker pool: %w", err)
			}
			defer pool.Release()

			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				failures int
			)
			for _, path := range args {
				path := path
				wg.Add(1)
				task := func() {
					defer wg.Done()
					data, err := os.ReadFile(path)
					if err != nil {
						mu.Lock()
						failures++
						mu.Unlock()
						jlog.Errorf("%s: %s", path, err)
						return
					}
					if _, err := ast.Parse(data, opts); err != nil {
						mu.Lock()
						failures++
						mu.Unlock()
						jlog.Errorf("%s: %s", path, err)
						return
					}
					jlog.Infof("%s: ok (%d bytes)", path, len(data))
				}
				if err := pool.Submit(task); err != nil {
					wg.Done()
					wg.Wait()
					return fmt.Errorf("submitting %q: %w", path, err)
				}
			}
			wg.Wait()

			if failures > 0 {
				return fmt.Errorf("%d of %d files failed to decode", failures, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", defaultWorkers(), "number of concurrent decode workers")
	return cmd
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-jiter/jiter"
	"github.com/go-jiter/jiter/internal/config"
)

// eventBuilder is a jiter.Builder that prints each event it receives instead
// of constructing a value, exercising the Host Bridge directly rather than
// through the tree builder.
type eventBuilder struct{ depth int }

func (b *eventBuilder) indent() string { return fmt.Sprintf("%*s", b.depth*2, "") }

func (b *eventBuilder) MakeNull() error { fmt.Printf("%snull\n", b.indent()); return nil }
func (b *eventBuilder) MakeBool(v bool) error {
	fmt.Printf("%sbool(%v)\n", b.indent(), v)
	return nil
}
func (b *eventBuilder) MakeInt(n jiter.Number) error {
	fmt.Printf("%sint(%s)\n", b.indent(), n.Raw)
	return nil
}
func (b *eventBuilder) MakeBigInt(n jiter.Number) error {
	fmt.Printf("%sbigint(%s)\n", b.indent(), n.Raw)
	return nil
}
func (b *eventBuilder) MakeFloat(n jiter.Number) error {
	fmt.Printf("%sfloat(%s)\n", b.indent(), n.Raw)
	return nil
}
func (b *eventBuilder) MakeStr(s jiter.Str) error {
	fmt.Printf("%sstr(%q)\n", b.indent(), s.String())
	return nil
}

func (b *eventBuilder) BeginArray() error { fmt.Printf("%sarray {\n", b.indent()); b.depth++; return nil }
func (b *eventBuilder) PushArray() error  { return nil }
func (b *eventBuilder) EndArray() error   { b.depth--; fmt.Printf("%s}\n", b.indent()); return nil }

func (b *eventBuilder) BeginObject() error {
	fmt.Printf("%sobject {\n", b.indent())
	b.depth++
	return nil
}
func (b *eventBuilder) BeginMember(key jiter.Str) error {
	fmt.Printf("%s%q:\n", b.indent(), key.String())
	return nil
}
func (b *eventBuilder) PushObject() error { return nil }
func (b *eventBuilder) EndObject() error  { b.depth--; fmt.Printf("%s}\n", b.indent()); return nil }

func newIterateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iterate <file>",
		Short: "Stream decode events from a JSON file without building a tree",
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
			it := jiter.NewIterator(data, opts)
			if err := jiter.Drive(it, &eventBuilder{}); err != nil {
				return fmt.Errorf("decoding %q: %w", args[0], err)
			}
			return it.Finish()
		},
	}
}

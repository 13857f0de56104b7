// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package config loads the default decode options for the CLI commands from
// an optional YAML file, following the same "read file, unmarshal, done"
// shape as the rest of this codebase's config loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-jiter/jiter"
)

// File is the on-disk shape of a decode configuration file.
type File struct {
	AllowInfNaN        *bool  `yaml:"allow_inf_nan"`
	CacheStrings       string `yaml:"cache_strings"` // "none" | "keys" | "all"
	AllowPartial       string `yaml:"allow_partial"` // "off" | "on" | "trailing-strings"
	CatchDuplicateKeys bool   `yaml:"catch_duplicate_keys"`
	LosslessFloats     bool   `yaml:"lossless_floats"`
	MaxDepth           int    `yaml:"max_depth"`
}

// Load reads and parses the YAML config file at path. A missing path is not
// an error; it just means the caller gets jiter.DefaultOptions().
func Load(path string) (jiter.Options, error) {
	opts := jiter.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config: reading %q: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return f.Options()
}

// Options converts f into a jiter.Options, applying jiter's own defaults
// for any field left unset. It rejects unrecognized enum values for
// cache_strings and allow_partial immediately, naming the offending value,
// rather than silently falling back to the default as if the field had
// been left blank.
func (f File) Options() (jiter.Options, error) {
	opts := jiter.DefaultOptions()
	if f.AllowInfNaN != nil {
		opts = opts.WithAllowInfNaN(*f.AllowInfNaN)
	}
	switch f.CacheStrings {
	case "", "none":
		opts.CacheStrings = jiter.CacheNone
	case "keys":
		opts.CacheStrings = jiter.CacheKeys
	case "all":
		opts.CacheStrings = jiter.CacheAll
	default:
		return jiter.Options{}, fmt.Errorf("config: cache_strings: unrecognized value %q (want none, keys, or all)", f.CacheStrings)
	}
	switch f.AllowPartial {
	case "", "off":
		opts.AllowPartial = jiter.PartialOff
	case "on":
		opts.AllowPartial = jiter.PartialOn
	case "trailing-strings":
		opts.AllowPartial = jiter.PartialTrailingStrings
	default:
		return jiter.Options{}, fmt.Errorf("config: allow_partial: unrecognized value %q (want off, on, or trailing-strings)", f.AllowPartial)
	}
	opts.CatchDuplicateKeys = f.CatchDuplicateKeys
	opts.LosslessFloats = f.LosslessFloats
	opts.MaxDepth = f.MaxDepth
	return opts, nil
}

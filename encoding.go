// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

import (
	"github.com/go-jiter/jiter/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

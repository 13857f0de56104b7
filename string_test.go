// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter_test

import (
	"testing"

	"github.com/go-jiter/jiter"
)

func decodeStr(t *testing.T, input string, opts jiter.Options) jiter.Str {
	t.Helper()
	it := jiter.NewIterator([]byte(input), opts)
	s, err := it.NextStr()
	if err != nil {
		t.Fatalf("NextStr(%q): %v", input, err)
	}
	return s
}

func TestStringBorrowedFastPath(t *testing.T) {
	input := `"hello world"`
	s := decodeStr(t, input, jiter.DefaultOptions())
	if s.Owned() {
		t.Error("unescaped string decoded as Owned, want Borrowed")
	}
	if got := s.String(); got != "hello world" {
		t.Errorf("String() = %q, want %q", got, "hello world")
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{"\"\\u0041\"", "A"},
		{"\"\\uD83D\\uDE00\"", "\U0001F600"},
	}
	for _, test := range tests {
		s := decodeStr(t, test.input, jiter.DefaultOptions())
		if !s.Owned() {
			t.Errorf("decode(%q) is Borrowed, want Owned", test.input)
		}
		if got := s.String(); got != test.want {
			t.Errorf("decode(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestStringLoneSurrogateIsError(t *testing.T) {
	tests := []string{`"\uD83D"`, `"\uDE00"`}
	for _, input := range tests {
		it := jiter.NewIterator([]byte(input), jiter.DefaultOptions())
		if _, err := it.NextStr(); err == nil {
			t.Errorf("NextStr(%q) unexpectedly succeeded", input)
		}
	}
}

func TestStringControlCharacterIsError(t *testing.T) {
	input := "\"a\x01b\""
	it := jiter.NewIterator([]byte(input), jiter.DefaultOptions())
	if _, err := it.NextStr(); err == nil {
		t.Error("control character in string unexpectedly accepted")
	}
}

func TestStringUnterminated(t *testing.T) {
	it := jiter.NewIterator([]byte(`"ab`), jiter.DefaultOptions())
	if _, err := it.NextStr(); err == nil {
		t.Error(`"ab without closing quote unexpectedly succeeded`)
	}
}

func TestStringPartialTrailing(t *testing.T) {
	opts := jiter.DefaultOptions()
	opts.AllowPartial = jiter.PartialTrailingStrings
	s := decodeStr(t, `"ab`, opts)
	if got := s.String(); got != "ab" {
		t.Errorf("partial string = %q, want %q", got, "ab")
	}
}

func TestStringPartialTrailingMidUnicodeEscape(t *testing.T) {
	opts := jiter.DefaultOptions()
	opts.AllowPartial = jiter.PartialTrailingStrings
	s := decodeStr(t, `"ab\u12`, opts)
	if got := s.String(); got != "ab" {
		t.Errorf("partial string truncated mid-escape = %q, want %q", got, "ab")
	}

	s = decodeStr(t, `"ab\uD83D`, opts)
	if got := s.String(); got != "ab" {
		t.Errorf("partial string truncated mid-surrogate-pair = %q, want %q", got, "ab")
	}
}

func TestStringMidUnicodeEscapeEOFWithoutPartialIsError(t *testing.T) {
	it := jiter.NewIterator([]byte(`"ab\u12`), jiter.DefaultOptions())
	if _, err := it.NextStr(); err == nil {
		t.Error(`"ab\u12 without AllowPartial unexpectedly succeeded`)
	}
}

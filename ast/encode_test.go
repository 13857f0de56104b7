// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/go-jiter/jiter"
	"github.com/go-jiter/jiter/ast"
)

func roundTrip(t *testing.T, input string) string {
	t.Helper()
	v, err := ast.Parse([]byte(input), jiter.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	out, err := ast.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(out)
}

func TestMarshalRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`false`,
		`[1,2,3]`,
		`{"a":1,"b":[true,null]}`,
		`"hello"`,
	}
	for _, input := range tests {
		if got := roundTrip(t, input); got != input {
			t.Errorf("roundTrip(%q) = %q, want %q", input, got, input)
		}
	}
}

func TestMarshalPreservesNumberLiteral(t *testing.T) {
	tests := []string{
		`99999999999999999999999999999`,
		`-0.001E-100`,
		`0`,
	}
	for _, input := range tests {
		if got := roundTrip(t, input); got != input {
			t.Errorf("roundTrip(%q) = %q, want exact literal preserved", input, got)
		}
	}
}

func TestMarshalEscapesString(t *testing.T) {
	v, err := ast.Parse([]byte(`"a\nb"`), jiter.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := ast.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"a\nb"` {
		t.Errorf(`Marshal = %s, want "a\nb"`, out)
	}
}

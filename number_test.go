// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-jiter/jiter"
)

var bigIntComparer = cmp.Comparer(func(x, y *big.Int) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Cmp(y) == 0
})

func decodeOne(t *testing.T, input string, opts jiter.Options) jiter.Number {
	t.Helper()
	it := jiter.NewIterator([]byte(input), opts)
	n, err := it.NextNumber()
	if err != nil {
		t.Fatalf("NextNumber(%q): %v", input, err)
	}
	return n
}

func TestNumberClassification(t *testing.T) {
	tests := []struct {
		input string
		kind  jiter.NumberKind
	}{
		{"0", jiter.KindInt},
		{"-0", jiter.KindInt},
		{"5139", jiter.KindInt},
		{"-5139", jiter.KindInt},
		{"9223372036854775807", jiter.KindInt},
		{"-9223372036854775808", jiter.KindInt},
		{"9223372036854775808", jiter.KindBigInt},
		{"99999999999999999999999999999", jiter.KindBigInt},
		{"2.3", jiter.KindFloat},
		{"5e+9", jiter.KindFloat},
		{"3.6E+4", jiter.KindFloat},
		{"-0.001E-100", jiter.KindFloat},
	}
	for _, test := range tests {
		n := decodeOne(t, test.input, jiter.DefaultOptions())
		if n.Kind != test.kind {
			t.Errorf("decode(%q).Kind = %v, want %v", test.input, n.Kind, test.kind)
		}
	}
}

func TestNumberExactInt(t *testing.T) {
	n := decodeOne(t, "5139", jiter.DefaultOptions())
	if n.Int != 5139 {
		t.Errorf("Int = %d, want 5139", n.Int)
	}
	n = decodeOne(t, "-5139", jiter.DefaultOptions())
	if n.Int != -5139 {
		t.Errorf("Int = %d, want -5139", n.Int)
	}
}

func TestNumberNegativeZeroRoundTripsToFloat(t *testing.T) {
	n := decodeOne(t, "-0", jiter.DefaultOptions())
	if n.Int != 0 {
		t.Fatalf("Int = %d, want 0", n.Int)
	}
	f := n.Float64()
	if f != 0 || !math.Signbit(f) {
		t.Errorf("Float64() = %v (signbit %v), want -0.0", f, math.Signbit(f))
	}

	pos := decodeOne(t, "0", jiter.DefaultOptions())
	if pf := pos.Float64(); pf != 0 || math.Signbit(pf) {
		t.Errorf("Float64() of plain 0 = %v (signbit %v), want +0.0", pf, math.Signbit(pf))
	}
}

func TestNumberBigInt(t *testing.T) {
	n := decodeOne(t, "99999999999999999999999999999", jiter.DefaultOptions())
	if n.Big == nil || n.Big.String() != "99999999999999999999999999999" {
		t.Errorf("Big = %v, want 99999999999999999999999999999", n.Big)
	}
}

func TestNumberLosslessFloat(t *testing.T) {
	opts := jiter.DefaultOptions()
	opts.LosslessFloats = true
	n := decodeOne(t, "1e2", opts)
	if n.Kind != jiter.KindFloatLossless {
		t.Fatalf("Kind = %v, want KindFloatLossless", n.Kind)
	}
	if string(n.Raw) != "1e2" {
		t.Errorf("Raw = %q, want %q", n.Raw, "1e2")
	}
	if n.Float64() != 100.0 {
		t.Errorf("Float64() = %v, want 100", n.Float64())
	}
}

func TestNumberInvalid(t *testing.T) {
	tests := []string{"", "-", "01", "1.", "1e", "1.e2", "--1"}
	for _, input := range tests {
		it := jiter.NewIterator([]byte(input), jiter.DefaultOptions())
		if _, err := it.NextNumber(); err == nil {
			t.Errorf("NextNumber(%q) unexpectedly succeeded", input)
		}
	}
}

func TestNumberInfNaN(t *testing.T) {
	opts := jiter.DefaultOptions()
	n := decodeOne(t, "Infinity", opts)
	if !math.IsInf(n.Float64(), 1) {
		t.Errorf("Infinity decoded as %v", n.Float64())
	}
	n = decodeOne(t, "-Infinity", opts)
	if !math.IsInf(n.Float64(), -1) {
		t.Errorf("-Infinity decoded as %v", n.Float64())
	}
	n = decodeOne(t, "NaN", opts)
	if !math.IsNaN(n.Float64()) {
		t.Errorf("NaN decoded as %v", n.Float64())
	}

	opts = opts.WithAllowInfNaN(false)
	it := jiter.NewIterator([]byte("Infinity"), opts)
	if _, err := it.NextNumber(); err == nil {
		t.Error("Infinity unexpectedly accepted with AllowInfNaN=false")
	}
}

func TestNumberOutOfRangeOverflow(t *testing.T) {
	opts := jiter.DefaultOptions().WithAllowInfNaN(false)
	it := jiter.NewIterator([]byte("1e1000"), opts)
	if _, err := it.NextNumber(); err == nil {
		t.Error("1e1000 unexpectedly accepted with AllowInfNaN=false")
	}

	opts = jiter.DefaultOptions().WithAllowInfNaN(true)
	n := decodeOne(t, "1e1000", opts)
	if !math.IsInf(n.Float64(), 1) {
		t.Errorf("1e1000 decoded as %v, want +Inf", n.Float64())
	}
}

func TestNumberBigIntStableAcrossDecodes(t *testing.T) {
	n1 := decodeOne(t, "99999999999999999999999999999", jiter.DefaultOptions())
	n2 := decodeOne(t, "99999999999999999999999999999", jiter.DefaultOptions())
	if diff := cmp.Diff(n1, n2, bigIntComparer); diff != "" {
		t.Errorf("decoding the same bigint literal twice produced different results:\n%s", diff)
	}
}

func TestKnownIntRejectsFloat(t *testing.T) {
	it := jiter.NewIterator([]byte("1.5"), jiter.DefaultOptions())
	if _, err := it.NextInt(); err == nil {
		t.Error("NextInt(1.5) unexpectedly succeeded")
	}
}

// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter_test

import (
	"strings"
	"testing"

	"github.com/go-jiter/jiter"
)

func TestIteratorArrayWalk(t *testing.T) {
	it := jiter.NewIterator([]byte("[1,2,3]"), jiter.DefaultOptions())
	p, ok, err := it.NextArray()
	if err != nil {
		t.Fatalf("NextArray: %v", err)
	}
	var got []int64
	for ok {
		n, err := it.KnownInt(p)
		if err != nil {
			t.Fatalf("KnownInt: %v", err)
		}
		got = append(got, n.Int)
		p, ok, err = it.ArrayStep()
		if err != nil {
			t.Fatalf("ArrayStep: %v", err)
		}
	}
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
	if err := it.Finish(); err != nil {
		t.Errorf("Finish: %v", err)
	}
}

func TestIteratorEmptyContainers(t *testing.T) {
	it := jiter.NewIterator([]byte("[]"), jiter.DefaultOptions())
	_, ok, err := it.NextArray()
	if err != nil || ok {
		t.Errorf("NextArray([]) = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	it = jiter.NewIterator([]byte("{}"), jiter.DefaultOptions())
	_, ok, err = it.NextObject()
	if err != nil || ok {
		t.Errorf("NextObject({}) = ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestIteratorObjectWalk(t *testing.T) {
	it := jiter.NewIterator([]byte(`{"a":1,"b":2}`), jiter.DefaultOptions())
	key, ok, err := it.NextObject()
	if err != nil {
		t.Fatalf("NextObject: %v", err)
	}
	var keys []string
	for ok {
		keys = append(keys, key.String())
		if _, err := it.NextInt(); err != nil {
			t.Fatalf("NextInt: %v", err)
		}
		key, ok, err = it.NextKey()
		if err != nil {
			t.Fatalf("NextKey: %v", err)
		}
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys = %v, want [a b]", keys)
	}
}

func TestIteratorTrailingComma(t *testing.T) {
	tests := []string{"[1,2,]", `{"a":1,}`}
	for _, input := range tests {
		it := jiter.NewIterator([]byte(input), jiter.DefaultOptions())
		if err := it.NextSkip(); err == nil {
			t.Errorf("NextSkip(%q) unexpectedly succeeded", input)
		}
	}
}

func TestIteratorFinishRejectsTrailingCharacters(t *testing.T) {
	it := jiter.NewIterator([]byte("1 2"), jiter.DefaultOptions())
	if _, err := it.NextNumber(); err != nil {
		t.Fatalf("NextNumber: %v", err)
	}
	if err := it.Finish(); err == nil {
		t.Error("Finish unexpectedly succeeded with trailing characters")
	}
}

func TestIteratorSkip(t *testing.T) {
	input := `{"a":[1,2,{"b":"c"}],"d":null}`
	it := jiter.NewIterator([]byte(input), jiter.DefaultOptions())
	if err := it.NextSkip(); err != nil {
		t.Fatalf("NextSkip: %v", err)
	}
	if err := it.Finish(); err != nil {
		t.Errorf("Finish: %v", err)
	}
}

func TestIteratorRecursionLimit(t *testing.T) {
	input := strings.Repeat("[", 201) + strings.Repeat("]", 201)
	it := jiter.NewIterator([]byte(input), jiter.DefaultOptions())
	if err := it.NextSkip(); err == nil {
		t.Error("201 levels of nesting unexpectedly accepted with the default depth limit")
	}
}

func TestIteratorRecursionLimitConfigurable(t *testing.T) {
	input := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	opts := jiter.DefaultOptions()
	opts.MaxDepth = 3
	it := jiter.NewIterator([]byte(input), opts)
	if err := it.NextSkip(); err == nil {
		t.Error("nesting deeper than MaxDepth unexpectedly accepted")
	}
}

func TestIteratorEmptyInput(t *testing.T) {
	it := jiter.NewIterator([]byte(""), jiter.DefaultOptions())
	if _, err := it.Peek(); err == nil {
		t.Error("Peek on empty input unexpectedly succeeded")
	}
}

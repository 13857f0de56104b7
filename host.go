// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jiter

// Builder is the Host Bridge (C10): an abstract facade that turns decoded
// events into whatever runtime value a particular host wants. Drive calls
// these methods strictly in order and never calls a push method before the
// matching begin method for the container it belongs to.
//
// Builder implementations are the only place host-specific value
// construction belongs; the core decoder never inspects or retains what a
// Builder returns from Begin*.
type Builder interface {
	MakeNull() error
	MakeBool(b bool) error
	MakeInt(n Number) error
	MakeBigInt(n Number) error
	MakeFloat(n Number) error
	MakeStr(s Str) error

	BeginArray() error
	PushArray() error // called after each element has been built
	EndArray() error

	BeginObject() error
	BeginMember(key Str) error // called once a member's key is known, before its value
	PushObject() error         // called after the member's value has been built
	EndObject() error
}

// Drive walks exactly one JSON value from it, delivering events to b in
// order. It is the generic consumer of the pull parser that any Host Bridge
// implementation (such as the ast package's tree builder) can sit behind; the tree
// builder is simply the one Builder shipped with this module.
func Drive(it *Iterator, b Builder) error {
	p, err := it.Peek()
	if err != nil {
		return err
	}
	return driveValue(it, b, p)
}

func driveValue(it *Iterator, b Builder, p Peek) error {
	switch p {
	case PeekNull:
		if err := it.KnownNull(p); err != nil {
			return err
		}
		return b.MakeNull()
	case PeekTrue, PeekFalse:
		v, err := it.KnownBool(p)
		if err != nil {
			return err
		}
		return b.MakeBool(v)
	case PeekString:
		s, err := it.KnownStr(p)
		if err != nil {
			return err
		}
		return b.MakeStr(s)
	case PeekArray:
		return driveArray(it, b, p)
	case PeekObject:
		return driveObject(it, b, p)
	default:
		n, err := it.KnownNumber(p)
		if err != nil {
			return err
		}
		switch n.Kind {
		case KindInt:
			return b.MakeInt(n)
		case KindBigInt:
			return b.MakeBigInt(n)
		default:
			return b.MakeFloat(n)
		}
	}
}

func driveArray(it *Iterator, b Builder, p Peek) error {
	if err := b.BeginArray(); err != nil {
		return err
	}
	first, ok, err := it.NextArray()
	if err != nil {
		return err
	}
	for ok {
		if err := driveValue(it, b, first); err != nil {
			return err
		}
		if err := b.PushArray(); err != nil {
			return err
		}
		first, ok, err = it.ArrayStep()
		if err != nil {
			return err
		}
	}
	return b.EndArray()
}

func driveObject(it *Iterator, b Builder, p Peek) error {
	if err := b.BeginObject(); err != nil {
		return err
	}
	key, ok, err := it.NextObject()
	if err != nil {
		return err
	}
	for ok {
		if err := b.BeginMember(key); err != nil {
			return err
		}
		v, err := it.Peek()
		if err != nil {
			return err
		}
		if err := driveValue(it, b, v); err != nil {
			return err
		}
		if err := b.PushObject(); err != nil {
			return err
		}
		key, ok, err = it.NextKey()
		if err != nil {
			return err
		}
	}
	return b.EndObject()
}

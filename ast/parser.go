// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/go-jiter/jiter"

// Parse decodes a single JSON value from data into a Value tree, driving
// the pull parser (C6) through a TreeBuilder (C7) via jiter.Drive. If opts
// enables AllowPartial and the input ends before the outermost value is
// complete, the already-completed prefix is returned instead of an error,
// per the partial-parse controller (C8).
func Parse(data []byte, opts jiter.Options) (Value, error) {
	tb := newTreeBuilder(data, opts.CatchDuplicateKeys)
	it := jiter.NewIterator(data, opts)

	err := jiter.Drive(it, tb)
	if err == nil {
		if ferr := it.Finish(); ferr != nil {
			return Value{}, ferr
		}
		return tb.root, nil
	}

	if opts.AllowPartial != jiter.PartialOff {
		if je, ok := err.(*jiter.Error); ok && je.Kind.IsEOF() {
			if v, ok := tb.truncate(); ok {
				return v, nil
			}
		}
	}
	return Value{}, err
}

// frame is one open container on the TreeBuilder's explicit construction
// stack (C7). Recursion depth is already bounded by the pull parser's own
// frame stack (it errors with RecursionLimitExceeded before a frame this
// deep is ever pushed here), so this stack never grows beyond that same
// bound; Drive's Go-level recursion through driveArray/driveObject rides
// along it rather than duplicating its bookkeeping.
type frame struct {
	isObject bool
	arr      []Value
	obj      []Member
	keys     map[string]bool // nil unless duplicate-key detection is enabled

	pendingKey *string // set by BeginMember, cleared by PushObject
}

// treeBuilder implements jiter.Builder, turning the event stream Drive
// produces into a Value tree. Every completed value, whether from a MakeX
// call or an End call, goes through emit, which sets pending and, when no
// container is open, also makes it the root; the corresponding Push call
// attaches pending to the open container frame, mirroring a shift-reduce
// tree builder that accumulates a result one reduction at a time.
type treeBuilder struct {
	data     []byte
	stack    []*frame
	pending  Value
	root     Value
	haveRoot bool
	catchDup bool
}

func newTreeBuilder(data []byte, catchDuplicateKeys bool) *treeBuilder {
	return &treeBuilder{data: data, catchDup: catchDuplicateKeys}
}

func (tb *treeBuilder) top() *frame { return tb.stack[len(tb.stack)-1] }

// emit records v as the most recently completed value. If no container is
// currently open, v is the whole document.
func (tb *treeBuilder) emit(v Value) error {
	tb.pending = v
	if len(tb.stack) == 0 {
		tb.root = v
		tb.haveRoot = true
	}
	return nil
}

func (tb *treeBuilder) MakeNull() error  { return tb.emit(Value{kind: KindNull}) }
func (tb *treeBuilder) MakeBool(b bool) error {
	return tb.emit(Value{kind: KindBool, b: b})
}
func (tb *treeBuilder) MakeInt(n jiter.Number) error    { return tb.emit(Value{kind: KindNumber, num: n}) }
func (tb *treeBuilder) MakeBigInt(n jiter.Number) error { return tb.emit(Value{kind: KindNumber, num: n}) }
func (tb *treeBuilder) MakeFloat(n jiter.Number) error  { return tb.emit(Value{kind: KindNumber, num: n}) }
func (tb *treeBuilder) MakeStr(s jiter.Str) error {
	return tb.emit(Value{kind: KindString, str: s})
}

func (tb *treeBuilder) BeginArray() error {
	tb.stack = append(tb.stack, &frame{})
	return nil
}

func (tb *treeBuilder) PushArray() error {
	fr := tb.top()
	fr.arr = append(fr.arr, tb.pending)
	return nil
}

func (tb *treeBuilder) EndArray() error {
	fr := tb.pop()
	return tb.emit(Value{kind: KindArray, arr: fr.arr})
}

func (tb *treeBuilder) BeginObject() error {
	fr := &frame{isObject: true}
	if tb.catchDup {
		fr.keys = make(map[string]bool)
	}
	tb.stack = append(tb.stack, fr)
	return nil
}

func (tb *treeBuilder) BeginMember(key jiter.Str) error {
	fr := tb.top()
	k := key.String()
	if fr.keys != nil {
		if fr.keys[k] {
			return jiter.NewError(tb.data, key.Pos, jiter.DuplicateKey)
		}
		fr.keys[k] = true
	}
	fr.pendingKey = &k
	return nil
}

func (tb *treeBuilder) PushObject() error {
	fr := tb.top()
	fr.obj = append(fr.obj, Member{Key: *fr.pendingKey, Value: tb.pending})
	fr.pendingKey = nil
	return nil
}

func (tb *treeBuilder) EndObject() error {
	fr := tb.pop()
	return tb.emit(Value{kind: KindObject, obj: fr.obj})
}

func (tb *treeBuilder) pop() *frame {
	fr := tb.top()
	tb.stack = tb.stack[:len(tb.stack)-1]
	return fr
}

// truncate closes every still-open frame using only what it has already
// committed, discarding a dangling member key whose value never arrived,
// and reports the resulting root value. It returns ok=false if no value at
// all had been completed by the time input ran out - there is nothing to
// salvage under allow_partial in that case.
func (tb *treeBuilder) truncate() (Value, bool) {
	for len(tb.stack) > 0 {
		fr := tb.pop()
		var v Value
		if fr.isObject {
			v = Value{kind: KindObject, obj: fr.obj}
		} else {
			v = Value{kind: KindArray, arr: fr.arr}
		}
		if len(tb.stack) == 0 {
			tb.root, tb.haveRoot = v, true
			break
		}
		parent := tb.top()
		if parent.isObject {
			if parent.pendingKey == nil {
				// The container being closed was never attached to its
				// parent member (the key itself never finished decoding);
				// there is nothing to hang it from, so it is dropped.
				continue
			}
			parent.obj = append(parent.obj, Member{Key: *parent.pendingKey, Value: v})
			parent.pendingKey = nil
		} else {
			parent.arr = append(parent.arr, v)
		}
	}
	return tb.root, tb.haveRoot
}

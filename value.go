package jsondom

import (
	"github.com/jsondom/jsondom/arena"
	"github.com/jsondom/jsondom/parse"
)

// Value is a standalone tree with its own private arena, the owning
// counterpart of the borrowed ValueRef. It is handy for building a subtree
// on the side before copying it into a document.
type Value struct {
	a    *arena.Arena
	root arena.NodeID
}

// NewValue makes a Value holding a single Null node.
func NewValue() *Value {
	a := arena.New()
	return &Value{a: a, root: a.NewNode()}
}

// ParseValue parses JSON text into a fresh Value.
func ParseValue(data []byte, opts ...parse.Option) (*Value, error) {
	a := arena.New()
	id, err := parse.Parse(a, data, opts...)
	if err != nil {
		return nil, err
	}
	return &Value{a: a, root: id}, nil
}

// CopyValue deep-copies the subtree at src into a fresh Value.
func CopyValue(src ValueRef) *Value {
	v := NewValue()
	v.Ref().CopyFrom(src)
	return v
}

// ValueFromAny builds a Value from an arbitrary Go value via FromAny.
func ValueFromAny(x any) (*Value, error) {
	v := NewValue()
	if err := FromAny(v.Ref(), x); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Value) Ref() ValueRef { return ValueRef{a: v.a, id: v.root} }

func (v *Value) String() string { return v.Ref().String() }

package jsondom

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jsondom/jsondom/arena"
	"github.com/jsondom/jsondom/encode"
)

// length used when rendering a value inside a panic message
const panicStringMax = 15

// ValueRef is a borrowed handle to one node: an (arena, node id) pair. It
// holds no ownership; it must not outlive its arena or the node it names.
// A ValueRef whose node has been erased is stale, and any use of it panics
// with arena.ErrStale.
type ValueRef struct {
	a  *arena.Arena
	id arena.NodeID
}

// NewRef makes a handle for a node allocated directly through an arena.
func NewRef(a *arena.Arena, id arena.NodeID) ValueRef {
	return ValueRef{a: a, id: id}
}

func (v ValueRef) Arena() *arena.Arena { return v.a }
func (v ValueRef) ID() arena.NodeID    { return v.id }

func (v ValueRef) Kind() arena.Kind { return v.a.Kind(v.id) }

// Same reports identity: whether o names the same node as v. It is not
// structural equality; see Equal.
func (v ValueRef) Same(o ValueRef) bool {
	return v.a == o.a && v.id == o.id
}

// Equal reports structural equality of the two subtrees.
func (v ValueRef) Equal(o ValueRef) bool {
	return arena.Equal(v.a, v.id, o.a, o.id)
}

// Kind predicates. They never panic on any live node.

func (v ValueRef) IsNull() bool   { return v.Kind() == arena.Null }
func (v ValueRef) IsBool() bool   { return v.Kind() == arena.Bool }
func (v ValueRef) IsNumber() bool { return v.Kind().IsNumber() }
func (v ValueRef) IsIntegral() bool {
	k := v.Kind()
	return k == arena.Int || k == arena.Uint
}
func (v ValueRef) IsFloat() bool  { return v.Kind() == arena.Float }
func (v ValueRef) IsString() bool { return v.Kind() == arena.String }
func (v ValueRef) IsArray() bool  { return v.Kind() == arena.Array }
func (v ValueRef) IsObject() bool { return v.Kind() == arena.Object }

// Setters. Assignment is permissive: the node takes the new kind and
// payload unconditionally, releasing any children it held.

func (v ValueRef) SetNull() ValueRef {
	v.a.SetNull(v.id)
	return v
}

func (v ValueRef) SetBool(b bool) ValueRef {
	v.a.SetBool(v.id, b)
	return v
}

func (v ValueRef) SetInt(i int64) ValueRef {
	v.a.SetInt(v.id, i)
	return v
}

func (v ValueRef) SetUint(u uint64) ValueRef {
	v.a.SetUint(v.id, u)
	return v
}

func (v ValueRef) SetFloat(f float64) ValueRef {
	v.a.SetFloat(v.id, f)
	return v
}

// SetString stores a copy of s in the tree's arena.
func (v ValueRef) SetString(s string) ValueRef {
	v.a.SetString(v.id, s)
	return v
}

// SetStringView stores b without copying. The caller guarantees b outlives
// the tree and stays unmodified; when that cannot be guaranteed, use
// SetString.
func (v ValueRef) SetStringView(b []byte) ValueRef {
	v.a.SetStringView(v.id, b)
	return v
}

// SetArray makes the node an empty array and returns its view.
func (v ValueRef) SetArray() ArrayRef {
	v.a.SetArray(v.id)
	return ArrayRef{v: v}
}

// SetObject makes the node an empty object and returns its view.
func (v ValueRef) SetObject() ObjectRef {
	v.a.SetObject(v.id)
	return ObjectRef{v: v}
}

// CopyFrom replaces the node with a deep copy of the subtree at o.
func (v ValueRef) CopyFrom(o ValueRef) ValueRef {
	arena.Copy(v.a, v.id, o.a, o.id)
	return v
}

// At returns the i-th element. The node must already be an array, and i
// must be in range; both failures panic.
func (v ValueRef) At(i int) ValueRef {
	if !v.IsArray() {
		panic(fmt.Errorf("%w: At on %s", ErrKind, v.ToString(panicStringMax)))
	}
	return ValueRef{a: v.a, id: v.a.Elem(v.id, i)}
}

// Key returns the member named k, inserting a Null member if absent. A Null
// node is coerced to an object; any other non-object kind panics. Use Find
// for a lookup with no side effects.
func (v ValueRef) Key(k string) ValueRef {
	switch v.Kind() {
	case arena.Null:
		v.a.SetObject(v.id)
	case arena.Object:
	default:
		panic(fmt.Errorf("%w: Key on %s", ErrKind, v.ToString(panicStringMax)))
	}
	if val, ok := v.a.FindMember(v.id, k); ok {
		return ValueRef{a: v.a, id: val}
	}
	return ValueRef{a: v.a, id: v.a.AddMember(v.id, k)}
}

// Has reports whether the node is an object with a member named k.
func (v ValueRef) Has(k string) bool {
	if !v.IsObject() {
		return false
	}
	_, ok := v.a.FindMember(v.id, k)
	return ok
}

// Find returns the member named k without mutating anything. It reports
// false when the node is not an object or the key is absent.
func (v ValueRef) Find(k string) (ValueRef, bool) {
	if !v.IsObject() {
		return ValueRef{}, false
	}
	val, ok := v.a.FindMember(v.id, k)
	if !ok {
		return ValueRef{}, false
	}
	return ValueRef{a: v.a, id: val}, true
}

// Append appends a converted copy of x. A Null node is coerced to an
// array; any other non-array kind panics. The new element's handle is
// returned.
func (v ValueRef) Append(x any) ValueRef {
	switch v.Kind() {
	case arena.Null:
		v.a.SetArray(v.id)
	case arena.Array:
	default:
		panic(fmt.Errorf("%w: Append on %s", ErrKind, v.ToString(panicStringMax)))
	}
	el := ValueRef{a: v.a, id: v.a.Append(v.id)}
	return el.Set(x)
}

// Len is the member count of an object, element count of an array, byte
// length of a string, and 0 for every other kind.
func (v ValueRef) Len() int {
	switch v.Kind() {
	case arena.Object:
		return v.a.MemberLen(v.id)
	case arena.Array:
		return v.a.Len(v.id)
	case arena.String:
		return v.a.StrLen(v.id)
	}
	return 0
}

// IsEmpty reports emptiness of containers and strings. Scalars report
// false by convention even though their Len is 0.
func (v ValueRef) IsEmpty() bool {
	switch v.Kind() {
	case arena.Object, arena.Array, arena.String:
		return v.Len() == 0
	}
	return false
}

// Array views the node as an array, coercing a Null node in place. Any
// other non-array kind panics.
func (v ValueRef) Array() ArrayRef {
	switch v.Kind() {
	case arena.Null:
		v.a.SetArray(v.id)
	case arena.Array:
	default:
		panic(fmt.Errorf("%w: %s is not an array", ErrKind, v.ToString(panicStringMax)))
	}
	return ArrayRef{v: v}
}

// Object views the node as an object, coercing a Null node in place. Any
// other non-object kind panics.
func (v ValueRef) Object() ObjectRef {
	switch v.Kind() {
	case arena.Null:
		v.a.SetObject(v.id)
	case arena.Object:
	default:
		panic(fmt.Errorf("%w: %s is not an object", ErrKind, v.ToString(panicStringMax)))
	}
	return ObjectRef{v: v}
}

// Encode writes the subtree as JSON text.
func (v ValueRef) Encode(w io.Writer, opts ...encode.Option) error {
	return encode.Encode(v.a, v.id, w, opts...)
}

// ToString renders the value for diagnostics. Numbers and booleans use
// their native textual form, Null renders as "Null", and strings, arrays
// and objects go through the JSON writer. maxLen > 0 truncates the result
// to maxLen bytes with a trailing ellipsis.
func (v ValueRef) ToString(maxLen int) string {
	switch v.Kind() {
	case arena.Null:
		return "Null"
	case arena.Bool:
		return strconv.FormatBool(v.a.Bool(v.id))
	case arena.Int:
		return strconv.FormatInt(v.a.Int(v.id), 10)
	case arena.Uint:
		return strconv.FormatUint(v.a.Uint(v.id), 10)
	case arena.Float:
		return strconv.FormatFloat(v.a.Float(v.id), 'g', -1, 64)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v.a, v.id, buf); err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	s := buf.String()
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}

func (v ValueRef) String() string {
	return v.ToString(0)
}

package jsondom

import (
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/jsondom/jsondom/arena"
	"github.com/jsondom/jsondom/parse"
)

// Set assigns a converted copy of x to the node, releasing whatever it
// held. Native integers normalize to the tree's 64-bit canonical widths,
// strings and byte slices are stored as owned copies, and a ValueRef,
// ArrayRef, or ObjectRef source deep-copies its subtree. Any other Go value goes through FromAny; a value
// FromAny cannot represent panics.
func (v ValueRef) Set(x any) ValueRef {
	switch t := x.(type) {
	case nil:
		v.SetNull()
	case bool:
		v.SetBool(t)
	case int:
		v.SetInt(int64(t))
	case int8:
		v.SetInt(int64(t))
	case int16:
		v.SetInt(int64(t))
	case int32:
		v.SetInt(int64(t))
	case int64:
		v.SetInt(t)
	case uint:
		v.SetUint(uint64(t))
	case uint8:
		v.SetUint(uint64(t))
	case uint16:
		v.SetUint(uint64(t))
	case uint32:
		v.SetUint(uint64(t))
	case uint64:
		v.SetUint(t)
	case float32:
		v.SetFloat(float64(t))
	case float64:
		v.SetFloat(t)
	case string:
		v.SetString(t)
	case []byte:
		v.SetString(string(t))
	case ValueRef:
		v.CopyFrom(t)
	case ArrayRef:
		v.CopyFrom(t.Ref())
	case ObjectRef:
		v.CopyFrom(t.Ref())
	default:
		if err := FromAny(v, x); err != nil {
			panic(fmt.Errorf("%w: cannot assign %T: %v", ErrKind, x, err))
		}
	}
	return v
}

// SetSeq makes the node an array of the sequence's elements in order.
func SetSeq[T Scalar](v ValueRef, seq iter.Seq[T]) ArrayRef {
	ar := v.SetArray()
	for x := range seq {
		ar.AppendNull().Set(x)
	}
	return ar
}

// SetSlice is SetSeq over a slice.
func SetSlice[T Scalar](v ValueRef, s []T) ArrayRef {
	ar := v.SetArray()
	ar.Reserve(len(s))
	for _, x := range s {
		ar.AppendNull().Set(x)
	}
	return ar
}

// SetSeqViews makes the node an array of borrowed-view String elements.
// The caller guarantees every element buffer outlives the tree unmodified;
// use SetSeq with strings when that cannot be guaranteed.
func SetSeqViews(v ValueRef, seq iter.Seq[[]byte]) ArrayRef {
	ar := v.SetArray()
	for b := range seq {
		ar.AppendNull().SetStringView(b)
	}
	return ar
}

// SetMapSeq makes the node an object with one member per pair, preserving
// the sequence order.
func SetMapSeq[T Scalar](v ValueRef, seq iter.Seq2[string, T]) ObjectRef {
	or := v.SetObject()
	for k, x := range seq {
		or.InsertNull(k).Set(x)
	}
	return or
}

// SetMapSeqViews makes the node an object whose member keys and String
// values are borrowed views over the sequenced buffers. The caller
// guarantees every buffer outlives the tree unmodified; use SetMapSeq when
// that cannot be guaranteed.
func SetMapSeqViews(v ValueRef, seq iter.Seq2[[]byte, []byte]) ObjectRef {
	or := v.SetObject()
	for k, val := range seq {
		or.InsertNullView(k).SetStringView(val)
	}
	return or
}

// SetMap is SetMapSeq over a Go map. Map iteration order is randomized, so
// members are inserted in sorted key order for deterministic trees; use
// SetMapSeq to impose a caller-defined order.
func SetMap[T Scalar](v ValueRef, m map[string]T) ObjectRef {
	or := v.SetObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		or.InsertNull(k).Set(m[k])
	}
	return or
}

// GetStringMap strictly extracts the object into a native map. It is
// all-or-nothing: one unconvertible member value fails the whole call. With
// duplicate keys the first member wins.
func GetStringMap[T Scalar](or ObjectRef) (map[string]T, bool) {
	res := make(map[string]T, or.Len())
	for m := range or.Members() {
		x, ok := Get[T](m.Value)
		if !ok {
			return nil, false
		}
		k := AsString(m.Key)
		if _, dup := res[k]; !dup {
			res[k] = x
		}
	}
	return res, true
}

// AsStringMap leniently extracts the object into a native map; member
// values As cannot represent degrade to T's zero value.
func AsStringMap[T Scalar](or ObjectRef) map[string]T {
	res := make(map[string]T, or.Len())
	for m := range or.Members() {
		k := AsString(m.Key)
		if _, dup := res[k]; !dup {
			res[k] = As[T](m.Value)
		}
	}
	return res
}

// Export walks the subtree into generic Go values: nil, bool, int64,
// uint64, float64, string, []any, and map[string]any. Object member order
// is lost and with duplicate keys the first member wins.
func Export(v ValueRef) any {
	switch v.Kind() {
	case arena.Null:
		return nil
	case arena.Bool:
		return v.a.Bool(v.id)
	case arena.Int:
		return v.a.Int(v.id)
	case arena.Uint:
		return v.a.Uint(v.id)
	case arena.Float:
		return v.a.Float(v.id)
	case arena.String:
		return v.a.Str(v.id)
	case arena.Array:
		n := v.a.Len(v.id)
		res := make([]any, n)
		for i := 0; i < n; i++ {
			res[i] = Export(v.At(i))
		}
		return res
	case arena.Object:
		n := v.a.MemberLen(v.id)
		res := make(map[string]any, n)
		for i := 0; i < n; i++ {
			k, val := v.a.MemberAt(v.id, i)
			key := v.a.Str(k)
			if _, dup := res[key]; !dup {
				res[key] = Export(ValueRef{a: v.a, id: val})
			}
		}
		return res
	default:
		panic(fmt.Errorf("%w: export of %s", ErrKind, v.Kind()))
	}
}

// FromAny assigns an arbitrary Go value to the node. Scalars and node
// references take the direct Set path; everything else round-trips through
// encoding/json, so struct tags and Marshaler implementations apply.
func FromAny(v ValueRef, x any) error {
	switch x.(type) {
	case nil, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, string, []byte,
		ValueRef, ArrayRef, ObjectRef:
		v.Set(x)
		return nil
	}
	data, err := json.Marshal(x)
	if err != nil {
		return err
	}
	tmp, err := parse.Parse(v.a, data)
	if err != nil {
		return err
	}
	arena.Copy(v.a, v.id, v.a, tmp)
	v.a.Release(tmp)
	return nil
}

package jsondom

import (
	"fmt"
	"iter"
)

// ArrayRef is a sequence view over a ValueRef known to be an array. It owns
// nothing; it is only valid while the wrapped reference is.
type ArrayRef struct {
	v ValueRef
}

func (ar ArrayRef) Ref() ValueRef { return ar.v }

func (ar ArrayRef) Len() int      { return ar.v.a.Len(ar.v.id) }
func (ar ArrayRef) IsEmpty() bool { return ar.Len() == 0 }
func (ar ArrayRef) Cap() int      { return ar.v.a.Cap(ar.v.id) }

func (ar ArrayRef) Reserve(n int) {
	ar.v.a.Reserve(ar.v.id, n)
}

// At returns the i-th element; out of range panics.
func (ar ArrayRef) At(i int) ValueRef {
	return ValueRef{a: ar.v.a, id: ar.v.a.Elem(ar.v.id, i)}
}

// Front panics on an empty array.
func (ar ArrayRef) Front() ValueRef {
	if ar.IsEmpty() {
		panic(fmt.Errorf("%w: Front", ErrEmpty))
	}
	return ar.At(0)
}

// Back panics on an empty array.
func (ar ArrayRef) Back() ValueRef {
	if ar.IsEmpty() {
		panic(fmt.Errorf("%w: Back", ErrEmpty))
	}
	return ar.At(ar.Len() - 1)
}

// Append appends a converted copy of x and returns the new element.
func (ar ArrayRef) Append(x any) ValueRef {
	return ar.AppendNull().Set(x)
}

// AppendNull appends a Null element and returns it for in-place
// construction.
func (ar ArrayRef) AppendNull() ValueRef {
	return ValueRef{a: ar.v.a, id: ar.v.a.Append(ar.v.id)}
}

// PopBack removes the last element; it is a no-op on an empty array.
func (ar ArrayRef) PopBack() {
	ar.v.a.PopBack(ar.v.id)
}

// Resize grows by appending Null elements or shrinks by popping from the
// back. It never inserts or removes in the middle.
func (ar ArrayRef) Resize(n int) {
	ar.resize(n, nil, false)
}

// ResizeFill is Resize growing with converted copies of fill.
func (ar ArrayRef) ResizeFill(n int, fill any) {
	ar.resize(n, fill, true)
}

func (ar ArrayRef) resize(n int, fill any, haveFill bool) {
	if d := n - ar.Len(); d > 0 {
		ar.Reserve(n)
		for range d {
			el := ar.AppendNull()
			if haveFill {
				el.Set(fill)
			}
		}
		return
	}
	for ar.Len() > n {
		ar.PopBack()
	}
}

// Erase removes the element at i. References to elements at or after i
// become stale or shift.
func (ar ArrayRef) Erase(i int) {
	ar.v.a.EraseElems(ar.v.id, i, i+1)
}

// EraseRange removes elements [i, j).
func (ar ArrayRef) EraseRange(i, j int) {
	ar.v.a.EraseElems(ar.v.id, i, j)
}

func (ar ArrayRef) Clear() {
	ar.v.a.Clear(ar.v.id)
}

// All iterates elements in order.
func (ar ArrayRef) All() iter.Seq2[int, ValueRef] {
	return func(yield func(int, ValueRef) bool) {
		for i := 0; i < ar.Len(); i++ {
			if !yield(i, ar.At(i)) {
				return
			}
		}
	}
}

func (ar ArrayRef) String() string {
	return ar.v.String()
}

// GetSlice converts every element with the strict Get. It is
// all-or-nothing: one failing element makes the whole conversion report
// false with no partial result.
func GetSlice[T Scalar](ar ArrayRef) ([]T, bool) {
	res := make([]T, 0, ar.Len())
	for _, el := range ar.All() {
		x, ok := Get[T](el)
		if !ok {
			return nil, false
		}
		res = append(res, x)
	}
	return res, true
}

// AsSlice converts every element with the permissive As, keeping an
// element only if every given predicate holds for it. An element As cannot
// represent degrades to T's zero value rather than being skipped.
func AsSlice[T Scalar](ar ArrayRef, preds ...func(T) bool) []T {
	res := make([]T, 0, ar.Len())
elems:
	for _, el := range ar.All() {
		x := As[T](el)
		for _, pred := range preds {
			if !pred(x) {
				continue elems
			}
		}
		res = append(res, x)
	}
	return res
}

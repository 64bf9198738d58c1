package jsondom

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsondom/jsondom/arena"
)

func mustPanic(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", want)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, want) {
			t.Fatalf("panic %v does not wrap %v", err, want)
		}
	}()
	f()
}

func parseRef(t *testing.T, src string) ValueRef {
	t.Helper()
	v, err := ParseValue([]byte(src))
	if err != nil {
		t.Fatalf("parse %s: %v", src, err)
	}
	return v.Ref()
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		src  string
		pred func(ValueRef) bool
	}{
		{`null`, ValueRef.IsNull},
		{`true`, ValueRef.IsBool},
		{`3`, ValueRef.IsNumber},
		{`3`, ValueRef.IsIntegral},
		{`3.5`, ValueRef.IsFloat},
		{`3.5`, ValueRef.IsNumber},
		{`"s"`, ValueRef.IsString},
		{`[]`, ValueRef.IsArray},
		{`{}`, ValueRef.IsObject},
	}
	for _, tt := range tests {
		if !tt.pred(parseRef(t, tt.src)) {
			t.Errorf("predicate false for %s", tt.src)
		}
	}
	if parseRef(t, `3.5`).IsIntegral() {
		t.Error("float is integral")
	}
	if parseRef(t, `"s"`).IsNumber() {
		t.Error("string is number")
	}
}

func TestKeyPresentOrCreate(t *testing.T) {
	v := NewValue().Ref()
	// Null coerces to Object
	v.Key("a").SetInt(1)
	if !v.IsObject() {
		t.Fatal("Key did not coerce Null to Object")
	}
	if v.Len() != 1 {
		t.Fatalf("member count %d", v.Len())
	}
	// existing key is returned, not duplicated
	v.Key("a").SetInt(2)
	if v.Len() != 1 {
		t.Fatalf("member count %d after rewrite", v.Len())
	}
	if x, _ := Get[int64](v.Key("a")); x != 2 {
		t.Fatalf("value %d", x)
	}
	// lookup of a missing key inserts Null
	if !v.Key("b").IsNull() {
		t.Fatal("created member is not Null")
	}
	if v.Len() != 2 {
		t.Fatalf("member count %d after create", v.Len())
	}
}

func TestFindAndHasDoNotMutate(t *testing.T) {
	v := parseRef(t, `{"a":1}`)
	if _, ok := v.Find("missing"); ok {
		t.Fatal("found missing key")
	}
	if v.Has("missing") {
		t.Fatal("has missing key")
	}
	if v.Len() != 1 {
		t.Fatal("find/has inserted a member")
	}
	// non-objects report absent instead of panicking
	n := parseRef(t, `3`)
	if n.Has("a") {
		t.Fatal("scalar has key")
	}
	if _, ok := n.Find("a"); ok {
		t.Fatal("scalar finds key")
	}
}

func TestKeyOnScalarPanics(t *testing.T) {
	v := parseRef(t, `3`)
	mustPanic(t, ErrKind, func() { v.Key("a") })
}

func TestAt(t *testing.T) {
	v := parseRef(t, `[10,20]`)
	if x, _ := Get[int64](v.At(1)); x != 20 {
		t.Fatalf("At(1) = %d", x)
	}
	mustPanic(t, arena.ErrOutOfRange, func() { v.At(2) })
	mustPanic(t, ErrKind, func() { parseRef(t, `{}`).At(0) })
}

func TestAppendCoercesNull(t *testing.T) {
	v := NewValue().Ref()
	v.Append(1)
	v.Append("two")
	if !v.IsArray() || v.Len() != 2 {
		t.Fatalf("kind %s len %d", v.Kind(), v.Len())
	}
	mustPanic(t, ErrKind, func() { parseRef(t, `{}`).Append(1) })
}

func TestLenAndIsEmpty(t *testing.T) {
	tests := []struct {
		src   string
		len   int
		empty bool
	}{
		{`{}`, 0, true},
		{`{"a":1}`, 1, false},
		{`[]`, 0, true},
		{`[1,2]`, 2, false},
		{`""`, 0, true},
		{`"abc"`, 3, false},
		{`null`, 0, false},
		{`3`, 0, false},
		{`true`, 0, false},
	}
	for _, tt := range tests {
		v := parseRef(t, tt.src)
		if v.Len() != tt.len {
			t.Errorf("%s: Len %d want %d", tt.src, v.Len(), tt.len)
		}
		if v.IsEmpty() != tt.empty {
			t.Errorf("%s: IsEmpty %v want %v", tt.src, v.IsEmpty(), tt.empty)
		}
	}
}

func TestSameVsEqual(t *testing.T) {
	v := parseRef(t, `[{"a":1},{"a":1}]`)
	x, y := v.At(0), v.At(1)
	if x.Same(y) {
		t.Fatal("distinct nodes are Same")
	}
	if !x.Equal(y) {
		t.Fatal("structurally equal nodes are not Equal")
	}
	if !x.Same(x) {
		t.Fatal("node is not Same as itself")
	}
}

func TestCopyFrom(t *testing.T) {
	src := parseRef(t, `{"deep":[1,{"k":"v"}]}`)
	dst := NewValue().Ref()
	dst.CopyFrom(src)
	if !dst.Equal(src) {
		t.Fatal("copy not equal")
	}
	dst.Key("deep").At(0).SetInt(99)
	if dst.Equal(src) {
		t.Fatal("copy aliases source")
	}
}

func TestSettersChain(t *testing.T) {
	v := NewValue().Ref()
	v.SetObject()
	v.Key("b").SetBool(true)
	v.Key("s").SetString("str")
	ar := v.Key("xs").SetArray()
	ar.Append(int64(1))
	ar.Append(2.5)
	got := v.String()
	want := `{"b":true,"s":"str","xs":[1,2.5]}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestSetOverContainerStalesChildren(t *testing.T) {
	v := parseRef(t, `{"a":[1,2]}`)
	el := v.Key("a").At(0)
	v.Key("a").SetInt(5)
	mustPanic(t, arena.ErrStale, func() { el.Kind() })
}

func TestToString(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`null`, "Null"},
		{`true`, "true"},
		{`-3`, "-3"},
		{`2.5`, "2.5"},
		{`"hi"`, `"hi"`},
		{`[1,2]`, `[1,2]`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := parseRef(t, tt.src).ToString(0); got != tt.want {
			t.Errorf("%s: got %s want %s", tt.src, got, tt.want)
		}
	}
}

func TestToStringTruncates(t *testing.T) {
	v := parseRef(t, `["0123456789","0123456789"]`)
	got := v.ToString(10)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("no ellipsis: %q", got)
	}
	if len(got) != 13 {
		t.Fatalf("length %d: %q", len(got), got)
	}
}

func TestArrayViewCoercesNull(t *testing.T) {
	v := NewValue().Ref()
	ar := v.Array()
	ar.Append(1)
	if !v.IsArray() {
		t.Fatal("Array did not coerce")
	}
	mustPanic(t, ErrKind, func() { parseRef(t, `"s"`).Array() })
	mustPanic(t, ErrKind, func() { parseRef(t, `[1]`).Object() })
}

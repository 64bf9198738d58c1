package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/jsondom/jsondom/arena"
)

func buildSample(a *arena.Arena) arena.NodeID {
	root := a.NewNode()
	a.SetObject(root)
	a.SetString(a.AddMember(root, "name"), "zed")
	arr := a.AddMember(root, "xs")
	a.SetArray(arr)
	a.SetInt(a.Append(arr), 1)
	a.SetBool(a.Append(arr), false)
	a.SetNull(a.AddMember(root, "none"))
	return root
}

func TestEncodeCompact(t *testing.T) {
	a := arena.New()
	root := buildSample(a)
	got := MustString(a, root)
	want := `{"name":"zed","xs":[1,false],"none":null}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodePretty(t *testing.T) {
	a := arena.New()
	root := buildSample(a)
	got := MustString(a, root, Pretty(true))
	want := `{
  "name": "zed",
  "xs": [
    1,
    false
  ],
  "none": null
}`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	a := arena.New()
	root := a.NewNode()
	a.SetArray(root)
	a.SetInt(a.Append(root), 1)
	got := MustString(a, root, Pretty(true), Indent(4))
	want := "[\n    1\n]"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	a := arena.New()
	root := a.NewNode()
	a.SetArray(root)
	a.SetInt(a.Append(root), 1)
	// starting depth shifts nested lines so output embeds in indented text
	got := MustString(a, root, Pretty(true), Depth(1))
	want := "[\n    1\n  ]"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		set  func(a *arena.Arena, id arena.NodeID)
		want string
	}{
		{func(a *arena.Arena, id arena.NodeID) { a.SetNull(id) }, `null`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetBool(id, true) }, `true`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetInt(id, -7) }, `-7`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetUint(id, 18446744073709551615) }, `18446744073709551615`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetFloat(id, 0.5) }, `0.5`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetFloat(id, 1e14) }, `1e+14`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetString(id, "a\tb\"c\\") }, `"a\tb\"c\\"`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetString(id, "\x01") }, `""`},
		{func(a *arena.Arena, id arena.NodeID) { a.SetString(id, "héllo") }, `"héllo"`},
	}
	for _, tt := range tests {
		a := arena.New()
		id := a.NewNode()
		tt.set(a, id)
		if got := MustString(a, id); got != tt.want {
			t.Errorf("got %s want %s", got, tt.want)
		}
	}
}

func TestEncodeNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		a := arena.New()
		id := a.NewNode()
		a.SetFloat(id, f)
		err := Encode(a, id, bytes.NewBuffer(nil))
		if !errors.Is(err, ErrEncode) {
			t.Errorf("encode of %v: %v, want ErrEncode", f, err)
		}
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	a := arena.New()
	arr := a.NewNode()
	a.SetArray(arr)
	if got := MustString(a, arr, Pretty(true)); got != "[]" {
		t.Errorf("got %q", got)
	}
	obj := a.NewNode()
	a.SetObject(obj)
	if got := MustString(a, obj, Pretty(true)); got != "{}" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColorsStripToSameText(t *testing.T) {
	a := arena.New()
	root := buildSample(a)
	plain := MustString(a, root)
	colored := MustString(a, root, WithColors(NewColors()))
	if len(colored) < len(plain) {
		t.Fatal("colored output shorter than plain")
	}
	stripped := stripANSI(colored)
	if stripped != plain {
		t.Errorf("stripped %q want %q", stripped, plain)
	}
}

func stripANSI(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

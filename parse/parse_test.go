package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsondom/jsondom/arena"
	"github.com/jsondom/jsondom/encode"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		in  string
		out string // compact rendering; "" means same as in
	}{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `0`},
		{in: `-1`},
		{in: `22`},
		{in: `1.5`},
		{in: `1e14`, out: `1e+14`},
		{in: `-0.25`},
		{in: `"hello"`},
		{in: `""`},
		{in: `"A"`, out: `"A"`},
		{in: `"a\"b"`},
		{in: `"\n\t\\"`},
		{in: `"😀"`, out: "\"\U0001F600\""},
		{in: `[]`},
		{in: `[1,2,3]`},
		{in: `[[],[[]]]`},
		{in: `[1,"x",null,true]`},
		{in: `{}`},
		{in: `{"a":1}`},
		{in: `{"a":{"b":[1,2]},"c":null}`},
		{in: `{"dup":1,"dup":2}`},
		{in: " \t\n{ \"a\" :\n[ 1 , 2 ] } ", out: `{"a":[1,2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a := arena.New()
			id, err := Parse(a, []byte(tt.in))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			want := tt.out
			if want == "" {
				want = tt.in
			}
			got := encode.MustString(a, id)
			if got != want {
				t.Errorf("got %s want %s", got, want)
			}
		})
	}
}

func TestParseNumberKinds(t *testing.T) {
	tests := []struct {
		in   string
		kind arena.Kind
	}{
		{`0`, arena.Int},
		{`-9223372036854775808`, arena.Int},
		{`9223372036854775807`, arena.Int},
		// Int overflow degrades to Uint, then to Float.
		{`9223372036854775808`, arena.Uint},
		{`18446744073709551615`, arena.Uint},
		{`18446744073709551616`, arena.Float},
		{`-9223372036854775809`, arena.Float},
		{`1.0`, arena.Float},
		{`1e2`, arena.Float},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a := arena.New()
			id, err := Parse(a, []byte(tt.in))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if a.Kind(id) != tt.kind {
				t.Errorf("kind %s want %s", a.Kind(id), tt.kind)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		` `,
		`{`,
		`[1,]`,
		`{"a":}`,
		`{"a" 1}`,
		`{a:1}`,
		`tru`,
		`nul`,
		`01`,
		`1.`,
		`+1`,
		`"unterminated`,
		`"\x"`,
		`"\u00g0"`,
		`[1] trailing`,
		"\"ctl\x01\"",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			a := arena.New()
			_, err := Parse(a, []byte(in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v does not wrap ErrParse", err)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *Error", err)
			}
			if perr.Offset < 0 || perr.Offset > len(in) {
				t.Errorf("offset %d out of [0,%d]", perr.Offset, len(in))
			}
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	a := arena.New()
	_, err := Parse(a, []byte(`{"a": nope}`))
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *Error", err)
	}
	if perr.Offset != 6 {
		t.Errorf("offset %d want 6", perr.Offset)
	}
}

func TestParseDepthLimit(t *testing.T) {
	a := arena.New()
	deep := strings.Repeat("[", 600) + strings.Repeat("]", 600)
	if _, err := Parse(a, []byte(deep)); err == nil {
		t.Fatal("expected depth error")
	}
	ok := strings.Repeat("[", 100) + strings.Repeat("]", 100)
	if _, err := Parse(a, []byte(ok)); err != nil {
		t.Fatalf("parse: %v", err)
	}
}

func TestParseDuplicateKeysPreserved(t *testing.T) {
	a := arena.New()
	id, err := Parse(a, []byte(`{"k":1,"k":2}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.MemberLen(id) != 2 {
		t.Fatalf("member count %d", a.MemberLen(id))
	}
	v, _ := a.FindMember(id, "k")
	if a.Int(v) != 1 {
		t.Errorf("first match %d want 1", a.Int(v))
	}
}

func TestViewStrings(t *testing.T) {
	data := []byte(`{"key":"value"}`)
	a := arena.New()
	id, err := Parse(a, data, ViewStrings())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, _ := a.FindMember(id, "key")
	data[8] = 'V'
	if a.Str(v) != "Value" {
		t.Errorf("view string %q does not alias input", a.Str(v))
	}

	// escaped strings are always materialized copies
	data2 := []byte(`"a\tb"`)
	a2 := arena.New()
	id2, err := Parse(a2, data2, ViewStrings())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	data2[1] = 'X'
	if a2.Str(id2) != "a\tb" {
		t.Errorf("escaped string %q aliases input", a2.Str(id2))
	}
}

// Package encode serializes an arena tree to JSON text.
package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jsondom/jsondom/arena"
)

var ErrEncode = errors.New("encode error")

type encState struct {
	pretty bool
	indent int
	depth  int

	colors *Colors
}

// Encode writes the subtree at id as JSON text. Object member order is
// preserved exactly as stored; it is never sorted.
func Encode(a *arena.Arena, id arena.NodeID, w io.Writer, opts ...Option) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encode(a, id, w, es)
}

func encode(a *arena.Arena, id arena.NodeID, w io.Writer, es *encState) error {
	switch k := a.Kind(id); k {
	case arena.Null:
		return writeString(w, es.color(k, ValueColor, "null"))
	case arena.Bool:
		return writeString(w, es.color(k, ValueColor, strconv.FormatBool(a.Bool(id))))
	case arena.Int:
		return writeString(w, es.color(k, ValueColor, strconv.FormatInt(a.Int(id), 10)))
	case arena.Uint:
		return writeString(w, es.color(k, ValueColor, strconv.FormatUint(a.Uint(id), 10)))
	case arena.Float:
		f := a.Float(id)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: non-finite number %v", ErrEncode, f)
		}
		return writeString(w, es.color(k, ValueColor, strconv.FormatFloat(f, 'g', -1, 64)))
	case arena.String:
		return writeString(w, es.color(k, ValueColor, quote(a.StrBytes(id))))
	case arena.Array:
		return encodeArray(a, id, w, es)
	case arena.Object:
		return encodeObject(a, id, w, es)
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrEncode, k)
	}
}

func encodeArray(a *arena.Arena, id arena.NodeID, w io.Writer, es *encState) error {
	n := a.Len(id)
	if n == 0 {
		return writeString(w, es.color(arena.Array, SepColor, "[]"))
	}
	if err := writeString(w, es.color(arena.Array, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i := range n {
		if i > 0 {
			if err := writeString(w, es.color(arena.Array, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(a, a.Elem(id, i), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(arena.Array, SepColor, "]"))
}

func encodeObject(a *arena.Arena, id arena.NodeID, w io.Writer, es *encState) error {
	n := a.MemberLen(id)
	if n == 0 {
		return writeString(w, es.color(arena.Object, SepColor, "{}"))
	}
	if err := writeString(w, es.color(arena.Object, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i := range n {
		if i > 0 {
			if err := writeString(w, es.color(arena.Object, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key, val := a.MemberAt(id, i)
		if err := writeString(w, es.color(arena.Object, FieldColor, quote(a.StrBytes(key)))); err != nil {
			return err
		}
		sep := ":"
		if es.pretty {
			sep = ": "
		}
		if err := writeString(w, es.color(arena.Object, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(a, val, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(arena.Object, SepColor, "}"))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *encState) error {
	if !es.pretty {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

const hexDigits = "0123456789abcdef"

// quote renders b as a JSON string literal. Input is handled as UTF-8;
// invalid sequences pass through byte for byte.
func quote(b []byte) string {
	buf := make([]byte, 0, len(b)+2)
	buf = append(buf, '"')
	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c == '"':
			buf = append(buf, '\\', '"')
		case c == '\\':
			buf = append(buf, '\\', '\\')
		case c == '\b':
			buf = append(buf, '\\', 'b')
		case c == '\f':
			buf = append(buf, '\\', 'f')
		case c == '\n':
			buf = append(buf, '\\', 'n')
		case c == '\r':
			buf = append(buf, '\\', 'r')
		case c == '\t':
			buf = append(buf, '\\', 't')
		case c < 0x20:
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			buf = append(buf, c)
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

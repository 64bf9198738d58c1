// Package parse fills an arena from JSON text.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jsondom/jsondom/arena"
)

const maxDepth = 512

// Parse reads one JSON value from data into a, returning the id of its root
// node. The whole buffer must be consumed: trailing non-whitespace is an
// error. On failure the returned error is a *Error carrying the byte offset
// of the failure; nodes allocated before the failure remain in the arena,
// so callers that reuse an arena should Reset it on error.
func Parse(a *arena.Arena, data []byte, opts ...Option) (arena.NodeID, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{a: a, data: data, views: pOpts.views}
	p.ws()
	root := a.NewNode()
	if err := p.value(root, 0); err != nil {
		return arena.NodeID{}, err
	}
	p.ws()
	if p.off != len(p.data) {
		return arena.NodeID{}, p.errf("trailing characters after value")
	}
	return root, nil
}

type parser struct {
	a     *arena.Arena
	data  []byte
	off   int
	views bool
}

func (p *parser) errf(format string, args ...any) error {
	return &Error{Offset: p.off, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) ws() {
	for p.off < len(p.data) {
		switch p.data[p.off] {
		case ' ', '\t', '\n', '\r':
			p.off++
		default:
			return
		}
	}
}

func (p *parser) value(id arena.NodeID, depth int) error {
	if depth > maxDepth {
		return p.errf("exceeded %d nested containers", maxDepth)
	}
	if p.off >= len(p.data) {
		return p.errf("unexpected end of input")
	}
	switch c := p.data[p.off]; {
	case c == '{':
		return p.object(id, depth)
	case c == '[':
		return p.array(id, depth)
	case c == '"':
		return p.string_(id)
	case c == 't':
		if err := p.literal("true"); err != nil {
			return err
		}
		p.a.SetBool(id, true)
		return nil
	case c == 'f':
		if err := p.literal("false"); err != nil {
			return err
		}
		p.a.SetBool(id, false)
		return nil
	case c == 'n':
		if err := p.literal("null"); err != nil {
			return err
		}
		p.a.SetNull(id)
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number(id)
	default:
		return p.errf("unexpected character %q", c)
	}
}

func (p *parser) literal(lit string) error {
	if len(p.data)-p.off < len(lit) || string(p.data[p.off:p.off+len(lit)]) != lit {
		return p.errf("invalid literal, expected %q", lit)
	}
	p.off += len(lit)
	return nil
}

func (p *parser) object(id arena.NodeID, depth int) error {
	p.a.SetObject(id)
	p.off++ // '{'
	p.ws()
	if p.off < len(p.data) && p.data[p.off] == '}' {
		p.off++
		return nil
	}
	for {
		if p.off >= len(p.data) || p.data[p.off] != '"' {
			return p.errf("expected object key")
		}
		key, view, err := p.stringBytes()
		if err != nil {
			return err
		}
		var val arena.NodeID
		if view {
			val = p.a.AddMemberView(id, key)
		} else {
			val = p.a.AddMember(id, string(key))
		}
		p.ws()
		if p.off >= len(p.data) || p.data[p.off] != ':' {
			return p.errf("expected ':' after object key")
		}
		p.off++
		p.ws()
		if err := p.value(val, depth+1); err != nil {
			return err
		}
		p.ws()
		if p.off >= len(p.data) {
			return p.errf("unterminated object")
		}
		switch p.data[p.off] {
		case ',':
			p.off++
			p.ws()
		case '}':
			p.off++
			return nil
		default:
			return p.errf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) array(id arena.NodeID, depth int) error {
	p.a.SetArray(id)
	p.off++ // '['
	p.ws()
	if p.off < len(p.data) && p.data[p.off] == ']' {
		p.off++
		return nil
	}
	for {
		elem := p.a.Append(id)
		if err := p.value(elem, depth+1); err != nil {
			return err
		}
		p.ws()
		if p.off >= len(p.data) {
			return p.errf("unterminated array")
		}
		switch p.data[p.off] {
		case ',':
			p.off++
			p.ws()
		case ']':
			p.off++
			return nil
		default:
			return p.errf("expected ',' or ']' in array")
		}
	}
}

func (p *parser) string_(id arena.NodeID) error {
	b, view, err := p.stringBytes()
	if err != nil {
		return err
	}
	if view {
		p.a.SetStringView(id, b)
	} else {
		p.a.SetString(id, string(b))
	}
	return nil
}

// stringBytes scans one JSON string at p.off (which must be '"') and
// returns its decoded bytes. view is true when the bytes alias the input
// buffer (only with ViewStrings and only for escape-free strings).
func (p *parser) stringBytes() ([]byte, bool, error) {
	p.off++ // '"'
	start := p.off
	for i := p.off; i < len(p.data); i++ {
		switch c := p.data[i]; {
		case c == '"':
			p.off = i + 1
			return p.data[start:i], p.views, nil
		case c == '\\':
			p.off = i
			return p.unescape(start, i)
		case c < 0x20:
			p.off = i
			return nil, false, p.errf("invalid control character in string")
		}
	}
	p.off = len(p.data)
	return nil, false, p.errf("unterminated string")
}

func (p *parser) unescape(start, i int) ([]byte, bool, error) {
	buf := append([]byte(nil), p.data[start:i]...)
	p.off = i
	for p.off < len(p.data) {
		switch c := p.data[p.off]; {
		case c == '"':
			p.off++
			return buf, false, nil
		case c == '\\':
			var err error
			buf, err = p.escape(buf)
			if err != nil {
				return nil, false, err
			}
		case c < 0x20:
			return nil, false, p.errf("invalid control character in string")
		default:
			buf = append(buf, c)
			p.off++
		}
	}
	return nil, false, p.errf("unterminated string")
}

func (p *parser) escape(buf []byte) ([]byte, error) {
	if p.off+1 >= len(p.data) {
		return nil, p.errf("unterminated escape")
	}
	c := p.data[p.off+1]
	p.off += 2
	switch c {
	case '"', '\\', '/':
		return append(buf, c), nil
	case 'b':
		return append(buf, '\b'), nil
	case 'f':
		return append(buf, '\f'), nil
	case 'n':
		return append(buf, '\n'), nil
	case 'r':
		return append(buf, '\r'), nil
	case 't':
		return append(buf, '\t'), nil
	case 'u':
		r, err := p.hexRune()
		if err != nil {
			return nil, err
		}
		if utf16.IsSurrogate(r) {
			if p.off+1 >= len(p.data) || p.data[p.off] != '\\' || p.data[p.off+1] != 'u' {
				return nil, p.errf("unpaired surrogate in \\u escape")
			}
			p.off += 2
			r2, err := p.hexRune()
			if err != nil {
				return nil, err
			}
			r = utf16.DecodeRune(r, r2)
			if r == utf8.RuneError {
				return nil, p.errf("invalid surrogate pair in \\u escape")
			}
		}
		return utf8.AppendRune(buf, r), nil
	default:
		p.off -= 2
		return nil, p.errf("invalid escape character %q", c)
	}
}

func (p *parser) hexRune() (rune, error) {
	if p.off+4 > len(p.data) {
		return 0, p.errf("truncated \\u escape")
	}
	v, err := strconv.ParseUint(string(p.data[p.off:p.off+4]), 16, 32)
	if err != nil {
		return 0, p.errf("invalid \\u escape")
	}
	p.off += 4
	return rune(v), nil
}

func (p *parser) number(id arena.NodeID) error {
	start := p.off
	if p.data[p.off] == '-' {
		p.off++
	}
	switch {
	case p.off >= len(p.data):
		return p.errf("truncated number")
	case p.data[p.off] == '0':
		p.off++
	case p.data[p.off] >= '1' && p.data[p.off] <= '9':
		p.digits()
	default:
		return p.errf("invalid number")
	}
	isFloat := false
	if p.off < len(p.data) && p.data[p.off] == '.' {
		isFloat = true
		p.off++
		if !p.digits() {
			return p.errf("digits required after decimal point")
		}
	}
	if p.off < len(p.data) && (p.data[p.off] == 'e' || p.data[p.off] == 'E') {
		isFloat = true
		p.off++
		if p.off < len(p.data) && (p.data[p.off] == '+' || p.data[p.off] == '-') {
			p.off++
		}
		if !p.digits() {
			return p.errf("digits required in exponent")
		}
	}
	tok := string(p.data[start:p.off])
	if !isFloat {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			p.a.SetInt(id, i)
			return nil
		}
		if !strings.HasPrefix(tok, "-") {
			if u, err := strconv.ParseUint(tok, 10, 64); err == nil {
				p.a.SetUint(id, u)
				return nil
			}
		}
		// out of 64-bit integer range, degrade to float
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		p.off = start
		return p.errf("invalid number %q", tok)
	}
	p.a.SetFloat(id, f)
	return nil
}

func (p *parser) digits() bool {
	n := 0
	for p.off < len(p.data) && p.data[p.off] >= '0' && p.data[p.off] <= '9' {
		p.off++
		n++
	}
	return n > 0
}

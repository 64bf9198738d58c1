package encode

import (
	"bytes"

	"github.com/jsondom/jsondom/arena"
)

// MustString returns the compact text of the subtree at id, panicking on an
// encoding failure.
func MustString(a *arena.Arena, id arena.NodeID, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(a, id, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// AppendString appends the text of the subtree at id to dst.
func AppendString(dst []byte, a *arena.Arena, id arena.NodeID, opts ...Option) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	if err := Encode(a, id, buf, opts...); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}

package jsondom

import (
	"bytes"
	"io"
	"os"

	"github.com/jsondom/jsondom/arena"
	"github.com/jsondom/jsondom/encode"
	"github.com/jsondom/jsondom/parse"
)

// Document owns one arena for its lifetime and exposes the tree root.
// Loading replaces the whole tree; every ValueRef from before a load is
// stale afterwards.
type Document struct {
	a    *arena.Arena
	root arena.NodeID
	err  error
}

// NewDocument makes a document holding a single Null root.
func NewDocument() *Document {
	a := arena.New()
	return &Document{a: a, root: a.NewNode()}
}

func (d *Document) Root() ValueRef { return ValueRef{a: d.a, id: d.root} }

// Err is the error of the most recent load, or nil. A failed load leaves
// the document with a Null root.
func (d *Document) Err() error { return d.err }

// Load parses data into the document, overwriting the current tree.
func (d *Document) Load(data []byte, opts ...parse.Option) error {
	d.a.Reset()
	id, err := parse.Parse(d.a, data, opts...)
	if err != nil {
		d.a.Reset()
		d.root = d.a.NewNode()
		d.err = err
		return err
	}
	d.root = id
	d.err = nil
	return nil
}

// LoadReader reads r to the end and loads the result.
func (d *Document) LoadReader(r io.Reader, opts ...parse.Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		d.err = err
		return err
	}
	return d.Load(data, opts...)
}

func (d *Document) LoadFile(path string, opts ...parse.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		d.err = err
		return err
	}
	return d.Load(data, opts...)
}

// Save renders the tree as JSON text.
func (d *Document) Save(pretty bool) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := d.SaveWriter(buf, pretty); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) SaveWriter(w io.Writer, pretty bool) error {
	return encode.Encode(d.a, d.root, w, encode.Pretty(pretty))
}

func (d *Document) SaveFile(path string, pretty bool) error {
	data, err := d.Save(pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

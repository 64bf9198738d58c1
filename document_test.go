package jsondom

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsondom/jsondom/arena"
	"github.com/jsondom/jsondom/parse"
)

func TestDocumentLoadSave(t *testing.T) {
	d := NewDocument()
	if !d.Root().IsNull() {
		t.Fatal("fresh document root not Null")
	}
	if err := d.Load([]byte(`{"a":[1,2]}`)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Err() != nil {
		t.Fatalf("Err: %v", d.Err())
	}
	out, err := d.Save(false)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if string(out) != `{"a":[1,2]}` {
		t.Errorf("save output %s", out)
	}
	pretty, err := d.Save(true)
	if err != nil {
		t.Fatalf("save pretty: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  ")) {
		t.Errorf("pretty output not indented: %s", pretty)
	}
}

func TestDocumentLoadOverwrites(t *testing.T) {
	d := NewDocument()
	if err := d.Load([]byte(`[1]`)); err != nil {
		t.Fatalf("load: %v", err)
	}
	old := d.Root()
	if err := d.Load([]byte(`[2]`)); err != nil {
		t.Fatalf("reload: %v", err)
	}
	mustPanic(t, arena.ErrStale, func() { old.Kind() })
	if x, _ := Get[int64](d.Root().At(0)); x != 2 {
		t.Fatalf("root value %d", x)
	}
}

func TestDocumentLoadError(t *testing.T) {
	d := NewDocument()
	err := d.Load([]byte(`{"a":`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(d.Err(), parse.ErrParse) {
		t.Errorf("Err %v does not wrap ErrParse", d.Err())
	}
	var perr *parse.Error
	if !errors.As(d.Err(), &perr) {
		t.Fatal("Err is not a *parse.Error")
	}
	if !d.Root().IsNull() {
		t.Error("failed load did not leave a Null root")
	}
	// a later good load clears the error
	if err := d.Load([]byte(`1`)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Err() != nil {
		t.Errorf("Err %v after good load", d.Err())
	}
}

func TestDocumentFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	d := NewDocument()
	d.Root().Key("k").SetString("v")
	if err := d.SaveFile(path, true); err != nil {
		t.Fatalf("save file: %v", err)
	}
	d2 := NewDocument()
	if err := d2.LoadFile(path); err != nil {
		t.Fatalf("load file: %v", err)
	}
	if !d2.Root().Equal(d.Root()) {
		t.Error("file round trip changed the tree")
	}
	if err := d2.LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(d2.Err(), os.ErrNotExist) {
		t.Errorf("Err %v", d2.Err())
	}
}

func TestDocumentLoadReader(t *testing.T) {
	d := NewDocument()
	if err := d.LoadReader(bytes.NewReader([]byte(`"from reader"`))); err != nil {
		t.Fatalf("load reader: %v", err)
	}
	if s, _ := Get[string](d.Root()); s != "from reader" {
		t.Errorf("root %q", s)
	}
}

func TestValueString(t *testing.T) {
	v, err := ParseValue([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v.String() != `{"a":1}` {
		t.Errorf("String %s", v.String())
	}
	c := CopyValue(v.Ref().Key("a"))
	if c.String() != "1" {
		t.Errorf("copied value %s", c.String())
	}
}

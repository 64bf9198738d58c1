package arena

import "fmt"

// Kind is the dynamic type of a node.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Uint
	Float
	String
	Array
	Object
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Null:   "Null",
		Bool:   "Bool",
		Int:    "Int",
		Uint:   "Uint",
		Float:  "Float",
		String: "String",
		Array:  "Array",
		Object: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   Null,
		"Bool":   Bool,
		"Int":    Int,
		"Uint":   Uint,
		"Float":  Float,
		"String": String,
		"Array":  Array,
		"Object": Object,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		Null,
		Bool,
		Int,
		Uint,
		Float,
		String,
		Array,
		Object,
	}
}

// IsScalar reports whether nodes of kind k have no children.
func (k Kind) IsScalar() bool {
	switch k {
	case Array, Object:
		return false
	default:
		return true
	}
}

// IsNumber reports whether k is one of the numeric kinds.
func (k Kind) IsNumber() bool {
	switch k {
	case Int, Uint, Float:
		return true
	default:
		return false
	}
}

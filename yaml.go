package jsondom

import (
	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML document and converts it to a tree through the
// generic-value interop. YAML mapping keys must be strings.
func FromYAML(data []byte) (*Value, error) {
	var x any
	if err := yaml.Unmarshal(data, &x); err != nil {
		return nil, err
	}
	return ValueFromAny(x)
}

// ToYAML renders the subtree at v as a YAML document.
func ToYAML(v ValueRef) ([]byte, error) {
	return yaml.Marshal(Export(v))
}

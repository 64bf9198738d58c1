package encode

type Option func(*encState)

// Pretty selects indented multi-line output.
func Pretty(v bool) Option {
	return func(es *encState) { es.pretty = v }
}

// Indent sets the number of spaces per indentation level (default 2).
func Indent(n int) Option {
	return func(es *encState) { es.indent = n }
}

// Depth sets the starting indentation depth.
func Depth(n int) Option {
	return func(es *encState) { es.depth = n }
}

// WithColors enables ANSI-colored output.
func WithColors(c *Colors) Option {
	return func(es *encState) { es.colors = c }
}

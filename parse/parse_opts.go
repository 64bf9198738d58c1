package parse

type Option func(*parseOpts)

type parseOpts struct {
	views bool
}

// ViewStrings makes string and key nodes borrow their bytes from the input
// buffer instead of copying them into the arena. The caller guarantees the
// buffer outlives the tree. Strings containing escapes are always unescaped
// into owned storage.
func ViewStrings() Option {
	return func(o *parseOpts) { o.views = true }
}

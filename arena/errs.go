package arena

import "errors"

var (
	ErrStale      = errors.New("stale node id")
	ErrKind       = errors.New("wrong node kind")
	ErrOutOfRange = errors.New("index out of range")
)

package jsondom

import "errors"

var (
	ErrKind  = errors.New("incompatible node kind")
	ErrEmpty = errors.New("empty container")
)

// Package jsondom provides typed, mutable access to a JSON document tree.
//
// A tree's storage lives in an arena (package arena); jsondom layers
// reference handles over it: ValueRef is a borrowed handle to one node,
// ArrayRef and ObjectRef are container views over a ValueRef, Document and
// Value own a tree outright. Typed reads come in two flavors: Get is strict
// and reports absence on any kind or range mismatch, As is permissive and
// always produces a value, degrading to the type's zero.
//
// All handles into one tree must be used from one goroutine at a time.
package jsondom

package comb

import (
	"errors"
	"fmt"
)

// ErrorKind names the combinator that rejected the input.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindTag
	KindIsA
	KindVerify
	KindMapOpt
	KindEof
	KindMany
	KindAlt
)

func (k ErrorKind) String() string {
	switch k {
	case KindTag:
		return "Tag"
	case KindIsA:
		return "IsA"
	case KindVerify:
		return "Verify"
	case KindMapOpt:
		return "MapOpt"
	case KindEof:
		return "Eof"
	case KindMany:
		return "Many"
	case KindAlt:
		return "Alt"
	default:
		return "Unknown"
	}
}

// Error is a recoverable parse failure at Input.
type Error[I any] struct {
	Input I
	Kind  ErrorKind
}

func (e *Error[I]) Error() string {
	return fmt.Sprintf("comb: %s failed", e.Kind)
}

// NewError builds a recoverable error at in.
func NewError[I any](in I, kind ErrorKind) error {
	return &Error[I]{Input: in, Kind: kind}
}

// fatalError marks an error that must not be backtracked over.
type fatalError struct {
	err error
}

func (f *fatalError) Error() string { return f.err.Error() }
func (f *fatalError) Unwrap() error { return f.err }

// IsFatal reports whether err came out of a Cut.
func IsFatal(err error) bool {
	var f *fatalError
	return errors.As(err, &f)
}

// KindOf extracts the error kind of a comb error on input type I.
func KindOf[I any](err error) (ErrorKind, bool) {
	var ce *Error[I]
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return KindUnknown, false
}

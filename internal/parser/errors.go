package parser

import (
	"fmt"

	"github.com/nullab-io/nbt/internal/bufcursor"
)

// ErrKind classifies a parse failure. The public nbt package maps these to
// its own Kind when it wraps a *Error, the same way the teacher's
// pkg/hive layer wraps internal/format errors into pkg/types.Error.
type ErrKind int

const (
	KindEOF ErrKind = iota
	KindInvalidTag
	KindNegativeLength
	KindDepthExceeded
	KindTrailingData
)

// Error reports a structural parse failure at a specific byte offset.
type Error struct {
	Kind   ErrKind
	Offset int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parser: %d at offset %d: %v", e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("parser: %d at offset %d", e.Kind, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }

// wrapEOF lifts a *bufcursor.EOFError into a *Error carrying KindEOF, so
// every error this package returns is a *Error regardless of which layer
// detected it.
func wrapEOF(err error) error {
	if eofErr, ok := err.(*bufcursor.EOFError); ok {
		return &Error{Kind: KindEOF, Offset: eofErr.Offset, Err: eofErr}
	}
	return err
}

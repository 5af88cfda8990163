package nbt

import (
	"fmt"

	"github.com/nullab-io/nbt/internal/parser"
)

// Kind classifies an Error so callers can branch on intent rather than on
// message text, mirroring the teacher library's pkg/types.ErrKind.
type Kind int

const (
	// KindEOF: the buffer ended before a field could be fully read.
	KindEOF Kind = iota
	// KindInvalidTag: a byte that does not name one of the thirteen tags
	// was encountered where a tag ID was expected.
	KindInvalidTag
	// KindNegativeLength: a list or array declared a negative length.
	KindNegativeLength
	// KindDepthExceeded: nesting exceeded the configured depth limit.
	KindDepthExceeded
	// KindTrailingData: bytes remained after the root compound's closing
	// End tag and strict trailing-data mode was requested.
	KindTrailingData
	// KindStringNotMutf8: a byte slice failed to decode as MUTF-8 (only
	// raised by explicit Decode calls; the parser itself never decodes).
	KindStringNotMutf8
	// KindHeterogeneousList: an owned list's elements do not share a tag.
	KindHeterogeneousList
	// KindStringTooLong: a string's encoded length exceeds 65535 bytes.
	KindStringTooLong
	// KindListLengthOverflow: a list or array length exceeds INT32_MAX.
	KindListLengthOverflow
	// KindIO: the underlying sink or source returned an error.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "unexpected-eof"
	case KindInvalidTag:
		return "invalid-tag"
	case KindNegativeLength:
		return "negative-length"
	case KindDepthExceeded:
		return "depth-exceeded"
	case KindTrailingData:
		return "trailing-data"
	case KindStringNotMutf8:
		return "string-not-mutf8"
	case KindHeterogeneousList:
		return "heterogeneous-list"
	case KindStringTooLong:
		return "string-too-long"
	case KindListLengthOverflow:
		return "list-length-overflow"
	case KindIO:
		return "io-error"
	default:
		return "unknown"
	}
}

// Error is the single error type this package returns. Offset is the byte
// position in the source buffer at which the problem was detected; it is
// -1 when the error did not arise from parsing a specific position (for
// example HeterogeneousList raised by a mutator).
type Error struct {
	Kind   Kind
	Offset int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	prefix := fmt.Sprintf("nbt: %s", e.Kind)
	if e.Offset >= 0 {
		prefix = fmt.Sprintf("%s at offset %d", prefix, e.Offset)
	}
	if e.Msg != "" {
		prefix = fmt.Sprintf("%s: %s", prefix, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", prefix, e.Err.Error())
	}
	return prefix
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, offset int, msg string, cause error) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: msg, Err: cause}
}

// Sentinel errors for callers that only need to test kind via errors.Is.
var (
	ErrUnexpectedEOF      = &Error{Kind: KindEOF, Offset: -1, Msg: "unexpected end of buffer"}
	ErrInvalidTag         = &Error{Kind: KindInvalidTag, Offset: -1, Msg: "invalid tag id"}
	ErrNegativeLength     = &Error{Kind: KindNegativeLength, Offset: -1, Msg: "negative list or array length"}
	ErrDepthExceeded      = &Error{Kind: KindDepthExceeded, Offset: -1, Msg: "nesting depth exceeded"}
	ErrTrailingData       = &Error{Kind: KindTrailingData, Offset: -1, Msg: "trailing data after root compound"}
	ErrStringNotMutf8     = &Error{Kind: KindStringNotMutf8, Offset: -1, Msg: "string is not valid modified utf-8"}
	ErrHeterogeneousList  = &Error{Kind: KindHeterogeneousList, Offset: -1, Msg: "list elements do not share a tag"}
	ErrStringTooLong      = &Error{Kind: KindStringTooLong, Offset: -1, Msg: "string exceeds 65535 bytes"}
	ErrListLengthOverflow = &Error{Kind: KindListLengthOverflow, Offset: -1, Msg: "length exceeds int32 max"}
)

// Is supports errors.Is(err, ErrXxx) matching purely on Kind, so a parser
// error carrying a concrete offset still compares equal to the sentinel.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// wrapParserError lifts an internal/parser.*Error into this package's
// *Error, the same boundary-translation the teacher's pkg/hive layer
// performs when it wraps an internal/format error into pkg/types.Error.
func wrapParserError(err error) error {
	if err == nil {
		return nil
	}
	perr, ok := err.(*parser.Error)
	if !ok {
		return err
	}
	var kind Kind
	switch perr.Kind {
	case parser.KindEOF:
		kind = KindEOF
	case parser.KindInvalidTag:
		kind = KindInvalidTag
	case parser.KindNegativeLength:
		kind = KindNegativeLength
	case parser.KindDepthExceeded:
		kind = KindDepthExceeded
	case parser.KindTrailingData:
		kind = KindTrailingData
	default:
		kind = KindIO
	}
	return newErr(kind, perr.Offset, "", perr)
}

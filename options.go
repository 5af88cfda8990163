package nbt

// DefaultMaxDepth is the nesting depth at which the parser fails with
// ErrDepthExceeded rather than recursing further, guarding against
// adversarial input without requiring a proportional allocation to track
// depth (spec requires DepthExceeded in bounded time).
const DefaultMaxDepth = 512

// ParseOptions controls parser behavior. The zero value is the permissive
// default: unbounded trailing data is allowed and the depth cap is
// DefaultMaxDepth.
type ParseOptions struct {
	// MaxDepth bounds compound/list nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// StrictTrailingData turns unconsumed bytes after the root compound's
	// End tag into ErrTrailingData instead of being silently permitted.
	StrictTrailingData bool
}

func (o ParseOptions) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// ParseOption configures a ParseOptions value, following the same small
// functional-option shape the teacher uses throughout pkg/hive (plain
// option structs built up by dedicated constructors) combined with the
// generic Option[T] pattern from the arloliu/mebo pack repo's
// internal/options package.
type ParseOption func(*ParseOptions)

// WithMaxDepth overrides the nesting depth cap.
func WithMaxDepth(n int) ParseOption {
	return func(o *ParseOptions) { o.MaxDepth = n }
}

// WithStrictTrailingData rejects any byte left over after the root
// compound's closing End tag.
func WithStrictTrailingData() ParseOption {
	return func(o *ParseOptions) { o.StrictTrailingData = true }
}

func buildParseOptions(opts ...ParseOption) ParseOptions {
	var o ParseOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WriteOptions controls the writer. The zero value writes with no root
// name and no special handling.
type WriteOptions struct {
	// RootName overrides the name written for the root compound; NBT
	// documents are conventionally unnamed ("") at the root.
	RootName string
}

// WriteOption configures a WriteOptions value.
type WriteOption func(*WriteOptions)

// WithRootName sets the name stamped on the root compound tag.
func WithRootName(name string) WriteOption {
	return func(o *WriteOptions) { o.RootName = name }
}

func buildWriteOptions(opts ...WriteOption) WriteOptions {
	var o WriteOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package transform

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxContentBytes limits parsed content to 10MB to prevent memory exhaustion
	DefaultMaxContentBytes = 10 * 1024 * 1024

	// DefaultMaxStackMB is the goroutine stack ceiling used while DOM queries run
	DefaultMaxStackMB = 2048
)

// StackBytes converts a ceiling in megabytes to bytes, saturating at math.MaxInt.
func StackBytes(mb int) int {
	if mb <= 0 {
		return 0
	}
	if mb > math.MaxInt>>20 {
		return math.MaxInt
	}
	return mb << 20
}

type viewOptions struct {
	hook          ParseHook
	maxBytes      int
	detectCharset bool
	guard         *stackGuard
}

// ViewOption configures a lazy view.
type ViewOption func(*viewOptions)

// WithParseHook registers a callback fired when a view parses its content.
func WithParseHook(hook ParseHook) ViewOption {
	return func(o *viewOptions) { o.hook = hook }
}

// WithMaxContentBytes limits the content size a view will parse. Zero disables the limit.
func WithMaxContentBytes(n int) ViewOption {
	return func(o *viewOptions) { o.maxBytes = n }
}

// WithCharsetDetection toggles decoding of non-UTF-8 content before markup parsing.
func WithCharsetDetection(enabled bool) ViewOption {
	return func(o *viewOptions) { o.detectCharset = enabled }
}

// WithStackLimit sets the stack ceiling applied while DOM queries run.
func WithStackLimit(bytes int) ViewOption {
	return func(o *viewOptions) { o.guard = newStackGuard(bytes) }
}

func buildViewOptions(opts []ViewOption) viewOptions {
	o := viewOptions{
		maxBytes:      DefaultMaxContentBytes,
		detectCharset: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.guard == nil {
		o.guard = newStackGuard(StackBytes(DefaultMaxStackMB))
	}
	return o
}

// checkSize enforces the parse limit.
func (o viewOptions) checkSize(content string) error {
	if o.maxBytes > 0 && len(content) > o.maxBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrContentTooLarge, len(content), o.maxBytes)
	}
	return nil
}

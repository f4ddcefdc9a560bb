package htmlsemdiff

import (
	"log/slog"

	"golang.org/x/text/unicode/norm"
)

// Option configures Diff and Compare.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	maxCells  int
	minify    bool
	normalize bool
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sends debug records about each diff to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxCells makes Diff fail with ErrTooLarge instead of allocating an
// alignment table of more than n cells. n <= 0 means no limit.
func WithMaxCells(n int) Option {
	return func(o *options) {
		o.maxCells = n
	}
}

// WithMinify minifies both inputs before parsing, so differences in
// insignificant whitespace between elements do not show up as changes.
func WithMinify() Option {
	return func(o *options) {
		o.minify = true
	}
}

// WithUnicodeNormalization compares tokens in Unicode NFC, so composed and
// decomposed spellings of the same text are equal. Output keeps the new
// document's spelling.
func WithUnicodeNormalization() Option {
	return func(o *options) {
		o.normalize = true
	}
}

// keys returns the strings the aligner compares for tokens.
func (o *options) keys(tokens []Token) []string {
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		if o.normalize {
			keys[i] = norm.NFC.String(t.Text)
		} else {
			keys[i] = t.Text
		}
	}
	return keys
}

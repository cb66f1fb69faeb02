package usdx

import (
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/text/encoding"

	"github.com/simonhull/usdx/internal/builder"
	"github.com/simonhull/usdx/internal/registry"
)

// Option configures behavior when parsing songs.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	song, err := usdx.Open("song.txt",
//	    usdx.WithLenientParsing(),
//	    usdx.WithSigil('~', usdx.KindFreestyle),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for a single parse.
type parseOptions struct {
	registry       *registry.Registry // per-call copy, never shared
	logger         *slog.Logger
	fallback       encoding.Encoding // used for non-UTF-8 input without a usable #ENCODING
	err            error             // first invalid option
	required       []string
	lenient        bool // skip unrecognized lines
	ignoreWarnings bool // drop Song.Warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		registry: registry.Default(),
		required: slices.Clone(builder.DefaultRequired),
	}
}

func applyOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *parseOptions) config() builder.Config {
	return builder.Config{
		Registry: o.registry,
		Logger:   o.logger,
		Required: o.required,
		Lenient:  o.lenient,
	}
}

// WithLenientParsing skips lines that match no known shape.
//
// By default an unrecognized line fails the parse with
// *UnrecognizedLineError. In lenient mode the line is dropped and a
// Warning is recorded instead. Malformed tags and notes still fail.
//
// Example:
//
//	song, err := usdx.Open("song.txt", usdx.WithLenientParsing())
//	for _, w := range song.Warnings {
//		log.Println(w)
//	}
func WithLenientParsing() Option {
	return func(o *parseOptions) {
		o.lenient = true
	}
}

// WithRequiredTags replaces the set of tags a song must carry.
//
// The default is ARTIST, TITLE and BPM. Calling it with no keys disables the
// check. Keys are matched in upper case.
func WithRequiredTags(keys ...string) Option {
	return func(o *parseOptions) {
		o.required = o.required[:0]
		for _, k := range keys {
			o.required = append(o.required, upper(k))
		}
	}
}

// WithSigil maps an extra note-line sigil to a note kind.
//
// Use this for dialects that mark notes with characters other than the
// standard ": * F R G". Sigils that already start another kind of line
// ('#', '-', 'E', 'P', blanks) are rejected and the parse fails.
//
// Example:
//
//	song, err := usdx.Parse(text, usdx.WithSigil('~', usdx.KindFreestyle))
func WithSigil(sigil rune, kind NoteKind) Option {
	return func(o *parseOptions) {
		if err := o.registry.RegisterSigil(sigil, kind); err != nil && o.err == nil {
			o.err = fmt.Errorf("sigil option: %w", err)
		}
	}
}

// WithTag declares how a tag's value is coerced and checked.
//
// Known tags are validated while parsing; any other tag is kept as a string.
// Declaring an existing key replaces its rules.
//
// Example:
//
//	usdx.WithTag("KEYSHIFT", usdx.TagSpec{Type: usdx.ValueInt})
func WithTag(key string, spec TagSpec) Option {
	return func(o *parseOptions) {
		o.registry.RegisterTag(upper(key), spec)
	}
}

// WithLogger sends warnings and a per-song summary to logger.
//
// The library is silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *parseOptions) {
		o.logger = logger
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, non-fatal issues (duplicate tags, skipped lines, etc.) are
// collected in Song.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}

// WithFallbackEncoding sets the character set used by Open and ParseReader
// for input that is not valid UTF-8 and names no usable #ENCODING.
//
// Example:
//
//	song, err := usdx.Open("old.txt", usdx.WithFallbackEncoding(charmap.Windows1252))
func WithFallbackEncoding(enc encoding.Encoding) Option {
	return func(o *parseOptions) {
		o.fallback = enc
	}
}

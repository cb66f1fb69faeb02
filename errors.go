package usdx

import (
	"github.com/simonhull/usdx/internal/charset"
	"github.com/simonhull/usdx/internal/registry"
	"github.com/simonhull/usdx/internal/types"
)

// ParseError is implemented by every error that rejects song text.
// Re-exported from internal/types; see the variants below.
type ParseError = types.ParseError

// UnrecognizedLineError is an alias to types.UnrecognizedLineError.
type UnrecognizedLineError = types.UnrecognizedLineError

// MalformedTagError is an alias to types.MalformedTagError.
type MalformedTagError = types.MalformedTagError

// TagValueError is an alias to types.TagValueError.
type TagValueError = types.TagValueError

// IncompleteNoteLineError is an alias to types.IncompleteNoteLineError.
type IncompleteNoteLineError = types.IncompleteNoteLineError

// NoteFieldError is an alias to types.NoteFieldError.
type NoteFieldError = types.NoteFieldError

// MissingRequiredTagError is an alias to types.MissingRequiredTagError.
type MissingRequiredTagError = types.MissingRequiredTagError

// EmptySongError is an alias to types.EmptySongError.
type EmptySongError = types.EmptySongError

// IOError is an alias to types.IOError.
type IOError = types.IOError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// Sentinel errors wrapped by TagValueError and IOError.
var (
	ErrNotPositive = registry.ErrNotPositive
	ErrNegative    = registry.ErrNegative
	ErrInvalidUTF8 = charset.ErrInvalidUTF8
)

package types

import (
	"fmt"
	"strings"
)

// ParseError is implemented by every error that rejects song text.
//
// The concrete variants are *UnrecognizedLineError, *MalformedTagError,
// *TagValueError, *IncompleteNoteLineError, *NoteFieldError,
// *MissingRequiredTagError and *EmptySongError. Use errors.As to recover
// either the interface or a specific variant:
//
//	var nf *usdx.NoteFieldError
//	if errors.As(err, &nf) {
//		fmt.Printf("line %d: bad %s %q\n", nf.Line, nf.Field, nf.Token)
//	}
type ParseError interface {
	error
	// LineNumber returns the 1-based line where the problem was detected.
	LineNumber() int
	parseError()
}

// UnrecognizedLineError is returned for a line that matches no known shape.
type UnrecognizedLineError struct {
	Text string
	Line int
}

func (e *UnrecognizedLineError) Error() string {
	return fmt.Sprintf("line %d: unrecognized line %q", e.Line, e.Text)
}

// LineNumber implements ParseError.
func (e *UnrecognizedLineError) LineNumber() int { return e.Line }
func (e *UnrecognizedLineError) parseError()     {}

// MalformedTagError is returned for a tag line without a KEY:VALUE split.
type MalformedTagError struct {
	Text string
	Line int
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("line %d: malformed tag %q: missing ':' separator or key", e.Line, e.Text)
}

// LineNumber implements ParseError.
func (e *MalformedTagError) LineNumber() int { return e.Line }
func (e *MalformedTagError) parseError()     {}

// TagValueError is returned when a known tag's value cannot be coerced
// or falls outside its allowed range.
type TagValueError struct {
	Err   error
	Key   string
	Value string
	Line  int
}

func (e *TagValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: invalid value %q for tag %s: %v", e.Line, e.Value, e.Key, e.Err)
	}
	return fmt.Sprintf("line %d: invalid value %q for tag %s", e.Line, e.Value, e.Key)
}

func (e *TagValueError) Unwrap() error { return e.Err }

// LineNumber implements ParseError.
func (e *TagValueError) LineNumber() int { return e.Line }
func (e *TagValueError) parseError()     {}

// IncompleteNoteLineError is returned when a note or line break is missing
// required numeric fields.
type IncompleteNoteLineError struct {
	Text string
	Line int
	Want int // numeric fields required
	Got  int // numeric fields found
}

func (e *IncompleteNoteLineError) Error() string {
	return fmt.Sprintf("line %d: incomplete note line %q: want %d numeric fields, got %d",
		e.Line, e.Text, e.Want, e.Got)
}

// LineNumber implements ParseError.
func (e *IncompleteNoteLineError) LineNumber() int { return e.Line }
func (e *IncompleteNoteLineError) parseError()     {}

// NoteFieldError is returned when a numeric note field is present but not
// a valid number for its position.
type NoteFieldError struct {
	Err   error
	Field string // "start", "duration", "pitch", "beat" or "next"
	Token string
	Line  int
}

func (e *NoteFieldError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Token, e.Err)
}

func (e *NoteFieldError) Unwrap() error { return e.Err }

// LineNumber implements ParseError.
func (e *NoteFieldError) LineNumber() int { return e.Line }
func (e *NoteFieldError) parseError()     {}

// MissingRequiredTagError is returned when input ends without every
// required tag. Line is the last line read.
type MissingRequiredTagError struct {
	Keys []string
	Line int
}

func (e *MissingRequiredTagError) Error() string {
	return fmt.Sprintf("line %d: missing required tag(s): %s", e.Line, strings.Join(e.Keys, ", "))
}

// LineNumber implements ParseError.
func (e *MissingRequiredTagError) LineNumber() int { return e.Line }
func (e *MissingRequiredTagError) parseError()     {}

// EmptySongError is returned when no voice holds a single note.
// Line is the last line read.
type EmptySongError struct {
	Line int
}

func (e *EmptySongError) Error() string {
	return fmt.Sprintf("line %d: song has no notes", e.Line)
}

// LineNumber implements ParseError.
func (e *EmptySongError) LineNumber() int { return e.Line }
func (e *EmptySongError) parseError()     {}

// IOError is returned when song bytes cannot be read or decoded to text.
type IOError struct {
	Err  error
	Path string
	Op   string // "read" or "decode"
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings never stop a parse. Examples include:
//   - A skipped line in lenient mode
//   - A tag given twice
//   - Notes that start before the previous note
//   - Content after the "E" end marker
type Warning struct {
	// Stage where the warning occurred
	Stage string // "decode", "header", "body"

	// Warning message
	Message string

	// Source line (0 if not applicable)
	Line int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Stage, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

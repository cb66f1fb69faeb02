// Package note parses USDX note and line-break lines.
//
// Grammar, after the sigil:
//
//	note:  START DURATION PITCH LYRIC
//	break: BEAT [NEXT]
//
// Numeric fields are separated by spaces or tabs. After PITCH exactly one
// separator is consumed; everything that follows is the lyric, verbatim.
package note

import (
	"errors"
	"strconv"
	"strings"

	"github.com/simonhull/usdx/internal/types"
)

var errNegative = errors.New("must not be negative")

// Parse parses the payload of a note line (the text after its sigil).
//
// Returns *types.IncompleteNoteLineError when fewer than three numeric
// fields are present and *types.NoteFieldError when a field does not parse.
// Line numbers and line text are left for the caller to fill in.
func Parse(payload string, kind types.NoteKind) (types.Note, error) {
	var fields [3]string
	rest := payload
	for i := range fields {
		var ok bool
		fields[i], rest, ok = nextField(rest)
		if !ok {
			return types.Note{}, &types.IncompleteNoteLineError{Want: 3, Got: i}
		}
	}
	if rest != "" {
		rest = rest[1:] // single separator before the lyric
	}

	start, err := unsigned("start", fields[0])
	if err != nil {
		return types.Note{}, err
	}
	duration, err := unsigned("duration", fields[1])
	if err != nil {
		return types.Note{}, err
	}
	pitch, err := signed("pitch", fields[2])
	if err != nil {
		return types.Note{}, err
	}

	return types.Note{
		Kind:     kind,
		Start:    start,
		Duration: duration,
		Pitch:    pitch,
		Text:     rest,
	}, nil
}

// ParseBreak parses the payload of a line-break line (the text after '-').
//
// Any text after the optional second number is returned as ignored so the
// caller can report it.
func ParseBreak(payload string) (lb types.LineBreak, ignored string, err error) {
	field, rest, ok := nextField(payload)
	if !ok {
		return types.LineBreak{}, "", &types.IncompleteNoteLineError{Want: 1, Got: 0}
	}
	lb.Beat, err = unsigned("beat", field)
	if err != nil {
		return types.LineBreak{}, "", err
	}

	field, rest, ok = nextField(rest)
	if !ok {
		return lb, "", nil
	}
	lb.Next, err = unsigned("next", field)
	if err != nil {
		return types.LineBreak{}, "", err
	}
	lb.HasNext = true

	return lb, strings.TrimSpace(rest), nil
}

// nextField skips leading separators and returns the next token and the
// text after it (starting at the separator that ended the token).
func nextField(s string) (field, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", false
	}
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s, "", true
	}
	return s[:end], s[end:], true
}

func unsigned(field, token string) (int, error) {
	n, err := signed(field, token)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &types.NoteFieldError{Field: field, Token: token, Err: errNegative}
	}
	return n, nil
}

func signed(field, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &types.NoteFieldError{Field: field, Token: token, Err: err}
	}
	return n, nil
}

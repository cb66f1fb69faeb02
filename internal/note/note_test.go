package note

import (
	"errors"
	"strconv"
	"testing"

	"github.com/simonhull/usdx/internal/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		kind    types.NoteKind
		want    types.Note
	}{
		{"simple", " 0 4 0 Hello", types.KindNormal,
			types.Note{Kind: types.KindNormal, Start: 0, Duration: 4, Pitch: 0, Text: "Hello"}},
		{"negative pitch", " 12 2 -5 la", types.KindGolden,
			types.Note{Kind: types.KindGolden, Start: 12, Duration: 2, Pitch: -5, Text: "la"}},
		{"lyric with spaces", " 4 4 2 World is big", types.KindNormal,
			types.Note{Start: 4, Duration: 4, Pitch: 2, Text: "World is big"}},
		{"leading space in lyric kept", " 4 4 2  world", types.KindNormal,
			types.Note{Start: 4, Duration: 4, Pitch: 2, Text: " world"}},
		{"trailing space in lyric kept", " 4 4 2 Hel ", types.KindNormal,
			types.Note{Start: 4, Duration: 4, Pitch: 2, Text: "Hel "}},
		{"hyphenation kept", " 8 1 3 lo-", types.KindNormal,
			types.Note{Start: 8, Duration: 1, Pitch: 3, Text: "lo-"}},
		{"no space after sigil", "0 4 0 x", types.KindNormal,
			types.Note{Start: 0, Duration: 4, Pitch: 0, Text: "x"}},
		{"wide field spacing", "  10   2\t7 yeah", types.KindRap,
			types.Note{Kind: types.KindRap, Start: 10, Duration: 2, Pitch: 7, Text: "yeah"}},
		{"empty lyric", " 0 1 0", types.KindNormal,
			types.Note{Start: 0, Duration: 1, Pitch: 0, Text: ""}},
		{"separator only lyric", " 0 1 0 ", types.KindNormal,
			types.Note{Start: 0, Duration: 1, Pitch: 0, Text: ""}},
		{"zero duration freestyle", " 16 0 0 ~", types.KindFreestyle,
			types.Note{Kind: types.KindFreestyle, Start: 16, Duration: 0, Pitch: 0, Text: "~"}},
		{"plus sign pitch", " 1 1 +3 a", types.KindNormal,
			types.Note{Start: 1, Duration: 1, Pitch: 3, Text: "a"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.payload, tc.kind)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.payload, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.payload, got, tc.want)
			}
		})
	}
}

func TestParse_Incomplete(t *testing.T) {
	tests := []struct {
		payload string
		got     int
	}{
		{"", 0},
		{"   ", 0},
		{" 0", 1},
		{" 0 4", 2},
		{" 0 4 ", 2},
	}

	for _, tc := range tests {
		t.Run(strconv.Quote(tc.payload), func(t *testing.T) {
			_, err := Parse(tc.payload, types.KindFreestyle)
			var ie *types.IncompleteNoteLineError
			if !errors.As(err, &ie) {
				t.Fatalf("Parse(%q) error = %v, want *IncompleteNoteLineError", tc.payload, err)
			}
			if ie.Want != 3 || ie.Got != tc.got {
				t.Errorf("want/got = %d/%d, want 3/%d", ie.Want, ie.Got, tc.got)
			}
		})
	}
}

func TestParse_FieldErrors(t *testing.T) {
	tests := []struct {
		payload string
		field   string
		token   string
	}{
		{" abc 4 0 la", "start", "abc"},
		{" 0 x 0 la", "duration", "x"},
		{" 0 4 up la", "pitch", "up"},
		{" -1 4 0 la", "start", "-1"},
		{" 0 -4 0 la", "duration", "-4"},
		{" 1.5 4 0 la", "start", "1.5"},
		{" 0 4 Hello", "pitch", "Hello"},
		{" 99999999999999999999 1 0 x", "start", "99999999999999999999"},
	}

	for _, tc := range tests {
		t.Run(tc.payload, func(t *testing.T) {
			_, err := Parse(tc.payload, types.KindNormal)
			var fe *types.NoteFieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Parse(%q) error = %v, want *NoteFieldError", tc.payload, err)
			}
			if fe.Field != tc.field || fe.Token != tc.token {
				t.Errorf("NoteFieldError = {%s %q}, want {%s %q}", fe.Field, fe.Token, tc.field, tc.token)
			}
		})
	}
}

func TestParse_FieldErrorUnwrap(t *testing.T) {
	_, err := Parse(" abc 4 0 la", types.KindNormal)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("error = %v, want to wrap strconv.ErrSyntax", err)
	}
}

func TestParseBreak(t *testing.T) {
	tests := []struct {
		payload string
		want    types.LineBreak
		ignored string
	}{
		{" 4", types.LineBreak{Beat: 4}, ""},
		{"4", types.LineBreak{Beat: 4}, ""},
		{" 4 ", types.LineBreak{Beat: 4}, ""},
		{" 12 16", types.LineBreak{Beat: 12, Next: 16, HasNext: true}, ""},
		{" 12\t16", types.LineBreak{Beat: 12, Next: 16, HasNext: true}, ""},
		{" 12 16 trailing words", types.LineBreak{Beat: 12, Next: 16, HasNext: true}, "trailing words"},
	}

	for _, tc := range tests {
		t.Run(tc.payload, func(t *testing.T) {
			got, ignored, err := ParseBreak(tc.payload)
			if err != nil {
				t.Fatalf("ParseBreak(%q) error = %v", tc.payload, err)
			}
			if got != tc.want {
				t.Errorf("ParseBreak(%q) = %+v, want %+v", tc.payload, got, tc.want)
			}
			if ignored != tc.ignored {
				t.Errorf("ignored = %q, want %q", ignored, tc.ignored)
			}
		})
	}
}

func TestParseBreak_Errors(t *testing.T) {
	_, _, err := ParseBreak("   ")
	var ie *types.IncompleteNoteLineError
	if !errors.As(err, &ie) || ie.Want != 1 || ie.Got != 0 {
		t.Errorf("ParseBreak(blank) error = %v, want incomplete 1/0", err)
	}

	_, _, err = ParseBreak(" x")
	var fe *types.NoteFieldError
	if !errors.As(err, &fe) || fe.Field != "beat" {
		t.Errorf("ParseBreak(x) error = %v, want beat field error", err)
	}

	_, _, err = ParseBreak(" 4 y")
	if !errors.As(err, &fe) || fe.Field != "next" || fe.Token != "y" {
		t.Errorf("ParseBreak(4 y) error = %v, want next field error", err)
	}

	_, _, err = ParseBreak(" -4")
	if !errors.As(err, &fe) || fe.Field != "beat" {
		t.Errorf("ParseBreak(-4) error = %v, want beat field error", err)
	}
}

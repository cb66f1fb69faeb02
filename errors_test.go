package usdx

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"
	"testing"
)

func TestParseErrors_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ParseError
		line     int
		contains []string
	}{
		{
			name:     "unrecognized line",
			err:      &UnrecognizedLineError{Line: 7, Text: "hello"},
			line:     7,
			contains: []string{"line 7", "unrecognized", `"hello"`},
		},
		{
			name:     "malformed tag",
			err:      &MalformedTagError{Line: 2, Text: "#ARTIST Queen"},
			line:     2,
			contains: []string{"line 2", "malformed tag", "#ARTIST Queen"},
		},
		{
			name:     "tag value",
			err:      &TagValueError{Line: 3, Key: "BPM", Value: "0", Err: ErrNotPositive},
			line:     3,
			contains: []string{"line 3", "BPM", `"0"`, ErrNotPositive.Error()},
		},
		{
			name:     "incomplete note",
			err:      &IncompleteNoteLineError{Line: 9, Text: ": 0 4", Want: 3, Got: 2},
			line:     9,
			contains: []string{"line 9", "want 3", "got 2", ": 0 4"},
		},
		{
			name:     "note field",
			err:      &NoteFieldError{Line: 12, Field: "start", Token: "abc", Err: strconv.ErrSyntax},
			line:     12,
			contains: []string{"line 12", "start", `"abc"`},
		},
		{
			name:     "missing tags",
			err:      &MissingRequiredTagError{Line: 40, Keys: []string{"ARTIST", "BPM"}},
			line:     40,
			contains: []string{"line 40", "ARTIST, BPM"},
		},
		{
			name:     "empty song",
			err:      &EmptySongError{Line: 5},
			line:     5,
			contains: []string{"line 5", "no notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
			if got := tt.err.LineNumber(); got != tt.line {
				t.Errorf("LineNumber() = %d, want %d", got, tt.line)
			}
		})
	}
}

func TestParseErrors_Unwrap(t *testing.T) {
	err := error(&TagValueError{Key: "GAP", Value: "-1", Err: ErrNegative})
	if !errors.Is(err, ErrNegative) {
		t.Error("TagValueError should unwrap to its cause")
	}

	err = &NoteFieldError{Field: "pitch", Token: "9999999999999999999", Err: strconv.ErrRange}
	if !errors.Is(err, strconv.ErrRange) {
		t.Error("NoteFieldError should unwrap to its cause")
	}
}

func TestIOError_Error(t *testing.T) {
	err := &IOError{Op: "read", Path: "song.txt", Err: fs.ErrNotExist}

	msg := err.Error()
	if !strings.Contains(msg, "read song.txt") {
		t.Errorf("error should contain op and path, got: %s", msg)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("IOError should unwrap to its cause")
	}

	noPath := &IOError{Op: "decode", Err: ErrInvalidUTF8}
	if got := noPath.Error(); got != "decode: "+ErrInvalidUTF8.Error() {
		t.Errorf("Error() = %q", got)
	}
}

func TestWarning_String(t *testing.T) {
	tests := []struct {
		w    Warning
		want string
	}{
		{Warning{Stage: "header", Line: 4, Message: "tag BPM given again"}, "header (line 4): tag BPM given again"},
		{Warning{Stage: "decode", Message: "decoded from CP1252"}, "decode: decoded from CP1252"},
	}

	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// Package line classifies raw USDX text lines without interpreting them.
package line

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/usdx/internal/registry"
	"github.com/simonhull/usdx/internal/types"
)

// Kind is the shape of a line.
type Kind int

const (
	Blank        Kind = iota // empty or whitespace only
	Tag                      // "#KEY:VALUE"
	Voice                    // "P1", "P 2"
	Note                     // registered sigil
	Break                    // "- BEAT [NEXT]"
	End                      // "E"
	Unrecognized             // anything else
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Tag:
		return "tag"
	case Voice:
		return "voice"
	case Note:
		return "note"
	case Break:
		return "break"
	case End:
		return "end"
	case Unrecognized:
		return "unrecognized"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Line is a classified line.
type Line struct {
	// Payload is the text after the sigil or '#'. It keeps trailing spaces
	// because lyric text is verbatim.
	Payload string
	// Text is the whole line with line endings removed.
	Text  string
	Kind  Kind
	Voice int            // voice index, only for Voice
	Note  types.NoteKind // only for Note
}

// Classify inspects one line. Trailing "\r" and "\n" are removed and
// leading spaces or tabs are ignored.
func Classify(text string, reg *registry.Registry) Line {
	text = strings.TrimRight(text, "\r\n")
	l := Line{Text: text}

	body := strings.TrimLeft(text, " \t")
	if strings.TrimSpace(body) == "" {
		l.Kind = Blank
		return l
	}

	sigil, size := utf8.DecodeRuneInString(body)
	rest := body[size:]

	switch sigil {
	case '#':
		l.Kind = Tag
		l.Payload = rest
		return l
	case registry.BreakSigil:
		l.Kind = Break
		l.Payload = rest
		return l
	case 'E':
		// 'E' can never be registered as a note sigil, so anything after
		// it is stray text on the end marker line.
		l.Kind = End
		l.Payload = strings.TrimSpace(rest)
		return l
	case 'P':
		if n, ok := voiceIndex(rest); ok {
			l.Kind = Voice
			l.Voice = n
			return l
		}
	}

	if kind, ok := reg.Kind(sigil); ok {
		l.Kind = Note
		l.Note = kind
		l.Payload = rest
		return l
	}

	l.Kind = Unrecognized
	return l
}

// voiceIndex parses the part of a voice marker after 'P'.
func voiceIndex(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

package types

import "fmt"

// NoteKind identifies how a note is sung and scored.
type NoteKind int

const (
	// KindNormal is a regular pitched note (":").
	KindNormal NoteKind = iota // Normal
	// KindGolden is a bonus-scored note ("*").
	KindGolden // Golden
	// KindFreestyle is an unscored note ("F").
	KindFreestyle // Freestyle
	// KindRap is a spoken, pitch-independent note ("R").
	KindRap // Rap
	// KindGoldenRap is a bonus-scored rap note ("G").
	KindGoldenRap // Golden Rap
)

// String returns the human-readable kind name.
func (k NoteKind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindGolden:
		return "Golden"
	case KindFreestyle:
		return "Freestyle"
	case KindRap:
		return "Rap"
	case KindGoldenRap:
		return "Golden Rap"
	default:
		return fmt.Sprintf("NoteKind(%d)", int(k))
	}
}

// IsGolden reports whether the note earns bonus points.
func (k NoteKind) IsGolden() bool {
	return k == KindGolden || k == KindGoldenRap
}

// IsRap reports whether the note is scored without pitch.
func (k NoteKind) IsRap() bool {
	return k == KindRap || k == KindGoldenRap
}

// Note is one sung syllable.
//
// Start and Duration are in beats. Pitch is a semitone offset where 0 is C4
// in most producer tools. Text is the lyric exactly as written in the file,
// so a leading space still marks the start of a new word and a trailing "-"
// or "~" keeps its meaning for the renderer.
type Note struct {
	Text     string
	Kind     NoteKind
	Start    int
	Duration int
	Pitch    int
}

// End returns the beat at which the note stops.
func (n Note) End() int {
	return n.Start + n.Duration
}

// LineBreak ends a displayed lyric line.
//
// Next is only meaningful when HasNext is set (the two-value "- 12 16" form),
// where it names the beat at which the following line should appear.
type LineBreak struct {
	Beat    int
	Next    int
	HasNext bool
}

// Event is a single entry of a voice track: either a Note or a LineBreak.
type Event struct {
	Note  *Note
	Break *LineBreak
	Line  int // 1-based source line
}

// IsNote reports whether the event carries a note.
func (e Event) IsNote() bool {
	return e.Note != nil
}

// IsBreak reports whether the event carries a line break.
func (e Event) IsBreak() bool {
	return e.Break != nil
}

// Beat returns the beat the event starts at.
func (e Event) Beat() int {
	switch {
	case e.Note != nil:
		return e.Note.Start
	case e.Break != nil:
		return e.Break.Beat
	default:
		return 0
	}
}

// clone returns a deep copy so callers never share note storage.
func (e Event) clone() Event {
	out := Event{Line: e.Line}
	if e.Note != nil {
		n := *e.Note
		out.Note = &n
	}
	if e.Break != nil {
		b := *e.Break
		out.Break = &b
	}
	return out
}

// equal compares event contents, not pointer identity or source lines.
func (e Event) equal(other Event) bool {
	if (e.Note == nil) != (other.Note == nil) || (e.Break == nil) != (other.Break == nil) {
		return false
	}
	if e.Note != nil && *e.Note != *other.Note {
		return false
	}
	if e.Break != nil && *e.Break != *other.Break {
		return false
	}
	return true
}

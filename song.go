package usdx

import "github.com/simonhull/usdx/internal/types"

// Song is an alias to types.Song.
type Song = types.Song

// Voice is an alias to types.Voice.
type Voice = types.Voice

// Event is an alias to types.Event.
type Event = types.Event

// Note is an alias to types.Note.
type Note = types.Note

// LineBreak is an alias to types.LineBreak.
type LineBreak = types.LineBreak

// NoteKind is an alias to types.NoteKind.
type NoteKind = types.NoteKind

// Note kinds.
const (
	KindNormal    = types.KindNormal
	KindGolden    = types.KindGolden
	KindFreestyle = types.KindFreestyle
	KindRap       = types.KindRap
	KindGoldenRap = types.KindGoldenRap
)

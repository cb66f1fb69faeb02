// Package types provides the core data structures for parsed USDX songs.
//
// This package defines the Song, Voice, Event, Note and Tags types shared
// by the parsing pipeline, the writer and the public API.
package types

import (
	"iter"
	"slices"
)

// Canonical keys of the tags the parser understands.
const (
	KeyVersion         = "VERSION"
	KeyEncoding        = "ENCODING"
	KeyTitle           = "TITLE"
	KeyArtist          = "ARTIST"
	KeyMP3             = "MP3"
	KeyAudio           = "AUDIO"
	KeyVideo           = "VIDEO"
	KeyVideoGap        = "VIDEOGAP"
	KeyCover           = "COVER"
	KeyBackground      = "BACKGROUND"
	KeyLanguage        = "LANGUAGE"
	KeyGenre           = "GENRE"
	KeyEdition         = "EDITION"
	KeyCreator         = "CREATOR"
	KeyAuthor          = "AUTHOR"
	KeyComment         = "COMMENT"
	KeyYear            = "YEAR"
	KeyBPM             = "BPM"
	KeyGap             = "GAP"
	KeyStart           = "START"
	KeyEnd             = "END"
	KeyPreviewStart    = "PREVIEWSTART"
	KeyRelative        = "RELATIVE"
	KeyResolution      = "RESOLUTION"
	KeyNotesGap        = "NOTESGAP"
	KeyMedleyStartBeat = "MEDLEYSTARTBEAT"
	KeyMedleyEndBeat   = "MEDLEYENDBEAT"
	KeyCalcMedley      = "CALCMEDLEY"
)

// Song is a parsed USDX song file.
//
// A Song is built once by the parser and should be treated as read-only.
// Use Clone to obtain an independent copy before modifying it.
type Song struct {
	// Header tags in first-seen order
	Tags Tags

	// One track per singer; a solo song has exactly one voice with Index 1
	Voices []Voice

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning
}

// Voice is the ordered note and line-break stream of one singer.
type Voice struct {
	Singer string // from #P<N> or #DUETSINGERP<N>, may be empty
	Events []Event
	Index  int // 1-based voice number from the P<N> marker
}

// Title returns the TITLE tag.
func (s *Song) Title() string { return s.Tags.String(KeyTitle) }

// Artist returns the ARTIST tag.
func (s *Song) Artist() string { return s.Tags.String(KeyArtist) }

// Audio returns the audio file name from MP3, or AUDIO for newer files.
func (s *Song) Audio() string {
	if v := s.Tags.String(KeyAudio); v != "" {
		return v
	}
	return s.Tags.String(KeyMP3)
}

// Video returns the VIDEO tag.
func (s *Song) Video() string { return s.Tags.String(KeyVideo) }

// Cover returns the COVER tag.
func (s *Song) Cover() string { return s.Tags.String(KeyCover) }

// Background returns the BACKGROUND tag.
func (s *Song) Background() string { return s.Tags.String(KeyBackground) }

// Language returns the LANGUAGE tag.
func (s *Song) Language() string { return s.Tags.String(KeyLanguage) }

// Genre returns the GENRE tag.
func (s *Song) Genre() string { return s.Tags.String(KeyGenre) }

// Edition returns the EDITION tag.
func (s *Song) Edition() string { return s.Tags.String(KeyEdition) }

// Creator returns the CREATOR tag, falling back to AUTHOR.
func (s *Song) Creator() string {
	if v := s.Tags.String(KeyCreator); v != "" {
		return v
	}
	return s.Tags.String(KeyAuthor)
}

// Version returns the file format VERSION tag, e.g. "1.0.0".
func (s *Song) Version() string { return s.Tags.String(KeyVersion) }

// Encoding returns the ENCODING tag as written in the file.
func (s *Song) Encoding() string { return s.Tags.String(KeyEncoding) }

// Year returns the YEAR tag, or 0.
func (s *Song) Year() int {
	v, _ := s.Tags.Int(KeyYear)
	return v
}

// BPM returns the beats per minute, or 0 when absent.
func (s *Song) BPM() float64 {
	v, _ := s.Tags.Float(KeyBPM)
	return v
}

// Gap returns the lyric offset in milliseconds.
func (s *Song) Gap() int {
	v, _ := s.Tags.Int(KeyGap)
	return v
}

// VideoGap returns the video offset in seconds.
func (s *Song) VideoGap() float64 {
	v, _ := s.Tags.Float(KeyVideoGap)
	return v
}

// Start returns the playback start in seconds.
func (s *Song) Start() float64 {
	v, _ := s.Tags.Float(KeyStart)
	return v
}

// End returns the playback end in milliseconds, or 0 for end of audio.
func (s *Song) End() int {
	v, _ := s.Tags.Int(KeyEnd)
	return v
}

// PreviewStart returns the song-selection preview start in seconds.
func (s *Song) PreviewStart() float64 {
	v, _ := s.Tags.Float(KeyPreviewStart)
	return v
}

// Medley returns the medley section beats and whether both were given.
func (s *Song) Medley() (start, end int, ok bool) {
	start, okStart := s.Tags.Int(KeyMedleyStartBeat)
	end, okEnd := s.Tags.Int(KeyMedleyEndBeat)
	return start, end, okStart && okEnd
}

// Relative reports whether the file used relative beat numbering.
// Beats in Voices are always absolute.
func (s *Song) Relative() bool {
	v, _ := s.Tags.Bool(KeyRelative)
	return v
}

// Voice returns the track with the given 1-based index.
func (s *Song) Voice(index int) (*Voice, bool) {
	for i := range s.Voices {
		if s.Voices[i].Index == index {
			return &s.Voices[i], true
		}
	}
	return nil, false
}

// IsDuet reports whether the song has more than one voice.
func (s *Song) IsDuet() bool {
	return len(s.Voices) > 1
}

// NoteCount returns the number of notes across all voices.
func (s *Song) NoteCount() int {
	n := 0
	for i := range s.Voices {
		n += s.Voices[i].NoteCount()
	}
	return n
}

// Clone creates a deep copy of the song.
func (s *Song) Clone() *Song {
	if s == nil {
		return nil
	}
	clone := &Song{
		Tags:     s.Tags.Clone(),
		Voices:   make([]Voice, len(s.Voices)),
		Warnings: slices.Clone(s.Warnings),
	}
	for i, v := range s.Voices {
		clone.Voices[i] = v.Clone()
	}
	return clone
}

// Equal reports whether two songs hold the same tags and voices.
// Warnings and source line numbers are ignored.
func (s *Song) Equal(other *Song) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !s.Tags.Equal(&other.Tags) {
		return false
	}
	return slices.EqualFunc(s.Voices, other.Voices, func(a, b Voice) bool {
		return a.Equal(&b)
	})
}

// Notes returns an iterator over the voice's notes in file order.
func (v *Voice) Notes() iter.Seq[Note] {
	return func(yield func(Note) bool) {
		for _, e := range v.Events {
			if e.Note != nil {
				if !yield(*e.Note) {
					return
				}
			}
		}
	}
}

// LineBreaks returns an iterator over the voice's line breaks in file order.
func (v *Voice) LineBreaks() iter.Seq[LineBreak] {
	return func(yield func(LineBreak) bool) {
		for _, e := range v.Events {
			if e.Break != nil {
				if !yield(*e.Break) {
					return
				}
			}
		}
	}
}

// NoteCount returns the number of notes in the voice.
func (v *Voice) NoteCount() int {
	n := 0
	for _, e := range v.Events {
		if e.Note != nil {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the voice.
func (v *Voice) Clone() Voice {
	events := make([]Event, len(v.Events))
	for i, e := range v.Events {
		events[i] = e.clone()
	}
	return Voice{Index: v.Index, Singer: v.Singer, Events: events}
}

// Equal reports whether two voices hold the same events.
func (v *Voice) Equal(other *Voice) bool {
	if v.Index != other.Index || v.Singer != other.Singer {
		return false
	}
	return slices.EqualFunc(v.Events, other.Events, Event.equal)
}

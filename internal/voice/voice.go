// Package voice routes note events to per-singer tracks for duet songs.
package voice

import "github.com/simonhull/usdx/internal/types"

// Splitter partitions the event stream by P<N> markers.
//
// Before any marker, events go to voice 1. A marker selects voice N until
// the next marker; a voice seen twice is reused, not duplicated. Voices are
// reported in the order they were first seen.
type Splitter struct {
	voices  []types.Voice
	index   map[int]int // voice number -> position in voices
	current int
}

// NewSplitter returns a splitter positioned on the implicit solo voice.
func NewSplitter() *Splitter {
	return &Splitter{
		index:   make(map[int]int),
		current: 1,
	}
}

// Switch makes voice n current, creating its track if needed.
func (s *Splitter) Switch(n int) {
	s.current = n
	s.track(n)
}

// Current returns the active voice number.
func (s *Splitter) Current() int {
	return s.current
}

// Append adds an event to the current voice.
func (s *Splitter) Append(e types.Event) {
	v := s.track(s.current)
	v.Events = append(v.Events, e)
}

// Voices returns the tracks in first-seen order. The splitter must not be
// used afterwards.
func (s *Splitter) Voices() []types.Voice {
	return s.voices
}

func (s *Splitter) track(n int) *types.Voice {
	if pos, ok := s.index[n]; ok {
		return &s.voices[pos]
	}
	s.index[n] = len(s.voices)
	s.voices = append(s.voices, types.Voice{Index: n})
	return &s.voices[len(s.voices)-1]
}

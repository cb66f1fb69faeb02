// Package registry holds the dialect tables that drive USDX parsing:
// which leading characters start a note line and how known tag values
// are coerced.
//
// Tables are plain values. Default returns a fresh copy each time, so
// extending one parse's dialect never leaks into another.
package registry

import (
	"errors"
	"maps"
	"slices"

	"github.com/simonhull/usdx/internal/charset"
	"github.com/simonhull/usdx/internal/types"
)

// BreakSigil starts a line-break line. It is fixed and cannot be remapped.
const BreakSigil = '-'

// Range errors reported through TagSpec.Check.
var (
	ErrNotPositive = errors.New("must be greater than zero")
	ErrNegative    = errors.New("must not be negative")
)

// TagSpec describes how a known tag's value is coerced.
type TagSpec struct {
	// Check validates a coerced value; nil accepts everything.
	Check func(types.Value) error
	// Enum lists the accepted upper-case words for ValueEnum.
	Enum []string
	Type types.ValueType
}

// Registry maps sigils to note kinds and tag keys to value specs.
type Registry struct {
	sigils map[rune]types.NoteKind
	tags   map[string]TagSpec
}

// Default returns the standard USDX dialect.
func Default() *Registry {
	r := &Registry{
		sigils: map[rune]types.NoteKind{
			':': types.KindNormal,
			'*': types.KindGolden,
			'F': types.KindFreestyle,
			'R': types.KindRap,
			'G': types.KindGoldenRap,
		},
		tags: make(map[string]TagSpec),
	}

	positive := func(v types.Value) error {
		if v.Float <= 0 {
			return ErrNotPositive
		}
		return nil
	}
	nonNegative := func(v types.Value) error {
		if v.Int < 0 {
			return ErrNegative
		}
		return nil
	}

	r.tags[types.KeyBPM] = TagSpec{Type: types.ValueFloat, Check: positive}
	for _, key := range []string{types.KeyVideoGap, types.KeyStart, types.KeyPreviewStart} {
		r.tags[key] = TagSpec{Type: types.ValueFloat}
	}
	for _, key := range []string{
		types.KeyGap, types.KeyEnd, types.KeyYear,
		types.KeyMedleyStartBeat, types.KeyMedleyEndBeat,
		types.KeyResolution, types.KeyNotesGap,
	} {
		r.tags[key] = TagSpec{Type: types.ValueInt, Check: nonNegative}
	}
	r.tags[types.KeyRelative] = TagSpec{Type: types.ValueBool}
	r.tags[types.KeyEncoding] = TagSpec{
		Type: types.ValueEnum,
		Enum: charset.Names(),
	}
	r.tags[types.KeyCalcMedley] = TagSpec{
		Type: types.ValueEnum,
		Enum: []string{"ON", "OFF"},
	}
	for _, key := range []string{
		types.KeyVersion, types.KeyTitle, types.KeyArtist, types.KeyMP3, types.KeyAudio,
		types.KeyVideo, types.KeyCover, types.KeyBackground, types.KeyLanguage,
		types.KeyGenre, types.KeyEdition, types.KeyCreator, types.KeyAuthor, types.KeyComment,
	} {
		r.tags[key] = TagSpec{Type: types.ValueString}
	}
	return r
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	return &Registry{
		sigils: maps.Clone(r.sigils),
		tags:   maps.Clone(r.tags),
	}
}

// RegisterSigil maps a leading character to a note kind, replacing any
// earlier mapping. The break sigil and the P/E markers are not remappable.
func (r *Registry) RegisterSigil(sigil rune, kind types.NoteKind) error {
	switch sigil {
	case BreakSigil, '#', 'P', 'E', ' ', '\t':
		return errors.New("sigil " + string(sigil) + " is reserved")
	}
	r.sigils[sigil] = kind
	return nil
}

// Kind returns the note kind for a sigil.
func (r *Registry) Kind(sigil rune) (types.NoteKind, bool) {
	kind, ok := r.sigils[sigil]
	return kind, ok
}

// Sigil returns the character used to write a note kind. When several
// sigils map to the same kind the lowest code point wins, so output is stable.
func (r *Registry) Sigil(kind types.NoteKind) (rune, bool) {
	var found []rune
	for s, k := range r.sigils {
		if k == kind {
			found = append(found, s)
		}
	}
	if len(found) == 0 {
		return 0, false
	}
	return slices.Min(found), true
}

// RegisterTag sets the spec for a tag key, replacing any earlier spec.
// Keys are canonical upper case.
func (r *Registry) RegisterTag(key string, spec TagSpec) {
	r.tags[key] = spec
}

// Tag returns the spec for a known tag key.
func (r *Registry) Tag(key string) (TagSpec, bool) {
	spec, ok := r.tags[key]
	return spec, ok
}

package usdx

import (
	"github.com/simonhull/usdx/internal/registry"
	"github.com/simonhull/usdx/internal/types"
)

// Tags is an alias to types.Tags.
type Tags = types.Tags

// Tag is an alias to types.Tag.
type Tag = types.Tag

// Value is an alias to types.Value.
type Value = types.Value

// ValueType is an alias to types.ValueType.
type ValueType = types.ValueType

// TagSpec describes how WithTag coerces and checks a tag value.
type TagSpec = registry.TagSpec

// Value types for TagSpec.
const (
	ValueString = types.ValueString
	ValueInt    = types.ValueInt
	ValueFloat  = types.ValueFloat
	ValueBool   = types.ValueBool
	ValueEnum   = types.ValueEnum
)

// Canonical tag keys.
const (
	KeyVersion         = types.KeyVersion
	KeyEncoding        = types.KeyEncoding
	KeyTitle           = types.KeyTitle
	KeyArtist          = types.KeyArtist
	KeyMP3             = types.KeyMP3
	KeyAudio           = types.KeyAudio
	KeyVideo           = types.KeyVideo
	KeyVideoGap        = types.KeyVideoGap
	KeyCover           = types.KeyCover
	KeyBackground      = types.KeyBackground
	KeyLanguage        = types.KeyLanguage
	KeyGenre           = types.KeyGenre
	KeyEdition         = types.KeyEdition
	KeyCreator         = types.KeyCreator
	KeyAuthor          = types.KeyAuthor
	KeyComment         = types.KeyComment
	KeyYear            = types.KeyYear
	KeyBPM             = types.KeyBPM
	KeyGap             = types.KeyGap
	KeyStart           = types.KeyStart
	KeyEnd             = types.KeyEnd
	KeyPreviewStart    = types.KeyPreviewStart
	KeyRelative        = types.KeyRelative
	KeyResolution      = types.KeyResolution
	KeyNotesGap        = types.KeyNotesGap
	KeyMedleyStartBeat = types.KeyMedleyStartBeat
	KeyMedleyEndBeat   = types.KeyMedleyEndBeat
	KeyCalcMedley      = types.KeyCalcMedley
)

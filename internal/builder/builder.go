// Package builder drives the USDX parsing pipeline: it classifies each
// line, hands it to the tag or note parser, routes events through the voice
// splitter and validates the finished song.
package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/simonhull/usdx/internal/line"
	"github.com/simonhull/usdx/internal/note"
	"github.com/simonhull/usdx/internal/registry"
	"github.com/simonhull/usdx/internal/tag"
	"github.com/simonhull/usdx/internal/types"
	"github.com/simonhull/usdx/internal/voice"
)

// DefaultRequired lists the tags a song must carry unless configured otherwise.
var DefaultRequired = []string{types.KeyArtist, types.KeyTitle, types.KeyBPM}

// Config controls a single Build call.
type Config struct {
	// Registry holds the sigil and tag tables; nil means registry.Default().
	Registry *registry.Registry
	// Logger receives warnings and a summary; nil disables logging.
	Logger *slog.Logger
	// Required tag keys, checked after the last line.
	Required []string
	// Lenient skips unrecognized lines with a warning instead of failing.
	Lenient bool
}

type builder struct {
	cfg      Config
	song     *types.Song
	split    *voice.Splitter
	warnings []types.Warning
}

// Build parses text into a Song. Parsing stops at the first fatal error,
// which is returned as a types.ParseError; no partial song is returned.
func Build(text string, cfg Config) (*types.Song, error) {
	if cfg.Registry == nil {
		cfg.Registry = registry.Default()
	}

	b := &builder{
		cfg:   cfg,
		song:  &types.Song{},
		split: voice.NewSplitter(),
	}

	n := 0
	endLine := 0
	trailing := 0
	for raw := range strings.Lines(text) {
		n++
		if endLine > 0 {
			if strings.TrimSpace(raw) != "" {
				trailing++
			}
			continue
		}

		l := line.Classify(raw, cfg.Registry)
		if err := b.handle(l, n); err != nil {
			return nil, err
		}
		if l.Kind == line.End {
			endLine = n
		}
	}

	last := n
	if endLine > 0 {
		last = endLine
		if trailing > 0 {
			b.warn("body", endLine, fmt.Sprintf("ignored %d non-empty line(s) after end marker", trailing))
		}
	}
	if last == 0 {
		last = 1
	}

	if err := b.finish(last); err != nil {
		return nil, err
	}
	return b.song, nil
}

func (b *builder) handle(l line.Line, n int) error {
	switch l.Kind {
	case line.Blank:
		return nil

	case line.End:
		if l.Payload != "" {
			b.warn("body", n, fmt.Sprintf("ignored text after end marker: %q", l.Payload))
		}
		return nil

	case line.Tag:
		t, err := tag.Parse(l.Payload, b.cfg.Registry)
		var ve *types.TagValueError
		if errors.As(err, &ve) && ve.Key == types.KeyEncoding {
			b.warn("header", n, fmt.Sprintf("unknown encoding %q kept as text", ve.Value))
			t = types.Tag{Key: ve.Key, Raw: ve.Value, Value: types.Value{Type: types.ValueString, Str: ve.Value}}
			err = nil
		}
		if err != nil {
			return atLine(err, n, l.Text)
		}
		t.Line = n
		if b.song.Tags.Set(t) {
			b.warn("header", n, fmt.Sprintf("tag %s given again, later value %q wins", t.Key, t.Raw))
		}
		return nil

	case line.Voice:
		b.split.Switch(l.Voice)
		return nil

	case line.Note:
		nt, err := note.Parse(l.Payload, l.Note)
		if err != nil {
			return atLine(err, n, l.Text)
		}
		b.split.Append(types.Event{Note: &nt, Line: n})
		return nil

	case line.Break:
		lb, ignored, err := note.ParseBreak(l.Payload)
		if err != nil {
			return atLine(err, n, l.Text)
		}
		if ignored != "" {
			b.warn("body", n, fmt.Sprintf("ignored text after line break: %q", ignored))
		}
		b.split.Append(types.Event{Break: &lb, Line: n})
		return nil

	default:
		if b.cfg.Lenient {
			b.warn("body", n, fmt.Sprintf("skipped unrecognized line %q", l.Text))
			return nil
		}
		return &types.UnrecognizedLineError{Line: n, Text: l.Text}
	}
}

// finish runs cross-field validation and assembles the song.
func (b *builder) finish(last int) error {
	voices := b.split.Voices()
	tags := &b.song.Tags

	if rel, _ := tags.Bool(types.KeyRelative); rel {
		for i := range voices {
			toAbsolute(&voices[i])
		}
	}

	var missing []string
	for _, key := range b.cfg.Required {
		if !tags.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &types.MissingRequiredTagError{Keys: missing, Line: last}
	}

	notes := 0
	for i := range voices {
		notes += voices[i].NoteCount()
	}
	if notes == 0 {
		return &types.EmptySongError{Line: last}
	}

	if t, ok := tags.Get(types.KeyBPM); ok {
		if bpm, isNum := tags.Float(types.KeyBPM); !isNum || !(bpm > 0) {
			return &types.TagValueError{Key: t.Key, Value: t.Raw, Line: t.Line, Err: registry.ErrNotPositive}
		}
	}
	if t, ok := tags.Get(types.KeyGap); ok {
		if gap, isInt := tags.Int(types.KeyGap); !isInt || gap < 0 {
			return &types.TagValueError{Key: t.Key, Value: t.Raw, Line: t.Line, Err: registry.ErrNegative}
		}
	}

	for i := range voices {
		v := &voices[i]
		v.Singer = singer(tags, v.Index)
		if at := firstBacktrack(v); at > 0 {
			b.warn("body", at, fmt.Sprintf("voice %d: note starts before the previous note", v.Index))
		}
	}

	b.song.Voices = voices
	b.song.Warnings = b.warnings

	if b.cfg.Logger != nil {
		b.cfg.Logger.Debug("parsed song",
			"title", b.song.Title(),
			"voices", len(voices),
			"notes", notes,
			"warnings", len(b.warnings))
	}
	return nil
}

func (b *builder) warn(stage string, n int, msg string) {
	b.warnings = append(b.warnings, types.Warning{Stage: stage, Line: n, Message: msg})
	if b.cfg.Logger != nil {
		b.cfg.Logger.Warn(msg, "stage", stage, "line", n)
	}
}

// toAbsolute rewrites relative beats. In relative files every beat counts
// from the previous line break; "- A" moves the origin by A and "- A B"
// moves it by B.
func toAbsolute(v *types.Voice) {
	offset := 0
	for _, e := range v.Events {
		switch {
		case e.Note != nil:
			e.Note.Start += offset
		case e.Break != nil:
			shift := e.Break.Beat
			if e.Break.HasNext {
				shift = e.Break.Next
				e.Break.Next += offset
			}
			e.Break.Beat += offset
			offset += shift
		}
	}
}

// firstBacktrack returns the line of the first note that starts before its
// predecessor, or 0.
func firstBacktrack(v *types.Voice) int {
	prev := -1
	for _, e := range v.Events {
		if e.Note == nil {
			continue
		}
		if e.Note.Start < prev {
			return e.Line
		}
		prev = e.Note.Start
	}
	return 0
}

// singer looks up a voice's display name from #P<N> or #DUETSINGERP<N>.
func singer(tags *types.Tags, index int) string {
	n := strconv.Itoa(index)
	if name := tags.String("P" + n); name != "" {
		return name
	}
	return tags.String("DUETSINGERP" + n)
}

// atLine fills in the source position of errors produced by the tag and
// note parsers.
func atLine(err error, n int, text string) error {
	var (
		malformed  *types.MalformedTagError
		value      *types.TagValueError
		incomplete *types.IncompleteNoteLineError
		field      *types.NoteFieldError
	)
	switch {
	case errors.As(err, &malformed):
		malformed.Line = n
		malformed.Text = text
	case errors.As(err, &value):
		value.Line = n
	case errors.As(err, &incomplete):
		incomplete.Line = n
		incomplete.Text = text
	case errors.As(err, &field):
		field.Line = n
	}
	return err
}

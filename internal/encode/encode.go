// Package encode serializes songs back to USDX text.
package encode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/simonhull/usdx/internal/registry"
	"github.com/simonhull/usdx/internal/types"
)

// Canonical returns a copy of song as Write renders it. Output is always
// UTF-8 with absolute beats, so RELATIVE is removed and an ENCODING tag,
// when present, is rewritten to UTF8.
func Canonical(song *types.Song) *types.Song {
	out := song.Clone()
	out.Tags.Delete(types.KeyRelative)
	if t, ok := out.Tags.Get(types.KeyEncoding); ok {
		t.Raw = "UTF8"
		t.Value = types.Value{Type: types.ValueEnum, Str: "UTF8"}
		out.Tags.Set(t)
	}
	return out
}

// Write emits song as USDX text.
//
// Tags are written in their stored order with their raw values (see
// Canonical), followed by each voice and the "E" end marker. Voice markers
// are only written for duets or when the single voice is not P1. Note sigils
// come from reg; a kind with no sigil is an error.
func Write(w io.Writer, song *types.Song, reg *registry.Registry) (int64, error) {
	if reg == nil {
		reg = registry.Default()
	}

	lw := newLineWriter(w)

	for key, tag := range Canonical(song).Tags.All() {
		lw.line("#", key, ":", tag.Raw)
	}

	markers := len(song.Voices) > 1 || (len(song.Voices) == 1 && song.Voices[0].Index != 1)
	for i := range song.Voices {
		v := &song.Voices[i]
		if markers {
			lw.line("P", strconv.Itoa(v.Index))
		}
		for _, e := range v.Events {
			switch {
			case e.Note != nil:
				sigil, ok := reg.Sigil(e.Note.Kind)
				if !ok {
					return lw.offset, fmt.Errorf("line %d: no sigil registered for %s notes", e.Line, e.Note.Kind)
				}
				n := e.Note
				lw.line(string(sigil), " ",
					strconv.Itoa(n.Start), " ",
					strconv.Itoa(n.Duration), " ",
					strconv.Itoa(n.Pitch), " ",
					n.Text)
			case e.Break != nil:
				if e.Break.HasNext {
					lw.line("- ", strconv.Itoa(e.Break.Beat), " ", strconv.Itoa(e.Break.Next))
				} else {
					lw.line("- ", strconv.Itoa(e.Break.Beat))
				}
			}
		}
	}
	lw.line("E")

	return lw.flush()
}

// lineWriter buffers output and tracks the number of bytes written. The
// first error sticks and turns later writes into no-ops.
type lineWriter struct {
	bw     *bufio.Writer
	err    error
	offset int64
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{bw: bufio.NewWriter(w)}
}

func (lw *lineWriter) line(parts ...string) {
	for _, p := range parts {
		lw.write(p)
	}
	lw.write("\n")
}

func (lw *lineWriter) write(s string) {
	if lw.err != nil {
		return
	}
	n, err := lw.bw.WriteString(s)
	lw.offset += int64(n)
	lw.err = err
}

func (lw *lineWriter) flush() (int64, error) {
	if lw.err != nil {
		return lw.offset, lw.err
	}
	return lw.offset, lw.bw.Flush()
}

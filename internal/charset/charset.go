// Package charset turns raw song file bytes into UTF-8 text.
//
// Song files in the wild are UTF-8 (with or without BOM), UTF-16 with BOM,
// or a Windows code page announced by an "#ENCODING:" header.
package charset

import (
	"bytes"
	"errors"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned when bytes are not UTF-8 and no other
// encoding was announced or configured.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Result describes a successful decode.
type Result struct {
	Text string
	// Encoding names what the bytes were decoded from, e.g. "UTF-8",
	// "UTF-16LE", "CP1252".
	Encoding string
	// Converted is set when the bytes were not UTF-8 to begin with.
	Converted bool
}

// encodings maps every #ENCODING value the decoder understands. A nil
// entry means the text is already UTF-8.
var encodings = map[string]encoding.Encoding{
	"UTF8":         nil,
	"UTF-8":        nil,
	"AUTO":         nil,
	"CP1252":       charmap.Windows1252,
	"WINDOWS-1252": charmap.Windows1252,
	"CP1250":       charmap.Windows1250,
	"WINDOWS-1250": charmap.Windows1250,
	"ISO-8859-1":   charmap.ISO8859_1,
	"LATIN1":       charmap.ISO8859_1,
}

// Lookup returns the encoding for an #ENCODING tag value.
// UTF-8 names, AUTO and the empty string return nil, true: no conversion
// is needed.
func Lookup(name string) (encoding.Encoding, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return nil, true
	}
	enc, ok := encodings[name]
	return enc, ok
}

// Names returns the upper-case #ENCODING values Lookup accepts, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(encodings))
}

// Decode converts data to UTF-8.
//
// Order of precedence: byte order mark, valid UTF-8, the file's own
// #ENCODING header, then fallback. A nil fallback means invalid UTF-8 is
// an error.
func Decode(data []byte, fallback encoding.Encoding) (Result, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		data = data[len(bomUTF8):]
		if !utf8.Valid(data) {
			return Result{}, ErrInvalidUTF8
		}
		return Result{Text: string(data), Encoding: "UTF-8"}, nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return convert(data, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), "UTF-16LE")
	case bytes.HasPrefix(data, bomUTF16BE):
		return convert(data, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), "UTF-16BE")
	}

	if utf8.Valid(data) {
		return Result{Text: string(data), Encoding: "UTF-8"}, nil
	}

	if hint := Hint(data); hint != "" {
		if enc, ok := Lookup(hint); ok && enc != nil {
			return convert(data, enc, strings.ToUpper(hint))
		}
	}

	if fallback != nil {
		return convert(data, fallback, name(fallback))
	}
	return Result{}, ErrInvalidUTF8
}

// Hint returns the value of the first #ENCODING header in data, or "".
// Only the ASCII-compatible header block is inspected, so it works before
// the bytes are decoded.
func Hint(data []byte) string {
	const prefix = "#ENCODING:"
	for line := range bytes.Lines(data) {
		line = bytes.TrimLeft(line, " \t")
		if len(line) < len(prefix) || !bytes.EqualFold(line[:len(prefix)], []byte(prefix)) {
			continue
		}
		return string(bytes.TrimSpace(line[len(prefix):]))
	}
	return ""
}

func convert(data []byte, enc encoding.Encoding, label string) (Result, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: string(out), Encoding: label, Converted: true}, nil
}

func name(enc encoding.Encoding) string {
	if s, ok := enc.(interface{ String() string }); ok {
		return s.String()
	}
	return "fallback"
}

package usdx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/usdx/internal/builder"
	"github.com/simonhull/usdx/internal/charset"
)

const bom = "\uFEFF"

// Open reads and parses a song file.
//
// The file may be UTF-8 (with or without BOM), UTF-16 with BOM, or a
// Windows code page named by an #ENCODING tag. Read and decode failures are
// returned as *IOError; parse failures as one of the ParseError variants,
// prefixed with the path:
//
//	song, err := usdx.Open("song.txt")
//	var pe usdx.ParseError
//	if errors.As(err, &pe) {
//		fmt.Printf("fix line %d: %v\n", pe.LineNumber(), err)
//	}
//
// Parsing is fail-fast: on error no Song is returned.
func Open(path string, opts ...Option) (*Song, error) {
	options := applyOptions(opts)
	if options.err != nil {
		return nil, options.err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	song, err := parseData(data, path, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return song, nil
}

// ParseReader reads all of r and parses it. Bytes are decoded the same
// way Open decodes a file.
func ParseReader(r io.Reader, opts ...Option) (*Song, error) {
	options := applyOptions(opts)
	if options.err != nil {
		return nil, options.err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return parseData(data, "", options)
}

// Parse parses song text that is already in memory.
//
// A leading byte order mark is ignored. Example:
//
//	song, err := usdx.Parse("#ARTIST:a\n#TITLE:t\n#BPM:100\n: 0 4 0 la\nE\n")
func Parse(text string, opts ...Option) (*Song, error) {
	options := applyOptions(opts)
	if options.err != nil {
		return nil, options.err
	}
	return build(strings.TrimPrefix(text, bom), options)
}

// ParseBytes parses a text buffer handed over by the caller. It behaves
// exactly like Parse: the bytes are taken as UTF-8 and a leading byte order
// mark is ignored. Use ParseReader for input that may need decoding.
func ParseBytes(data []byte, opts ...Option) (*Song, error) {
	return Parse(string(bytes.TrimPrefix(data, []byte(bom))), opts...)
}

func parseData(data []byte, path string, options *parseOptions) (*Song, error) {
	res, err := charset.Decode(data, options.fallback)
	if err != nil {
		return nil, &IOError{Op: "decode", Path: path, Err: err}
	}

	song, err := build(res.Text, options)
	if err != nil {
		return nil, err
	}

	if res.Converted && !options.ignoreWarnings {
		song.Warnings = append([]Warning{{
			Stage:   "decode",
			Message: "decoded from " + res.Encoding,
		}}, song.Warnings...)
	}
	return song, nil
}

func build(text string, options *parseOptions) (*Song, error) {
	song, err := builder.Build(text, options.config())
	if err != nil {
		return nil, err
	}

	if options.ignoreWarnings {
		song.Warnings = nil
	}
	return song, nil
}

// OpenContext opens a song with context support for cancellation.
//
// The context is checked before the file is read; parsing itself is fast
// and not interruptible.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	song, err := usdx.OpenContext(ctx, "song.txt", usdx.WithLenientParsing())
func OpenContext(ctx context.Context, path string, opts ...Option) (*Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple song files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, or ctx is cancelled, no songs are returned.
//
// Example:
//
//	songs, err := usdx.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range songs {
//		fmt.Printf("%s - %s\n", s.Artist(), s.Title())
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Song, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Song, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			song, err := OpenContext(ctx, path)
			if err != nil {
				return err
			}
			results[i] = song
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

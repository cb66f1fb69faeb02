package usdx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/simonhull/usdx/internal/encode"
)

// Write serializes song as UTF-8 USDX text.
//
// Tags keep their order and raw values. Beats are written as absolute
// values, so a RELATIVE tag is dropped, and an ENCODING tag is rewritten to
// UTF8. Pass the same WithSigil options used for parsing so custom note
// kinds map back to their sigils.
func Write(w io.Writer, song *Song, opts ...Option) error {
	options := applyOptions(opts)
	if options.err != nil {
		return options.err
	}
	if _, err := encode.Write(w, song, options.registry); err != nil {
		return fmt.Errorf("write song: %w", err)
	}
	return nil
}

// Marshal returns song as USDX text. See Write.
func Marshal(song *Song, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, song, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes song to path.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the output path. If any step fails, the original file remains unchanged
// and any partially written data is cleaned up.
//
// Options can be provided to customize save behavior:
//
//	err := usdx.Save(song, "song.txt",
//	    usdx.WithBackup(".bak"),
//	    usdx.WithValidation(),
//	)
func Save(song *Song, path string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := Marshal(song, options.parse...)
	if err != nil {
		return err
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(path); err == nil {
			origInfo = info
		}
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".usdx-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+options.backupSuffix); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if origInfo != nil {
		_ = os.Chtimes(path, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if options.validate {
		if err := validateWritten(song, path, options); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}

// validateWritten re-opens path and compares it with what Write should
// have produced.
func validateWritten(song *Song, path string, options *saveOptions) error {
	written, err := Open(path, options.parse...)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	want := encode.Canonical(song)
	switch {
	case !written.Tags.Equal(&want.Tags):
		return fmt.Errorf("tags mismatch: got %v, want %v", written.Tags.Keys(), want.Tags.Keys())
	case len(written.Voices) != len(want.Voices):
		return fmt.Errorf("voice count mismatch: got %d, want %d", len(written.Voices), len(want.Voices))
	case !written.Equal(want):
		return fmt.Errorf("note data mismatch")
	}
	return nil
}

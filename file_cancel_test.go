package usdx_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/simonhull/usdx"
)

func writeSongs(t *testing.T, n int) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, "song"+strconv.Itoa(i)+".txt")
		text := "#ARTIST:a\n#TITLE:Song " + strconv.Itoa(i) + "\n#BPM:100\n: 0 1 0 la\nE\n"
		if err := os.WriteFile(paths[i], []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestOpenMany_Order(t *testing.T) {
	paths := writeSongs(t, 12)

	songs, err := usdx.OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("OpenMany() error = %v", err)
	}
	if len(songs) != len(paths) {
		t.Fatalf("len(songs) = %d, want %d", len(songs), len(paths))
	}
	for i, s := range songs {
		if want := "Song " + strconv.Itoa(i); s.Title() != want {
			t.Errorf("songs[%d].Title() = %q, want %q", i, s.Title(), want)
		}
	}
}

func TestOpenMany_Empty(t *testing.T) {
	songs, err := usdx.OpenMany(context.Background())
	if err != nil || songs != nil {
		t.Errorf("OpenMany() = %v, %v, want nil, nil", songs, err)
	}
}

// TestOpenMany_Cancellation verifies that a cancelled context stops the batch
func TestOpenMany_Cancellation(t *testing.T) {
	paths := writeSongs(t, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	songs, err := usdx.OpenMany(ctx, paths...)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if songs != nil {
		t.Error("expected nil songs on error")
	}
}

// TestOpenMany_PartialFailure verifies the all-or-nothing result
func TestOpenMany_PartialFailure(t *testing.T) {
	valid := writeSongs(t, 2)
	paths := []string{valid[0], "/nonexistent/song.txt", valid[1]}

	songs, err := usdx.OpenMany(context.Background(), paths...)
	if err == nil {
		t.Fatal("expected error from nonexistent file")
	}

	var ioErr *usdx.IOError
	if !errors.As(err, &ioErr) || ioErr.Path != "/nonexistent/song.txt" {
		t.Errorf("error = %v, want IOError for the missing file", err)
	}
	if songs != nil {
		t.Error("expected nil songs on partial failure")
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	paths := writeSongs(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := usdx.OpenContext(ctx, paths[0]); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

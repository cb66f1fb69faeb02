package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/simonhull/usdx"
	"github.com/simonhull/usdx/internal/charset"
	"github.com/simonhull/usdx/internal/line"
	"github.com/simonhull/usdx/internal/registry"
)

// Prints how each line of a song file is classified, then the parse result.
// Handy when a song refuses to load and the error alone is not enough.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: usdx-dump <song.txt> | -version")
		os.Exit(1)
	}
	if os.Args[1] == "-version" || os.Args[1] == "--version" {
		fmt.Println(usdx.GetBuildInfo())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	res, err := charset.Decode(data, cfg.Fallback)
	if err != nil {
		log.Fatalf("decode %s: %v", path, err)
	}
	fmt.Printf("%s (%s, %d bytes) parsed with usdx %s\n\n", path, res.Encoding, len(data), usdx.Version)

	dumpLines(res.Text)

	song, err := usdx.Open(path, cfg.options()...)
	if err != nil {
		var pe usdx.ParseError
		if errors.As(err, &pe) {
			fmt.Printf("\nFAILED at line %d: %v\n", pe.LineNumber(), err)
		} else {
			fmt.Printf("\nFAILED: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("\n%s - %s\n", song.Artist(), song.Title())
	fmt.Printf("BPM %.2f, GAP %d ms, %d voice(s), %d notes\n",
		song.BPM(), song.Gap(), len(song.Voices), song.NoteCount())
	for _, v := range song.Voices {
		singer := v.Singer
		if singer == "" {
			singer = "-"
		}
		fmt.Printf("  P%d %-20s %d notes\n", v.Index, singer, v.NoteCount())
	}
	for _, w := range song.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}

func dumpLines(text string) {
	reg := registry.Default()
	n := 0
	for raw := range strings.Lines(text) {
		n++
		l := line.Classify(raw, reg)
		switch l.Kind {
		case line.Blank:
			continue
		case line.Note:
			fmt.Printf("%5d  %-12s %-10s %q\n", n, l.Kind, l.Note, l.Payload)
		case line.Voice:
			fmt.Printf("%5d  %-12s P%d\n", n, l.Kind, l.Voice)
		default:
			fmt.Printf("%5d  %-12s %q\n", n, l.Kind, l.Text)
		}
	}
}

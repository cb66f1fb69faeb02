// Package usdx parses UltraStar Deluxe karaoke song files.
//
// A USDX song is a plain text file: "#KEY:VALUE" header tags followed by
// timed note lines, line breaks, optional "P1"/"P2" duet markers and a final
// "E". usdx turns that text into a validated Song or a precise error naming
// the offending line.
//
// # Quick Start
//
//	song, err := usdx.Open("song.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s - %s (%.0f BPM)\n", song.Artist(), song.Title(), song.BPM())
//	for n := range song.Voices[0].Notes() {
//		fmt.Printf("%5d %3d %q\n", n.Start, n.Pitch, n.Text)
//	}
//
// # Line Shapes
//
//	#ARTIST:Queen     tag (key is case-insensitive)
//	: 12 4 5 Hel      note: sigil, start beat, duration, pitch, lyric
//	- 16              line break, optionally "- 16 18"
//	P2                switch to voice 2
//	E                 end of song; anything after it is ignored
//
// Note sigils are ":" normal, "*" golden, "F" freestyle, "R" rap and
// "G" golden rap. Lyric text is kept verbatim, including its leading space.
//
// # Error Handling
//
// Parsing is fail-fast. The first problem aborts the parse and is returned
// as one of the ParseError variants; no partial Song is returned:
//
//	var nf *usdx.NoteFieldError
//	if errors.As(err, &nf) {
//		fmt.Printf("line %d: bad %s %q\n", nf.Line, nf.Field, nf.Token)
//	}
//
// Problems that do not stop parsing, such as a tag given twice, are
// collected in Song.Warnings:
//
//	for _, w := range song.Warnings {
//		log.Printf("Warning: %s", w)
//	}
//
// # Dialects
//
// The sigil and tag tables are per-call values. WithSigil and WithTag extend
// them for one parse without affecting others, and WithLenientParsing skips
// unknown lines instead of failing.
//
// # Encodings
//
// Open and ParseReader accept UTF-8 (with or without BOM), UTF-16 with a
// BOM, and Windows code pages named by an "#ENCODING:" tag. Parse and
// ParseBytes take text that is already UTF-8.
//
// # Writing
//
// Write, Marshal and Save turn a Song back into text. Save is atomic and
// can keep a backup and verify the result:
//
//	err := usdx.Save(song, "song.txt", usdx.WithBackup(".bak"), usdx.WithValidation())
//
// # Concurrency
//
// Songs share no state. OpenMany parses many files in parallel:
//
//	songs, err := usdx.OpenMany(ctx, paths...)
//
// Songs are not safe for concurrent modification; treat them as read-only
// or Clone them first.
package usdx

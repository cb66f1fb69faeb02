package registry

import (
	"slices"
	"testing"

	"github.com/simonhull/usdx/internal/charset"
	"github.com/simonhull/usdx/internal/types"
)

func TestDefault_Sigils(t *testing.T) {
	r := Default()

	tests := []struct {
		sigil rune
		want  types.NoteKind
	}{
		{':', types.KindNormal},
		{'*', types.KindGolden},
		{'F', types.KindFreestyle},
		{'R', types.KindRap},
		{'G', types.KindGoldenRap},
	}
	for _, tc := range tests {
		got, ok := r.Kind(tc.sigil)
		if !ok {
			t.Errorf("Kind(%q) not registered", tc.sigil)
			continue
		}
		if got != tc.want {
			t.Errorf("Kind(%q) = %v, want %v", tc.sigil, got, tc.want)
		}
	}

	if _, ok := r.Kind('X'); ok {
		t.Error("Kind('X') should not be registered")
	}
}

func TestDefault_Tags(t *testing.T) {
	r := Default()

	tests := []struct {
		key  string
		want types.ValueType
	}{
		{types.KeyBPM, types.ValueFloat},
		{types.KeyGap, types.ValueInt},
		{types.KeyYear, types.ValueInt},
		{types.KeyStart, types.ValueFloat},
		{types.KeyEnd, types.ValueInt},
		{types.KeyMedleyStartBeat, types.ValueInt},
		{types.KeyMedleyEndBeat, types.ValueInt},
		{types.KeyRelative, types.ValueBool},
		{types.KeyEncoding, types.ValueEnum},
		{types.KeyArtist, types.ValueString},
	}
	for _, tc := range tests {
		spec, ok := r.Tag(tc.key)
		if !ok {
			t.Errorf("Tag(%q) not registered", tc.key)
			continue
		}
		if spec.Type != tc.want {
			t.Errorf("Tag(%q).Type = %v, want %v", tc.key, spec.Type, tc.want)
		}
	}
}

func TestDefault_EncodingNamesMatchDecoder(t *testing.T) {
	spec, _ := Default().Tag(types.KeyEncoding)
	if !slices.Equal(spec.Enum, charset.Names()) {
		t.Errorf("ENCODING enum = %v, want %v", spec.Enum, charset.Names())
	}
}

func TestDefault_Checks(t *testing.T) {
	r := Default()

	bpm, _ := r.Tag(types.KeyBPM)
	if err := bpm.Check(types.Value{Type: types.ValueFloat, Float: 0}); err != ErrNotPositive {
		t.Errorf("BPM check(0) = %v, want ErrNotPositive", err)
	}
	if err := bpm.Check(types.Value{Type: types.ValueFloat, Float: 120}); err != nil {
		t.Errorf("BPM check(120) = %v, want nil", err)
	}

	gap, _ := r.Tag(types.KeyGap)
	if err := gap.Check(types.Value{Type: types.ValueInt, Int: -1}); err != ErrNegative {
		t.Errorf("GAP check(-1) = %v, want ErrNegative", err)
	}
	if err := gap.Check(types.Value{Type: types.ValueInt, Int: 0}); err != nil {
		t.Errorf("GAP check(0) = %v, want nil", err)
	}
}

func TestDefault_ReturnsFreshTables(t *testing.T) {
	a := Default()
	if err := a.RegisterSigil('~', types.KindRap); err != nil {
		t.Fatal(err)
	}

	b := Default()
	if _, ok := b.Kind('~'); ok {
		t.Error("sigil registered on one registry leaked into another")
	}
}

func TestRegisterSigil_Overwrites(t *testing.T) {
	r := Default()
	if err := r.RegisterSigil('G', types.KindGolden); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Kind('G'); got != types.KindGolden {
		t.Errorf("Kind('G') = %v, want Golden (should be overwritten)", got)
	}
}

func TestRegisterSigil_Reserved(t *testing.T) {
	r := Default()
	for _, s := range []rune{'-', '#', 'P', 'E', ' '} {
		if err := r.RegisterSigil(s, types.KindNormal); err == nil {
			t.Errorf("RegisterSigil(%q) should fail", s)
		}
	}
}

func TestSigil_Reverse(t *testing.T) {
	r := Default()
	if s, ok := r.Sigil(types.KindGolden); !ok || s != '*' {
		t.Errorf("Sigil(Golden) = %q, %v, want '*'", s, ok)
	}

	// Two sigils for one kind: lowest code point wins.
	_ = r.RegisterSigil('g', types.KindGoldenRap)
	if s, _ := r.Sigil(types.KindGoldenRap); s != 'G' {
		t.Errorf("Sigil(GoldenRap) = %q, want 'G'", s)
	}

	if _, ok := r.Sigil(types.NoteKind(99)); ok {
		t.Error("Sigil of unknown kind should not be found")
	}
}

func TestClone_Independent(t *testing.T) {
	r := Default()
	c := r.Clone()
	c.RegisterTag("KARAOKE", TagSpec{Type: types.ValueBool})

	if _, ok := r.Tag("KARAOKE"); ok {
		t.Error("tag registered on clone leaked into original")
	}
	if _, ok := c.Tag("KARAOKE"); !ok {
		t.Error("clone lost registered tag")
	}
}

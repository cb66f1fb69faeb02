// Package tag parses USDX header lines ("#KEY:VALUE") into typed tags.
package tag

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/simonhull/usdx/internal/registry"
	"github.com/simonhull/usdx/internal/types"
)

// Parse splits a tag payload (the text after '#') on its first ':' and
// coerces the value according to reg. Unknown keys are kept as strings.
//
// Returns a *types.MalformedTagError when there is no separator or the key
// is empty, and a *types.TagValueError when a known value does not coerce.
// Line numbers are left for the caller to fill in.
func Parse(payload string, reg *registry.Registry) (types.Tag, error) {
	key, value, ok := strings.Cut(payload, ":")
	key = strings.ToUpper(strings.TrimSpace(key))
	if !ok || key == "" {
		return types.Tag{}, &types.MalformedTagError{Text: "#" + payload}
	}
	value = strings.TrimSpace(value)

	t := types.Tag{Key: key, Raw: value}

	spec, known := reg.Tag(key)
	if !known {
		t.Value = types.Value{Type: types.ValueString, Str: value}
		return t, nil
	}

	v, err := Coerce(value, spec)
	if err != nil {
		return types.Tag{}, &types.TagValueError{Key: key, Value: value, Err: err}
	}
	t.Value = v
	return t, nil
}

// Coerce converts raw text into a typed value and applies spec.Check.
func Coerce(raw string, spec registry.TagSpec) (types.Value, error) {
	v := types.Value{Type: spec.Type, Str: raw}

	switch spec.Type {
	case types.ValueString:
	case types.ValueInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return types.Value{}, errors.New("not an integer")
		}
		v.Int = n
	case types.ValueFloat:
		f, err := parseFloat(raw)
		if err != nil {
			return types.Value{}, errors.New("not a number")
		}
		v.Float = f
	case types.ValueBool:
		b, err := parseYesNo(raw)
		if err != nil {
			return types.Value{}, err
		}
		v.Bool = b
	case types.ValueEnum:
		word := strings.ToUpper(raw)
		if !slices.Contains(spec.Enum, word) {
			return types.Value{}, fmt.Errorf("want one of %s", strings.Join(spec.Enum, ", "))
		}
		v.Str = word
	default:
		return types.Value{}, fmt.Errorf("unsupported value type %v", spec.Type)
	}

	if spec.Check != nil {
		if err := spec.Check(v); err != nil {
			return types.Value{}, err
		}
	}
	return v, nil
}

// parseFloat accepts both "." and "," as the decimal separator; many song
// files were written on systems with a comma locale. NaN and infinities are
// rejected.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("not finite")
	}
	return f, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToUpper(s) {
	case "YES", "TRUE":
		return true, nil
	case "NO", "FALSE":
		return false, nil
	default:
		return false, errors.New("want YES or NO")
	}
}

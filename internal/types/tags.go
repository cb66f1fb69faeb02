package types

import (
	"iter"
	"maps"
	"slices"
	"strconv"
)

// ValueType is the semantic type a tag value is coerced into.
type ValueType int

const (
	// ValueString keeps the raw text.
	ValueString ValueType = iota // string
	// ValueInt is a base-10 integer.
	ValueInt // int
	// ValueFloat is a decimal number; "," is accepted as decimal separator.
	ValueFloat // float
	// ValueBool is YES/NO (or TRUE/FALSE).
	ValueBool // bool
	// ValueEnum is one of a fixed set of upper-case words.
	ValueEnum // enum
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueEnum:
		return "enum"
	default:
		return "ValueType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is a coerced tag value. Only the field matching Type is set;
// Str always holds the text form (upper-cased for enums).
type Value struct {
	Str   string
	Float float64
	Int   int
	Type  ValueType
	Bool  bool
}

// Tag is a single "#KEY:VALUE" header entry.
type Tag struct {
	Key   string // canonical upper-case key
	Raw   string // value text with surrounding whitespace removed
	Value Value
	Line  int // 1-based source line of the last write
}

// Tags holds a song's header tags in first-seen order.
//
// A repeated key keeps its original position but takes the later value.
// The zero value is ready to use.
type Tags struct {
	entries map[string]Tag
	order   []string
}

// Set stores a tag, replacing any earlier tag with the same key.
// It reports whether an earlier value was replaced.
func (t *Tags) Set(tag Tag) bool {
	if t.entries == nil {
		t.entries = make(map[string]Tag)
	}
	_, replaced := t.entries[tag.Key]
	if !replaced {
		t.order = append(t.order, tag.Key)
	}
	t.entries[tag.Key] = tag
	return replaced
}

// Delete removes key and reports whether it was present.
func (t *Tags) Delete(key string) bool {
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	t.order = slices.DeleteFunc(t.order, func(k string) bool { return k == key })
	return true
}

// Get returns the tag stored under key.
//
// Keys are canonical upper case ("BPM", "ARTIST").
func (t *Tags) Get(key string) (Tag, bool) {
	if t.entries == nil {
		return Tag{}, false
	}
	tag, ok := t.entries[key]
	return tag, ok
}

// Has reports whether key was present in the file.
func (t *Tags) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// String returns the raw value of key, or "" if absent.
func (t *Tags) String(key string) string {
	tag, _ := t.Get(key)
	return tag.Raw
}

// Int returns the coerced integer value of key.
func (t *Tags) Int(key string) (int, bool) {
	tag, ok := t.Get(key)
	if !ok || tag.Value.Type != ValueInt {
		return 0, false
	}
	return tag.Value.Int, true
}

// Float returns the coerced float value of key. Integer tags are widened.
func (t *Tags) Float(key string) (float64, bool) {
	tag, ok := t.Get(key)
	if !ok {
		return 0, false
	}
	switch tag.Value.Type {
	case ValueFloat:
		return tag.Value.Float, true
	case ValueInt:
		return float64(tag.Value.Int), true
	default:
		return 0, false
	}
}

// Bool returns the coerced boolean value of key.
func (t *Tags) Bool(key string) (bool, bool) {
	tag, ok := t.Get(key)
	if !ok || tag.Value.Type != ValueBool {
		return false, false
	}
	return tag.Value.Bool, true
}

// Len returns the number of distinct tags.
func (t *Tags) Len() int {
	return len(t.order)
}

// Keys returns tag keys in first-seen order.
func (t *Tags) Keys() []string {
	return slices.Clone(t.order)
}

// All returns an iterator over all tags in first-seen order.
//
// Example:
//
//	for key, tag := range song.Tags.All() {
//		fmt.Printf("%s = %s\n", key, tag.Raw)
//	}
func (t *Tags) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, key := range t.order {
			if !yield(key, t.entries[key]) {
				return
			}
		}
	}
}

// Filter returns an iterator over tags whose key matches predicate.
//
// Example:
//
//	// Duet singer names
//	for key, tag := range song.Tags.Filter(func(k string) bool {
//		return strings.HasPrefix(k, "DUETSINGERP")
//	}) {
//		fmt.Printf("%s: %s\n", key, tag.Raw)
//	}
func (t *Tags) Filter(predicate func(string) bool) iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, key := range t.order {
			if predicate(key) {
				if !yield(key, t.entries[key]) {
					return
				}
			}
		}
	}
}

// Clone creates a deep copy of the Tags.
func (t *Tags) Clone() Tags {
	if t.entries == nil {
		return Tags{}
	}
	return Tags{
		entries: maps.Clone(t.entries),
		order:   slices.Clone(t.order),
	}
}

// Equal reports whether both tag sets hold the same keys, order and values.
// Source line numbers are ignored.
func (t *Tags) Equal(other *Tags) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !slices.Equal(t.order, other.order) {
		return false
	}
	for _, key := range t.order {
		a, b := t.entries[key], other.entries[key]
		if a.Key != b.Key || a.Raw != b.Raw || a.Value != b.Value {
			return false
		}
	}
	return true
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the herb-atlas catalog:
// herb and formula records, origin tags, badges, and configuration.
//
// Catalog collections come from several hand-maintained sources, so the
// same attribute may be a string in one record and an array or object in
// the next. The Flex type absorbs that at the decode boundary; Normalize
// is the single place where the shape ambiguity is resolved into a
// searchable string.
package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Flex holds a JSON field whose shape varies across catalog records:
// string, array, key-value object, or absent.
type Flex struct {
	value any
}

// FlexString wraps a plain string value.
func FlexString(s string) Flex {
	return Flex{value: s}
}

// FlexList wraps a list value.
func FlexList(items ...string) Flex {
	list := make([]any, len(items))
	for i, s := range items {
		list[i] = s
	}
	return Flex{value: list}
}

// UnmarshalJSON accepts any valid JSON value.
func (f *Flex) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = v
	return nil
}

// MarshalJSON writes the value back in its original shape.
func (f Flex) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// MarshalYAML renders the normalized string form. Formula compose output
// and query echoes want readable text, not the raw wire shape.
func (f Flex) MarshalYAML() (any, error) {
	return f.String(), nil
}

// IsZero reports whether the field was absent or null.
func (f Flex) IsZero() bool {
	return f.value == nil
}

// String returns the canonical searchable form of the field.
func (f Flex) String() string {
	return Normalize(f.value)
}

// First returns the first element of an array value, or the whole value
// for scalars. Display names use it: the first pinyin spelling of a
// record is canonical.
func (f Flex) First() string {
	if list, ok := f.value.([]any); ok {
		if len(list) == 0 {
			return ""
		}
		return Normalize(list[0])
	}
	return Normalize(f.value)
}

// Normalize produces a single searchable string from a JSON-decoded value:
// "" for nil, elements joined by ", " for arrays, values joined by ", " in
// sorted-key order for objects, and the plain string form otherwise. It is
// total over anything encoding/json can decode and never panics.
func Normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, elem := range t {
			parts = append(parts, Normalize(elem))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		// Go maps are unordered; sort keys so output is deterministic.
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, Normalize(t[k]))
		}
		return strings.Join(parts, ", ")
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

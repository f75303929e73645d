// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package jschema loads raw schema documents and preserves the declaration
// order of their object keys. Documents stay untyped (map[string]any): the
// parser's dispatch inspects shapes a closed JSON Schema struct cannot
// represent, such as containers whose top-level keys are model names.
package jschema

import "sort"

// Document pairs a decoded schema document with the key order of every
// object in the raw input, indexed by dot-joined path ("" is the root).
type Document struct {
	root map[string]any
	keys map[string][]string
}

// New builds a Document from a decoded root object and a key-order index.
// A nil index is allowed; ordering then falls back to sorted keys.
func New(root map[string]any, keys map[string][]string) *Document {
	return &Document{root: root, keys: keys}
}

// Root returns the decoded root object.
func (d *Document) Root() map[string]any {
	return d.root
}

// ObjectKeys returns obj's keys in declaration order for the object at the
// given path. Recorded keys missing from obj are dropped; keys of obj that
// were never recorded are appended sorted, so constructed documents stay
// deterministic.
func (d *Document) ObjectKeys(path string, obj map[string]any) []string {
	var result []string
	seen := make(map[string]struct{}, len(obj))

	if order, ok := d.keys[path]; ok {
		for _, key := range order {
			if _, exists := obj[key]; exists {
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				result = append(result, key)
			}
		}
	}

	var rest []string
	for key := range obj {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(result, rest...)
}

// Join extends a key-order path by one segment.
func Join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Object coerces a value to an object, reporting whether it was one.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// String returns the string value at key, or "" when absent or not a string.
func String(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// StringList coerces a value to a list of strings. Wrong shapes, including
// non-string elements, are tolerated by dropping them.
func StringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

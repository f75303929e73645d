// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package jschema

import (
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// extractKeyOrderJSON walks raw JSON token by token and records the key
// order of every object, indexed by dot-joined path. The root object's path
// is "".
func extractKeyOrderJSON(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)
	dec := json.NewDecoder(strings.NewReader(string(data)))

	var walk func(path string) error
	walk = func(path string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		delim, ok := token.(json.Delim)
		if !ok {
			return nil // scalar
		}
		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)
				if err := walk(Join(path, key)); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil { // closing brace
				return err
			}
			result[path] = keys
		case '[':
			for dec.More() {
				if err := walk(path); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil { // closing bracket
				return err
			}
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}
	return result, nil
}

// extractKeyOrderYAML records object key order from a decoded YAML node
// tree; yaml.Node keeps mapping entries in document order.
func extractKeyOrderYAML(root *yaml.Node) map[string][]string {
	result := make(map[string][]string)

	var walk func(n *yaml.Node, path string)
	walk = func(n *yaml.Node, path string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, child := range n.Content {
				walk(child, path)
			}
		case yaml.MappingNode:
			keys := make([]string, 0, len(n.Content)/2)
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)
				walk(n.Content[i+1], Join(path, key))
			}
			result[path] = keys
		case yaml.SequenceNode:
			for _, child := range n.Content {
				walk(child, path)
			}
		}
	}

	walk(root, "")
	return result
}

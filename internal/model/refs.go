// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package model

import (
	"fmt"
	"sort"
)

// References returns the distinct model names the given model points at:
// reference fields (through array nesting), variant fields, the parent
// class, and the discriminator value targets. The model's own name is
// excluded. The result is sorted for deterministic output.
func References(m *Model) []string {
	return collectRefs(m, true)
}

// FieldReferences is References restricted to reference-typed fields,
// including fields inside union variants. Parent class and discriminator
// targets are left out; union rendering declares those in place.
func FieldReferences(m *Model) []string {
	return collectRefs(m, false)
}

func collectRefs(m *Model, structural bool) []string {
	seen := make(map[string]struct{})

	addType := func(t FieldType) {
		for t.Kind == TypeArray && t.Item != nil {
			t = *t.Item
		}
		if t.Kind == TypeReference && t.Ref != "" {
			seen[t.Ref] = struct{}{}
		}
	}

	for _, f := range m.Fields {
		addType(f.Type)
	}
	for _, v := range m.Variants {
		for _, f := range v.Fields {
			addType(f.Type)
		}
		if structural && v.Name != "" {
			seen[v.Name] = struct{}{}
		}
	}
	if structural {
		if m.ParentClass != "" {
			seen[m.ParentClass] = struct{}{}
		}
		for _, target := range m.UnionValues {
			seen[target] = struct{}{}
		}
	}
	delete(seen, m.Name)

	refs := make([]string, 0, len(seen))
	for name := range seen {
		refs = append(refs, name)
	}
	sort.Strings(refs)
	return refs
}

// CheckReferences reports every reference whose target model does not exist
// in the schema. A nil result means all references resolve.
func CheckReferences(s *Schema) []error {
	var errs []error
	for _, m := range s.Models {
		for _, ref := range References(m) {
			if Lookup(s.Models, ref) == nil {
				errs = append(errs, fmt.Errorf("model %s references undefined model %s", m.Name, ref))
			}
		}
	}
	return errs
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package dart renders a parsed schema into Dart data-class source text,
// either freezed-style (discriminated unions, derived serialization) or as
// plain classes with synthesized fromJson/toJson bodies.
package dart

import "github.com/dartling/cli/internal/model"

// TypeName maps a resolved field type to its Dart type string.
func TypeName(t model.FieldType) string {
	switch t.Kind {
	case model.TypeString:
		return "String"
	case model.TypeInteger:
		return "int"
	case model.TypeFloat:
		return "double"
	case model.TypeBoolean:
		return "bool"
	case model.TypeDateTime:
		return "DateTime"
	case model.TypeArray:
		if t.Item == nil {
			return "List<dynamic>"
		}
		return "List<" + TypeName(*t.Item) + ">"
	case model.TypeMap:
		return "Map<String, dynamic>"
	case model.TypeReference, model.TypeEnum:
		if t.Ref != "" {
			return t.Ref
		}
		return "dynamic"
	default:
		return "dynamic"
	}
}

// DeclaredType returns the type as written in a declaration, with the
// nullability marker. dynamic already admits null and takes no marker.
func DeclaredType(t model.FieldType, nullable bool) string {
	name := TypeName(t)
	if nullable && name != "dynamic" {
		return name + "?"
	}
	return name
}

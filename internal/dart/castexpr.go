// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package dart

import "github.com/dartling/cli/internal/model"

// FromJSONExpr synthesizes the expression that reads src (an untyped JSON
// value) as a value of type t. The function is pure and composes: nested
// kinds render by recursive substitution, so an array of references or a
// nullable array of timestamps needs no special casing.
func FromJSONExpr(t model.FieldType, nullable bool, src string) string {
	switch t.Kind {
	case model.TypeString, model.TypeInteger, model.TypeFloat, model.TypeBoolean:
		cast := src + " as " + TypeName(t)
		if nullable {
			cast += "?"
		}
		return cast
	case model.TypeDateTime:
		return nullGuard(nullable, src, "DateTime.parse("+src+" as String)")
	case model.TypeArray:
		if t.Item == nil {
			return src
		}
		item := FromJSONExpr(*t.Item, false, "e")
		expr := "(" + src + " as List<dynamic>).map((e) => " + item + ").toList()"
		return nullGuard(nullable, src, expr)
	case model.TypeReference, model.TypeEnum:
		if t.Ref == "" {
			return src
		}
		expr := t.Ref + ".fromJson(" + src + " as Map<String, dynamic>)"
		return nullGuard(nullable, src, expr)
	default:
		// map and unknown pass through untouched.
		return src
	}
}

// ToJSONExpr synthesizes the expression that writes the field value src
// back into untyped JSON. It is the inverse of FromJSONExpr kind by kind.
func ToJSONExpr(t model.FieldType, nullable bool, src string) string {
	switch t.Kind {
	case model.TypeDateTime:
		return src + access(nullable) + "toIso8601String()"
	case model.TypeArray:
		if t.Item == nil {
			return src
		}
		item := ToJSONExpr(*t.Item, false, "e")
		if item == "e" {
			return src // elements serialize as themselves
		}
		return src + access(nullable) + "map((e) => " + item + ").toList()"
	case model.TypeReference, model.TypeEnum:
		if t.Ref == "" {
			return src
		}
		return src + access(nullable) + "toJson()"
	default:
		return src
	}
}

func nullGuard(nullable bool, src, expr string) string {
	if !nullable {
		return expr
	}
	return src + " == null ? null : " + expr
}

func access(nullable bool) string {
	if nullable {
		return "?."
	}
	return "."
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package model defines the language-neutral description of parsed schemas.
// The parser produces it; the dart package renders it. References between
// models are name strings, never object links, so cyclic schemas stay cheap
// to hold and trivially safe to walk.
package model

// TypeKind enumerates the normalized type categories a field can resolve to.
type TypeKind int

const (
	TypeUnknown TypeKind = iota
	TypeString
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeDateTime
	TypeArray
	TypeMap
	TypeReference
	TypeEnum
)

// String returns the kind's lowercase name, mostly for error messages.
func (k TypeKind) String() string {
	switch k {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBoolean:
		return "boolean"
	case TypeDateTime:
		return "dateTime"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeReference:
		return "reference"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// FieldType is a resolved schema type: a kind, an item type for arrays,
// and a target model name for references (already name-formatted).
type FieldType struct {
	Kind TypeKind
	Item *FieldType // set iff Kind == TypeArray
	Ref  string     // set iff Kind == TypeReference (or TypeEnum)
}

// Field is one named, typed member of a model.
type Field struct {
	Name        string
	Type        FieldType
	Nullable    bool // false iff the name appears in the schema's required list
	Description string

	// Carried for future derivation; the current parser never sets them.
	IsID       bool
	IsUnique   bool
	Attributes map[string]string
}

// UnionVariant is one arm of a discriminated model. Its field list is a
// disjoint copy that includes the discriminator field itself.
type UnionVariant struct {
	Name      string // variant class name, e.g. "PriorityTask"
	Value     bool   // discriminator value selecting this arm
	Fields    []Field
	IsDefault bool // the arm rendered with the default-value annotation
}

// Model is one generated type. Either Variants is nil and Fields is the
// complete member list, or Variants is populated and Fields holds only the
// shared base properties.
type Model struct {
	Name        string
	Fields      []Field
	Description string

	IsEnum     bool
	IsAbstract bool

	// ParentClass names the base model when this model is a conditional
	// variant.
	ParentClass string

	// UnionKey is the discriminator property name, set only on a base model.
	UnionKey string
	// UnionValues maps the stringified discriminator value to the variant
	// class name.
	UnionValues map[string]string
	Variants    []UnionVariant
}

// Lookup returns the model with the given name, or nil.
func Lookup(models []*Model, name string) *Model {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Schema is the result of one parse call.
type Schema struct {
	Models []*Model
	// Version is the dialect identifier from the document's $schema field.
	Version string
	// Description is the root document's description, if any.
	Description string
}

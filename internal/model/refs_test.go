// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferences(t *testing.T) {
	item := FieldType{Kind: TypeReference, Ref: "Item"}
	m := &Model{
		Name:        "Cart",
		ParentClass: "Base",
		UnionValues: map[string]string{"true": "FullCart"},
		Fields: []Field{
			{Name: "items", Type: FieldType{Kind: TypeArray, Item: &item}},
			{Name: "owner", Type: FieldType{Kind: TypeReference, Ref: "User"}},
			{Name: "self", Type: FieldType{Kind: TypeReference, Ref: "Cart"}},
			{Name: "count", Type: FieldType{Kind: TypeInteger}},
		},
		Variants: []UnionVariant{{
			Name:   "FullCart",
			Fields: []Field{{Name: "coupon", Type: FieldType{Kind: TypeReference, Ref: "Coupon"}}},
		}},
	}

	assert.Equal(t, []string{"Base", "Coupon", "FullCart", "Item", "User"}, References(m))
	assert.Equal(t, []string{"Coupon", "Item", "User"}, FieldReferences(m))
}

func TestCheckReferences(t *testing.T) {
	schema := &Schema{Models: []*Model{
		{Name: "User", Fields: []Field{
			{Name: "pet", Type: FieldType{Kind: TypeReference, Ref: "Pet"}},
		}},
		{Name: "Pet"},
	}}
	assert.Nil(t, CheckReferences(schema))

	schema.Models[0].Fields = append(schema.Models[0].Fields,
		Field{Name: "ghost", Type: FieldType{Kind: TypeReference, Ref: "Ghost"}})

	errs := CheckReferences(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Ghost")
}

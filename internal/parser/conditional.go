// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package parser

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/dartling/cli/internal/jschema"
	"github.com/dartling/cli/internal/model"
)

// isConditional reports whether the document is a boolean-discriminated
// conditional schema.
func isConditional(root map[string]any) bool {
	return hasKey(root, "if") && hasKey(root, "then") && hasKey(root, "else")
}

// parseConditional decomposes an if/then/else document into a discriminated
// base model plus one concrete variant per arm. Properties required by an
// arm move out of the base into that arm; then is processed before else, so
// a property required by both arms lands in then.
//
// A conditional document lacking properties, a title, or a required array
// yields zero models. That guard is deliberate and pinned by tests.
func (p *parser) parseConditional(root map[string]any) (*model.Schema, error) {
	schema := &model.Schema{
		Version:     jschema.String(root, "$schema"),
		Description: jschema.String(root, "description"),
	}

	ifNode, _ := jschema.Object(root["if"])
	ifProps, _ := jschema.Object(ifNode["properties"])
	if len(ifProps) != 1 {
		return nil, fmt.Errorf("conditional schema requires exactly one discriminator under if.properties, found %d", len(ifProps))
	}

	var key string
	for k := range ifProps {
		key = k
	}

	baseName := jschema.String(root, "title")
	if baseName == "" {
		baseName = p.conv.FallbackBaseName
	}

	discNode, _ := jschema.Object(ifProps[key])
	discValue, _ := discNode["const"].(bool)

	thenName := p.conv.FormatClassName(p.conv.VariantPrefix(key) + baseName)
	elseName := p.conv.FormatClassName(p.conv.ElsePrefix + baseName)
	values := map[string]string{
		strconv.FormatBool(discValue):  thenName,
		strconv.FormatBool(!discValue): elseName,
	}

	props, hasProps := jschema.Object(root["properties"])
	_, hasRequired := root["required"].([]any)
	if !hasProps || jschema.String(root, "title") == "" || !hasRequired {
		return schema, nil
	}

	// Base candidate set: a copy of the top-level properties and required
	// list, reduced as the arms claim their members.
	base := make(map[string]any, len(props))
	for name, node := range props {
		base[name] = node
	}
	baseReq := jschema.StringList(root["required"])

	moveArm := func(armKey string) ([]model.Field, error) {
		armNode, _ := jschema.Object(root[armKey])
		var fields []model.Field
		for _, name := range jschema.StringList(armNode["required"]) {
			node, ok := base[name]
			if !ok {
				continue // absent or already claimed by the earlier arm
			}
			wasRequired := slices.Contains(baseReq, name)
			f, err := p.buildField(name, node, jschema.Join("properties", name), !wasRequired)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
			delete(base, name)
			baseReq = slices.DeleteFunc(baseReq, func(s string) bool { return s == name })
		}
		return fields, nil
	}

	thenFields, err := moveArm("then")
	if err != nil {
		return nil, err
	}
	elseFields, err := moveArm("else")
	if err != nil {
		return nil, err
	}

	var baseFields []model.Field
	for _, name := range p.doc.ObjectKeys("properties", props) {
		node, ok := base[name]
		if !ok {
			continue
		}
		f, err := p.buildField(name, node, jschema.Join("properties", name), !slices.Contains(baseReq, name))
		if err != nil {
			return nil, err
		}
		baseFields = append(baseFields, f)
	}

	formattedBase := p.conv.FormatClassName(baseName)
	discField := model.Field{Name: key, Type: model.FieldType{Kind: model.TypeBoolean}}

	baseModel := &model.Model{
		Name:        formattedBase,
		Fields:      baseFields,
		Description: jschema.String(root, "description"),
		IsAbstract:  true,
		UnionKey:    key,
		UnionValues: values,
		Variants: []model.UnionVariant{
			{
				Name:   thenName,
				Value:  discValue,
				Fields: append([]model.Field{discField}, cloneFields(thenFields)...),
			},
			{
				Name:      elseName,
				Value:     !discValue,
				Fields:    append([]model.Field{discField}, cloneFields(elseFields)...),
				IsDefault: true,
			},
		},
	}

	schema.Models = []*model.Model{
		baseModel,
		{Name: thenName, ParentClass: formattedBase, Fields: thenFields},
		{Name: elseName, ParentClass: formattedBase, Fields: elseFields},
	}
	return schema, nil
}

// cloneFields deep-copies a field list so variant fields stay disjoint from
// the concrete variant model's fields.
func cloneFields(fields []model.Field) []model.Field {
	out := make([]model.Field, len(fields))
	for i, f := range fields {
		out[i] = f
		out[i].Type = cloneType(f.Type)
	}
	return out
}

func cloneType(t model.FieldType) model.FieldType {
	if t.Item != nil {
		item := cloneType(*t.Item)
		t.Item = &item
	}
	return t
}

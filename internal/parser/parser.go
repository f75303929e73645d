// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package parser turns raw schema documents into the normalized model.
//
// Three document shapes are recognized, tried in order: a conditional
// if/then/else schema (decomposed into a discriminated base plus two
// variants), a multi-model container whose top-level entries each describe
// one model, and a single-schema fallback. Subtrees matching no shape
// contribute zero models; only structural impossibilities (an array
// property without items, an ambiguous discriminator) abort the parse.
package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dartling/cli/internal/jschema"
	"github.com/dartling/cli/internal/model"
	"github.com/dartling/cli/internal/naming"
)

type parser struct {
	doc  *jschema.Document
	conv *naming.Convention
}

// Parse converts a schema document into a model.Schema. A nil convention
// selects the stock naming rules.
func Parse(doc *jschema.Document, conv *naming.Convention) (*model.Schema, error) {
	if conv == nil {
		conv = naming.Default()
	}
	p := &parser{doc: doc, conv: conv}
	root := doc.Root()

	if isConditional(root) {
		return p.parseConditional(root)
	}

	schema := &model.Schema{
		Version:     jschema.String(root, "$schema"),
		Description: jschema.String(root, "description"),
	}

	// Multi-model container: every top-level entry may describe one model
	// (directly, through a schema wrapper, or as a definitions block).
	for _, name := range doc.ObjectKeys("", root) {
		value, ok := jschema.Object(root[name])
		if !ok {
			continue
		}

		switch {
		case hasKey(value, "schema"):
			inner, ok := jschema.Object(value["schema"])
			if !ok || !hasKey(inner, "properties") {
				continue
			}
			m, err := p.parseModel(name, inner, jschema.Join(name, "schema"), jschema.String(value, "description"))
			if err != nil {
				return nil, err
			}
			schema.Models = append(schema.Models, m)

		case hasKey(value, "properties"):
			m, err := p.parseModel(name, value, name, "")
			if err != nil {
				return nil, err
			}
			schema.Models = append(schema.Models, m)

		case hasKey(value, "definitions"):
			defs, ok := jschema.Object(value["definitions"])
			if !ok {
				continue
			}
			defsPath := jschema.Join(name, "definitions")
			for _, defName := range p.doc.ObjectKeys(defsPath, defs) {
				defValue, ok := jschema.Object(defs[defName])
				if !ok {
					continue
				}
				m, err := p.parseModel(name+"_"+defName, defValue, jschema.Join(defsPath, defName), "")
				if err != nil {
					return nil, err
				}
				schema.Models = append(schema.Models, m)
			}
		}
	}

	// Single-schema fallback: the whole document is one model.
	if len(schema.Models) == 0 && hasKey(root, "properties") {
		name := jschema.String(root, "title")
		if name == "" {
			name = p.conv.FallbackRootName
		}
		m, err := p.parseModel(name, root, "", "")
		if err != nil {
			return nil, err
		}
		schema.Models = append(schema.Models, m)
	}

	return schema, nil
}

// parseModel builds one model from a schema node. Field order follows the
// node's propertyOrder list when present, then declaration order for
// properties the list omits.
func (p *parser) parseModel(name string, node map[string]any, path, description string) (*model.Model, error) {
	props, _ := jschema.Object(node["properties"])
	required := jschema.StringList(node["required"])
	propsPath := jschema.Join(path, "properties")

	var names []string
	seen := make(map[string]struct{})
	for _, key := range jschema.StringList(node["propertyOrder"]) {
		if _, exists := props[key]; !exists {
			continue // ordered but never declared: no placeholder field
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, key)
	}
	for _, key := range p.doc.ObjectKeys(propsPath, props) {
		if _, dup := seen[key]; !dup {
			names = append(names, key)
		}
	}

	fields := make([]model.Field, 0, len(names))
	for _, propName := range names {
		f, err := p.buildField(propName, props[propName], jschema.Join(propsPath, propName), !slices.Contains(required, propName))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	if description == "" {
		description = jschema.String(node, "description")
	}

	return &model.Model{
		Name:        p.conv.FormatClassName(name),
		Fields:      fields,
		Description: description,
	}, nil
}

func (p *parser) buildField(name string, value any, path string, nullable bool) (model.Field, error) {
	node, _ := jschema.Object(value)
	t, err := p.resolveType(node, path)
	if err != nil {
		return model.Field{}, err
	}
	return model.Field{
		Name:        name,
		Type:        t,
		Nullable:    nullable,
		Description: jschema.String(node, "description"),
	}, nil
}

// resolveType maps a type node to a FieldType. It is total except for an
// array node without items, which aborts with the offending property path.
func (p *parser) resolveType(node map[string]any, path string) (model.FieldType, error) {
	if node == nil {
		return model.FieldType{Kind: model.TypeUnknown}, nil
	}

	if ref := jschema.String(node, "$ref"); ref != "" {
		segments := strings.Split(ref, "/")
		return model.FieldType{
			Kind: model.TypeReference,
			Ref:  p.conv.FormatClassName(segments[len(segments)-1]),
		}, nil
	}

	switch jschema.String(node, "type") {
	case "string":
		if jschema.String(node, "format") == "date-time" {
			return model.FieldType{Kind: model.TypeDateTime}, nil
		}
		return model.FieldType{Kind: model.TypeString}, nil
	case "integer":
		return model.FieldType{Kind: model.TypeInteger}, nil
	case "number":
		return model.FieldType{Kind: model.TypeFloat}, nil
	case "boolean":
		return model.FieldType{Kind: model.TypeBoolean}, nil
	case "array":
		itemsValue, ok := node["items"]
		if !ok {
			return model.FieldType{}, fmt.Errorf("array at %s has no items schema", displayPath(path))
		}
		items, _ := jschema.Object(itemsValue)
		item, err := p.resolveType(items, jschema.Join(path, "items"))
		if err != nil {
			return model.FieldType{}, err
		}
		return model.FieldType{Kind: model.TypeArray, Item: &item}, nil
	case "object":
		// Nested objects stay opaque maps; they are not lifted into models.
		return model.FieldType{Kind: model.TypeMap}, nil
	default:
		return model.FieldType{Kind: model.TypeUnknown}, nil
	}
}

func hasKey(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}

func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

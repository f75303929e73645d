// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package dart

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/dartling/cli/internal/model"
	"github.com/dartling/cli/internal/naming"
)

//go:embed dart.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "dart.go.tmpl"))

// Options control rendering.
type Options struct {
	// Union selects freezed-style output: discriminated models become
	// tagged unions and serialization is derived. When false every model
	// renders as a plain class with a single constructor and synthesized
	// fromJson/toJson bodies.
	Union bool

	// Serializer enables (de)serialization emission.
	Serializer bool

	// Split emits one file per model instead of one combined buffer.
	Split bool

	// PartStem is the file stem used for the combined buffer and its part
	// directives. Ignored in split mode.
	PartStem string

	Convention *naming.Convention
}

// DefaultOptions returns the stock rendering options: freezed unions with
// serialization, combined output.
func DefaultOptions() Options {
	return Options{Union: true, Serializer: true, PartStem: "models"}
}

// File is one rendered output buffer.
type File struct {
	Name    string
	Content []byte
}

// Generate renders every model in the schema. In split mode, a failing
// model is reported but does not stop independent models from rendering;
// the combined buffer is one artifact and aborts on the first failure.
//
// Before rendering, models still carrying the raw class suffix (named
// outside the formatter, e.g. composed definitions names) are renamed in
// place, exactly once each.
func Generate(schema *model.Schema, opts Options) ([]File, error) {
	conv := opts.Convention
	if conv == nil {
		conv = naming.Default()
	}
	if opts.PartStem == "" {
		opts.PartStem = "models"
	}

	for _, m := range schema.Models {
		if conv.NeedsSuffixRename(m.Name) {
			m.Name = strings.TrimSuffix(m.Name, conv.ClassSuffix) + conv.ClassSuffixReplacement
		}
	}

	if opts.Split {
		return generateSplit(schema, opts, conv)
	}
	return generateCombined(schema, opts, conv)
}

func generateSplit(schema *model.Schema, opts Options, conv *naming.Convention) ([]File, error) {
	var files []File
	var errs []error
	for _, m := range schema.Models {
		body, skip, err := renderModel(schema, m, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("model %s: %w", m.Name, err))
			continue
		}
		if skip {
			continue
		}

		stem := conv.FileNameStem(m.Name)
		var buf bytes.Buffer
		buf.WriteString(fileHeader(m, opts, conv, stem))
		buf.WriteString(body)
		files = append(files, File{Name: stem + ".dart", Content: buf.Bytes()})
	}
	return files, errors.Join(errs...)
}

func generateCombined(schema *model.Schema, opts Options, conv *naming.Convention) ([]File, error) {
	var buf bytes.Buffer
	if opts.Union {
		buf.WriteString("import 'package:freezed_annotation/freezed_annotation.dart';\n\n")
		buf.WriteString("part '" + opts.PartStem + ".freezed.dart';\n")
		if opts.Serializer {
			buf.WriteString("part '" + opts.PartStem + ".g.dart';\n")
		}
		buf.WriteString("\n")
	}

	for _, m := range schema.Models {
		body, skip, err := renderModel(schema, m, opts)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}
		if skip {
			continue
		}
		buf.WriteString(body)
	}
	return []File{{Name: opts.PartStem + ".dart", Content: buf.Bytes()}}, nil
}

// fileHeader renders the per-file import and part block for split mode.
// Declarations must be self-contained, so every cross-model reference
// imports the referenced model's own file stem.
func fileHeader(m *model.Model, opts Options, conv *naming.Convention, stem string) string {
	var refs []string
	if opts.Union {
		// The union declaration binds its variant class names itself;
		// only field types can reach other files.
		refs = model.FieldReferences(m)
	} else {
		refs = model.References(m)
	}

	var sb strings.Builder
	if opts.Union {
		sb.WriteString("import 'package:freezed_annotation/freezed_annotation.dart';\n\n")
	}
	for _, ref := range refs {
		sb.WriteString("import '" + conv.FileNameStem(ref) + ".dart';\n")
	}
	if len(refs) > 0 {
		sb.WriteString("\n")
	}
	if opts.Union {
		sb.WriteString("part '" + stem + ".freezed.dart';\n")
		if opts.Serializer {
			sb.WriteString("part '" + stem + ".g.dart';\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderModel renders one model. skip is true for models the current mode
// declares elsewhere (concrete variants of a union in freezed mode).
func renderModel(schema *model.Schema, m *model.Model, opts Options) (body string, skip bool, err error) {
	var name string
	var data modelData

	switch {
	case opts.Union && m.ParentClass != "":
		return "", true, nil
	case opts.Union && len(m.Variants) > 0:
		name = "union"
		data = unionData(m, opts)
	case opts.Union:
		name = "freezed"
		data = freezedData(m, opts)
	default:
		name = "plain"
		data, err = plainData(schema, m, opts)
		if err != nil {
			return "", false, err
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", false, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), false, nil
}

type modelData struct {
	Name        string
	Description string
	Extends     string
	UnionKey    string
	Abstract    bool
	Serializer  bool
	Fields      []fieldData
	SuperParams []string
	FromPairs   []string
	ToPairs     []string
	Ctors       []ctorData
	Dispatch    []dispatchCase
}

type fieldData struct {
	Param string
	Decl  string
}

type ctorData struct {
	Annotation string
	CtorName   string
	Class      string
	Params     []string
}

type dispatchCase struct {
	Value string
	Class string
}

func freezedData(m *model.Model, opts Options) modelData {
	data := modelData{
		Name:        m.Name,
		Description: m.Description,
		Serializer:  opts.Serializer,
	}
	for _, f := range m.Fields {
		data.Fields = append(data.Fields, fieldData{Param: freezedParam(f)})
	}
	return data
}

func unionData(m *model.Model, opts Options) modelData {
	data := modelData{
		Name:        m.Name,
		Description: m.Description,
		UnionKey:    m.UnionKey,
		Serializer:  opts.Serializer,
	}
	for _, v := range m.Variants {
		ctor := ctorData{
			CtorName: naming.ToCamelCase(v.Name),
			Class:    v.Name,
		}
		if v.IsDefault {
			ctor.Annotation = "@FreezedUnionValue('default')"
		}
		for _, f := range v.Fields {
			if f.Name == m.UnionKey {
				// The discriminator is optional-with-default; its value
				// selects this arm.
				ctor.Params = append(ctor.Params,
					fmt.Sprintf("@Default(%t) %s %s,", v.Value, TypeName(f.Type), f.Name))
				continue
			}
			ctor.Params = append(ctor.Params, freezedParam(f))
		}
		data.Ctors = append(data.Ctors, ctor)
	}
	return data
}

func plainData(schema *model.Schema, m *model.Model, opts Options) (modelData, error) {
	data := modelData{
		Name:        m.Name,
		Description: m.Description,
		Extends:     m.ParentClass,
		UnionKey:    m.UnionKey,
		Abstract:    m.IsAbstract,
		Serializer:  opts.Serializer,
	}

	// Inherited fields surface as super parameters and take part in the
	// synthesized serialization, so a variant round-trips whole.
	var inherited []model.Field
	if m.ParentClass != "" {
		parent := model.Lookup(schema.Models, m.ParentClass)
		if parent == nil {
			return modelData{}, fmt.Errorf("parent class %s is not defined in this schema", m.ParentClass)
		}
		inherited = parent.Fields
		for _, f := range inherited {
			data.SuperParams = append(data.SuperParams, plainParam(f, "super"))
		}
	}

	for _, f := range m.Fields {
		data.Fields = append(data.Fields, fieldData{
			Param: plainParam(f, "this"),
			Decl:  "final " + DeclaredType(f.Type, f.Nullable) + " " + f.Name + ";",
		})
	}

	if len(m.Variants) > 0 {
		for _, v := range m.Variants {
			data.Dispatch = append(data.Dispatch, dispatchCase{
				Value: fmt.Sprintf("%t", v.Value),
				Class: v.Name,
			})
		}
		return data, nil
	}

	for _, f := range append(append([]model.Field{}, inherited...), m.Fields...) {
		src := "json['" + f.Name + "']"
		data.FromPairs = append(data.FromPairs,
			f.Name+": "+FromJSONExpr(f.Type, f.Nullable, src)+",")
		data.ToPairs = append(data.ToPairs,
			"'"+f.Name+"': "+ToJSONExpr(f.Type, f.Nullable, f.Name)+",")
	}
	return data, nil
}

func freezedParam(f model.Field) string {
	if f.Nullable {
		return DeclaredType(f.Type, true) + " " + f.Name + ","
	}
	return "required " + TypeName(f.Type) + " " + f.Name + ","
}

func plainParam(f model.Field, target string) string {
	if f.Nullable {
		return target + "." + f.Name + ","
	}
	return "required " + target + "." + f.Name + ","
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package dart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dartling/cli/internal/model"
)

func userSchema() *model.Schema {
	return &model.Schema{Models: []*model.Model{{
		Name:        "User",
		Description: "A user record",
		Fields: []model.Field{
			{Name: "name", Type: model.FieldType{Kind: model.TypeString}},
			{Name: "age", Type: model.FieldType{Kind: model.TypeInteger}, Nullable: true},
			{Name: "createdAt", Type: model.FieldType{Kind: model.TypeDateTime}, Nullable: true},
		},
	}}}
}

func taskSchema() *model.Schema {
	disc := model.Field{Name: "isPriority", Type: model.FieldType{Kind: model.TypeBoolean}}
	priority := model.Field{Name: "priority", Type: model.FieldType{Kind: model.TypeFloat}}
	note := model.Field{Name: "note", Type: model.FieldType{Kind: model.TypeString}}

	return &model.Schema{Models: []*model.Model{
		{
			Name:        "Task",
			IsAbstract:  true,
			UnionKey:    "isPriority",
			UnionValues: map[string]string{"true": "PriorityTask", "false": "DefaultTask"},
			Fields:      []model.Field{{Name: "id", Type: model.FieldType{Kind: model.TypeString}}},
			Variants: []model.UnionVariant{
				{Name: "PriorityTask", Value: true, Fields: []model.Field{disc, priority}},
				{Name: "DefaultTask", Value: false, Fields: []model.Field{disc, note}, IsDefault: true},
			},
		},
		{Name: "PriorityTask", ParentClass: "Task", Fields: []model.Field{priority}},
		{Name: "DefaultTask", ParentClass: "Task", Fields: []model.Field{note}},
	}}
}

func generateOne(t *testing.T, schema *model.Schema, opts Options) string {
	t.Helper()
	files, err := Generate(schema, opts)
	require.NoError(t, err)
	require.Len(t, files, 1)
	return string(files[0].Content)
}

func TestGenerate_FreezedCombined(t *testing.T) {
	out := generateOne(t, userSchema(), DefaultOptions())

	assert.Contains(t, out, "import 'package:freezed_annotation/freezed_annotation.dart';")
	assert.Contains(t, out, "part 'models.freezed.dart';")
	assert.Contains(t, out, "part 'models.g.dart';")
	assert.Contains(t, out, "/// A user record")
	assert.Contains(t, out, "@freezed")
	assert.Contains(t, out, "class User with _$User {")
	assert.Contains(t, out, "const factory User({")
	assert.Contains(t, out, "required String name,")
	assert.Contains(t, out, "int? age,")
	assert.Contains(t, out, "DateTime? createdAt,")
	assert.Contains(t, out, "}) = _User;")
	assert.Contains(t, out, "_$UserFromJson(json);")
}

func TestGenerate_FreezedWithoutSerializer(t *testing.T) {
	opts := DefaultOptions()
	opts.Serializer = false
	out := generateOne(t, userSchema(), opts)

	assert.NotContains(t, out, "fromJson")
	assert.NotContains(t, out, "part 'models.g.dart';")
	assert.Contains(t, out, "part 'models.freezed.dart';")
}

func TestGenerate_Union(t *testing.T) {
	out := generateOne(t, taskSchema(), DefaultOptions())

	assert.Contains(t, out, "@Freezed(unionKey: 'isPriority')")
	assert.Contains(t, out, "sealed class Task with _$Task {")
	assert.Contains(t, out, "const Task._();")
	assert.Contains(t, out, "const factory Task.priorityTask({")
	assert.Contains(t, out, "@Default(true) bool isPriority,")
	assert.Contains(t, out, "required double priority,")
	assert.Contains(t, out, "}) = PriorityTask;")
	assert.Contains(t, out, "@FreezedUnionValue('default')")
	assert.Contains(t, out, "const factory Task.defaultTask({")
	assert.Contains(t, out, "@Default(false) bool isPriority,")
	assert.Contains(t, out, "}) = DefaultTask;")
	assert.Contains(t, out, "_$TaskFromJson(json);")

	// The union declaration binds the variant class names; the concrete
	// variant models must not be re-declared.
	assert.NotContains(t, out, "class PriorityTask ")
	assert.NotContains(t, out, "class DefaultTask ")
}

func TestGenerate_Plain(t *testing.T) {
	opts := Options{Serializer: true}
	out := generateOne(t, userSchema(), opts)

	assert.NotContains(t, out, "freezed")
	assert.Contains(t, out, "class User {")
	assert.Contains(t, out, "required this.name,")
	assert.Contains(t, out, "this.age,")
	assert.Contains(t, out, "final String name;")
	assert.Contains(t, out, "final int? age;")
	assert.Contains(t, out, "name: json['name'] as String,")
	assert.Contains(t, out, "age: json['age'] as int?,")
	assert.Contains(t, out, "createdAt: json['createdAt'] == null ? null : DateTime.parse(json['createdAt'] as String),")
	assert.Contains(t, out, "'name': name,")
	assert.Contains(t, out, "'createdAt': createdAt?.toIso8601String(),")
}

func TestGenerate_PlainDiscriminated(t *testing.T) {
	opts := Options{Serializer: true}
	out := generateOne(t, taskSchema(), opts)

	assert.Contains(t, out, "abstract class Task {")
	assert.Contains(t, out, "switch ('${json['isPriority']}') {")
	assert.Contains(t, out, "case 'true':")
	assert.Contains(t, out, "return PriorityTask.fromJson(json);")
	assert.Contains(t, out, "case 'false':")
	assert.Contains(t, out, "return DefaultTask.fromJson(json);")
	assert.Contains(t, out, "Map<String, dynamic> toJson();")

	assert.Contains(t, out, "class PriorityTask extends Task {")
	// Inherited fields surface as super parameters and round-trip with
	// the variant's own.
	assert.Contains(t, out, "required super.id,")
	assert.Contains(t, out, "id: json['id'] as String,")
	assert.Contains(t, out, "priority: json['priority'] as double,")
	assert.Contains(t, out, "'priority': priority,")
}

func TestGenerate_Split(t *testing.T) {
	schema := taskSchema()
	opts := Options{Serializer: true, Split: true}

	files, err := Generate(schema, opts)
	require.NoError(t, err)
	require.Len(t, files, 3)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"task.dart", "priority_task.dart", "default_task.dart"}, names)

	// The base dispatches to its variants, so it imports their stems.
	base := string(files[0].Content)
	assert.Contains(t, base, "import 'default_task.dart';")
	assert.Contains(t, base, "import 'priority_task.dart';")

	variant := string(files[1].Content)
	assert.Contains(t, variant, "import 'task.dart';")
}

func TestGenerate_SplitFreezedParts(t *testing.T) {
	schema := userSchema()
	schema.Models[0].Fields = append(schema.Models[0].Fields, model.Field{
		Name: "items",
		Type: arrayOf(refTo("LineItem")),
	})
	opts := DefaultOptions()
	opts.Split = true

	files, err := Generate(schema, opts)
	require.NoError(t, err)
	require.Len(t, files, 1)

	out := string(files[0].Content)
	assert.Equal(t, "user.dart", files[0].Name)
	assert.Contains(t, out, "part 'user.freezed.dart';")
	assert.Contains(t, out, "part 'user.g.dart';")
	assert.Contains(t, out, "import 'line_item.dart';")
}

func TestGenerate_SuffixRenamePass(t *testing.T) {
	schema := &model.Schema{Models: []*model.Model{
		{Name: "FooParams", Fields: []model.Field{{Name: "x", Type: model.FieldType{Kind: model.TypeString}}}},
		{Name: "BarAdapterParams", Fields: []model.Field{{Name: "y", Type: model.FieldType{Kind: model.TypeString}}}},
	}}
	opts := DefaultOptions()
	opts.Split = true

	files, err := Generate(schema, opts)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Renamed once; an already-suffixed name is left alone.
	assert.Equal(t, "foo_adapter.dart", files[0].Name)
	assert.Equal(t, "bar_adapter.dart", files[1].Name)
	assert.Contains(t, string(files[0].Content), "class FooAdapterParams")
	assert.Contains(t, string(files[1].Content), "class BarAdapterParams")
}

func TestGenerate_SplitKeepsGoingOnModelError(t *testing.T) {
	schema := &model.Schema{Models: []*model.Model{
		{Name: "Orphan", ParentClass: "Missing"},
		{Name: "Fine", Fields: []model.Field{{Name: "x", Type: model.FieldType{Kind: model.TypeString}}}},
	}}

	files, err := Generate(schema, Options{Serializer: true, Split: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Orphan")
	assert.Contains(t, err.Error(), "Missing")

	// The independent model still rendered.
	require.Len(t, files, 1)
	assert.Equal(t, "fine.dart", files[0].Name)
}

func TestGenerate_CombinedAbortsOnModelError(t *testing.T) {
	schema := &model.Schema{Models: []*model.Model{
		{Name: "Orphan", ParentClass: "Missing"},
		{Name: "Fine", Fields: []model.Field{{Name: "x", Type: model.FieldType{Kind: model.TypeString}}}},
	}}

	files, err := Generate(schema, Options{Serializer: true})
	require.Error(t, err)
	assert.Nil(t, files)
}

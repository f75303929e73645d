// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/dartling/cli/internal/config"
)

// RunGenerateForm asks for whatever the generate command is still missing.
// Fields that already have a value are skipped.
func RunGenerateForm(input, output, format *string, serializer *bool) error {
	var groups []*huh.Group

	if *input == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Schema file or URL").
				Placeholder("schemas/models.json").
				Validate(requiredValidator("schema path")).
				Value(input),
		))
	}
	if *output == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Output path (use * for one file per model)").
				Placeholder("lib/models.dart").
				Validate(requiredValidator("output path")).
				Value(output),
		))
	}
	if *format == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Class style").
				Options(
					huh.NewOption("Freezed data classes", config.FormatFreezed),
					huh.NewOption("Plain Dart classes", config.FormatPlain),
				).
				Value(format),
			huh.NewConfirm().
				Title("Generate fromJson/toJson?").
				Value(serializer),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}

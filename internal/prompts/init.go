// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/dartling/cli/internal/config"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(input, output, format *string, createSchema *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Schema source").
				Options(
					huh.NewOption("Create a starter schema", true),
					huh.NewOption("Use an existing schema", false),
				).
				Height(3).
				Value(createSchema),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(func() string {
					if *createSchema {
						return "Path for new schema"
					}
					return "Path to existing schema"
				}, createSchema).
				PlaceholderFunc(func() string {
					if *createSchema {
						return "schemas/models.json"
					}
					return ""
				}, createSchema).
				Validate(func(s string) error {
					if s == "" && !*createSchema {
						return requiredValidator("schema path")(s)
					}
					return nil
				}).
				Value(input),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output path (use * for one file per model)").
				Placeholder("lib/models.dart").
				Validate(requiredValidator("output path")).
				Value(output),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Class style").
				Options(
					huh.NewOption("Freezed data classes", config.FormatFreezed),
					huh.NewOption("Plain Dart classes", config.FormatPlain),
				).
				Value(format),
		),
	).WithTheme(Theme()).Run()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dartling/cli/internal/config"
	"github.com/dartling/cli/internal/prompts"
	"github.com/dartling/cli/internal/session"
)

// starterSchema seeds new projects with something generate can chew on.
const starterSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "User",
  "type": "object",
  "properties": {
    "id": { "type": "string" },
    "name": { "type": "string" },
    "email": { "type": "string" },
    "createdAt": { "type": "string", "format": "date-time" }
  },
  "required": ["id", "name"]
}
`

type initOptions struct {
	input          string
	output         string
	format         string
	createSchema   bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new dartling project",
		Long: `Initialize a new dartling project with a dartling.yaml configuration file.
Can create a starter schema or point at an existing one.`,
		Example: `  # Interactive mode
  dartling init

  # Non-interactive
  dartling init --input schemas/models.json --output lib/models.dart --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "schemas/models.json", "Schema file path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "lib/models.dart", "Output path (use * for one file per model)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatFreezed, "Class style (freezed or plain)")
	cmd.Flags().BoolVar(&opts.createSchema, "create-schema", true, "Write a starter schema file")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New(session.ConfigFileName + " already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(
			&opts.input,
			&opts.output,
			&opts.format,
			&opts.createSchema,
		); err != nil {
			return err
		}
	}

	schemaPath := opts.input
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(cwd, schemaPath)
	}

	if opts.createSchema {
		if _, err := os.Stat(schemaPath); err == nil {
			return fmt.Errorf("schema file already exists: %s", opts.input)
		}
		if err := os.MkdirAll(filepath.Dir(schemaPath), 0o750); err != nil {
			return fmt.Errorf("failed to create schema directory: %w", err)
		}
		if err := os.WriteFile(schemaPath, []byte(starterSchema), 0o600); err != nil {
			return fmt.Errorf("failed to write schema file: %w", err)
		}
	} else if _, err := os.Stat(schemaPath); err != nil {
		return fmt.Errorf("schema file not found: %s", opts.input)
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Input:   opts.input,
		Output:  opts.output,
		Format:  opts.format,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Schema", Value: opts.input},
		{Label: "Output", Value: opts.output},
		{Label: "Format", Value: opts.format},
	}
	prompts.PrintResult(fields, "Initialization completed")

	return nil
}

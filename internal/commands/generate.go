// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dartling/cli/internal/config"
	"github.com/dartling/cli/internal/dart"
	"github.com/dartling/cli/internal/jschema"
	"github.com/dartling/cli/internal/model"
	"github.com/dartling/cli/internal/naming"
	"github.com/dartling/cli/internal/parser"
	"github.com/dartling/cli/internal/prompts"
	"github.com/dartling/cli/internal/session"
	"github.com/dartling/cli/internal/watch"
)

type generateOptions struct {
	input          string
	output         string
	plain          bool
	noSerializer   bool
	checkRefs      bool
	watch          bool
	nonInteractive bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Dart classes from a JSON Schema",
		Long: `Generate Dart data classes from a JSON Schema document.

The schema can be a local JSON or YAML file or an HTTP(S) URL. By default
models render as freezed classes into a single output file; an output path
containing * writes one file per model instead.`,
		Example: `  # Interactive mode
  dartling generate

  # Single combined file
  dartling generate --input schemas/models.json --output lib/models.dart

  # One file per model
  dartling generate -i schemas/models.json -o "lib/models/*.dart"

  # Plain classes with hand-rolled serialization, regenerated on change
  dartling generate -i schemas/models.json -o lib/models.dart --plain --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Schema file or URL")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (use * for one file per model)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Emit plain Dart classes instead of freezed")
	cmd.Flags().BoolVar(&opts.noSerializer, "no-serializer", false, "Skip fromJson/toJson emission")
	cmd.Flags().BoolVar(&opts.checkRefs, "check-refs", false, "Fail on references to undefined models")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate whenever the schema file changes")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input and --output)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	input := opts.input
	output := opts.output
	format := ""
	serializer := true

	// Config values back any flags left unset.
	if projectCtx := session.FromCommand(cmd); projectCtx != nil && projectCtx.Config != nil {
		cfg := projectCtx.Config
		if input == "" {
			input = cfg.Input
		}
		if output == "" {
			output = cfg.Output
		}
		format = cfg.Format
		serializer = cfg.SerializerEnabled()
	}
	if opts.plain {
		format = config.FormatPlain
	}
	if opts.noSerializer {
		serializer = false
	}

	if opts.nonInteractive {
		if input == "" || output == "" {
			return errors.New("non-interactive mode requires --input and --output")
		}
	} else {
		if err := prompts.RunGenerateForm(&input, &output, &format, &serializer); err != nil {
			return err
		}
	}

	union := format != config.FormatPlain

	run := func() error {
		return generateOnce(cmd.Context(), input, output, union, serializer, opts.checkRefs)
	}

	if !opts.watch {
		return run()
	}

	if jschema.IsURL(input) {
		return errors.New("--watch requires a local schema file")
	}
	if err := run(); err != nil {
		prompts.PrintWarning(err.Error())
	}
	fmt.Printf("\nWatching %s for changes (ctrl-c to stop)...\n", input)
	return watch.Run(cmd.Context(), input, run, func(err error) {
		prompts.PrintWarning(err.Error())
	})
}

func generateOnce(ctx context.Context, input, output string, union, serializer, checkRefs bool) error {
	doc, err := loadSchemaDocument(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	schema, err := parser.Parse(doc, naming.Default())
	if err != nil {
		return err
	}
	if checkRefs {
		if errs := model.CheckReferences(schema); len(errs) > 0 {
			return errors.Join(errs...)
		}
	}

	split := strings.Contains(filepath.Base(output), "*")
	outDir := filepath.Dir(output)

	genOpts := dart.Options{
		Union:      union,
		Serializer: serializer,
		Split:      split,
	}
	if !split {
		genOpts.PartStem = strings.TrimSuffix(filepath.Base(output), ".dart")
	}

	files, genErr := dart.Generate(schema, genOpts)

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var writeErrs []error
	written := 0
	for _, f := range files {
		outFile := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(outFile, f.Content, 0o600); err != nil {
			writeErrs = append(writeErrs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		fmt.Printf("  %s\n", outFile)
		written++
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Models", Value: strconv.Itoa(len(schema.Models))},
		{Label: "Files", Value: strconv.Itoa(written)},
		{Label: "Output", Value: outDir},
	}, "Generation completed")

	return errors.Join(append([]error{genErr}, writeErrs...)...)
}

// loadSchemaDocument reads the schema from a local file or over HTTP,
// depending on the shape of input.
func loadSchemaDocument(ctx context.Context, input string) (*jschema.Document, error) {
	if jschema.IsURL(input) {
		return jschema.NewLoader(nil).LoadURL(ctx, input)
	}
	dir, file := filepath.Split(input)
	if dir == "" {
		dir = "."
	}
	return jschema.NewLoader(os.DirFS(dir)).LoadFile(file)
}

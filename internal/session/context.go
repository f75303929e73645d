// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dartling/cli/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigFileName is the name of the dartling configuration file.
const ConfigFileName = "dartling.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration, when one exists.
type Context struct {
	// Config is the parsed dartling.yaml, or nil when the working
	// directory has none. Generation runs fine from flags alone.
	Config *config.Config
}

// Load looks for dartling.yaml in the current working directory and returns
// a new context.Context carrying the parsed result. A missing file is not
// an error; an unreadable or invalid one is.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	projectCtx := &Context{}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if validateErr := cfg.Validate(); validateErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
		}
		projectCtx.Config = cfg
	}

	return context.WithValue(ctx, contextKey{}, projectCtx), nil
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if projectCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return projectCtx
	}
	return nil
}

// FromCommand extracts the project Context from a cobra.Command's context.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// PreRunLoad loads the project context and stores it in the command's
// context. Wired as a PersistentPreRunE.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

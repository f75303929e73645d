// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dartling/cli/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "dartling",
		Short:             "Generate Dart data classes from JSON Schema",
		PersistentPreRunE: session.PreRunLoad,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

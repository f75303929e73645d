// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dartling/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}

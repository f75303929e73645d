// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package main is the entry point for the dartling CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dartling/cli/cmd/internal"
)

func main() {
	// Ctrl-c cancels the context so watch mode unwinds cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := internal.Run(ctx, os.Getenv); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

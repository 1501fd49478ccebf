// ============================================================================
// Machine Coordinator - Main Entry Point
// ============================================================================
//
// File: cmd/coordinator/main.go
// Purpose: Application entry point and CLI initialization
//
// Responsibilities:
//   1. Version Management - Inject build info via ldflags
//   2. Panic Recovery - Catch unexpected panics gracefully
//   3. CLI Setup - Build and configure Cobra command interface
//   4. Error Handling - Unified command execution error handling
//
// Version Injection:
//   Variables injected at build time via -ldflags:
//   go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
//
// Usage:
//   ./coordinator --help              # Show help
//   ./coordinator --version           # Show version
//   ./coordinator serve               # Start the gRPC server
//   ./coordinator status              # View configured status
//
// ============================================================================

package main

import (
	"fmt"
	"os"

	"github.com/ChuLiYu/machine-coordinator/internal/cli"
)

// Build-time version injection via ldflags
var (
	version = "1.0.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	rootCmd := cli.BuildCLI()
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the problemgen CLI tool for generating typed
// problem constructors from a YAML catalog.
//
// Usage:
//
//	problemgen generate --catalog ./problems.yaml --output ./gen/problems --package problems
//
// The tool reads a catalog of problem types (namespace, titles, status
// codes) and generates type URI constants plus constructor functions that
// return ready problem values.
package main

import (
	"fmt"
	"os"

	"github.com/Sokol111/ecommerce-problem/internal/problemgen"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "problemgen",
		Short:   "Generate typed problem constructors from a catalog",
		Long:    `problemgen generates type URI constants and constructor functions from a YAML catalog of problem types.`,
		Version: version,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	cfg := &problemgen.Config{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go code from a problem catalog",
		Long: `Generate Go code from a problem catalog.

This command reads the catalog file, derives an identifier and a type URI
for every entry, and generates constructor functions that build the
catalogued problems.

Example:
  problemgen generate --catalog ./problems.yaml --output ./gen/problems`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := problemgen.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create generator: %w", err)
			}

			if err := gen.Generate(); err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			return nil
		},
	}

	// Required flags
	cmd.Flags().StringVarP(&cfg.CatalogFile, "catalog", "c", "", "YAML catalog of problem types (required)")
	cmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", "", "Output directory for generated code (required)")

	// Optional flags
	cmd.Flags().StringVarP(&cfg.Package, "package", "n", "problems", "Go package name for generated code")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")

	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newValidateCmd() *cobra.Command {
	cfg := &problemgen.Config{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a problem catalog without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Verbose = true

			gen, err := problemgen.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create generator: %w", err)
			}

			return gen.Validate()
		},
	}

	cmd.Flags().StringVarP(&cfg.CatalogFile, "catalog", "c", "", "YAML catalog of problem types (required)")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

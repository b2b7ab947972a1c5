// Package problemgen generates typed problem constructors from a YAML
// catalog of problem types.
//
// The catalog lists a namespace URI and the problem types an API publishes
// (title, status, optional default detail). For every entry the generator
// emits a type URI constant and a constructor returning a ready
// *problem.Error, so services raise catalogued problems by name instead of
// assembling them field by field.
//
// Basic usage:
//
//	cfg := &problemgen.Config{
//		CatalogFile: "./problems.yaml",
//		OutputDir:   "./gen/problems",
//		Package:     "problems",
//	}
//
//	gen, err := problemgen.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := gen.Generate(); err != nil {
//		log.Fatal(err)
//	}
package problemgen

import (
	"fmt"
	"path/filepath"
)

// Config holds the configuration for the problem generator.
type Config struct {
	// CatalogFile is the YAML catalog of problem types. This is required.
	CatalogFile string

	// OutputDir is the directory where generated code will be written.
	// This is required for generation.
	OutputDir string

	// Package is the Go package name for generated code.
	// Defaults to "problems" if not specified.
	Package string

	// Verbose enables detailed logging during generation.
	Verbose bool
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.CatalogFile == "" {
		return fmt.Errorf("catalog file is required")
	}
	if c.Package == "" {
		c.Package = "problems"
	}
	return nil
}

// ValidateForGeneration checks that the configuration is valid for code generation.
func (c *Config) ValidateForGeneration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required for generation")
	}
	return nil
}

// AbsolutePaths converts relative paths to absolute paths.
func (c *Config) AbsolutePaths() error {
	var err error
	if c.CatalogFile != "" {
		if c.CatalogFile, err = filepath.Abs(c.CatalogFile); err != nil {
			return fmt.Errorf("failed to resolve catalog file: %w", err)
		}
	}
	if c.OutputDir != "" {
		if c.OutputDir, err = filepath.Abs(c.OutputDir); err != nil {
			return fmt.Errorf("failed to resolve output directory: %w", err)
		}
	}
	return nil
}

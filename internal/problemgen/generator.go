package problemgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

const problemImport = "github.com/Sokol111/ecommerce-problem/pkg/problem"

// Generator orchestrates the code generation process.
type Generator struct {
	config  *Config
	catalog *Catalog
}

// New creates a new Generator with the given configuration.
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.AbsolutePaths(); err != nil {
		return nil, err
	}

	catalog, err := LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	return &Generator{
		config:  cfg,
		catalog: catalog,
	}, nil
}

// Generate runs the complete code generation process.
func (g *Generator) Generate() error {
	if err := g.config.ValidateForGeneration(); err != nil {
		return err
	}

	g.log("Starting code generation...")

	if err := g.catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	g.log("Found %d problem types", len(g.catalog.Problems))

	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", g.config.OutputDir, err)
	}

	f := g.render()

	outputFile := filepath.Join(g.config.OutputDir, "problems.gen.go")
	if err := f.Save(outputFile); err != nil {
		return fmt.Errorf("failed to write problems: %w", err)
	}

	g.log("✓ Code generation complete!")
	return nil
}

// Validate validates the catalog without generating code.
func (g *Generator) Validate() error {
	if err := g.catalog.Validate(); err != nil {
		return err
	}
	for _, entry := range g.catalog.Problems {
		g.log("✓ %s -> %s", entry.Identifier(), entry.TypeURI(g.catalog.Namespace))
	}
	return nil
}

// render builds the generated file for the catalog.
func (g *Generator) render() *jen.File {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment("Code generated by problemgen. DO NOT EDIT.")
	f.ImportName(problemImport, "problem")

	f.Comment("Problem type URIs")
	f.Const().DefsFunc(func(group *jen.Group) {
		for _, entry := range g.catalog.Problems {
			group.Id(entry.Identifier() + "Type").Op("=").Lit(entry.TypeURI(g.catalog.Namespace))
		}
	})
	f.Line()

	for _, entry := range g.catalog.Problems {
		g.renderConstructor(f, entry)
	}

	return f
}

// renderConstructor emits one constructor function for a catalog entry.
func (g *Generator) renderConstructor(f *jen.File, entry Entry) {
	f.Commentf("%s creates a %q problem (status %d).", entry.Identifier(), entry.Title, entry.Status)

	chain := jen.Qual(problemImport, "NewBuilder").Call().
		Dot("WithType").Call(jen.Id(entry.Identifier() + "Type")).
		Dot("WithTitle").Call(jen.Lit(entry.Title)).
		Dot("WithStatus").Call(jen.Qual(problemImport, "Status").Call(jen.Lit(entry.Status)))
	if entry.Detail != "" {
		chain = chain.Dot("WithDetail").Call(jen.Lit(entry.Detail))
	}

	f.Func().
		Id(entry.Identifier()).
		Params(jen.Id("opts").Op("...").Qual(problemImport, "Option")).
		Op("*").Qual(problemImport, "Error").
		Block(
			jen.Id("b").Op(":=").Add(chain),
			jen.For(jen.List(jen.Id("_"), jen.Id("opt")).Op(":=").Range().Id("opts")).Block(
				jen.Id("opt").Call(jen.Id("b")),
			),
			jen.Return(jen.Id("b").Dot("Build").Call()),
		)
	f.Line()
}

// log prints a message if verbose mode is enabled.
func (g *Generator) log(format string, args ...any) {
	if g.config.Verbose {
		fmt.Printf(format+"\n", args...)
	}
}

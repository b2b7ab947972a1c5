package problemgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"
)

// Catalog is a parsed problem-type catalog.
type Catalog struct {
	// Namespace is the base URI under which the type URIs live,
	// e.g. "https://example.org/problems".
	Namespace string `yaml:"namespace"`

	// Problems lists the catalogued problem types.
	Problems []Entry `yaml:"problems"`
}

// Entry describes one catalogued problem type.
type Entry struct {
	// Name overrides the identifier derived from the title.
	Name string `yaml:"name"`

	// Title is the short human-readable summary, stable per type.
	Title string `yaml:"title"`

	// Status is the HTTP status code associated with the type.
	Status int `yaml:"status"`

	// Detail is an optional default detail message for the type.
	Detail string `yaml:"detail"`
}

// LoadCatalog reads and parses a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &catalog, nil
}

// Validate checks the catalog for completeness and duplicate identifiers.
func (c *Catalog) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("catalog namespace is required")
	}
	if len(c.Problems) == 0 {
		return fmt.Errorf("catalog defines no problems")
	}

	seen := make(map[string]string, len(c.Problems))
	for i, entry := range c.Problems {
		if entry.Title == "" && entry.Name == "" {
			return fmt.Errorf("problem %d: title or name is required", i)
		}
		if entry.Status < 100 || entry.Status > 599 {
			return fmt.Errorf("problem %q: status %d is outside 100..599", entry.Identifier(), entry.Status)
		}

		id := entry.Identifier()
		if previous, dup := seen[id]; dup {
			return fmt.Errorf("problem %q: identifier collides with %q", entry.displayName(), previous)
		}
		seen[id] = entry.displayName()
	}

	return nil
}

// Identifier returns the exported Go identifier for the entry,
// e.g. "Out of Stock" -> "OutOfStock".
func (e Entry) Identifier() string {
	return strcase.ToPascal(e.displayName())
}

// Slug returns the URI path segment for the entry,
// e.g. "Out of Stock" -> "out-of-stock".
func (e Entry) Slug() string {
	return strcase.ToKebab(e.displayName())
}

// TypeURI returns the full problem type URI under namespace.
func (e Entry) TypeURI(namespace string) string {
	return strings.TrimRight(namespace, "/") + "/" + e.Slug()
}

func (e Entry) displayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Title
}

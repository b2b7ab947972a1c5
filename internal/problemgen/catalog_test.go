package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
namespace: https://example.org/problems
problems:
  - title: Out of Stock
    status: 409
  - name: order-missing
    title: Order Not Found
    status: 404
    detail: The order does not exist
`

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(testCatalog))

	require.NoError(t, err)
	assert.Equal(t, "https://example.org/problems", catalog.Namespace)
	require.Len(t, catalog.Problems, 2)

	assert.Equal(t, "Out of Stock", catalog.Problems[0].Title)
	assert.Equal(t, 409, catalog.Problems[0].Status)

	assert.Equal(t, "order-missing", catalog.Problems[1].Name)
	assert.Equal(t, "The order does not exist", catalog.Problems[1].Detail)
}

func TestParseCatalog_RejectsMalformedYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("problems: [unclosed"))

	assert.Error(t, err)
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name: "valid catalog",
			catalog: Catalog{
				Namespace: "https://example.org/problems",
				Problems:  []Entry{{Title: "Out of Stock", Status: 409}},
			},
		},
		{
			name:    "missing namespace",
			catalog: Catalog{Problems: []Entry{{Title: "X", Status: 400}}},
			wantErr: "namespace",
		},
		{
			name:    "no problems",
			catalog: Catalog{Namespace: "https://example.org/problems"},
			wantErr: "no problems",
		},
		{
			name: "missing title and name",
			catalog: Catalog{
				Namespace: "https://example.org/problems",
				Problems:  []Entry{{Status: 400}},
			},
			wantErr: "title or name",
		},
		{
			name: "status out of range",
			catalog: Catalog{
				Namespace: "https://example.org/problems",
				Problems:  []Entry{{Title: "Nope", Status: 42}},
			},
			wantErr: "outside 100..599",
		},
		{
			name: "identifier collision",
			catalog: Catalog{
				Namespace: "https://example.org/problems",
				Problems: []Entry{
					{Title: "Out of Stock", Status: 409},
					{Name: "out-of-stock", Title: "Also Gone", Status: 410},
				},
			},
			wantErr: "collides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEntry_DerivedNames(t *testing.T) {
	entry := Entry{Title: "Out of Stock", Status: 409}

	assert.Equal(t, "OutOfStock", entry.Identifier())
	assert.Equal(t, "out-of-stock", entry.Slug())
	assert.Equal(t, "https://example.org/problems/out-of-stock",
		entry.TypeURI("https://example.org/problems/"))
}

func TestEntry_NameOverridesTitle(t *testing.T) {
	entry := Entry{Name: "order-missing", Title: "Order Not Found", Status: 404}

	assert.Equal(t, "OrderMissing", entry.Identifier())
	assert.Equal(t, "order-missing", entry.Slug())
}

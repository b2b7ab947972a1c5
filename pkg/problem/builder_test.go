package problem

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_ChainsAllSetters(t *testing.T) {
	p := NewBuilder().
		WithType("https://example.org/problem").
		WithTitle("Oh, oh!").
		WithStatus(Status(http.StatusUnprocessableEntity)).
		WithDetail("Crap.").
		WithInstance("https://example.org/problem/123").
		With("foo", "bar").
		Build()

	assert.Equal(t, "https://example.org/problem", p.Type())
	assert.Equal(t, "Oh, oh!", p.Title())
	require.NotNil(t, p.Status())
	assert.Equal(t, http.StatusUnprocessableEntity, p.Status().Code())
	assert.Equal(t, "Crap.", p.Detail())
	assert.Equal(t, "https://example.org/problem/123", p.Instance())

	value, ok := p.Parameters().Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", value)
}

func TestBuilder_WithRoutesReservedKeysToNamedFields(t *testing.T) {
	p := NewBuilder().
		With("type", "https://example.org/problem").
		With("title", "Reserved").
		With("status", http.StatusConflict).
		With("detail", "routed").
		With("instance", "https://example.org/problem/9").
		Build()

	assert.Equal(t, "https://example.org/problem", p.Type())
	assert.Equal(t, "Reserved", p.Title())
	require.NotNil(t, p.Status())
	assert.Equal(t, http.StatusConflict, p.Status().Code())
	assert.Equal(t, "routed", p.Detail())
	assert.Equal(t, "https://example.org/problem/9", p.Instance())

	// None of the reserved names may end up in the extension mapping.
	assert.Equal(t, 0, p.Parameters().Len())
}

func TestBuilder_WithStatusAcceptsStatusType(t *testing.T) {
	p := NewBuilder().With("status", Status(http.StatusTeapot)).Build()

	require.NotNil(t, p.Status())
	assert.Equal(t, http.StatusTeapot, p.Status().Code())
}

func TestBuilder_WithStatusDropsUnusableValue(t *testing.T) {
	p := NewBuilder().With("status", "not a status").Build()

	assert.Nil(t, p.Status())
	assert.Equal(t, 0, p.Parameters().Len())
}

func TestBuilder_WithCauseIsExposedViaUnwrap(t *testing.T) {
	cause := assert.AnError

	p := NewBuilder().
		WithStatus(Status(http.StatusBadGateway)).
		WithCause(cause).
		Build()

	assert.Equal(t, cause, p.Unwrap())
}

func TestBuilder_ExtensionInsertionOrderSurvivesBuild(t *testing.T) {
	p := NewBuilder().
		With("third", 3).
		With("first", 1).
		With("second", 2).
		Build()

	assert.Equal(t, []string{"third", "first", "second"}, p.Parameters().Keys())
}

package problem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Render produces the canonical, deterministic debug rendering of a
// problem: the type URI followed by the present fields in braces, e.g.
//
//	about:blank{404, Not Found, Order 123, instance=https://example.org/}
//
// Field order is fixed: status code, title, detail, "instance=" plus the
// occurrence URI, then one "key=value" part per extension attribute in
// insertion order. Absent fields are dropped, the rest is joined with
// ", ". The braces are always present, so a problem with no fields at all
// renders as "about:blank{}".
//
// The rendering is meant for logs and debugging, not for wire transport.
func Render(p Problem) string {
	params := p.Parameters()

	parts := make([]string, 0, 4+params.Len())
	if status := p.Status(); status != nil {
		parts = append(parts, strconv.Itoa(status.Code()))
	}
	parts = append(parts, p.Title(), p.Detail())
	if instance := p.Instance(); instance != "" {
		parts = append(parts, "instance="+instance)
	}
	params.Each(func(key string, value any) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	})

	return p.Type() + "{" + strings.Join(lo.Compact(parts), ", ") + "}"
}

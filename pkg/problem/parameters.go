package problem

// Parameters is a string-to-value mapping that remembers insertion order.
// Rendering and JSON serialization iterate entries in the order they were
// set, so that order is part of the observable contract. The zero value is
// an empty, ready-to-use mapping.
type Parameters struct {
	keys   []string
	values map[string]any
}

// Set stores a value under key. Setting an existing key overwrites the
// value but keeps the key's original position.
func (p *Parameters) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key and whether it is present.
func (p *Parameters) Get(key string) (any, bool) {
	if p == nil || p.values == nil {
		return nil, false
	}
	value, ok := p.values[key]
	return value, ok
}

// Len returns the number of entries.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (p *Parameters) Keys() []string {
	if p == nil || len(p.keys) == 0 {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Each calls fn for every entry in insertion order.
func (p *Parameters) Each(fn func(key string, value any)) {
	if p == nil {
		return
	}
	for _, key := range p.keys {
		fn(key, p.values[key])
	}
}

// Clone returns an independent copy. Nested map[string]any values are
// cloned as well so internal references never leak across problem values.
func (p *Parameters) Clone() *Parameters {
	clone := &Parameters{}
	p.Each(func(key string, value any) {
		if nested, ok := value.(map[string]any); ok {
			value = cloneMap(nested)
		}
		clone.Set(key, value)
	})
	return clone
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}

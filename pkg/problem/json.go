package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = (*Error)(nil)
	_ json.Unmarshaler = (*Error)(nil)
)

// MarshalJSON serializes the problem as an application/problem+json object.
// The five named members use their canonical names; extension attributes
// are flattened into the same object in insertion order. Absent members
// are omitted, except type which always serializes (it is never absent,
// falling back to the about:blank sentinel).
func (e *Error) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	member := func(name string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		encoded, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		buf.WriteByte(':')

		encoded, err = json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal problem member %q: %w", name, err)
		}
		buf.Write(encoded)
		return nil
	}

	if err := member("type", e.Type()); err != nil {
		return nil, err
	}
	if title := e.Title(); title != "" {
		if err := member("title", title); err != nil {
			return nil, err
		}
	}
	if status := e.Status(); status != nil {
		if err := member("status", status.Code()); err != nil {
			return nil, err
		}
	}
	if detail := e.Detail(); detail != "" {
		if err := member("detail", detail); err != nil {
			return nil, err
		}
	}
	if instance := e.Instance(); instance != "" {
		if err := member("instance", instance); err != nil {
			return nil, err
		}
	}

	var err error
	e.params.Each(func(key string, value any) {
		if err == nil {
			err = member(key, value)
		}
	})
	if err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON deserializes a problem+json object. Unknown members become
// extension attributes and keep the order they appear in on the wire, so a
// decode/encode round trip is stable. Numbers decode as json.Number.
func (e *Error) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("unmarshal problem: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("unmarshal problem: expected object, got %v", tok)
	}

	b := NewBuilder()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("unmarshal problem: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unmarshal problem: expected member name, got %v", tok)
		}

		switch key {
		case "type", "title", "detail", "instance":
			var value string
			if err := dec.Decode(&value); err != nil {
				return fmt.Errorf("unmarshal problem member %q: %w", key, err)
			}
			b.With(key, value)
		case "status":
			var code int
			if err := dec.Decode(&code); err != nil {
				return fmt.Errorf("unmarshal problem member %q: %w", key, err)
			}
			b.WithStatus(Status(code))
		default:
			var value any
			if err := dec.Decode(&value); err != nil {
				return fmt.Errorf("unmarshal problem member %q: %w", key, err)
			}
			b.With(key, value)
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("unmarshal problem: %w", err)
	}

	*e = *b.Build()
	return nil
}

package problem

import "go.uber.org/zap/zapcore"

var _ zapcore.ObjectMarshaler = (*Error)(nil)

// MarshalLogObject renders the problem as a structured zap object, using
// the same member names and omission rules as the JSON codec. This makes
// zap.Object("problem", err) and zap.Any log the individual fields instead
// of one opaque string.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", e.Type())
	if title := e.Title(); title != "" {
		enc.AddString("title", title)
	}
	if status := e.Status(); status != nil {
		enc.AddInt("status", status.Code())
	}
	if detail := e.Detail(); detail != "" {
		enc.AddString("detail", detail)
	}
	if instance := e.Instance(); instance != "" {
		enc.AddString("instance", instance)
	}

	var err error
	e.params.Each(func(key string, value any) {
		if err == nil {
			err = enc.AddReflected(key, value)
		}
	})
	return err
}

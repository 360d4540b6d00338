package domain

import (
	"bytes"
	"encoding/json"
)

// Optional makes presence explicit. The zero value is absent, which keeps
// "not provided" distinct from a present value whose fields are empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps v as a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value was provided.
func (o Optional[T]) IsPresent() bool { return o.present }

// IsZero lets yaml omitempty drop absent values.
func (o Optional[T]) IsZero() bool { return !o.present }

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON treats null as absent and anything else as present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML marks any decoded node as present.
func (o *Optional[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v T
	if err := unmarshal(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

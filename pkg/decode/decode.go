// Package decode converts loosely typed JSON input into Go values.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject indicates the input is not a single JSON object.
var ErrNotObject = errors.New("body must be a JSON object")

// Object reads exactly one JSON object from r. Numbers are normalized:
// integral values become int64 and all others float64.
func Object(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	if obj == nil {
		return nil, ErrNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after object", ErrNotObject)
	}

	if _, err := Normalize(obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	return obj, nil
}

// Normalize walks v replacing json.Number values with int64 or float64.
// Maps and slices are rewritten in place. Numbers outside the float64
// range are rejected.
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s out of range", t)
		}
		return f, nil
	case map[string]any:
		for k, val := range t {
			n, err := Normalize(val)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case []any:
		for i, val := range t {
			n, err := Normalize(val)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}

// FromMap converts a generic map into T by round-tripping through JSON.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

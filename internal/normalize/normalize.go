// Package normalize turns the backend's inconsistent collection payloads into
// plain slices.
//
// A collection endpoint may answer with a bare array, with an object wrapping
// the array under a named field, with a single record, or with nothing
// useful. The payload is first classified into a [Shape] and then decoded,
// so callers only ever see a slice.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// IDField is the field that marks an object as a single record.
const IDField = "id"

// ErrDecodeItem is returned when an element of a recognised collection does
// not decode into the requested type.
var ErrDecodeItem = errors.New("decode collection item")

// Shape is the classification of a collection payload.
type Shape int

const (
	// Empty is anything that is not a collection: null, {}, scalars,
	// malformed JSON.
	Empty Shape = iota
	// Sequence is a bare JSON array.
	Sequence
	// WrappedSequence is an object holding the array under a named field.
	WrappedSequence
	// SingleRecord is an object carrying an id, treated as a one-element
	// collection.
	SingleRecord
)

func (s Shape) String() string {
	switch s {
	case Sequence:
		return "sequence"
	case WrappedSequence:
		return "wrapped_sequence"
	case SingleRecord:
		return "single_record"
	default:
		return "empty"
	}
}

// Collection is a classified and decoded payload.
type Collection[T any] struct {
	Shape Shape
	Items []T
}

// Classify determines the shape of payload and returns the raw elements.
// fields are the collection field names checked, in order, when payload is
// an object.
func Classify(payload []byte, fields ...string) (Shape, []json.RawMessage) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return Empty, nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Empty, nil
		}
		return Sequence, items
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return Empty, nil
		}
		for _, field := range fields {
			items, ok := asArray(obj[field])
			if ok {
				return WrappedSequence, items
			}
		}
		if id, ok := obj[IDField]; ok && !isNull(id) {
			return SingleRecord, []json.RawMessage{json.RawMessage(trimmed)}
		}
	}

	return Empty, nil
}

// Decode classifies payload and decodes its elements into T. The returned
// Items is never nil.
func Decode[T any](payload []byte, fields ...string) (Collection[T], error) {
	shape, raw := Classify(payload, fields...)

	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return Collection[T]{Shape: shape, Items: []T{}}, fmt.Errorf("%w %d of %s: %v", ErrDecodeItem, i, shape, err)
		}
		items = append(items, item)
	}

	return Collection[T]{Shape: shape, Items: items}, nil
}

// Slice is Decode returning only the items.
func Slice[T any](payload []byte, fields ...string) ([]T, error) {
	c, err := Decode[T](payload, fields...)
	return c.Items, err
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	return items, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

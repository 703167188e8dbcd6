// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNilPayload is returned by [Payload.Decode] when there is nothing to decode.
var ErrNilPayload = errors.New("payload is empty")

// Payload is the opaque JSON document exchanged for a single data domain.
//
// The sync engine never looks inside a Payload: it only cares whether a domain
// produced one on encode and whether the transport accepted it. Each domain
// owns the typed shape behind it and converts with [NewPayload] and
// [Payload.Decode].
//
// A nil Payload means "no value". It marshals as JSON null, and a JSON null
// unmarshals back into a nil Payload.
type Payload []byte

// NewPayload encodes v as JSON and returns it as a Payload.
func NewPayload(v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// IsEmpty reports whether p carries no value (nil, empty, or JSON null).
func (p Payload) IsEmpty() bool {
	trimmed := bytes.TrimSpace(p)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Decode unmarshals p into v.
// Returns [ErrNilPayload] if p is empty.
func (p Payload) Decode(v any) error {
	if p.IsEmpty() {
		return ErrNilPayload
	}

	return json.Unmarshal(p, v)
}

// MarshalJSON implements [json.Marshaler]. The payload is embedded verbatim.
func (p Payload) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}

	return p, nil
}

// UnmarshalJSON implements [json.Unmarshaler]. It keeps a copy of data.
func (p *Payload) UnmarshalJSON(data []byte) error {
	if p == nil {
		return errors.New("models.Payload: UnmarshalJSON on nil pointer")
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = nil
		return nil
	}

	*p = append((*p)[0:0], data...)
	return nil
}

// String returns the raw JSON text.
func (p Payload) String() string {
	return string(p)
}

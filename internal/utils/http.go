package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const jsonContentType = "application/json; charset=utf-8"

// WriteJSON encodes v and writes it with the given status. Encoding happens
// before any header is sent, so a value that cannot be encoded turns into a
// plain 500 instead of a truncated body.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

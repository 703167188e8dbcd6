package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		value    any
		wantBody string
	}{
		{"map", http.StatusOK, map[string]string{"theme": "dark"}, `{"theme":"dark"}`},
		{"created", http.StatusCreated, struct {
			ID int `json:"id"`
		}{ID: 3}, `{"id":3}`},
		{"nil", http.StatusOK, nil, `null`},
		{"slice", http.StatusOK, []int{1, 2, 3}, `[1,2,3]`},
		// HTML не экранируется
		{"html", http.StatusOK, "<b>&</b>", `"<b>&</b>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			require.NoError(t, WriteJSON(rr, tt.status, tt.value))
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody+"\n", rr.Body.String())
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	rr := httptest.NewRecorder()

	err := WriteJSON(rr, http.StatusOK, make(chan int))

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Header().Get("Content-Type"), "application/json")
}

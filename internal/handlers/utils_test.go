package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// writeJSON Tests
// =============================================================================

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{
			name:     "Simple map",
			input:    map[string]string{"status": "ok"},
			expected: `{"status":"ok"}`,
		},
		{
			name:     "String slice",
			input:    []string{"a", "b", "c"},
			expected: `["a","b","c"]`,
		},
		{
			name:     "Empty slice",
			input:    []string{},
			expected: `[]`,
		},
		{
			name:     "Null",
			input:    nil,
			expected: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSON(w, tt.input)

			body := w.Body.String()
			// Trim newline that json.Encoder adds
			body = body[:len(body)-1]

			if body != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, body)
			}
		})
	}
}

func TestWriteJSONPreservesFieldOrder(t *testing.T) {
	t.Parallel()

	type release struct {
		Name       string  `json:"name"`
		UniqueName string  `json:"unique_name"`
		CoverURL   *string `json:"cover_url"`
	}

	w := httptest.NewRecorder()
	writeJSON(w, release{Name: "Abbey Road", UniqueName: "abbey-road"})

	body := w.Body.String()
	body = body[:len(body)-1]

	expected := `{"name":"Abbey Road","unique_name":"abbey-road","cover_url":null}`
	if body != expected {
		t.Errorf("Expected %q, got %q", expected, body)
	}
}

func TestWriteJSONWithSpecialCharacters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input map[string]string
	}{
		{
			name:  "Unicode characters",
			input: map[string]string{"name": "Ágætis byrjun (Sigur Rós)"},
		},
		{
			name:  "Quotes",
			input: map[string]string{"name": `The "White" Album`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSON(w, tt.input)

			var result map[string]string
			if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
				t.Fatalf("Failed to decode JSON: %v", err)
			}

			if result["name"] != tt.input["name"] {
				t.Errorf("Expected %q, got %q", tt.input["name"], result["name"])
			}
		})
	}
}

func TestWriteJSONHandlesInvalidTypes(t *testing.T) {
	t.Parallel()

	// JSON encoder handles most types, but channels cause errors
	ch := make(chan int)

	w := httptest.NewRecorder()
	writeJSON(w, ch)

	// The function should log the error but not panic
	// We verify it doesn't panic by getting here
	if w.Body.Len() == 0 {
		t.Log("writeJSON correctly handled unencodable type")
	}
}

// =============================================================================
// writeJSONError Tests
// =============================================================================

func TestWriteJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		message      string
		status       int
		expectedBody string
	}{
		{
			name:         "Not found",
			message:      "no such resource",
			status:       http.StatusNotFound,
			expectedBody: `{"error":"no such resource"}`,
		},
		{
			name:         "Internal error",
			message:      "catalog unavailable",
			status:       http.StatusInternalServerError,
			expectedBody: `{"error":"catalog unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeJSONError(w, tt.message, tt.status)

			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, w.Code)
			}

			if contentType := w.Header().Get("Content-Type"); contentType != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %q", contentType)
			}

			body := w.Body.String()
			body = body[:len(body)-1] // Trim newline

			if body != tt.expectedBody {
				t.Errorf("Expected body %q, got %q", tt.expectedBody, body)
			}
		})
	}
}

func TestWriteJSONErrorDecodesCorrectly(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	writeJSONError(w, "no such resource", http.StatusNotFound)

	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}

	if result["error"] != "no such resource" {
		t.Errorf("Expected error 'no such resource', got %q", result["error"])
	}
}

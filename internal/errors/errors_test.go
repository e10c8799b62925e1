// ABOUTME: Unit tests for standardized error response helpers
// ABOUTME: Validates error response format, JSON marshaling, and HTTP headers

package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		code    string
		message string
	}{
		{
			name:    "unknown account",
			status:  http.StatusNotFound,
			code:    ErrNotFound,
			message: "account ACC0099 not found",
		},
		{
			name:    "bad filter",
			status:  http.StatusBadRequest,
			code:    ErrInvalidRequest,
			message: "industry must not be blank",
		},
		{
			name:    "wrong method",
			status:  http.StatusMethodNotAllowed,
			code:    ErrMethodNotAllowed,
			message: "method not allowed",
		},
		{
			name:    "internal server error",
			status:  http.StatusInternalServerError,
			code:    ErrInternal,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.status, tt.code, tt.message)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}

			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
			if resp.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, resp.Message)
			}
			if resp.Status != tt.status {
				t.Errorf("expected body status %d, got %d", tt.status, resp.Status)
			}
			if resp.Field != "" {
				t.Errorf("expected empty field, got %s", resp.Field)
			}
		})
	}
}

func TestWriteErrorWithField(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorWithField(w, http.StatusBadRequest, ErrInvalidID, "malformed prospect id", "id")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	for _, key := range []string{"code", "message", "status", "field"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("required key %q missing from response", key)
		}
	}
	if resp["field"] != "id" {
		t.Errorf("expected field id, got %v", resp["field"])
	}
}

func TestWriteError_OmitsEmptyField(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusNotFound, ErrNotFound, "missing")

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if _, ok := resp["field"]; ok {
		t.Errorf("field should be omitted when empty, got %v", resp["field"])
	}
	if len(resp) != 3 {
		t.Errorf("expected 3 keys, got %d: %v", len(resp), resp)
	}
}

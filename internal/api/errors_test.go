package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cargotrack/cargotrack/internal/storage"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		apiError *APIError
		want     string
	}{
		{
			name: "error with details",
			apiError: &APIError{
				Code:    400,
				Message: "Bad Request",
				Details: "Invalid JSON format",
			},
			want: "Bad Request: Invalid JSON format",
		},
		{
			name: "error without details",
			apiError: &APIError{
				Code:    404,
				Message: "Not Found",
			},
			want: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.apiError.Error(); got != tt.want {
				t.Errorf("APIError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBadRequestError(t *testing.T) {
	err := BadRequestError("Invalid input", "Field 'name' is required")

	if err.Code != http.StatusBadRequest {
		t.Errorf("BadRequestError().Code = %v, want %v", err.Code, http.StatusBadRequest)
	}
	if err.Message != "Invalid input" {
		t.Errorf("BadRequestError().Message = %v, want %v", err.Message, "Invalid input")
	}
	if err.Details != "Field 'name' is required" {
		t.Errorf("BadRequestError().Details = %v, want %v", err.Details, "Field 'name' is required")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("container", "ASML 12345 4")

	if err.Code != http.StatusNotFound {
		t.Errorf("NotFoundError().Code = %v, want %v", err.Code, http.StatusNotFound)
	}
	if err.Message != "container not found" {
		t.Errorf("NotFoundError().Message = %v, want %v", err.Message, "container not found")
	}
	if err.Details != "no container with id ASML 12345 4" {
		t.Errorf("NotFoundError().Details = %v, want %v", err.Details, "no container with id ASML 12345 4")
	}
}

func TestValidationError(t *testing.T) {
	fieldErrors := map[string]string{
		"container_id":    "Container id is required",
		"shipping_method": "Shipping method is required",
	}
	err := ValidationError("Validation failed", fieldErrors)

	if err.Code != http.StatusBadRequest {
		t.Errorf("ValidationError().Code = %v, want %v", err.Code, http.StatusBadRequest)
	}
	if err.Message != "Validation failed" {
		t.Errorf("ValidationError().Message = %v, want %v", err.Message, "Validation failed")
	}
	if len(err.FieldError) != 2 {
		t.Errorf("ValidationError().FieldError length = %v, want 2", len(err.FieldError))
	}
	if err.FieldError["container_id"] != "Container id is required" {
		t.Errorf("ValidationError().FieldError['container_id'] = %v", err.FieldError["container_id"])
	}
}

func TestInternalError(t *testing.T) {
	err := InternalError("Database connection failed", "Connection timeout")

	if err.Code != http.StatusInternalServerError {
		t.Errorf("InternalError().Code = %v, want %v", err.Code, http.StatusInternalServerError)
	}
	if err.Message != "Database connection failed" {
		t.Errorf("InternalError().Message = %v, want %v", err.Message, "Database connection failed")
	}
	if err.Details != "Connection timeout" {
		t.Errorf("InternalError().Details = %v, want %v", err.Details, "Connection timeout")
	}
}

func TestStorageError(t *testing.T) {
	notFound := fmt.Errorf("container x: %w", storage.ErrNotFound)
	if got := storageError(notFound); got.Code != http.StatusNotFound {
		t.Errorf("storageError(not found).Code = %v, want %v", got.Code, http.StatusNotFound)
	}

	generic := fmt.Errorf("disk on fire")
	if got := storageError(generic); got.Code != http.StatusInternalServerError {
		t.Errorf("storageError(generic).Code = %v, want %v", got.Code, http.StatusInternalServerError)
	}
}

func TestGetHTTPMessage(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{"Bad Request", http.StatusBadRequest, "Bad request"},
		{"Not Found", http.StatusNotFound, "Resource not found"},
		{"Internal Server Error", http.StatusInternalServerError, "Internal server error"},
		{"Unknown Code", 999, http.StatusText(999)}, // Falls back to http.StatusText for unknown codes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getHTTPMessage(tt.code); got != tt.want {
				t.Errorf("getHTTPMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}

package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes returned to clients
const (
	// Authentication errors
	ErrInvalidToken = "AUTH_006" // missing or rejected bearer token

	// Validation errors
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required parameter missing
	ErrInvalidFormat       = "VAL_003" // parameter format invalid
	ErrUnsupportedUnit     = "VAL_004" // unit outside km/mi or L/gal

	// Lookup errors
	ErrNotFound = "NOT_001" // vehicle or template not found

	// Server errors
	ErrInternalServer  = "SRV_001" // internal error
	ErrExternalService = "SRV_003" // vehicle API failed
	ErrCommunication   = "SRV_004" // vehicle API unreachable or timed out
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnsupportedUnit:     http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError is the standard error body
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status for an error code
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError writes a standard error body with the status mapped from code
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

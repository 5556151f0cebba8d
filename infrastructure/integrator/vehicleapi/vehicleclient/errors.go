package vehicleclient

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/vehicle-insights-api/internal/domain"
)

// APIError is a non-2xx answer from the vehicle API
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vehicleapi: status %d: %s", e.StatusCode, e.Detail)
}

// Is lets callers match on the domain sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case domain.ErrVehicleNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrUpstream:
		return e.StatusCode != http.StatusUnauthorized &&
			e.StatusCode != http.StatusForbidden &&
			e.StatusCode != http.StatusNotFound
	}
	return false
}

type errorBody struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
}

func newAPIError(status int, body []byte) *APIError {
	detail := http.StatusText(status)

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if d := describeDetail(parsed.Detail); d != "" {
			detail = d
		} else if parsed.Message != "" {
			detail = parsed.Message
		}
	}

	return &APIError{StatusCode: status, Detail: detail}
}

// describeDetail flattens the detail shapes FastAPI produces: a string, a
// list of validation errors, or an object.
func describeDetail(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case []any:
		msgs := make([]string, 0, len(d))
		for _, item := range d {
			if obj, ok := item.(map[string]any); ok {
				if msg, ok := obj["msg"].(string); ok {
					msgs = append(msgs, msg)
				}
			}
		}
		return strings.Join(msgs, "; ")
	case map[string]any:
		if msg, ok := d["message"].(string); ok {
			return msg
		}
		if b, err := json.Marshal(d); err == nil {
			return string(b)
		}
	}
	return ""
}

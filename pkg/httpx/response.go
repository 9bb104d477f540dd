package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the uniform API response body. Every endpoint, success or
// failure, answers with this shape.
type Envelope struct {
	IsSuccess bool   `json:"is_success"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Payload   any    `json:"payload,omitempty"`
}

// WriteSuccess writes a success envelope with the given status code.
func WriteSuccess(w http.ResponseWriter, status int, code, message string, payload any) {
	writeEnvelope(w, status, Envelope{
		IsSuccess: true,
		Code:      code,
		Message:   message,
		Payload:   payload,
	})
}

// APIError is a failure response carried as an error value. Handlers map
// service errors onto these and call WriteError.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes the failure envelope for this error.
func (e *APIError) WriteError(w http.ResponseWriter) {
	writeEnvelope(w, e.StatusCode, Envelope{
		IsSuccess: false,
		Code:      e.Code,
		Message:   e.Message,
	})
}

// NewAPIError builds a custom APIError.
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{StatusCode: status, Code: code, Message: message}
}

// NoCache sets Cache-Control and Pragma headers to prevent caching. Required
// for responses carrying tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

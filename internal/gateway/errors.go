package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend rejects the bearer
// credential. The session's logout hook has already fired by the time a
// caller sees it.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the backend. Message holds the
// server-provided "message" field when present and is safe to show to the
// user; the raw body is never exposed.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store api: status %d", e.Status)
	}
	return fmt.Sprintf("store api: status %d: %s", e.Status, e.Message)
}

// ServerMessage extracts the user-facing message carried by err, if any.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func messageFrom(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

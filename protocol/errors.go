package protocol

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents standardized transport error codes
type ErrorCode int

const (
	// Connection errors (1000-1099)
	ErrorCodeConnectionRefused ErrorCode = 1001
	ErrorCodeTimeout           ErrorCode = 1002
	ErrorCodeAuthFailed        ErrorCode = 1003

	// Protocol errors (2000-2099)
	ErrorCodeProtocolError ErrorCode = 2001
)

// TransportError represents a failure raised by a transport. The client
// surfaces it unchanged.
type TransportError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`

	// IsRetryable is advisory for callers; the client never retries.
	IsRetryable bool `json:"isRetryable"`
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if len(e.Details) > 0 {
		detailsJSON, _ := json.Marshal(e.Details)
		return fmt.Sprintf("[%d] %s (details: %s)", e.Code, e.Message, string(detailsJSON))
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Is matches transport errors by code so callers can test against the
// exported sentinels.
func (e *TransportError) Is(target error) bool {
	t, ok := target.(*TransportError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == ""
}

// Sentinels for errors.Is.
var (
	ErrConnectionRefused = &TransportError{Code: ErrorCodeConnectionRefused}
	ErrTimeout           = &TransportError{Code: ErrorCodeTimeout}
	ErrAuthFailed        = &TransportError{Code: ErrorCodeAuthFailed}
	ErrProtocol          = &TransportError{Code: ErrorCodeProtocolError}
)

// NewTransportError creates a new transport error
func NewTransportError(code ErrorCode, message string, details map[string]interface{}) *TransportError {
	return &TransportError{
		Code:        code,
		Message:     message,
		Details:     details,
		IsRetryable: isRetryable(code),
	}
}

func isRetryable(code ErrorCode) bool {
	return code == ErrorCodeTimeout
}

// ConnectionError creates a connection-related transport error
func ConnectionError(message string, details map[string]interface{}) *TransportError {
	return NewTransportError(ErrorCodeConnectionRefused, message, details)
}

// TimeoutError creates a receive-timeout transport error
func TimeoutError(message string, details map[string]interface{}) *TransportError {
	return NewTransportError(ErrorCodeTimeout, message, details)
}

// AuthError creates a credential rejection error
func AuthError(message string, details map[string]interface{}) *TransportError {
	return NewTransportError(ErrorCodeAuthFailed, message, details)
}

// ProtocolError creates a malformed-exchange error
func ProtocolError(message string, details map[string]interface{}) *TransportError {
	return NewTransportError(ErrorCodeProtocolError, message, details)
}

// ToJSON serializes the error to JSON
func (e *TransportError) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON deserializes a transport error from JSON
func FromJSON(data []byte) (*TransportError, error) {
	var err TransportError
	if unmarshalErr := json.Unmarshal(data, &err); unmarshalErr != nil {
		return nil, unmarshalErr
	}
	return &err, nil
}

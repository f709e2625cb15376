package serrors

import "fmt"

// Error is a coded error surfaced in API payloads. Code is a stable
// machine-readable identifier, Message a human-readable default.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewError(code, message, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationErrors maps DTO field names to messages.
type ValidationErrors map[string]string

func (v ValidationErrors) First(fields ...string) string {
	for _, f := range fields {
		if msg, ok := v[f]; ok && msg != "" {
			return msg
		}
	}
	for _, msg := range v {
		if msg != "" {
			return msg
		}
	}
	return ""
}

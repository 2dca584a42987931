package serrors

import "fmt"

// Base is a coded error carried across service and presentation layers.
// Code is stable and machine-readable; Message is the operator-facing text.
type Base struct {
	Code    string
	Message string
	Details string
}

func (e *Base) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, message, details string) *Base {
	return &Base{Code: code, Message: message, Details: details}
}

func WithDetails(base *Base, details string) *Base {
	return &Base{Code: base.Code, Message: base.Message, Details: details}
}

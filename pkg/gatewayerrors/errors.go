// Package gatewayerrors provides the shared error core embedded by the typed
// error kinds of every layer.
package gatewayerrors

import "fmt"

// GatewayError carries the component that raised the error, the call chain it
// happened in, the original cause, and a user-safe message. Typed error kinds
// embed it as their Console field so the transport layer can switch on the
// kind while still surfacing a friendly message.
type GatewayError struct {
	Component     string
	Call          string
	Function      string
	OriginalError error
	friendly      string
}

// New creates the base error for a component.
func New(component string) GatewayError {
	return GatewayError{Component: component, friendly: "general error"}
}

// NewWithMessage creates the base error for a component with a user-safe
// message returned by FriendlyMessage.
func NewWithMessage(component, friendly string) GatewayError {
	return GatewayError{Component: component, friendly: friendly}
}

func (e GatewayError) Error() string {
	msg := e.Component
	if e.Call != "" {
		msg += " - " + e.Call
	}

	if e.Function != "" {
		msg += " - " + e.Function
	}

	if e.OriginalError != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.OriginalError)
	}

	return msg
}

// Wrap records where the error happened and the original cause. GatewayError
// is a value type, so Wrap returns a copy and the package-level base errors
// stay untouched.
func (e GatewayError) Wrap(call, function string, err error) GatewayError {
	e.Call = call
	e.Function = function
	e.OriginalError = err

	return e
}

func (e GatewayError) Unwrap() error {
	return e.OriginalError
}

// FriendlyMessage returns the user-safe message for this error. Diagnostic
// detail stays in Error() and the logs.
func (e GatewayError) FriendlyMessage() string {
	return e.friendly
}

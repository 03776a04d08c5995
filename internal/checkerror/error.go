// Package checkerror defines the API error taxonomy.
// Errors carry the HTTP status code they must be rendered with:
// NotFound (404), Unauthorized (401), Conflict (409); anything else is a 500.
package checkerror

import "net/http"

// An Error represents the error format that can be rendered by the checklist server.
type Error struct {
	HTTPCode int    `json:"-"`
	Message  string `json:"message"`
}

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if cerr, ok := err.(*Error); ok && cerr.HTTPCode != 0 {
		return cerr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new Error with the given code and message.
func New(code int, message string) *Error {
	return &Error{HTTPCode: code, Message: message}
}

// NotFound returns a new Error rendered as a 404.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Unauthorized returns a new Error rendered as a 401.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Conflict returns a new Error rendered as a 409.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.Message
}

// Package apperr defines the error type every failed request is rendered from.
//
// Handlers and repositories return *HTTPError for failures the client should
// see verbatim. Anything else is treated as an unclassified internal error.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

const MsgDuplicateISBN = "ISBN already exists!"

type HTTPError struct {
	Status   int
	Messages []string

	// list keeps validation failures rendered as an array even when a single
	// violation was found.
	list bool
}

func (e *HTTPError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Message returns the JSON value of the "message" field: a string, or a list
// of strings for validation failures.
func (e *HTTPError) Message() any {
	if e.list {
		return e.Messages
	}
	if len(e.Messages) == 0 {
		return http.StatusText(e.StatusCode())
	}
	return e.Messages[0]
}

// StatusCode defaults to 500 when no status was set.
func (e *HTTPError) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

func New(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Messages: []string{message}}
}

func Validation(messages []string) *HTTPError {
	return &HTTPError{
		Status:   http.StatusBadRequest,
		Messages: messages,
		list:     true,
	}
}

func Conflict() *HTTPError {
	return New(http.StatusBadRequest, MsgDuplicateISBN)
}

func NotFound(message string) *HTTPError {
	return New(http.StatusNotFound, message)
}

func Internal() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// From returns err as an *HTTPError, falling back to a generic 500.
func From(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return Internal()
}

type ErrorBody struct {
	Message any `json:"message" swaggertype:"string"`
	Status  int `json:"status"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func (e *HTTPError) Response() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Message: e.Message(),
			Status:  e.StatusCode(),
		},
	}
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/search"
)

// ParsingError is returned when a request body cannot be decoded.
type ParsingError struct {
	Err error
}

func (e *ParsingError) Unwrap() error { return e.Err }

func (e *ParsingError) Error() string { return "server: parse request: " + e.Err.Error() }

// RequiredError is returned when a required field is missing.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string { return fmt.Sprintf("server: required field %q is missing", e.Field) }

// ErrorHandler writes err to w. result, when non-nil, carries the status the
// service chose.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// DefaultErrorHandler maps errors to HTTP status codes.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error, result *ImplResponse) {
	status := statusFor(err)
	if result != nil && result.Code != 0 {
		status = result.Code
	}
	_ = EncodeJSONResponse(errorBody{Error: err.Error()}, &status, w)
}

func statusFor(err error) int {
	var (
		tooLarge *http.MaxBytesError
		perr     *ParsingError
		rerr     *RequiredError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &perr), errors.As(err, &rerr):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrInvalidArgument), errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrInvalidGridFile):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorType is the metrics label for err.
func errorType(err error) string {
	switch statusFor(err) {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return "invalid"
	case http.StatusGatewayTimeout, http.StatusServiceUnavailable:
		return "cancelled"
	default:
		return "internal"
	}
}

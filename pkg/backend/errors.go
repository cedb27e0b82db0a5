package backend

import (
	"fmt"
	"net/http"
)

// StatusCodeError is implemented by domain errors that map to an HTTP
// status code.
type StatusCodeError interface {
	error
	StatusCode() int
}

// NotFoundError reports a missing record, an id-less request to an
// operation that requires one, or an unparseable resource URL.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// BadRequestError reports invalid request content, such as a PUT whose
// body id contradicts the path id or a body that cannot be parsed as a
// record.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// StatusCode returns the HTTP status code for this error.
func (e *BadRequestError) StatusCode() int { return http.StatusBadRequest }

// MethodError reports an HTTP method the dispatcher does not handle.
type MethodError struct {
	Method string
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("method %s not supported", e.Method)
}

// StatusCode returns the HTTP status code for this error.
func (e *MethodError) StatusCode() int { return http.StatusMethodNotAllowed }

// errNotFound builds the canonical missing-record error for a collection
// and id.
func errNotFound(collection string, id any) *NotFoundError {
	return &NotFoundError{
		Message: fmt.Sprintf("%q with id=%q not found", collection, fmt.Sprint(id)),
	}
}

// errMissingID reports an operation that requires a path id but got none.
func errMissingID(collection string) *NotFoundError {
	return &NotFoundError{
		Message: fmt.Sprintf("missing id in request to %q", collection),
	}
}

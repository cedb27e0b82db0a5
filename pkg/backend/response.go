package backend

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the outcome of one request cycle.
type Response struct {
	// StatusCode is the HTTP status.
	StatusCode int
	// Header is the response header map, always carrying
	// Content-Type: application/json.
	Header http.Header
	// Body is the encoded JSON envelope; empty for 204 responses.
	Body []byte
}

// newHeader seeds a response header map with the JSON content type.
func newHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}

// dataResponse wraps payload in the {"data": ...} success envelope.
func dataResponse(status int, payload any, header http.Header) *Response {
	body, err := json.Marshal(map[string]any{"data": payload})
	if err != nil {
		return errorResponse(http.StatusInternalServerError, "unable to encode response: "+err.Error())
	}
	return &Response{StatusCode: status, Header: header, Body: body}
}

// noContentResponse builds an empty-bodied 204 keeping the accumulated
// headers.
func noContentResponse(header http.Header) *Response {
	return &Response{StatusCode: http.StatusNoContent, Header: header}
}

// errorResponse wraps msg in the {"error": ...} envelope.
func errorResponse(status int, msg string) *Response {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return &Response{StatusCode: status, Header: newHeader(), Body: body}
}

// errorFrom maps a domain error to its error envelope. Errors without a
// status code become 500s.
func errorFrom(err error) *Response {
	var sc StatusCodeError
	if errors.As(err, &sc) {
		return errorResponse(sc.StatusCode(), err.Error())
	}
	return errorResponse(http.StatusInternalServerError, err.Error())
}

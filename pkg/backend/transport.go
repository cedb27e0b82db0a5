package backend

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// Transport adapts a Service to http.RoundTripper, so an ordinary
// *http.Client exercises the in-memory backend without touching the
// network. The request's context governs the simulated latency wait.
type Transport struct {
	svc *Service
}

// NewTransport wraps svc in a RoundTripper.
func NewTransport(svc *Service) *Transport {
	return &Transport{svc: svc}
}

// Client returns an *http.Client whose transport short-circuits into the
// service.
func (s *Service) Client() *http.Client {
	return &http.Client{Transport: NewTransport(s)}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		body = b
	}

	resp, err := t.svc.Do(req.Context(), req.Method, req.URL.String(), req.Header, body)
	if err != nil {
		return nil, err
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		StatusCode:    resp.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        resp.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}, nil
}

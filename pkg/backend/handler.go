package backend

import (
	"io"
	"net/http"
	"time"

	"github.com/memapi/memapi/internal/id"
)

// maxBodySize caps request bodies served over a real listener.
const maxBodySize = 1 << 20

// Handler serves a Service over real HTTP. Every response carries an
// X-Request-Id header, and each request is logged through the service's
// logger.
type Handler struct {
	svc *Service
}

// NewHandler wraps svc in an http.Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := id.UUID()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		resp := errorResponse(http.StatusBadRequest, "unable to read request body: "+err.Error())
		h.write(w, reqID, resp)
		h.log(r, reqID, resp.StatusCode, start)
		return
	}

	resp, err := h.svc.Do(r.Context(), r.Method, r.URL.RequestURI(), r.Header, body)
	if err != nil {
		// Context cancelled during the latency wait; the client is gone.
		h.svc.log.Debug("request aborted", "id", reqID, "error", err)
		return
	}

	h.write(w, reqID, resp)
	h.log(r, reqID, resp.StatusCode, start)
}

func (h *Handler) write(w http.ResponseWriter, reqID string, resp *Response) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("X-Request-Id", reqID)
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}

func (h *Handler) log(r *http.Request, reqID string, status int, start time.Time) {
	h.svc.log.Info("request",
		"id", reqID,
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"duration", time.Since(start),
	)
}

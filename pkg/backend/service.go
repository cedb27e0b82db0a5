package backend

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/memapi/memapi/pkg/latency"
	"github.com/memapi/memapi/pkg/memdb"
)

// Service is an in-process stand-in for a REST backend. It owns an
// in-memory database seeded from a factory and answers request cycles
// against it. Construct one with New; the zero value is not usable.
type Service struct {
	cfg *Config
	db  *memdb.Database
	sim *latency.Simulator
	log *slog.Logger
	obs Observer
}

// New creates a Service over the seed factory's data. cfg may be nil for
// all defaults.
func New(factory memdb.Factory, cfg *Config) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		cfg: cfg,
		db:  memdb.New(factory),
		sim: latency.New(cfg.Delay),
		log: cfg.Logger,
		obs: cfg.Observer,
	}
}

// Database exposes the underlying store, mainly for inspection in tests.
// Mutations outside the request cycle bypass the dispatcher's invariants.
func (s *Service) Database() *memdb.Database {
	return s.db
}

// Reset discards all mutations and restores the seed snapshot.
func (s *Service) Reset() {
	s.db.Reset()
	names := s.db.Names()
	s.obs.OnReset(names)
	s.log.Info("database reset", "collections", names)
}

// Get answers a GET request cycle for url.
func (s *Service) Get(ctx context.Context, url string, header http.Header) (*Response, error) {
	return s.Do(ctx, http.MethodGet, url, header, nil)
}

// Delete answers a DELETE request cycle for url.
func (s *Service) Delete(ctx context.Context, url string, header http.Header) (*Response, error) {
	return s.Do(ctx, http.MethodDelete, url, header, nil)
}

// Post answers a POST request cycle for url. body may be a string (raw),
// a []byte (binary), or a flat map (form-encoded); any other type is a
// construction-time error.
func (s *Service) Post(ctx context.Context, url string, header http.Header, body any) (*Response, error) {
	return s.send(ctx, http.MethodPost, url, header, body)
}

// Put answers a PUT request cycle for url. Body rules match Post.
func (s *Service) Put(ctx context.Context, url string, header http.Header, body any) (*Response, error) {
	return s.send(ctx, http.MethodPut, url, header, body)
}

func (s *Service) send(ctx context.Context, method, url string, header http.Header, body any) (*Response, error) {
	encoded, contentType, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	header = cloneHeader(header)
	if contentType != "" && header.Get("Content-Type") == "" {
		header.Set("Content-Type", contentType)
	}
	return s.Do(ctx, method, url, header, encoded)
}

// Do dispatches an already-encoded request cycle. The Transport and
// Handler adapters funnel through here. Dispatcher-level failures come
// back as error responses, never as Go errors; the only error returns are
// context cancellation during the simulated latency window.
func (s *Service) Do(ctx context.Context, method, url string, header http.Header, body []byte) (*Response, error) {
	start := time.Now()

	resp, collection := s.dispatch(method, url, header, body)
	s.obs.OnRequest(method, collection, resp.StatusCode, time.Since(start))
	s.log.Debug("request handled",
		"method", method,
		"url", url,
		"collection", collection,
		"status", resp.StatusCode,
	)

	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}
	return h.Clone()
}

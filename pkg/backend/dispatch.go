package backend

import (
	"fmt"
	"net/http"

	"github.com/memapi/memapi/internal/id"
	"github.com/memapi/memapi/pkg/memdb"
)

// requestContext aggregates everything the method handlers need for one
// request. Built per request, never retained.
type requestContext struct {
	method      string
	parsed      ParsedURL
	coll        *memdb.Collection
	id          any // normalized path id, nil when absent
	header      http.Header
	body        []byte
	contentType string
}

// dispatch routes one request cycle by HTTP method. It returns the
// response and the collection name for observability; the name is empty
// when the URL could not be parsed.
func (s *Service) dispatch(method, rawurl string, header http.Header, body []byte) (*Response, string) {
	parsed, err := parseURL(rawurl, s.cfg.Host, s.cfg.RootPath)
	if err != nil {
		// Malformed paths are a recoverable not-found condition.
		return errorFrom(&NotFoundError{Message: err.Error()}), ""
	}

	rc := &requestContext{
		method:      method,
		parsed:      parsed,
		coll:        s.db.Lookup(parsed.Collection),
		header:      newHeader(),
		body:        body,
		contentType: header.Get("Content-Type"),
	}
	if parsed.RawID != "" {
		rc.id = id.Normalize(parsed.RawID)
	}

	var resp *Response
	switch method {
	case http.MethodGet:
		resp = s.handleGet(rc)
	case http.MethodPost:
		resp = s.handlePost(rc)
	case http.MethodPut:
		resp = s.handlePut(rc)
	case http.MethodDelete:
		resp = s.handleDelete(rc)
	default:
		resp = errorFrom(&MethodError{Method: method})
	}
	return resp, parsed.Collection
}

// handleGet answers a single record by id, or the whole collection.
func (s *Service) handleGet(rc *requestContext) *Response {
	if rc.id == nil {
		return dataResponse(http.StatusOK, rc.coll.Records(), rc.header)
	}

	rec, ok := rc.coll.FindByID(rc.id)
	if !ok {
		return errorFrom(errNotFound(rc.parsed.Collection, rc.id))
	}
	return dataResponse(http.StatusOK, rec, rc.header)
}

// handlePost creates or replaces a record by id. A body without an id
// takes the path id if present, otherwise a generated one.
func (s *Service) handlePost(rc *requestContext) *Response {
	rec, err := decodeRecord(rc.body, rc.contentType)
	if err != nil {
		return errorFrom(err)
	}

	if rec.ID() == nil {
		if rc.id != nil {
			rec.SetID(rc.id)
		} else {
			rec.SetID(s.generateID(rc.coll))
		}
	} else {
		rec.SetID(rec.ID())
	}

	if i := rc.coll.IndexOf(rec.ID()); i >= 0 {
		rc.coll.ReplaceAt(i, rec)
		return noContentResponse(rc.header)
	}

	rc.coll.Append(rec)
	rc.header.Set("Location", rc.parsed.ResourceURL+fmt.Sprint(rec.ID()))
	return dataResponse(http.StatusCreated, rec, rc.header)
}

// handlePut replaces the record at the path id, appending it as a new
// record when absent (idempotent create).
func (s *Service) handlePut(rc *requestContext) *Response {
	if rc.id == nil {
		return errorFrom(errMissingID(rc.parsed.Collection))
	}

	rec, err := decodeRecord(rc.body, rc.contentType)
	if err != nil {
		return errorFrom(err)
	}

	if rec.ID() != nil && !id.Equal(rec.ID(), rc.id) {
		return errorFrom(&BadRequestError{
			Message: fmt.Sprintf("request id=%q does not match body id=%q",
				fmt.Sprint(rc.id), fmt.Sprint(rec.ID())),
		})
	}
	rec.SetID(rc.id)

	if i := rc.coll.IndexOf(rc.id); i >= 0 {
		rc.coll.ReplaceAt(i, rec)
		return noContentResponse(rc.header)
	}

	rc.coll.Append(rec)
	return dataResponse(http.StatusCreated, rec, rc.header)
}

// handleDelete removes the record at the path id. A miss answers 204
// unless the service is configured with Delete404.
func (s *Service) handleDelete(rc *requestContext) *Response {
	if rc.id == nil {
		return errorFrom(errMissingID(rc.parsed.Collection))
	}

	if i := rc.coll.IndexOf(rc.id); i >= 0 {
		rc.coll.RemoveAt(i)
		return noContentResponse(rc.header)
	}

	if s.cfg.Delete404 {
		return errorFrom(errNotFound(rc.parsed.Collection, rc.id))
	}
	return noContentResponse(rc.header)
}

func (s *Service) generateID(c *memdb.Collection) any {
	if s.cfg.GenID != nil {
		return id.Normalize(s.cfg.GenID(c))
	}
	return c.NextID()
}

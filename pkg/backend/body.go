package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/memapi/memapi/pkg/memdb"
)

// Request body content types produced by encodeBody.
const (
	contentTypeText  = "text/plain; charset=utf-8"
	contentTypeBytes = "application/octet-stream"
	contentTypeForm  = "application/x-www-form-urlencoded; charset=utf-8"
)

// encodeBody renders a request body per the construction rules: strings
// pass through raw, byte slices are taken as binary, and flat maps are
// form-encoded. Any other type is a construction-time error, signaled to
// the caller rather than turned into an error response.
func encodeBody(body any) ([]byte, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return []byte(b), contentTypeText, nil
	case []byte:
		return b, contentTypeBytes, nil
	case url.Values:
		return []byte(b.Encode()), contentTypeForm, nil
	case map[string]string:
		vals := url.Values{}
		for k, v := range b {
			vals.Set(k, v)
		}
		return []byte(vals.Encode()), contentTypeForm, nil
	case map[string]any:
		vals := url.Values{}
		for k, v := range b {
			vals.Set(k, fmt.Sprint(v))
		}
		return []byte(vals.Encode()), contentTypeForm, nil
	default:
		return nil, "", fmt.Errorf("unsupported request body type %T", body)
	}
}

// decodeRecord parses an encoded request body into a record. Form-encoded
// bodies become string-valued records; anything else must be a JSON
// object. An empty body yields an empty record.
func decodeRecord(body []byte, contentType string) (memdb.Record, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return memdb.Record{}, nil
	}

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		vals, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, &BadRequestError{Message: "unable to parse form body: " + err.Error()}
		}
		rec := make(memdb.Record, len(vals))
		for k, vs := range vals {
			if len(vs) > 0 {
				rec[k] = vs[0]
			}
		}
		return rec, nil
	}

	var rec memdb.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, &BadRequestError{Message: "unable to parse request body: " + err.Error()}
	}
	// The data model only admits scalar ids; arrays and objects can never
	// address a record.
	switch rec.ID().(type) {
	case []any, map[string]any:
		return nil, &BadRequestError{Message: "record id must be a string or a number"}
	}
	return rec, nil
}

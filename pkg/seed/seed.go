// Package seed loads database seed snapshots from YAML or JSON files.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/memapi/memapi/pkg/memdb"
)

// Format identifies a seed file encoding.
type Format string

const (
	// FormatYAML parses the seed as a YAML document.
	FormatYAML Format = "yaml"
	// FormatJSON parses the seed as a JSON document.
	FormatJSON Format = "json"
)

// Parse turns raw seed data, a mapping of collection name to record list,
// into a memdb.Factory. The document is validated once up front; the
// returned factory re-decodes it on every invocation so that each snapshot
// is a fully independent deep copy.
func Parse(data []byte, format Format) (memdb.Factory, error) {
	if _, err := decode(data, format); err != nil {
		return nil, err
	}

	return func() map[string][]memdb.Record {
		snap, _ := decode(data, format)
		return snap
	}, nil
}

// LoadFile reads a seed file and builds a factory from it. The format is
// chosen by extension: .json parses as JSON, everything else as YAML
// (which accepts JSON documents too).
func LoadFile(path string) (memdb.Factory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}

	factory, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return factory, nil
}

func decode(data []byte, format Format) (map[string][]memdb.Record, error) {
	var raw map[string][]map[string]any

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	out := make(map[string][]memdb.Record, len(raw))
	for name, recs := range raw {
		rs := make([]memdb.Record, len(recs))
		for i, m := range recs {
			rs[i] = memdb.Record(m)
		}
		out[name] = rs
	}
	return out, nil
}

package backend

import (
	"log/slog"
	"time"

	"github.com/memapi/memapi/pkg/logging"
	"github.com/memapi/memapi/pkg/memdb"
)

// DefaultHost is the origin a service considers its own when none is
// configured.
const DefaultHost = "localhost"

// Config controls optional behavior of a Service. The zero value is valid.
type Config struct {
	// Delay defers every response by this duration to emulate network
	// latency. Zero means immediate delivery.
	Delay time.Duration

	// Delete404 answers 404 instead of the default 204 when a DELETE names
	// an id that does not exist.
	Delete404 bool

	// Host is the origin the service considers its own. Matching ignores
	// any :port on either side. Request URLs naming a different host are
	// treated as a foreign same-shaped API and keep their scheme://host/
	// prefix in resource URLs.
	Host string

	// RootPath is the path prefix stripped from same-origin request URLs
	// before interpretation, e.g. "api" for URLs like /api/app/heroes.
	// Empty means no prefix.
	RootPath string

	// GenID overrides id generation for records created without one. The
	// default takes the collection's next numeric id (max+1).
	GenID func(c *memdb.Collection) any

	// Logger receives operational logs. Defaults to a no-op logger.
	Logger *slog.Logger

	// Observer receives per-operation hooks. Defaults to NoopObserver.
	Observer Observer
}

// withDefaults returns a copy of cfg with unset fields filled in. A nil
// cfg yields the full default configuration.
func (c *Config) withDefaults() *Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.Host == "" {
		out.Host = DefaultHost
	}
	if out.Logger == nil {
		out.Logger = logging.Nop()
	}
	if out.Observer == nil {
		out.Observer = &NoopObserver{}
	}
	return &out
}

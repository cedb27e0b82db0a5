package backend

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ParsedURL is the structural decomposition of one request URL: derived
// per request, never stored.
type ParsedURL struct {
	// Base is the first path segment under the root (e.g. "app").
	Base string
	// Collection is the second segment with any trailing dotted suffix
	// (a format extension like ".json") stripped.
	Collection string
	// RawID is the third segment as it appeared in the URL, empty when the
	// request addresses the whole collection.
	RawID string
	// ResourceURL is the canonical prefix under which the collection's
	// items are addressed, always ending in "/". For foreign-host URLs it
	// keeps the scheme://host/ prefix.
	ResourceURL string
}

// parseURL splits a request URL into {base, collection, optional id}.
// URLs on the configured host, compared with any :port ignored, or with
// no host at all are taken relative to rootPath; URLs naming a foreign
// host are assumed to address a same-shaped API rooted one separator deep
// on that host.
//
// Paths with fewer than two segments cannot name a collection and are
// reported as an error; the dispatcher answers such requests with 404.
func parseURL(raw, host, rootPath string) (ParsedURL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ParsedURL{}, fmt.Errorf("unparseable url %q: %w", raw, err)
	}

	urlRoot := ""
	path := u.Path
	if u.Host != "" && hostOnly(u.Host) != hostOnly(host) {
		// Foreign host: assume its API has the same shape as ours,
		// rooted directly under "/".
		urlRoot = u.Scheme + "://" + u.Host + "/"
		path = strings.TrimPrefix(path, "/")
	} else {
		path = strings.TrimPrefix(path, "/")
		if root := strings.Trim(rootPath, "/"); root != "" {
			if path == root {
				path = ""
			} else {
				path = strings.TrimPrefix(path, root+"/")
			}
		}
	}

	segments := strings.Split(strings.TrimSuffix(path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return ParsedURL{}, fmt.Errorf("url %q: expected {base}/{collection} path", raw)
	}

	base := segments[0]
	collection := strings.SplitN(segments[1], ".", 2)[0]

	rawID := ""
	if len(segments) > 2 {
		rawID = segments[2]
	}

	return ParsedURL{
		Base:        base,
		Collection:  collection,
		RawID:       rawID,
		ResourceURL: urlRoot + base + "/" + collection + "/",
	}, nil
}

// hostOnly drops an optional :port suffix so origin matching ignores the
// listener port.
func hostOnly(h string) string {
	if name, _, err := net.SplitHostPort(h); err == nil {
		return name
	}
	return h
}

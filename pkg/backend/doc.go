// Package backend implements an in-process stand-in for a REST backend.
//
// A Service owns an in-memory database seeded from a factory function and
// answers GET/POST/PUT/DELETE request cycles against it with REST-correct
// status codes, headers, and JSON envelopes ({"data": ...} on success,
// {"error": ...} on failure). Client code can drive it three ways:
//
//   - directly, through Service.Get/Post/Put/Delete
//   - through an ordinary *http.Client via Service.Client, whose transport
//     short-circuits requests into the service without touching the network
//   - over a real listener via Handler
//
// Request URLs are interpreted as /{base}/{collection}[/{id}] relative to
// the configured root path; URLs naming a foreign host are assumed to
// address a same-shaped API on that host. Path ids and record ids are
// normalized so numeric-looking values compare equal regardless of their
// wire representation.
//
// State mutates only through the dispatcher and survives until Reset,
// which restores the seed snapshot. An optional latency simulator defers
// each response to emulate network delay.
package backend

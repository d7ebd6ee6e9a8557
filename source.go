package aegis

import "context"

// Element is one named orbital element as returned by an element source.
// Values stay textual until extraction so that a single malformed element
// does not poison the whole record.
type Element struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ElementRecord is the record shape the extraction code understands: an
// epoch plus short-code keyed elements (a, e, i, om, w, ma). This matches
// the JPL small-body database schema variant keyed by short codes; the
// label-keyed variant is not parsed.
type ElementRecord struct {
	Epoch    string    `json:"epoch"`
	Elements []Element `json:"elements"`
}

// OrbitalElementSource resolves a small-body identifier to its element
// record. Implementations own all retry, backoff and circuit-breaker
// concerns; from here a call either succeeds, fails permanently, or fails
// transiently. A definitive "no such object" must be reported with
// NotFoundError so callers can distinguish it from a transient outage.
// Implementations must be safe for concurrent use.
type OrbitalElementSource interface {
	Fetch(ctx context.Context, identifier string) (ElementRecord, error)
}

// NotFoundError builds the error an OrbitalElementSource returns when an
// identifier definitively does not resolve.
func NotFoundError(identifier string) *Error {
	return errf(KindElementsNotFound, "object %q not found in element source", identifier)
}

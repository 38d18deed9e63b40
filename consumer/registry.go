package consumer

import (
	"github.com/cayleygraph/quad"
)

// Outcome is the result of a single handler invocation.
type Outcome int

const (
	// Deferred leaves the triple in the working set.
	Deferred Outcome = iota
	// Resolved means the triple was translated and consumed.
	Resolved
	// Rejected means the triple is malformed and will not be retried.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Rejected:
		return "rejected"
	}
	return "deferred"
}

// Handler translates triples with a given predicate.
type Handler interface {
	// CanHandleStreaming reports whether the triple can be translated with
	// the facts seen so far. It must never return true for a triple that
	// needs more context.
	CanHandleStreaming(s *Session, t quad.Quad) bool
	// CanHandle reports whether the triple can be translated with all facts
	// of the document available.
	CanHandle(s *Session, t quad.Quad) bool
	// Handle translates the triple.
	Handle(s *Session, t quad.Quad) Outcome
}

// Registry maps predicates to handlers. Handlers registered first are tried first.
type Registry struct {
	handlers map[quad.IRI][]Handler
	fallback []Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[quad.IRI][]Handler)}
}

// Register adds a handler for a predicate.
func (r *Registry) Register(pred quad.IRI, h Handler) {
	r.handlers[pred] = append(r.handlers[pred], h)
}

// RegisterFallback adds a handler tried for predicates without a registration.
func (r *Registry) RegisterFallback(h Handler) {
	r.fallback = append(r.fallback, h)
}

// Has reports whether the predicate has its own handlers.
func (r *Registry) Has(pred quad.Value) bool {
	iri, ok := pred.(quad.IRI)
	if !ok {
		return false
	}
	return len(r.handlers[iri]) != 0
}

// Handlers returns the handlers to try for a predicate in order.
func (r *Registry) Handlers(pred quad.Value) []Handler {
	iri, ok := pred.(quad.IRI)
	if !ok {
		return nil
	}
	if hs := r.handlers[iri]; len(hs) != 0 {
		return hs
	}
	return r.fallback
}

// Predicates returns the number of predicates with handlers.
func (r *Registry) Predicates() int {
	return len(r.handlers)
}

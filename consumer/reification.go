package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/inference"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
)

// reificationHandler attaches the annotations of an owl:Axiom node to the
// axiom translated from the triple the node describes:
//
//	_:x rdf:type owl:Axiom
//	_:x owl:annotatedSource s
//	_:x owl:annotatedProperty p
//	_:x owl:annotatedTarget o
//	_:x rdfs:comment "..."
//
// If the described triple is still waiting, the annotations are registered as
// pending for it and the triple is translated right away. If it was already
// translated, its axioms are annotated in place.
type reificationHandler struct{}

var _ Handler = reificationHandler{}

// target returns the described triple.
func (reificationHandler) target(tr *translation, node quad.Value) (quad.Quad, bool) {
	src, ok := tr.one(node, vowl.AnnotatedSource)
	if !ok {
		return quad.Quad{}, false
	}
	p, ok := tr.one(node, vowl.AnnotatedProperty)
	if !ok {
		return quad.Quad{}, false
	}
	if _, ok = p.(quad.IRI); !ok {
		return quad.Quad{}, false
	}
	o, ok := tr.one(node, vowl.AnnotatedTarget)
	if !ok {
		return quad.Quad{}, false
	}
	return quad.Quad{Subject: src, Predicate: p, Object: o}, true
}

func (reificationHandler) CanHandleStreaming(*Session, quad.Quad) bool {
	return false
}

func (h reificationHandler) CanHandle(s *Session, t quad.Quad) bool {
	if s.types.Is(t.Subject, inference.AnnotationNode) {
		return false
	}
	tr := s.newTranslation()
	target, ok := h.target(tr, t.Subject)
	if !ok {
		return false
	}
	if _, ok = tr.nodeAnnotations(t.Subject); !ok {
		return false
	}
	if s.store.IsConsumed(target) {
		return len(s.bySource[tripleKey(target)]) != 0
	}
	return s.store.IsWaiting(target)
}

func (h reificationHandler) Handle(s *Session, t quad.Quad) Outcome {
	if s.store.IsConsumed(t) {
		return Resolved
	}
	tr := s.newTranslation()
	target, ok := h.target(tr, t.Subject)
	if !ok {
		return Deferred
	}
	anns, ok := tr.nodeAnnotations(t.Subject)
	if !ok {
		return Deferred
	}
	tr.useTypes(t.Subject, vowl.Axiom)
	switch {
	case s.store.IsConsumed(target):
		if !s.reannotate(target, anns) {
			return Deferred
		}
	case s.store.IsWaiting(target):
		s.anns.AddFor(target.Subject, target.Predicate, target.Object, anns...)
		out, ok := s.dispatchFull(target)
		// drop whatever the target did not take
		s.anns.Take(target.Subject, target.Predicate, target.Object)
		if !ok || out != Resolved {
			return Deferred
		}
	default:
		return Deferred
	}
	s.store.Consume(t)
	s.commit(tr)
	return Resolved
}

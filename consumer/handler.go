package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/nodeid"
)

// axiomHandler translates a triple with a builder. Streaming is allowed only
// in lax mode and only when both ends of the triple are named.
type axiomHandler struct {
	name   string
	stream bool
	build  builder
}

var _ Handler = (*axiomHandler)(nil)

func (h *axiomHandler) CanHandleStreaming(s *Session, t quad.Quad) bool {
	if !h.stream || s.cfg.Strict {
		return false
	}
	if nodeid.IsAnonymous(t.Subject) || nodeid.IsAnonymous(t.Object) {
		return false
	}
	return s.canBuild(t, h.build)
}

func (h *axiomHandler) CanHandle(s *Session, t quad.Quad) bool {
	return s.canBuild(t, h.build)
}

func (h *axiomHandler) Handle(s *Session, t quad.Quad) Outcome {
	out := s.apply(t, h.build)
	if clog.V(3) {
		clog.Infof("%s: %v -> %v", h.name, t, out)
	}
	return out
}

// markerHandler records what a structural triple says about its subject. It
// never translates the triple itself: the owner of the structure consumes it.
type markerHandler struct{}

var _ Handler = markerHandler{}

func (markerHandler) CanHandleStreaming(s *Session, t quad.Quad) bool {
	s.types.ProcessQuad(t)
	return false
}

func (markerHandler) CanHandle(s *Session, t quad.Quad) bool {
	s.types.ProcessQuad(t)
	return false
}

func (markerHandler) Handle(*Session, quad.Quad) Outcome {
	return Deferred
}

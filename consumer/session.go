// Package consumer translates a stream of RDF triples into OWL axioms.
//
// Triples are pushed into a Session one at a time. Each triple is offered to
// the handlers registered for its predicate; a handler that can translate it
// with the facts seen so far does so immediately, otherwise the triple is
// kept in the working set. When the stream ends, the working set is swept
// repeatedly with the full applicability checks until a sweep makes no
// progress.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/inference"
	"github.com/cayleygraph/owlrdf/nodeid"
	"github.com/cayleygraph/owlrdf/owl"
)

// State is a session state.
type State int

const (
	Streaming State = iota
	Sweeping
	Done
)

func (s State) String() string {
	switch s {
	case Streaming:
		return "streaming"
	case Sweeping:
		return "sweeping"
	}
	return "done"
}

// BlankNodePolicy selects how document blank node labels map to node identities.
type BlankNodePolicy int

const (
	// Preserve keeps the document label.
	Preserve BlankNodePolicy = iota
	// Shared maps labels with the rdf:nodeID scheme.
	Shared
	// Fresh mints a new identity for every distinct label of the session.
	Fresh
)

var blankNodePolicies = map[string]BlankNodePolicy{
	"preserve": Preserve,
	"shared":   Shared,
	"fresh":    Fresh,
}

// ParseBlankNodePolicy parses a policy name.
func ParseBlankNodePolicy(s string) (BlankNodePolicy, error) {
	if s == "" {
		return Preserve, nil
	}
	p, ok := blankNodePolicies[s]
	if !ok {
		return 0, fmt.Errorf("unknown blank node policy: %q", s)
	}
	return p, nil
}

func (p BlankNodePolicy) String() string {
	for name, v := range blankNodePolicies {
		if v == p {
			return name
		}
	}
	return "unknown"
}

// Config configures a session. The zero value is a lax session with the
// default handlers.
type Config struct {
	// Strict rejects constructs that are not fully typed.
	Strict bool
	// MaxSweeps limits the number of sweeps. Zero means no limit.
	MaxSweeps int
	// BlankNodes selects how blank node labels are mapped.
	BlankNodes BlankNodePolicy
	// IDs mints identities for the Fresh policy. Defaults to nodeid.Default.
	IDs *nodeid.Generator
	// Factory builds axioms. Defaults to owl.NewFactory.
	Factory owl.DataFactory
	// Registry holds the handlers. Defaults to DefaultRegistry.
	Registry *Registry
	// ExpectedTriples sizes the working set bloom filter.
	ExpectedTriples uint
}

// Stats counts what a session did.
type Stats struct {
	Triples  int `json:"triples"`
	Streamed int `json:"streamed"`
	Deferred int `json:"deferred"`
	Swept    int `json:"swept"`
	Sweeps   int `json:"sweeps"`
}

// Result is the outcome of a session.
type Result struct {
	Axioms   []*owl.Axiom
	Ontology owl.Ontology
	// Residue lists triples left untranslated in strict mode.
	Residue []Unresolved
	// Dropped counts triples left untranslated in lax mode.
	Dropped int
	Stats   Stats
}

// Err joins all residue entries into one error, or returns nil.
func (r *Result) Err() error {
	if len(r.Residue) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Residue))
	for _, u := range r.Residue {
		errs = append(errs, u)
	}
	return errors.Join(errs...)
}

// Session translates one document. It is not safe for concurrent use.
type Session struct {
	cfg     Config
	state   State
	store   *Store
	types   *inference.Store
	anns    *Annotations
	reg     *Registry
	factory owl.DataFactory
	ids     *nodeid.Generator
	labels  map[string]quad.BNode

	axioms   []*owl.Axiom
	byKey    map[string]int
	bySource map[string][]int
	ontology owl.Ontology
	rejected map[string]error

	classes map[string]owl.ClassExpression
	ranges  map[string]owl.DataRange

	stats Stats
}

// NewSession creates a session ready to stream triples.
func NewSession(cfg Config) *Session {
	if cfg.IDs == nil {
		cfg.IDs = nodeid.Default
	}
	if cfg.Factory == nil {
		cfg.Factory = owl.NewFactory()
	}
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}
	return &Session{
		cfg:      cfg,
		store:    NewStore(cfg.ExpectedTriples),
		types:    inference.NewStore(cfg.Strict),
		anns:     NewAnnotations(),
		reg:      cfg.Registry,
		factory:  cfg.Factory,
		ids:      cfg.IDs,
		labels:   make(map[string]quad.BNode),
		byKey:    make(map[string]int),
		bySource: make(map[string][]int),
		rejected: make(map[string]error),
		classes:  make(map[string]owl.ClassExpression),
		ranges:   make(map[string]owl.DataRange),
	}
}

// Strict reports whether the session runs in strict mode.
func (s *Session) Strict() bool { return s.cfg.Strict }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Store returns the working set.
func (s *Session) Store() *Store { return s.store }

// Types returns the type inference map.
func (s *Session) Types() *inference.Store { return s.types }

// Annotations returns the pending annotation accumulator.
func (s *Session) Annotations() *Annotations { return s.anns }

// Axioms returns the axioms emitted so far.
func (s *Session) Axioms() []*owl.Axiom { return s.axioms }

// Stats returns the counters of the session so far.
func (s *Session) Stats() Stats { return s.stats }

func (s *Session) blankNode(v quad.Value) quad.Value {
	b, ok := v.(quad.BNode)
	if !ok {
		return v
	}
	switch s.cfg.BlankNodes {
	case Shared:
		return nodeid.Shared(string(b)).BNode()
	case Fresh:
		if n, ok := s.labels[string(b)]; ok {
			return n
		}
		n := s.ids.Next().BNode()
		s.labels[string(b)] = n
		return n
	}
	return nodeid.Canonical(string(b)).BNode()
}

func (s *Session) normalize(q quad.Quad) quad.Quad {
	return quad.Quad{
		Subject:   s.blankNode(q.Subject),
		Predicate: q.Predicate,
		Object:    s.blankNode(q.Object),
	}
}

// HandleTriple pushes the next triple of the document.
func (s *Session) HandleTriple(q quad.Quad) error {
	switch s.state {
	case Done:
		return ErrDone
	case Sweeping:
		return ErrNotStreaming
	}
	if !q.IsValid() {
		return fmt.Errorf("invalid triple: %v", q)
	}
	q = s.normalize(q)
	s.stats.Triples++
	s.types.ProcessQuad(q)
	if s.store.Known(q) {
		return nil
	}
	if out, ok := s.dispatchStreaming(q); ok && out == Resolved {
		s.stats.Streamed++
		mTriplesStreamed.Inc()
		return nil
	}
	if s.store.Add(q) {
		s.stats.Deferred++
		mTriplesDeferred.Inc()
	}
	return nil
}

func (s *Session) dispatchStreaming(t quad.Quad) (Outcome, bool) {
	if s.store.IsConsumed(t) {
		return Deferred, false
	}
	for _, h := range s.reg.Handlers(t.Predicate) {
		if h.CanHandleStreaming(s, t) {
			return h.Handle(s, t), true
		}
	}
	return Deferred, false
}

func (s *Session) dispatchFull(t quad.Quad) (Outcome, bool) {
	if !s.store.IsWaiting(t) {
		return Deferred, false
	}
	if _, ok := s.rejected[tripleKey(t)]; ok {
		return Rejected, false
	}
	for _, h := range s.reg.Handlers(t.Predicate) {
		if h.CanHandle(s, t) {
			return h.Handle(s, t), true
		}
	}
	return Deferred, false
}

// EndModel ends the stream, sweeps the working set to a fixpoint and returns
// the result. If ctx is cancelled the partial result is returned with the
// context error.
func (s *Session) EndModel(ctx context.Context) (*Result, error) {
	if s.state == Done {
		return nil, ErrDone
	}
	s.state = Sweeping
	for {
		if s.cfg.MaxSweeps > 0 && s.stats.Sweeps >= s.cfg.MaxSweeps {
			clog.Warningf("sweep limit of %d reached with %d triples left", s.cfg.MaxSweeps, s.store.Waiting())
			break
		}
		n, err := s.sweep(ctx)
		if err != nil {
			return s.finish(), err
		}
		if n == 0 {
			break
		}
	}
	return s.finish(), nil
}

func (s *Session) sweep(ctx context.Context) (int, error) {
	defer prometheus.NewTimer(mSweepSeconds).ObserveDuration()
	s.stats.Sweeps++
	mSweeps.Inc()
	resolved := 0
	for _, t := range s.store.Remaining() {
		if err := ctx.Err(); err != nil {
			return resolved, err
		}
		if out, ok := s.dispatchFull(t); ok && out == Resolved {
			resolved++
		}
	}
	s.stats.Swept += resolved
	mTriplesSwept.Add(float64(resolved))
	if clog.V(2) {
		clog.Infof("sweep %d: resolved %d, %d left", s.stats.Sweeps, resolved, s.store.Waiting())
	}
	return resolved, nil
}

func (s *Session) finish() *Result {
	s.state = Done
	res := &Result{
		Axioms:   s.axioms,
		Ontology: s.ontology,
		Stats:    s.stats,
	}
	for _, t := range s.store.Remaining() {
		if !s.cfg.Strict {
			res.Dropped++
			continue
		}
		u := Unresolved{Triple: t, Reason: ReasonUnresolvable}
		if err, ok := s.rejected[tripleKey(t)]; ok {
			u.Reason, u.Err = ReasonRejected, err
		} else if !s.claimable(t) {
			u.Reason = ReasonNoHandler
		}
		res.Residue = append(res.Residue, u)
		mResidue.WithLabelValues(u.Reason.String()).Inc()
	}
	if res.Dropped != 0 {
		mResidue.WithLabelValues("dropped").Add(float64(res.Dropped))
	}
	if n := len(res.Residue); n != 0 {
		clog.Warningf("%d triples left untranslated", n)
	}
	return res
}

// claimable reports whether any handler applies to the triple's predicate.
func (s *Session) claimable(t quad.Quad) bool {
	return s.reg.Has(t.Predicate) || s.types.Is(t.Predicate, inference.Property)
}

// Translate reads all triples from r and translates them.
func Translate(ctx context.Context, r quad.Reader, cfg Config) (*Result, error) {
	s := NewSession(cfg)
	for {
		q, err := r.ReadQuad()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read triple: %w", err)
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if err = s.HandleTriple(q); err != nil {
			return nil, err
		}
	}
	return s.EndModel(ctx)
}

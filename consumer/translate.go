package consumer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/inference"
	"github.com/cayleygraph/owlrdf/nodeid"
	"github.com/cayleygraph/owlrdf/owl"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdf"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

// builder translates a triple into axioms. It reports false if the triple
// cannot be translated with the facts known so far.
type builder func(tr *translation, t quad.Quad) ([]*owl.Axiom, bool)

// translation resolves nodes into expressions without changing the session.
// The triples it reads and the effects it schedules are applied by commit.
type translation struct {
	s         *Session
	streaming bool

	used     []quad.Quad
	after    []func()
	classes  map[string]owl.ClassExpression
	ranges   map[string]owl.DataRange
	visiting map[string]struct{}
	err      error
}

func (s *Session) newTranslation() *translation {
	return &translation{
		s:         s,
		streaming: s.state == Streaming,
		classes:   make(map[string]owl.ClassExpression),
		ranges:    make(map[string]owl.DataRange),
		visiting:  make(map[string]struct{}),
	}
}

func (tr *translation) use(qs ...quad.Quad) {
	tr.used = append(tr.used, qs...)
}

// then schedules an effect for commit.
func (tr *translation) then(fn func()) {
	tr.after = append(tr.after, fn)
}

func (tr *translation) reject(format string, args ...interface{}) {
	if tr.err == nil {
		tr.err = fmt.Errorf(format, args...)
	}
}

func (tr *translation) axiom(t owl.AxiomType, ops ...owl.Object) *owl.Axiom {
	return tr.s.factory.Axiom(t, ops, nil)
}

// one returns the object of the first (s, p, _) triple and marks it as used.
func (tr *translation) one(s quad.Value, p string) (quad.Value, bool) {
	q, ok := tr.s.store.One(s, quad.IRI(p))
	if !ok {
		return nil, false
	}
	tr.use(q)
	return q.Object, true
}

func (tr *translation) has(s quad.Value, p string) bool {
	_, ok := tr.s.store.One(s, quad.IRI(p))
	return ok
}

// useTypes marks rdf:type triples of s with any of the given types as used.
func (tr *translation) useTypes(s quad.Value, types ...string) {
	for _, q := range tr.s.store.Find(s, quad.IRI(rdf.Type)) {
		for _, typ := range types {
			if q.Object == quad.IRI(typ) {
				tr.use(q)
			}
		}
	}
}

// canBuild reports whether b can translate t. A rejected triple counts as
// handled, so that the rejection is recorded by Handle.
func (s *Session) canBuild(t quad.Quad, b builder) bool {
	tr := s.newTranslation()
	_, ok := b(tr, t)
	return ok || tr.err != nil
}

// apply translates t with b and commits the result. The triple is consumed
// at most once: a second call emits nothing.
func (s *Session) apply(t quad.Quad, b builder) Outcome {
	tr := s.newTranslation()
	axioms, ok := b(tr, t)
	if tr.err != nil {
		s.rejected[tripleKey(t)] = tr.err
		return Rejected
	}
	if !ok {
		return Deferred
	}
	if !s.store.Consume(t) {
		return Resolved
	}
	s.commit(tr)
	if len(axioms) != 0 {
		if anns := s.anns.Take(t.Subject, t.Predicate, t.Object); len(anns) != 0 {
			for i, ax := range axioms {
				axioms[i] = s.factory.Annotate(ax, anns)
			}
		}
	}
	for _, ax := range axioms {
		s.emit(t, ax)
	}
	return Resolved
}

func (s *Session) commit(tr *translation) {
	for _, q := range tr.used {
		s.store.Consume(q)
	}
	for k, c := range tr.classes {
		s.classes[k] = c
	}
	for k, r := range tr.ranges {
		s.ranges[k] = r
	}
	for _, fn := range tr.after {
		fn()
	}
}

// emit records an axiom translated from src. Equal axioms are merged.
func (s *Session) emit(src quad.Quad, ax *owl.Axiom) {
	k := ax.Key()
	i, ok := s.byKey[k]
	if ok {
		if len(ax.Annotations) != 0 {
			s.axioms[i] = s.factory.Annotate(s.axioms[i], ax.Annotations)
		}
	} else {
		i = len(s.axioms)
		s.byKey[k] = i
		s.axioms = append(s.axioms, ax)
		mAxioms.WithLabelValues(ax.Type.String()).Inc()
	}
	sk := tripleKey(src)
	s.bySource[sk] = append(s.bySource[sk], i)
}

// reannotate adds annotations to the axioms already translated from src.
func (s *Session) reannotate(src quad.Quad, anns []owl.Annotation) bool {
	idx := s.bySource[tripleKey(src)]
	for _, i := range idx {
		s.axioms[i] = s.factory.Annotate(s.axioms[i], anns)
	}
	return len(idx) != 0
}

// bookkeeping lists the kinds of nodes whose triples are translated by their owner.
const bookkeeping = inference.Restriction | inference.List | inference.AxiomNode |
	inference.AnnotationNode | inference.DisjointClassesNode | inference.DisjointPropertiesNode |
	inference.DifferentNode | inference.NegativeAssertionNode

func (s *Session) isBookkeeping(v quad.Value) bool {
	return s.types.Is(v, bookkeeping)
}

func (tr *translation) lax() bool {
	return !tr.s.cfg.Strict
}

// guess reports whether lax heuristics may be used for unknown resources.
// While streaming, unknown kinds are never guessed.
func (tr *translation) guess() bool {
	return !tr.s.cfg.Strict && !tr.streaming
}

// isNamedClass reports whether a named resource can be used as a class.
func (tr *translation) isNamedClass(v quad.IRI) bool {
	if tr.s.types.IsClass(v) {
		return true
	}
	if tr.s.cfg.Strict {
		return false
	}
	return !tr.s.types.IsDatatype(v) && !tr.s.types.Is(v, inference.Property|inference.Ontology)
}

func isNamed(v quad.Value) (quad.IRI, bool) {
	iri, ok := v.(quad.IRI)
	if !ok || nodeid.IsAnonymousReference(string(iri)) {
		return "", false
	}
	return iri, true
}

// classExpr resolves v as a class expression.
func (tr *translation) classExpr(v quad.Value) (owl.ClassExpression, bool) {
	if iri, ok := isNamed(v); ok {
		if tr.isNamedClass(iri) {
			return owl.Class(iri), true
		}
		return nil, false
	}
	if !nodeid.IsAnonymous(v) {
		return nil, false
	}
	k := v.String()
	if c, ok := tr.s.classes[k]; ok {
		return c, true
	}
	if c, ok := tr.classes[k]; ok {
		return c, true
	}
	if _, ok := tr.visiting[k]; ok {
		return nil, false
	}
	kinds := tr.s.types.Kinds(v)
	if kinds.Has(inference.Datatype) {
		return nil, false
	}
	if tr.s.cfg.Strict && !kinds.Has(inference.Class|inference.Restriction) {
		return nil, false
	}
	tr.visiting[k] = struct{}{}
	defer delete(tr.visiting, k)

	var (
		c  owl.ClassExpression
		ok bool
	)
	switch {
	case tr.has(v, vowl.OnProperty):
		c, ok = tr.restriction(v)
	case tr.has(v, vowl.IntersectionOf):
		c, ok = tr.booleanClass(v, vowl.IntersectionOf)
	case tr.has(v, vowl.UnionOf):
		c, ok = tr.booleanClass(v, vowl.UnionOf)
	case tr.has(v, vowl.ComplementOf):
		c, ok = tr.booleanClass(v, vowl.ComplementOf)
	case tr.has(v, vowl.OneOf):
		c, ok = tr.booleanClass(v, vowl.OneOf)
	}
	if !ok {
		return nil, false
	}
	tr.useTypes(v, vowl.Class, vowl.Restriction, rdfs.Class)
	tr.classes[k] = c
	return c, true
}

// booleanClass translates the boolean construct (v pred _) into a class expression.
func (tr *translation) booleanClass(v quad.Value, pred string) (owl.ClassExpression, bool) {
	obj, ok := tr.one(v, pred)
	if !ok {
		return nil, false
	}
	switch pred {
	case vowl.ComplementOf:
		c, ok := tr.classExpr(obj)
		if !ok {
			return nil, false
		}
		return owl.ObjectComplementOf{Operand: c}, true
	case vowl.OneOf:
		items, ok := tr.list(obj)
		if !ok {
			return nil, false
		}
		out := make(owl.ObjectOneOf, 0, len(items))
		for _, it := range items {
			ind, ok := tr.individual(it)
			if !ok {
				return nil, false
			}
			out = append(out, ind)
		}
		return out, true
	}
	items, ok := tr.list(obj)
	if !ok {
		return nil, false
	}
	ops := make([]owl.ClassExpression, 0, len(items))
	for _, it := range items {
		c, ok := tr.classExpr(it)
		if !ok {
			return nil, false
		}
		ops = append(ops, c)
	}
	if pred == vowl.UnionOf {
		return owl.ObjectUnionOf(ops), true
	}
	return owl.ObjectIntersectionOf(ops), true
}

var cardinalities = []struct {
	pred      string
	kind      owl.RestrictionKind
	qualified bool
}{
	{vowl.Cardinality, owl.ExactCardinality, false},
	{vowl.MinCardinality, owl.MinCardinality, false},
	{vowl.MaxCardinality, owl.MaxCardinality, false},
	{vowl.QualifiedCardinality, owl.ExactCardinality, true},
	{vowl.MinQualifiedCardinality, owl.MinCardinality, true},
	{vowl.MaxQualifiedCardinality, owl.MaxCardinality, true},
}

// isDataRestriction decides whether the restriction v on property p is a
// data restriction.
func (tr *translation) isDataRestriction(v, p quad.Value) (data, ok bool) {
	switch {
	case tr.s.types.Is(p, inference.DataProperty):
		return true, true
	case tr.s.types.Is(p, inference.ObjectProperty):
		return false, true
	case nodeid.IsAnonymous(p):
		// only an inverse object property can be anonymous
		return false, true
	case !tr.guess():
		return false, false
	}
	if tr.has(v, vowl.OnDataRange) {
		return true, true
	}
	for _, pred := range []string{vowl.SomeValuesFrom, vowl.AllValuesFrom} {
		if q, ok := tr.s.store.One(v, quad.IRI(pred)); ok {
			return tr.s.types.IsDatatype(q.Object), true
		}
	}
	if q, ok := tr.s.store.One(v, quad.IRI(vowl.HasValue)); ok {
		_, lit := owl.NewLiteral(q.Object)
		return lit, true
	}
	return false, true
}

func (tr *translation) cardinality(obj quad.Value) (int, bool) {
	lit, ok := owl.NewLiteral(obj)
	if !ok {
		tr.reject("cardinality is not a literal: %v", obj)
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(lit.Lexical()))
	if err != nil || n < 0 {
		tr.reject("cardinality is not a non-negative integer: %v", obj)
		return 0, false
	}
	return n, true
}

func (tr *translation) restriction(v quad.Value) (owl.ClassExpression, bool) {
	p, ok := tr.one(v, vowl.OnProperty)
	if !ok {
		return nil, false
	}
	data, ok := tr.isDataRestriction(v, p)
	if !ok {
		return nil, false
	}
	if data {
		return tr.dataRestriction(v, p)
	}
	prop, ok := tr.objectProperty(p)
	if !ok {
		return nil, false
	}
	r := &owl.ObjectRestriction{Property: prop}
	switch {
	case tr.has(v, vowl.SomeValuesFrom), tr.has(v, vowl.AllValuesFrom):
		pred, kind := vowl.SomeValuesFrom, owl.SomeValuesFrom
		if !tr.has(v, pred) {
			pred, kind = vowl.AllValuesFrom, owl.AllValuesFrom
		}
		obj, _ := tr.one(v, pred)
		if r.Filler, ok = tr.classExpr(obj); !ok {
			return nil, false
		}
		r.Kind = kind
		return r, true
	case tr.has(v, vowl.HasValue):
		obj, _ := tr.one(v, vowl.HasValue)
		if r.Value, ok = tr.individual(obj); !ok {
			return nil, false
		}
		r.Kind = owl.HasValue
		return r, true
	case tr.has(v, vowl.HasSelf):
		tr.one(v, vowl.HasSelf)
		r.Kind = owl.HasSelf
		return r, true
	}
	for _, c := range cardinalities {
		obj, ok := tr.one(v, c.pred)
		if !ok {
			continue
		}
		if r.Cardinality, ok = tr.cardinality(obj); !ok {
			return nil, false
		}
		r.Kind = c.kind
		if c.qualified {
			if on, ok := tr.one(v, vowl.OnClass); ok {
				if r.Filler, ok = tr.classExpr(on); !ok {
					return nil, false
				}
			}
		}
		return r, true
	}
	return nil, false
}

func (tr *translation) dataRestriction(v, p quad.Value) (owl.ClassExpression, bool) {
	prop, ok := tr.dataProperty(p)
	if !ok {
		return nil, false
	}
	r := &owl.DataRestriction{Property: prop}
	switch {
	case tr.has(v, vowl.SomeValuesFrom), tr.has(v, vowl.AllValuesFrom):
		pred, kind := vowl.SomeValuesFrom, owl.SomeValuesFrom
		if !tr.has(v, pred) {
			pred, kind = vowl.AllValuesFrom, owl.AllValuesFrom
		}
		obj, _ := tr.one(v, pred)
		if r.Range, ok = tr.dataRange(obj); !ok {
			return nil, false
		}
		r.Kind = kind
		return r, true
	case tr.has(v, vowl.HasValue):
		obj, _ := tr.one(v, vowl.HasValue)
		if r.Value, ok = owl.NewLiteral(obj); !ok {
			return nil, false
		}
		r.Kind = owl.HasValue
		return r, true
	}
	for _, c := range cardinalities {
		obj, ok := tr.one(v, c.pred)
		if !ok {
			continue
		}
		if r.Cardinality, ok = tr.cardinality(obj); !ok {
			return nil, false
		}
		r.Kind = c.kind
		if c.qualified {
			if on, ok := tr.one(v, vowl.OnDataRange); ok {
				if r.Range, ok = tr.dataRange(on); !ok {
					return nil, false
				}
			}
		}
		return r, true
	}
	return nil, false
}

// dataRange resolves v as a data range.
func (tr *translation) dataRange(v quad.Value) (owl.DataRange, bool) {
	if iri, ok := isNamed(v); ok {
		if tr.s.types.IsDatatype(iri) {
			return owl.Datatype(iri), true
		}
		if tr.guess() && !tr.s.types.Is(iri, inference.Class|inference.Property) {
			return owl.Datatype(iri), true
		}
		return nil, false
	}
	if !nodeid.IsAnonymous(v) {
		return nil, false
	}
	k := v.String()
	if r, ok := tr.s.ranges[k]; ok {
		return r, true
	}
	if r, ok := tr.ranges[k]; ok {
		return r, true
	}
	if _, ok := tr.visiting[k]; ok {
		return nil, false
	}
	kinds := tr.s.types.Kinds(v)
	if kinds.Has(inference.Class | inference.Restriction) {
		return nil, false
	}
	if tr.s.cfg.Strict && !kinds.Has(inference.Datatype) {
		return nil, false
	}
	tr.visiting[k] = struct{}{}
	defer delete(tr.visiting, k)

	var (
		r  owl.DataRange
		ok bool
	)
	switch {
	case tr.has(v, vowl.OnDatatype):
		r, ok = tr.datatypeRestriction(v)
	case tr.has(v, vowl.IntersectionOf):
		r, ok = tr.booleanRange(v, vowl.IntersectionOf)
	case tr.has(v, vowl.UnionOf):
		r, ok = tr.booleanRange(v, vowl.UnionOf)
	case tr.has(v, vowl.DatatypeComplementOf):
		r, ok = tr.booleanRange(v, vowl.DatatypeComplementOf)
	case tr.has(v, vowl.OneOf):
		r, ok = tr.booleanRange(v, vowl.OneOf)
	}
	if !ok {
		return nil, false
	}
	tr.useTypes(v, rdfs.Datatype)
	tr.ranges[k] = r
	return r, true
}

// booleanRange translates the boolean construct (v pred _) into a data range.
func (tr *translation) booleanRange(v quad.Value, pred string) (owl.DataRange, bool) {
	obj, ok := tr.one(v, pred)
	if !ok {
		return nil, false
	}
	switch pred {
	case vowl.DatatypeComplementOf:
		r, ok := tr.dataRange(obj)
		if !ok {
			return nil, false
		}
		return owl.DataComplementOf{Operand: r}, true
	case vowl.OneOf:
		items, ok := tr.list(obj)
		if !ok {
			return nil, false
		}
		out := make(owl.DataOneOf, 0, len(items))
		for _, it := range items {
			lit, ok := owl.NewLiteral(it)
			if !ok {
				return nil, false
			}
			out = append(out, lit)
		}
		return out, true
	}
	items, ok := tr.list(obj)
	if !ok {
		return nil, false
	}
	ops := make([]owl.DataRange, 0, len(items))
	for _, it := range items {
		r, ok := tr.dataRange(it)
		if !ok {
			return nil, false
		}
		ops = append(ops, r)
	}
	if pred == vowl.UnionOf {
		return owl.DataUnionOf(ops), true
	}
	return owl.DataIntersectionOf(ops), true
}

func (tr *translation) datatypeRestriction(v quad.Value) (owl.DataRange, bool) {
	on, _ := tr.one(v, vowl.OnDatatype)
	dt, ok := isNamed(on)
	if !ok {
		return nil, false
	}
	list, ok := tr.one(v, vowl.WithRestrictions)
	if !ok {
		return nil, false
	}
	items, ok := tr.list(list)
	if !ok {
		return nil, false
	}
	r := &owl.DatatypeRestriction{Datatype: owl.Datatype(dt)}
	for _, it := range items {
		var found bool
		for _, q := range tr.s.store.BySubject(it) {
			p, ok := q.Predicate.(quad.IRI)
			if !ok || !vowl.IsFacet(string(p)) {
				continue
			}
			lit, ok := owl.NewLiteral(q.Object)
			if !ok {
				tr.reject("facet value is not a literal: %v", q.Object)
				return nil, false
			}
			tr.use(q)
			r.Facets = append(r.Facets, owl.FacetRestriction{Facet: owl.IRI(p), Value: lit})
			found = true
		}
		if !found {
			return nil, false
		}
	}
	return r, true
}

// list walks an rdf:first/rdf:rest chain ending in rdf:nil.
func (tr *translation) list(v quad.Value) ([]quad.Value, bool) {
	var (
		out  []quad.Value
		seen = make(map[string]struct{})
	)
	for v != quad.IRI(rdf.Nil) {
		k := quad.ToString(v)
		if _, ok := seen[k]; ok {
			return nil, false
		}
		seen[k] = struct{}{}
		first, ok := tr.one(v, rdf.First)
		if !ok {
			return nil, false
		}
		rest, ok := tr.one(v, rdf.Rest)
		if !ok {
			return nil, false
		}
		tr.useTypes(v, rdf.List)
		out = append(out, first)
		v = rest
	}
	return out, true
}

// individual resolves v as a named or anonymous individual.
func (tr *translation) individual(v quad.Value) (owl.Individual, bool) {
	if iri, ok := isNamed(v); ok {
		if tr.s.cfg.Strict && tr.s.types.Is(iri, inference.Property|inference.Datatype) &&
			!tr.s.types.Is(iri, inference.Individual) {
			return nil, false
		}
		return owl.NamedIndividual(iri), true
	}
	if !nodeid.IsAnonymous(v) || tr.s.isBookkeeping(v) {
		return nil, false
	}
	if tr.s.types.Is(v, inference.Class|inference.Datatype) {
		return nil, false
	}
	return owl.AnonymousIndividual{ID: anonymousID(v)}, true
}

func anonymousID(v quad.Value) nodeid.NodeID {
	switch v := v.(type) {
	case quad.BNode:
		return nodeid.Canonical(string(v))
	case quad.IRI:
		return nodeid.Canonical(string(v))
	}
	return nodeid.NodeID{}
}

// propertyKind returns the single property kind known for v. If nothing is
// known, hint is returned when guessing is allowed.
func (tr *translation) propertyKind(v quad.Value, hint inference.Kind) inference.Kind {
	kinds := tr.s.types.Kinds(v)
	switch {
	case kinds.Has(inference.ObjectProperty):
		return inference.ObjectProperty
	case kinds.Has(inference.DataProperty):
		return inference.DataProperty
	case kinds.Has(inference.AnnotationProperty):
		return inference.AnnotationProperty
	}
	if nodeid.IsAnonymous(v) && tr.has(v, vowl.InverseOf) {
		return inference.ObjectProperty
	}
	if tr.guess() {
		return hint
	}
	return inference.Unknown
}

// objectProperty resolves v as an object property expression.
func (tr *translation) objectProperty(v quad.Value) (owl.ObjectPropertyExpression, bool) {
	if iri, ok := isNamed(v); ok {
		if tr.propertyKind(iri, inference.ObjectProperty) != inference.ObjectProperty {
			return nil, false
		}
		return owl.ObjectProperty(iri), true
	}
	if !nodeid.IsAnonymous(v) {
		return nil, false
	}
	inv, ok := tr.one(v, vowl.InverseOf)
	if !ok {
		return nil, false
	}
	iri, ok := isNamed(inv)
	if !ok || tr.propertyKind(iri, inference.ObjectProperty) != inference.ObjectProperty {
		return nil, false
	}
	return owl.ObjectInverseOf{Property: owl.ObjectProperty(iri)}, true
}

// dataProperty resolves v as a data property.
func (tr *translation) dataProperty(v quad.Value) (owl.DataProperty, bool) {
	iri, ok := isNamed(v)
	if !ok || tr.propertyKind(iri, inference.DataProperty) != inference.DataProperty {
		return "", false
	}
	return owl.DataProperty(iri), true
}

// annotationValue converts an object into an annotation value.
func annotationValue(v quad.Value) (owl.Object, bool) {
	if lit, ok := owl.NewLiteral(v); ok {
		return lit, true
	}
	if iri, ok := isNamed(v); ok {
		return owl.IRI(iri), true
	}
	if nodeid.IsAnonymous(v) {
		return owl.AnonymousIndividual{ID: anonymousID(v)}, true
	}
	return nil, false
}

// annotationSubject converts a subject into an annotation subject.
func annotationSubject(v quad.Value) (owl.Object, bool) {
	if _, ok := owl.NewLiteral(v); ok {
		return nil, false
	}
	return annotationValue(v)
}

// nodeOwned lists predicates of reified nodes that are not annotations.
var nodeOwned = map[quad.IRI]struct{}{
	rdf.Type:               {},
	vowl.AnnotatedSource:   {},
	vowl.AnnotatedProperty: {},
	vowl.AnnotatedTarget:   {},
	vowl.Members:           {},
	vowl.DistinctMembers:   {},
	vowl.SourceIndividual:  {},
	vowl.AssertionProperty: {},
	vowl.TargetIndividual:  {},
	vowl.TargetValue:       {},
}

// nodeAnnotations collects the annotations of a reified node.
func (tr *translation) nodeAnnotations(node quad.Value) ([]owl.Annotation, bool) {
	var out []owl.Annotation
	for _, q := range tr.s.store.BySubject(node) {
		p, ok := q.Predicate.(quad.IRI)
		if !ok {
			continue
		}
		if _, ok := nodeOwned[p]; ok {
			continue
		}
		if tr.s.cfg.Strict && !isBuiltinAnnotation(p) && !tr.s.types.Is(p, inference.AnnotationProperty) {
			return nil, false
		}
		val, ok := annotationValue(q.Object)
		if !ok {
			return nil, false
		}
		tr.use(q)
		out = append(out, owl.Annotation{Property: owl.AnnotationProperty(p), Value: val})
	}
	return out, true
}

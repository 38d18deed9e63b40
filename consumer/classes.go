package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/clog"
	"github.com/cayleygraph/owlrdf/inference"
	"github.com/cayleygraph/owlrdf/nodeid"
	"github.com/cayleygraph/owlrdf/owl"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

var entityTypes = map[inference.Kind]owl.EntityType{
	inference.Class:              owl.ClassEntity,
	inference.ObjectProperty:     owl.ObjectPropertyEntity,
	inference.DataProperty:       owl.DataPropertyEntity,
	inference.AnnotationProperty: owl.AnnotationPropertyEntity,
	inference.Datatype:           owl.DatatypeEntity,
	inference.Individual:         owl.NamedIndividualEntity,
}

var deprecated = owl.Literal{Value: quad.TypedString{Value: "true", Type: quad.IRI(vowl.XSDBoolean)}}

func (tr *translation) deprecate(subject quad.IRI) *owl.Axiom {
	return tr.axiom(owl.AnnotationAssertion, owl.AnnotationProperty(vowl.Deprecated), owl.IRI(subject), deprecated)
}

// buildDeclaration translates (x rdf:type T) where T declares an entity.
func buildDeclaration(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	k, ok := inference.DeclaredKind(t.Object)
	if !ok {
		if t.Object != quad.IRI(rdfs.Class) || !tr.lax() {
			return nil, false
		}
		k = inference.Class
	}
	iri, ok := isNamed(t.Subject)
	if !ok {
		return nil, false
	}
	types := tr.s.types
	tr.then(func() { types.Add(iri, k) })
	out := []*owl.Axiom{tr.axiom(owl.Declaration, owl.NewEntity(entityTypes[k], iri))}
	if t.Object == quad.IRI(vowl.DeprecatedClass) {
		out = append(out, tr.deprecate(iri))
	}
	return out, true
}

var characteristicAxioms = map[quad.IRI]owl.AxiomType{
	vowl.InverseFunctionalProperty: owl.InverseFunctionalObjectProperty,
	vowl.TransitiveProperty:        owl.TransitiveObjectProperty,
	vowl.SymmetricProperty:         owl.SymmetricObjectProperty,
	vowl.AsymmetricProperty:        owl.AsymmetricObjectProperty,
	vowl.ReflexiveProperty:         owl.ReflexiveObjectProperty,
	vowl.IrreflexiveProperty:       owl.IrreflexiveObjectProperty,
}

// buildCharacteristic translates (p rdf:type C) where C is a property characteristic.
func buildCharacteristic(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	typ, ok := t.Object.(quad.IRI)
	if !ok {
		return nil, false
	}
	switch typ {
	case vowl.DeprecatedProperty:
		iri, ok := isNamed(t.Subject)
		if !ok {
			return nil, false
		}
		return []*owl.Axiom{tr.deprecate(iri)}, true
	case vowl.FunctionalProperty:
		switch tr.propertyKind(t.Subject, inference.ObjectProperty) {
		case inference.DataProperty:
			p, ok := tr.dataProperty(t.Subject)
			if !ok {
				return nil, false
			}
			return []*owl.Axiom{tr.axiom(owl.FunctionalDataProperty, p)}, true
		case inference.ObjectProperty:
			p, ok := tr.objectProperty(t.Subject)
			if !ok {
				return nil, false
			}
			return []*owl.Axiom{tr.axiom(owl.FunctionalObjectProperty, p)}, true
		}
		return nil, false
	}
	at, ok := characteristicAxioms[typ]
	if !ok {
		return nil, false
	}
	p, ok := tr.objectProperty(t.Subject)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.axiom(at, p)}, true
}

// buildOntologyHeader translates (o rdf:type owl:Ontology). The first named
// ontology of the document names the result.
func buildOntologyHeader(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	if t.Object != quad.IRI(vowl.Ontology) {
		return nil, false
	}
	iri, ok := isNamed(t.Subject)
	if !ok {
		return nil, false
	}
	s := tr.s
	tr.then(func() {
		if s.ontology.IRI == "" {
			s.ontology.IRI = iri
		} else if s.ontology.IRI != iri {
			clog.Warningf("ignoring second ontology header %v", iri)
		}
	})
	return nil, true
}

// buildClassAssertion translates (x rdf:type C) where C is a class expression.
func buildClassAssertion(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	if inference.IsBuiltinType(t.Object) {
		return nil, false
	}
	ind, ok := tr.individual(t.Subject)
	if !ok {
		return nil, false
	}
	c, ok := tr.classExpr(t.Object)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.axiom(owl.ClassAssertion, c, ind)}, true
}

func buildSubClassOf(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	sub, ok := tr.classExpr(t.Subject)
	if !ok {
		return nil, false
	}
	sup, ok := tr.classExpr(t.Object)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.axiom(owl.SubClassOf, sub, sup)}, true
}

func buildDisjointWith(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	a, ok := tr.classExpr(t.Subject)
	if !ok {
		return nil, false
	}
	b, ok := tr.classExpr(t.Object)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.axiom(owl.DisjointClasses, a, b)}, true
}

func buildDisjointUnion(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	iri, ok := isNamed(t.Subject)
	if !ok || !tr.isNamedClass(iri) {
		return nil, false
	}
	items, ok := tr.list(t.Object)
	if !ok {
		return nil, false
	}
	ops := []owl.Object{owl.Class(iri)}
	for _, it := range items {
		c, ok := tr.classExpr(it)
		if !ok {
			return nil, false
		}
		ops = append(ops, c)
	}
	return []*owl.Axiom{tr.axiom(owl.DisjointUnion, ops...)}, true
}

// namedBoolean translates a boolean construct given directly on a named
// class or datatype into an equivalence or a datatype definition.
func namedBoolean(pred string) builder {
	return func(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
		iri, ok := isNamed(t.Subject)
		if !ok {
			return nil, false
		}
		if pred == vowl.DatatypeComplementOf || tr.s.types.IsDatatype(iri) {
			r, ok := tr.booleanRange(iri, pred)
			if !ok {
				return nil, false
			}
			return []*owl.Axiom{tr.axiom(owl.DatatypeDefinition, owl.Datatype(iri), r)}, true
		}
		if !tr.isNamedClass(iri) {
			return nil, false
		}
		c, ok := tr.booleanClass(iri, pred)
		if !ok {
			return nil, false
		}
		return []*owl.Axiom{tr.axiom(owl.EquivalentClasses, owl.Class(iri), c)}, true
	}
}

// equivalenceHandler translates owl:equivalentClass. The triple states either
// that two class expressions are equivalent or that a named datatype is
// defined by a data range; the datatype reading wins when either side is
// known to be a datatype.
type equivalenceHandler struct{}

var _ Handler = equivalenceHandler{}

func (equivalenceHandler) CanHandleStreaming(s *Session, t quad.Quad) bool {
	if s.cfg.Strict {
		return false
	}
	if nodeid.IsAnonymous(t.Subject) || nodeid.IsAnonymous(t.Object) {
		return false
	}
	return s.canBuild(t, buildEquivalence)
}

func (equivalenceHandler) CanHandle(s *Session, t quad.Quad) bool {
	return s.canBuild(t, buildEquivalence)
}

func (equivalenceHandler) Handle(s *Session, t quad.Quad) Outcome {
	return s.apply(t, buildEquivalence)
}

func (tr *translation) isDatatypeEquivalence(t quad.Quad) bool {
	if _, ok := isNamed(t.Subject); !ok {
		return false
	}
	return tr.s.types.IsDatatype(t.Subject) || tr.s.types.IsDatatype(t.Object)
}

func buildEquivalence(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	if tr.isDatatypeEquivalence(t) {
		iri, _ := isNamed(t.Subject)
		r, ok := tr.dataRange(t.Object)
		if !ok {
			return nil, false
		}
		return []*owl.Axiom{tr.axiom(owl.DatatypeDefinition, owl.Datatype(iri), r)}, true
	}
	a, ok := tr.classExpr(t.Subject)
	if !ok {
		return nil, false
	}
	b, ok := tr.classExpr(t.Object)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.axiom(owl.EquivalentClasses, a, b)}, true
}

package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/inference"
	"github.com/cayleygraph/owlrdf/owl"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

// pairKind returns the property kind shared by a and b. In lax mode a single
// known side decides.
func (tr *translation) pairKind(a, b quad.Value) inference.Kind {
	ka := tr.propertyKind(a, inference.Unknown)
	kb := tr.propertyKind(b, inference.Unknown)
	switch {
	case ka == kb && ka != inference.Unknown:
		return ka
	case ka == kb:
		if tr.guess() {
			return inference.ObjectProperty
		}
	case tr.s.cfg.Strict:
	case ka == inference.Unknown:
		return kb
	case kb == inference.Unknown:
		return ka
	}
	return inference.Unknown
}

type propertyAxioms struct {
	object, data, annotation owl.AxiomType
}

var (
	subPropertyAxioms = propertyAxioms{
		object: owl.SubObjectPropertyOf, data: owl.SubDataPropertyOf, annotation: owl.SubAnnotationPropertyOf,
	}
	equivalentPropertyAxioms = propertyAxioms{
		object: owl.EquivalentObjectProperties, data: owl.EquivalentDataProperties,
	}
	disjointPropertyAxioms = propertyAxioms{
		object: owl.DisjointObjectProperties, data: owl.DisjointDataProperties,
	}
)

// propertyPair translates a triple relating two properties of the same kind.
func propertyPair(types propertyAxioms) builder {
	return func(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
		switch tr.pairKind(t.Subject, t.Object) {
		case inference.ObjectProperty:
			a, ok := tr.objectProperty(t.Subject)
			if !ok {
				return nil, false
			}
			b, ok := tr.objectProperty(t.Object)
			if !ok {
				return nil, false
			}
			return []*owl.Axiom{tr.axiom(types.object, a, b)}, true
		case inference.DataProperty:
			a, ok := tr.dataProperty(t.Subject)
			if !ok {
				return nil, false
			}
			b, ok := tr.dataProperty(t.Object)
			if !ok {
				return nil, false
			}
			return []*owl.Axiom{tr.axiom(types.data, a, b)}, true
		case inference.AnnotationProperty:
			if types.annotation == 0 {
				return nil, false
			}
			a, ok := isNamed(t.Subject)
			if !ok {
				return nil, false
			}
			b, ok := isNamed(t.Object)
			if !ok {
				return nil, false
			}
			return []*owl.Axiom{tr.axiom(types.annotation, owl.AnnotationProperty(a), owl.AnnotationProperty(b))}, true
		}
		return nil, false
	}
}

// buildInverseOf translates owl:inverseOf between two named properties. An
// anonymous subject is an inverse property expression owned by its user.
func buildInverseOf(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	a, ok := isNamed(t.Subject)
	if !ok {
		return nil, false
	}
	b, ok := isNamed(t.Object)
	if !ok {
		return nil, false
	}
	pa, ok := tr.objectProperty(a)
	if !ok {
		return nil, false
	}
	pb, ok := tr.objectProperty(b)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.axiom(owl.InverseObjectProperties, pa, pb)}, true
}

// buildDomainRange translates rdfs:domain and rdfs:range for every property kind.
func buildDomainRange(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	isRange := t.Predicate == quad.IRI(rdfs.Range)
	hint := inference.ObjectProperty
	if isRange && tr.s.types.IsDatatype(t.Object) {
		hint = inference.DataProperty
	}
	switch tr.propertyKind(t.Subject, hint) {
	case inference.ObjectProperty:
		p, ok := tr.objectProperty(t.Subject)
		if !ok {
			return nil, false
		}
		c, ok := tr.classExpr(t.Object)
		if !ok {
			return nil, false
		}
		at := owl.ObjectPropertyDomain
		if isRange {
			at = owl.ObjectPropertyRange
		}
		return []*owl.Axiom{tr.axiom(at, p, c)}, true
	case inference.DataProperty:
		p, ok := tr.dataProperty(t.Subject)
		if !ok {
			return nil, false
		}
		if isRange {
			r, ok := tr.dataRange(t.Object)
			if !ok {
				return nil, false
			}
			return []*owl.Axiom{tr.axiom(owl.DataPropertyRange, p, r)}, true
		}
		c, ok := tr.classExpr(t.Object)
		if !ok {
			return nil, false
		}
		return []*owl.Axiom{tr.axiom(owl.DataPropertyDomain, p, c)}, true
	case inference.AnnotationProperty:
		p, ok := isNamed(t.Subject)
		if !ok {
			return nil, false
		}
		v, ok := isNamed(t.Object)
		if !ok {
			return nil, false
		}
		at := owl.AnnotationPropertyDomain
		if isRange {
			at = owl.AnnotationPropertyRange
		}
		return []*owl.Axiom{tr.axiom(at, owl.AnnotationProperty(p), owl.IRI(v))}, true
	}
	return nil, false
}

// buildPropertyChain translates (p owl:propertyChainAxiom (p1 ... pn)).
func buildPropertyChain(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	sup, ok := tr.objectProperty(t.Subject)
	if !ok {
		return nil, false
	}
	items, ok := tr.list(t.Object)
	if !ok || len(items) == 0 {
		return nil, false
	}
	chain := make(owl.ObjectPropertyChain, 0, len(items))
	for _, it := range items {
		p, ok := tr.objectProperty(it)
		if !ok {
			return nil, false
		}
		chain = append(chain, p)
	}
	return []*owl.Axiom{tr.axiom(owl.SubObjectPropertyOf, chain, sup)}, true
}

// buildHasKey translates (C owl:hasKey (p1 ... pn)).
func buildHasKey(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	c, ok := tr.classExpr(t.Subject)
	if !ok {
		return nil, false
	}
	items, ok := tr.list(t.Object)
	if !ok {
		return nil, false
	}
	ops := []owl.Object{c}
	for _, it := range items {
		switch tr.propertyKind(it, inference.ObjectProperty) {
		case inference.ObjectProperty:
			p, ok := tr.objectProperty(it)
			if !ok {
				return nil, false
			}
			ops = append(ops, p)
		case inference.DataProperty:
			p, ok := tr.dataProperty(it)
			if !ok {
				return nil, false
			}
			ops = append(ops, p)
		default:
			return nil, false
		}
	}
	return []*owl.Axiom{tr.axiom(owl.HasKey, ops...)}, true
}


package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/inference"
	"github.com/cayleygraph/owlrdf/owl"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
)

// individualPair translates a triple relating two individuals.
func individualPair(at owl.AxiomType) builder {
	return func(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
		a, ok := tr.individual(t.Subject)
		if !ok {
			return nil, false
		}
		b, ok := tr.individual(t.Object)
		if !ok {
			return nil, false
		}
		return []*owl.Axiom{tr.axiom(at, a, b)}, true
	}
}

// buildMembers translates the members list of an owl:AllDisjointClasses,
// owl:AllDisjointProperties or owl:AllDifferent node. Annotations of the node
// are attached to the axiom.
func buildMembers(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	node := t.Subject
	items, ok := tr.list(t.Object)
	if !ok || len(items) == 0 {
		return nil, false
	}
	var (
		at  owl.AxiomType
		ops []owl.Object
	)
	kinds := tr.s.types.Kinds(node)
	switch {
	case kinds.Has(inference.DisjointClassesNode):
		at = owl.DisjointClasses
		for _, it := range items {
			c, ok := tr.classExpr(it)
			if !ok {
				return nil, false
			}
			ops = append(ops, c)
		}
		tr.useTypes(node, vowl.AllDisjointClasses)
	case kinds.Has(inference.DisjointPropertiesNode):
		switch tr.propertyKind(items[0], inference.ObjectProperty) {
		case inference.ObjectProperty:
			at = owl.DisjointObjectProperties
			for _, it := range items {
				p, ok := tr.objectProperty(it)
				if !ok {
					return nil, false
				}
				ops = append(ops, p)
			}
		case inference.DataProperty:
			at = owl.DisjointDataProperties
			for _, it := range items {
				p, ok := tr.dataProperty(it)
				if !ok {
					return nil, false
				}
				ops = append(ops, p)
			}
		default:
			return nil, false
		}
		tr.useTypes(node, vowl.AllDisjointProperties)
	case kinds.Has(inference.DifferentNode):
		at = owl.DifferentIndividuals
		if ops, ok = tr.individuals(items); !ok {
			return nil, false
		}
		tr.useTypes(node, vowl.AllDifferent)
	default:
		return nil, false
	}
	anns, ok := tr.nodeAnnotations(node)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.s.factory.Axiom(at, ops, anns)}, true
}

// buildDistinctMembers translates the legacy owl:distinctMembers list of an
// owl:AllDifferent node.
func buildDistinctMembers(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	if !tr.s.types.Is(t.Subject, inference.DifferentNode) {
		return nil, false
	}
	items, ok := tr.list(t.Object)
	if !ok || len(items) == 0 {
		return nil, false
	}
	ops, ok := tr.individuals(items)
	if !ok {
		return nil, false
	}
	anns, ok := tr.nodeAnnotations(t.Subject)
	if !ok {
		return nil, false
	}
	tr.useTypes(t.Subject, vowl.AllDifferent)
	return []*owl.Axiom{tr.s.factory.Axiom(owl.DifferentIndividuals, ops, anns)}, true
}

func (tr *translation) individuals(items []quad.Value) ([]owl.Object, bool) {
	out := make([]owl.Object, 0, len(items))
	for _, it := range items {
		ind, ok := tr.individual(it)
		if !ok {
			return nil, false
		}
		out = append(out, ind)
	}
	return out, true
}

// buildNegativeAssertion translates an owl:NegativePropertyAssertion node,
// starting from its owl:sourceIndividual triple.
func buildNegativeAssertion(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	node := t.Subject
	src, ok := tr.individual(t.Object)
	if !ok {
		return nil, false
	}
	p, ok := tr.one(node, vowl.AssertionProperty)
	if !ok {
		return nil, false
	}
	var ax *owl.Axiom
	if target, ok := tr.one(node, vowl.TargetIndividual); ok {
		prop, ok := tr.objectProperty(p)
		if !ok {
			return nil, false
		}
		ind, ok := tr.individual(target)
		if !ok {
			return nil, false
		}
		ax = tr.axiom(owl.NegativeObjectPropertyAssertion, prop, src, ind)
	} else if target, ok := tr.one(node, vowl.TargetValue); ok {
		prop, ok := tr.dataProperty(p)
		if !ok {
			return nil, false
		}
		lit, ok := owl.NewLiteral(target)
		if !ok {
			tr.reject("negative data assertion target is not a literal: %v", target)
			return nil, false
		}
		ax = tr.axiom(owl.NegativeDataPropertyAssertion, prop, src, lit)
	} else {
		return nil, false
	}
	anns, ok := tr.nodeAnnotations(node)
	if !ok {
		return nil, false
	}
	tr.useTypes(node, vowl.NegativePropertyAssertion)
	return []*owl.Axiom{tr.s.factory.Annotate(ax, anns)}, true
}

// buildPropertyAssertion translates a triple whose predicate is a declared
// object, data or annotation property.
func buildPropertyAssertion(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	p, ok := isNamed(t.Predicate)
	if !ok {
		return nil, false
	}
	switch tr.propertyKind(p, inference.Unknown) {
	case inference.ObjectProperty:
		a, ok := tr.individual(t.Subject)
		if !ok {
			return nil, false
		}
		b, ok := tr.individual(t.Object)
		if !ok {
			return nil, false
		}
		return []*owl.Axiom{tr.axiom(owl.ObjectPropertyAssertion, owl.ObjectProperty(p), a, b)}, true
	case inference.DataProperty:
		a, ok := tr.individual(t.Subject)
		if !ok {
			return nil, false
		}
		lit, ok := owl.NewLiteral(t.Object)
		if !ok {
			tr.reject("data property %v used with a non literal value", p)
			return nil, false
		}
		return []*owl.Axiom{tr.axiom(owl.DataPropertyAssertion, owl.DataProperty(p), a, lit)}, true
	case inference.AnnotationProperty:
		return tr.annotationAssertion(p, t)
	}
	return nil, false
}

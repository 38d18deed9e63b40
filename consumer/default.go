package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/owl"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdf"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

// markerPredicates only contribute to structures translated by other handlers.
var markerPredicates = []quad.IRI{
	vowl.OnProperty,
	vowl.OnClass,
	vowl.OnDataRange,
	vowl.SomeValuesFrom,
	vowl.AllValuesFrom,
	vowl.HasValue,
	vowl.HasSelf,
	vowl.Cardinality,
	vowl.MinCardinality,
	vowl.MaxCardinality,
	vowl.QualifiedCardinality,
	vowl.MinQualifiedCardinality,
	vowl.MaxQualifiedCardinality,
	vowl.OnDatatype,
	vowl.WithRestrictions,
	rdf.First,
	rdf.Rest,
	vowl.AnnotatedProperty,
	vowl.AnnotatedTarget,
	vowl.AssertionProperty,
	vowl.TargetIndividual,
	vowl.TargetValue,
	vowl.XSDMinInclusive,
	vowl.XSDMaxInclusive,
	vowl.XSDMinExclusive,
	vowl.XSDMaxExclusive,
	vowl.XSDLength,
	vowl.XSDMinLength,
	vowl.XSDMaxLength,
	vowl.XSDPattern,
	vowl.XSDLangRange,
}

func axiomFrom(name string, b builder) *axiomHandler {
	return &axiomHandler{name: name, stream: true, build: b}
}

func deferredAxiomFrom(name string, b builder) *axiomHandler {
	return &axiomHandler{name: name, build: b}
}

// DefaultRegistry returns a registry with handlers for the OWL 2 RDF mapping.
// Handlers for the same predicate are tried in the order listed here.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(rdf.Type, axiomFrom("declaration", buildDeclaration))
	r.Register(rdf.Type, axiomFrom("characteristic", buildCharacteristic))
	r.Register(rdf.Type, axiomFrom("ontology", buildOntologyHeader))
	r.Register(rdf.Type, markerHandler{})
	r.Register(rdf.Type, axiomFrom("class assertion", buildClassAssertion))

	r.Register(rdfs.SubClassOf, axiomFrom("subclass", buildSubClassOf))
	r.Register(vowl.EquivalentClass, equivalenceHandler{})
	r.Register(vowl.DisjointWith, axiomFrom("disjoint classes", buildDisjointWith))
	r.Register(vowl.DisjointUnionOf, axiomFrom("disjoint union", buildDisjointUnion))
	for _, pred := range []string{vowl.IntersectionOf, vowl.UnionOf, vowl.ComplementOf, vowl.OneOf, vowl.DatatypeComplementOf} {
		r.Register(quad.IRI(pred), axiomFrom("named "+pred, namedBoolean(pred)))
		r.Register(quad.IRI(pred), markerHandler{})
	}

	r.Register(rdfs.SubPropertyOf, axiomFrom("subproperty", propertyPair(subPropertyAxioms)))
	r.Register(vowl.EquivalentProperty, axiomFrom("equivalent properties", propertyPair(equivalentPropertyAxioms)))
	r.Register(vowl.PropertyDisjointWith, axiomFrom("disjoint properties", propertyPair(disjointPropertyAxioms)))
	r.Register(vowl.InverseOf, axiomFrom("inverse properties", buildInverseOf))
	r.Register(vowl.InverseOf, markerHandler{})
	r.Register(rdfs.Domain, axiomFrom("domain", buildDomainRange))
	r.Register(rdfs.Range, axiomFrom("range", buildDomainRange))
	r.Register(vowl.PropertyChainAxiom, axiomFrom("property chain", buildPropertyChain))
	r.Register(vowl.HasKey, axiomFrom("has key", buildHasKey))

	r.Register(vowl.SameAs, axiomFrom("same individual", individualPair(owl.SameIndividual)))
	r.Register(vowl.DifferentFrom, axiomFrom("different individuals", individualPair(owl.DifferentIndividuals)))
	r.Register(vowl.Members, axiomFrom("members", buildMembers))
	r.Register(vowl.DistinctMembers, axiomFrom("distinct members", buildDistinctMembers))
	r.Register(vowl.SourceIndividual, axiomFrom("negative assertion", buildNegativeAssertion))

	r.Register(vowl.AnnotatedSource, reificationHandler{})
	r.Register(vowl.Imports, axiomFrom("import", buildImport))
	r.Register(vowl.VersionIRI, axiomFrom("version", buildVersionIRI))
	for _, pred := range builtinAnnotations {
		r.Register(pred, deferredAxiomFrom("annotation", buildAnnotation))
	}

	for _, pred := range markerPredicates {
		r.Register(pred, markerHandler{})
	}
	r.RegisterFallback(axiomFrom("property assertion", buildPropertyAssertion))
	return r
}

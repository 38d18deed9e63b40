// Package owl contains constants of the Web Ontology Language (OWL 2)
// vocabulary as used by the RDF mapping.
package owl

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2002/07/owl#`
	Prefix = `owl:`
)

// Types
const (
	Class                     = NS + "Class"
	Thing                     = NS + "Thing"
	Nothing                   = NS + "Nothing"
	ObjectProperty            = NS + "ObjectProperty"
	DatatypeProperty          = NS + "DatatypeProperty"
	AnnotationProperty        = NS + "AnnotationProperty"
	OntologyProperty          = NS + "OntologyProperty"
	NamedIndividual           = NS + "NamedIndividual"
	Ontology                  = NS + "Ontology"
	Restriction               = NS + "Restriction"
	AllDisjointClasses        = NS + "AllDisjointClasses"
	AllDisjointProperties     = NS + "AllDisjointProperties"
	AllDifferent              = NS + "AllDifferent"
	Axiom                     = NS + "Axiom"
	Annotation                = NS + "Annotation"
	NegativePropertyAssertion = NS + "NegativePropertyAssertion"
	DeprecatedClass           = NS + "DeprecatedClass"
	DeprecatedProperty        = NS + "DeprecatedProperty"

	FunctionalProperty        = NS + "FunctionalProperty"
	InverseFunctionalProperty = NS + "InverseFunctionalProperty"
	TransitiveProperty        = NS + "TransitiveProperty"
	SymmetricProperty         = NS + "SymmetricProperty"
	AsymmetricProperty        = NS + "AsymmetricProperty"
	ReflexiveProperty         = NS + "ReflexiveProperty"
	IrreflexiveProperty       = NS + "IrreflexiveProperty"
)

// Axiom predicates
const (
	EquivalentClass      = NS + "equivalentClass"
	DisjointWith         = NS + "disjointWith"
	DisjointUnionOf      = NS + "disjointUnionOf"
	EquivalentProperty   = NS + "equivalentProperty"
	PropertyDisjointWith = NS + "propertyDisjointWith"
	InverseOf            = NS + "inverseOf"
	PropertyChainAxiom   = NS + "propertyChainAxiom"
	HasKey               = NS + "hasKey"
	SameAs               = NS + "sameAs"
	DifferentFrom        = NS + "differentFrom"
	Members              = NS + "members"
	DistinctMembers      = NS + "distinctMembers"
)

// Class expression and data range predicates
const (
	OnProperty              = NS + "onProperty"
	OnClass                 = NS + "onClass"
	OnDataRange             = NS + "onDataRange"
	OnDatatype              = NS + "onDatatype"
	WithRestrictions        = NS + "withRestrictions"
	SomeValuesFrom          = NS + "someValuesFrom"
	AllValuesFrom           = NS + "allValuesFrom"
	HasValue                = NS + "hasValue"
	HasSelf                 = NS + "hasSelf"
	Cardinality             = NS + "cardinality"
	MinCardinality          = NS + "minCardinality"
	MaxCardinality          = NS + "maxCardinality"
	QualifiedCardinality    = NS + "qualifiedCardinality"
	MinQualifiedCardinality = NS + "minQualifiedCardinality"
	MaxQualifiedCardinality = NS + "maxQualifiedCardinality"
	IntersectionOf          = NS + "intersectionOf"
	UnionOf                 = NS + "unionOf"
	ComplementOf            = NS + "complementOf"
	OneOf                   = NS + "oneOf"
	DatatypeComplementOf    = NS + "datatypeComplementOf"
)

// Reification and negative assertion predicates
const (
	AnnotatedSource   = NS + "annotatedSource"
	AnnotatedProperty = NS + "annotatedProperty"
	AnnotatedTarget   = NS + "annotatedTarget"
	SourceIndividual  = NS + "sourceIndividual"
	AssertionProperty = NS + "assertionProperty"
	TargetIndividual  = NS + "targetIndividual"
	TargetValue       = NS + "targetValue"
)

// Ontology header and built-in annotation properties
const (
	Imports                = NS + "imports"
	VersionIRI             = NS + "versionIRI"
	VersionInfo            = NS + "versionInfo"
	Deprecated             = NS + "deprecated"
	PriorVersion           = NS + "priorVersion"
	BackwardCompatibleWith = NS + "backwardCompatibleWith"
	IncompatibleWith       = NS + "incompatibleWith"
)

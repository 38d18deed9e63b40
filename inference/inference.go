// Package inference implements an in-memory map from resources to the
// structural kinds inferred for them while reading a document.
//
// Rules:
// 1. (x rdf:type owl:Class) -> x is a Class
// 2. (x rdf:type rdfs:Class) -> x is a Class (lax only)
// 3. (x rdf:type owl:ObjectProperty|DatatypeProperty|AnnotationProperty) -> x is a property of that kind
// 4. (x rdf:type <characteristic>) -> x is an ObjectProperty, except for owl:FunctionalProperty
// 5. (x rdf:type rdfs:Datatype) -> x is a Datatype
// 6. (x rdf:type owl:NamedIndividual) -> x is an Individual
// 7. (x rdf:type c), c not built in -> x is an Individual, and c is a Class (lax only)
// 8. (x owl:onProperty|someValuesFrom|...|cardinality y) -> x is a Restriction
// 9. (x rdf:first|rdf:rest y) -> x is a List
// 10. (x owl:annotatedSource|annotatedProperty|annotatedTarget y) -> x is an AxiomNode
// 11. (x owl:inverseOf y) -> x and y are ObjectProperties
// 12. (x owl:onDatatype|withRestrictions|datatypeComplementOf y) -> x is a Datatype
// 13. (x rdfs:subClassOf y) -> x and y are Classes (lax only)
// 14. (x owl:sourceIndividual|assertionProperty|targetIndividual|targetValue y) -> x is a NegativeAssertionNode
// 15. (x owl:propertyChainAxiom y) -> x is an ObjectProperty
//
// Declarations of named resources (rules 1-6) are only applied by ProcessQuad
// in lax mode. In strict mode they are recorded with Add once the declaration
// is translated.
//
// The map only grows: kinds are never retracted.
package inference

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/nodeid"
	"github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdf"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

// Kind is a set of structural kinds.
type Kind uint32

// Unknown is the empty kind set.
const Unknown Kind = 0

const (
	Class Kind = 1 << iota
	ObjectProperty
	DataProperty
	AnnotationProperty
	Datatype
	Restriction
	Individual
	Ontology
	List
	AxiomNode
	AnnotationNode
	DisjointClassesNode
	DisjointPropertiesNode
	DifferentNode
	NegativeAssertionNode
)

var kindNames = []struct {
	k    Kind
	name string
}{
	{Class, "Class"},
	{ObjectProperty, "ObjectProperty"},
	{DataProperty, "DataProperty"},
	{AnnotationProperty, "AnnotationProperty"},
	{Datatype, "Datatype"},
	{Restriction, "Restriction"},
	{Individual, "Individual"},
	{Ontology, "Ontology"},
	{List, "List"},
	{AxiomNode, "AxiomNode"},
	{AnnotationNode, "AnnotationNode"},
	{DisjointClassesNode, "DisjointClassesNode"},
	{DisjointPropertiesNode, "DisjointPropertiesNode"},
	{DifferentNode, "DifferentNode"},
	{NegativeAssertionNode, "NegativeAssertionNode"},
}

// Property is any kind of property.
const Property = ObjectProperty | DataProperty | AnnotationProperty

// Has reports whether k shares any kind with o.
func (k Kind) Has(o Kind) bool { return k&o != 0 }

func (k Kind) String() string {
	if k == Unknown {
		return "Unknown"
	}
	var names []string
	for _, n := range kindNames {
		if k.Has(n.k) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Store is a struct holding the inference data
type Store struct {
	// Strict disables the lax rules.
	Strict bool

	kinds map[string]Kind
}

// NewStore creates a new Store
func NewStore(strict bool) *Store {
	return &Store{Strict: strict, kinds: make(map[string]Kind)}
}

func key(v quad.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// Add records kind k for v and reports whether anything changed.
func (s *Store) Add(v quad.Value, k Kind) bool {
	if v == nil || k == Unknown {
		return false
	}
	id := key(v)
	old := s.kinds[id]
	if old|k == old {
		return false
	}
	s.kinds[id] = old | k
	return true
}

// Kinds returns all kinds recorded for v.
func (s *Store) Kinds(v quad.Value) Kind {
	return s.kinds[key(v)]
}

// Is reports whether v carries any of the kinds in k.
func (s *Store) Is(v quad.Value, k Kind) bool {
	return s.kinds[key(v)].Has(k)
}

// Len returns the number of resources with a known kind.
func (s *Store) Len() int {
	return len(s.kinds)
}

// IsClass reports whether v is a known class, including owl:Thing and owl:Nothing.
func (s *Store) IsClass(v quad.Value) bool {
	switch v {
	case quad.IRI(owl.Thing), quad.IRI(owl.Nothing):
		return true
	}
	return s.Is(v, Class)
}

// IsDatatype reports whether v is a known data range, including built-in datatypes.
func (s *Store) IsDatatype(v quad.Value) bool {
	if iri, ok := v.(quad.IRI); ok && owl.IsBuiltinDatatype(string(iri)) {
		return true
	}
	return s.Is(v, Datatype)
}

var declarations = map[quad.IRI]Kind{
	owl.Class:              Class,
	owl.DeprecatedClass:    Class,
	owl.ObjectProperty:     ObjectProperty,
	owl.DatatypeProperty:   DataProperty,
	owl.AnnotationProperty: AnnotationProperty,
	rdfs.Datatype:          Datatype,
	owl.NamedIndividual:    Individual,
}

// characteristics only apply to object properties.
var characteristics = map[quad.IRI]struct{}{
	owl.InverseFunctionalProperty: {},
	owl.TransitiveProperty:        {},
	owl.SymmetricProperty:         {},
	owl.AsymmetricProperty:        {},
	owl.ReflexiveProperty:         {},
	owl.IrreflexiveProperty:       {},
}

var structural = map[quad.IRI]Kind{
	owl.Ontology:                  Ontology,
	owl.Restriction:               Restriction,
	rdf.List:                      List,
	owl.Axiom:                     AxiomNode,
	owl.Annotation:                AnnotationNode,
	owl.AllDisjointClasses:        DisjointClassesNode,
	owl.AllDisjointProperties:     DisjointPropertiesNode,
	owl.AllDifferent:              DifferentNode,
	owl.NegativePropertyAssertion: NegativeAssertionNode,
}

var predicates = map[quad.IRI]Kind{
	owl.OnProperty:              Restriction,
	owl.OnClass:                 Restriction,
	owl.OnDataRange:             Restriction,
	owl.SomeValuesFrom:          Restriction,
	owl.AllValuesFrom:           Restriction,
	owl.HasValue:                Restriction,
	owl.HasSelf:                 Restriction,
	owl.Cardinality:             Restriction,
	owl.MinCardinality:          Restriction,
	owl.MaxCardinality:          Restriction,
	owl.QualifiedCardinality:    Restriction,
	owl.MinQualifiedCardinality: Restriction,
	owl.MaxQualifiedCardinality: Restriction,
	rdf.First:                   List,
	rdf.Rest:                    List,
	owl.AnnotatedSource:         AxiomNode,
	owl.AnnotatedProperty:       AxiomNode,
	owl.AnnotatedTarget:         AxiomNode,
	owl.OnDatatype:              Datatype,
	owl.WithRestrictions:        Datatype,
	owl.DatatypeComplementOf:    Datatype,
	owl.SourceIndividual:        NegativeAssertionNode,
	owl.AssertionProperty:       NegativeAssertionNode,
	owl.TargetIndividual:        NegativeAssertionNode,
	owl.TargetValue:             NegativeAssertionNode,
	owl.PropertyChainAxiom:      ObjectProperty,
}

// DeclaredKind returns the kind an rdf:type object declares, if it is a
// declaration type.
func DeclaredKind(typ quad.Value) (Kind, bool) {
	iri, ok := typ.(quad.IRI)
	if !ok {
		return Unknown, false
	}
	k, ok := declarations[iri]
	return k, ok
}

// StructuralKind returns the kind an rdf:type object marks, if it is a
// structural type.
func StructuralKind(typ quad.Value) (Kind, bool) {
	iri, ok := typ.(quad.IRI)
	if !ok {
		return Unknown, false
	}
	k, ok := structural[iri]
	return k, ok
}

// IsBuiltinType reports whether typ is an rdf:type object with a meaning of
// its own rather than a user class.
func IsBuiltinType(typ quad.Value) bool {
	iri, ok := typ.(quad.IRI)
	if !ok {
		return false
	}
	if _, ok := declarations[iri]; ok {
		return true
	}
	if _, ok := structural[iri]; ok {
		return true
	}
	if _, ok := characteristics[iri]; ok {
		return true
	}
	switch iri {
	case rdfs.Class, rdf.Property, owl.FunctionalProperty, owl.DeprecatedProperty:
		return true
	}
	return false
}

// ProcessQuad is used to update the store with a new quad
func (s *Store) ProcessQuad(q quad.Quad) {
	subject, predicate, object := q.Subject, q.Predicate, q.Object
	predicateIRI, ok := predicate.(quad.IRI)
	if !ok {
		return
	}
	switch predicateIRI {
	case rdf.Type:
		if k, ok := StructuralKind(object); ok {
			s.Add(subject, k)
			return
		}
		if k, ok := DeclaredKind(object); ok {
			if !s.Strict || nodeid.IsAnonymous(subject) {
				s.Add(subject, k)
			}
			return
		}
		if iri, ok := object.(quad.IRI); ok {
			if _, ok := characteristics[iri]; ok {
				if !s.Strict {
					s.Add(subject, ObjectProperty)
				}
				return
			}
		}
		if object == quad.IRI(rdfs.Class) {
			if !s.Strict {
				s.Add(subject, Class)
			}
			return
		}
		if IsBuiltinType(object) {
			return
		}
		s.Add(subject, Individual)
		if !s.Strict {
			s.Add(object, Class)
		}
	case owl.InverseOf:
		s.Add(subject, ObjectProperty)
		if _, ok := object.(quad.IRI); ok {
			s.Add(object, ObjectProperty)
		}
	case rdfs.SubClassOf:
		if !s.Strict {
			s.Add(subject, Class)
			s.Add(object, Class)
		}
	default:
		if k, ok := predicates[predicateIRI]; ok {
			s.Add(subject, k)
		}
	}
}

// ProcessQuads is used to update the store with multiple quads
func (s *Store) ProcessQuads(quads []quad.Quad) {
	for _, q := range quads {
		s.ProcessQuad(q)
	}
}

// Package owl is a minimal OWL 2 object model: entities, class expressions,
// data ranges and axioms, rendered in the functional-style syntax.
//
// The model carries no semantics. It exists so that translated axioms can be
// compared, deduplicated and printed.
package owl

import (
	"sort"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/nodeid"
	"github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdf"
)

// Object is any operand of an axiom.
type Object interface {
	// String renders the object in functional-style syntax.
	String() string
}

// EntityType is a kind of named entity.
type EntityType int

const (
	ClassEntity EntityType = iota + 1
	ObjectPropertyEntity
	DataPropertyEntity
	AnnotationPropertyEntity
	DatatypeEntity
	NamedIndividualEntity
)

var entityTypeNames = map[EntityType]string{
	ClassEntity:              "Class",
	ObjectPropertyEntity:     "ObjectProperty",
	DataPropertyEntity:       "DataProperty",
	AnnotationPropertyEntity: "AnnotationProperty",
	DatatypeEntity:           "Datatype",
	NamedIndividualEntity:    "NamedIndividual",
}

func (t EntityType) String() string {
	if s, ok := entityTypeNames[t]; ok {
		return s
	}
	return "Entity"
}

// Entity is a named ontology element.
type Entity interface {
	Object
	EntityType() EntityType
	IRI() quad.IRI
}

// NewEntity builds an entity of the given type.
func NewEntity(t EntityType, iri quad.IRI) Entity {
	switch t {
	case ClassEntity:
		return Class(iri)
	case ObjectPropertyEntity:
		return ObjectProperty(iri)
	case DataPropertyEntity:
		return DataProperty(iri)
	case AnnotationPropertyEntity:
		return AnnotationProperty(iri)
	case DatatypeEntity:
		return Datatype(iri)
	case NamedIndividualEntity:
		return NamedIndividual(iri)
	}
	return nil
}

type (
	Class              quad.IRI
	ObjectProperty     quad.IRI
	DataProperty       quad.IRI
	AnnotationProperty quad.IRI
	Datatype           quad.IRI
	NamedIndividual    quad.IRI
)

// Well-known entities.
const (
	Thing   = Class(owl.Thing)
	Nothing = Class(owl.Nothing)
)

func (c Class) String() string       { return quad.IRI(c).String() }
func (c Class) IRI() quad.IRI        { return quad.IRI(c) }
func (Class) EntityType() EntityType { return ClassEntity }

func (p ObjectProperty) String() string       { return quad.IRI(p).String() }
func (p ObjectProperty) IRI() quad.IRI        { return quad.IRI(p) }
func (ObjectProperty) EntityType() EntityType { return ObjectPropertyEntity }

func (p DataProperty) String() string       { return quad.IRI(p).String() }
func (p DataProperty) IRI() quad.IRI        { return quad.IRI(p) }
func (DataProperty) EntityType() EntityType { return DataPropertyEntity }

func (p AnnotationProperty) String() string       { return quad.IRI(p).String() }
func (p AnnotationProperty) IRI() quad.IRI        { return quad.IRI(p) }
func (AnnotationProperty) EntityType() EntityType { return AnnotationPropertyEntity }

func (d Datatype) String() string       { return quad.IRI(d).String() }
func (d Datatype) IRI() quad.IRI        { return quad.IRI(d) }
func (Datatype) EntityType() EntityType { return DatatypeEntity }

func (i NamedIndividual) String() string       { return quad.IRI(i).String() }
func (i NamedIndividual) IRI() quad.IRI        { return quad.IRI(i) }
func (NamedIndividual) EntityType() EntityType { return NamedIndividualEntity }

// AnonymousIndividual is an individual identified by a blank node.
type AnonymousIndividual struct {
	ID nodeid.NodeID
}

func (a AnonymousIndividual) String() string { return a.ID.String() }

// Individual is a named or anonymous individual.
type Individual interface {
	Object
	individual()
}

func (NamedIndividual) individual()     {}
func (AnonymousIndividual) individual() {}

// IRI is a plain IRI used as an annotation subject or value.
type IRI quad.IRI

func (i IRI) String() string { return quad.IRI(i).String() }

// Literal is a data value.
type Literal struct {
	Value quad.Value
}

// NewLiteral wraps a quad literal value. It returns false for IRIs and blank nodes.
func NewLiteral(v quad.Value) (Literal, bool) {
	switch v.(type) {
	case quad.String, quad.TypedString, quad.LangString:
		return Literal{Value: v}, true
	}
	return Literal{}, false
}

func (l Literal) String() string { return l.Value.String() }

// Lexical returns the lexical form of the literal.
func (l Literal) Lexical() string {
	switch v := l.Value.(type) {
	case quad.String:
		return string(v)
	case quad.TypedString:
		return string(v.Value)
	case quad.LangString:
		return string(v.Value)
	}
	return quad.StringOf(l.Value)
}

// Datatype returns the datatype IRI of the literal.
func (l Literal) Datatype() quad.IRI {
	switch v := l.Value.(type) {
	case quad.TypedString:
		return v.Type
	case quad.LangString:
		return quad.IRI(rdf.LangString)
	}
	return quad.IRI(owl.XSDString)
}

// Lang returns the language tag of the literal, if any.
func (l Literal) Lang() string {
	if v, ok := l.Value.(quad.LangString); ok {
		return v.Lang
	}
	return ""
}

func join(objs []Object) string {
	parts := make([]string, 0, len(objs))
	for _, o := range objs {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, " ")
}

func sortObjects(objs []Object) {
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].String() < objs[j].String()
	})
}

// dedupObjects removes repeated operands from a sorted slice.
func dedupObjects(objs []Object) []Object {
	out := objs[:0]
	for i, o := range objs {
		if i > 0 && o.String() == objs[i-1].String() {
			continue
		}
		out = append(out, o)
	}
	return out
}

package owl

import (
	"sort"
	"strings"
)

// AxiomType is the kind of an axiom. Its string form is the functional-style
// syntax keyword.
type AxiomType int

const (
	Declaration AxiomType = iota + 1
	SubClassOf
	EquivalentClasses
	DisjointClasses
	DisjointUnion
	SubObjectPropertyOf
	SubDataPropertyOf
	SubAnnotationPropertyOf
	EquivalentObjectProperties
	EquivalentDataProperties
	DisjointObjectProperties
	DisjointDataProperties
	InverseObjectProperties
	ObjectPropertyDomain
	ObjectPropertyRange
	DataPropertyDomain
	DataPropertyRange
	AnnotationPropertyDomain
	AnnotationPropertyRange
	FunctionalObjectProperty
	FunctionalDataProperty
	InverseFunctionalObjectProperty
	ReflexiveObjectProperty
	IrreflexiveObjectProperty
	SymmetricObjectProperty
	AsymmetricObjectProperty
	TransitiveObjectProperty
	DatatypeDefinition
	HasKey
	SameIndividual
	DifferentIndividuals
	ClassAssertion
	ObjectPropertyAssertion
	DataPropertyAssertion
	NegativeObjectPropertyAssertion
	NegativeDataPropertyAssertion
	AnnotationAssertion
)

var axiomTypeNames = [...]string{
	Declaration:                     "Declaration",
	SubClassOf:                      "SubClassOf",
	EquivalentClasses:               "EquivalentClasses",
	DisjointClasses:                 "DisjointClasses",
	DisjointUnion:                   "DisjointUnion",
	SubObjectPropertyOf:             "SubObjectPropertyOf",
	SubDataPropertyOf:               "SubDataPropertyOf",
	SubAnnotationPropertyOf:         "SubAnnotationPropertyOf",
	EquivalentObjectProperties:      "EquivalentObjectProperties",
	EquivalentDataProperties:        "EquivalentDataProperties",
	DisjointObjectProperties:        "DisjointObjectProperties",
	DisjointDataProperties:          "DisjointDataProperties",
	InverseObjectProperties:         "InverseObjectProperties",
	ObjectPropertyDomain:            "ObjectPropertyDomain",
	ObjectPropertyRange:             "ObjectPropertyRange",
	DataPropertyDomain:              "DataPropertyDomain",
	DataPropertyRange:               "DataPropertyRange",
	AnnotationPropertyDomain:        "AnnotationPropertyDomain",
	AnnotationPropertyRange:         "AnnotationPropertyRange",
	FunctionalObjectProperty:        "FunctionalObjectProperty",
	FunctionalDataProperty:          "FunctionalDataProperty",
	InverseFunctionalObjectProperty: "InverseFunctionalObjectProperty",
	ReflexiveObjectProperty:         "ReflexiveObjectProperty",
	IrreflexiveObjectProperty:       "IrreflexiveObjectProperty",
	SymmetricObjectProperty:         "SymmetricObjectProperty",
	AsymmetricObjectProperty:        "AsymmetricObjectProperty",
	TransitiveObjectProperty:        "TransitiveObjectProperty",
	DatatypeDefinition:              "DatatypeDefinition",
	HasKey:                          "HasKey",
	SameIndividual:                  "SameIndividual",
	DifferentIndividuals:            "DifferentIndividuals",
	ClassAssertion:                  "ClassAssertion",
	ObjectPropertyAssertion:         "ObjectPropertyAssertion",
	DataPropertyAssertion:           "DataPropertyAssertion",
	NegativeObjectPropertyAssertion: "NegativeObjectPropertyAssertion",
	NegativeDataPropertyAssertion:   "NegativeDataPropertyAssertion",
	AnnotationAssertion:             "AnnotationAssertion",
}

func (t AxiomType) String() string {
	if t <= 0 || int(t) >= len(axiomTypeNames) {
		return "Axiom"
	}
	return axiomTypeNames[t]
}

// AxiomTypes lists all axiom types in declaration order.
func AxiomTypes() []AxiomType {
	out := make([]AxiomType, 0, len(axiomTypeNames)-1)
	for t := Declaration; t <= AnnotationAssertion; t++ {
		out = append(out, t)
	}
	return out
}

// IsSymmetric reports whether the operands of the axiom form a set.
func (t AxiomType) IsSymmetric() bool {
	switch t {
	case EquivalentClasses, DisjointClasses,
		EquivalentObjectProperties, EquivalentDataProperties,
		DisjointObjectProperties, DisjointDataProperties,
		InverseObjectProperties, SameIndividual, DifferentIndividuals:
		return true
	}
	return false
}

// Annotation is an annotation property and value attached to an axiom or an
// ontology.
type Annotation struct {
	Property AnnotationProperty
	Value    Object
}

func (a Annotation) String() string {
	return "Annotation(" + a.Property.String() + " " + a.Value.String() + ")"
}

// SortAnnotations sorts annotations by rendering and drops duplicates.
func SortAnnotations(anns []Annotation) []Annotation {
	if len(anns) == 0 {
		return nil
	}
	out := make([]Annotation, len(anns))
	copy(out, anns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i].String() != out[n-1].String() {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

// Axiom is a single logical statement.
type Axiom struct {
	Type        AxiomType
	Operands    []Object
	Annotations []Annotation
}

// Key identifies the axiom regardless of its annotations.
func (a *Axiom) Key() string {
	var b strings.Builder
	b.WriteString(a.Type.String())
	b.WriteByte('(')
	a.writeOperands(&b)
	b.WriteByte(')')
	return b.String()
}

func (a *Axiom) writeOperands(b *strings.Builder) {
	switch a.Type {
	case Declaration:
		if e, ok := a.Operands[0].(Entity); ok {
			b.WriteString(e.EntityType().String() + "(" + e.String() + ")")
			return
		}
	case HasKey:
		b.WriteString(a.Operands[0].String())
		var obj, data []Object
		for _, o := range a.Operands[1:] {
			if _, ok := o.(DataProperty); ok {
				data = append(data, o)
			} else {
				obj = append(obj, o)
			}
		}
		b.WriteString(" (" + join(obj) + ") (" + join(data) + ")")
		return
	}
	b.WriteString(join(a.Operands))
}

// String renders the axiom with its annotations in functional-style syntax.
func (a *Axiom) String() string {
	if len(a.Annotations) == 0 {
		return a.Key()
	}
	var b strings.Builder
	b.WriteString(a.Type.String())
	b.WriteByte('(')
	for _, an := range a.Annotations {
		b.WriteString(an.String())
		b.WriteByte(' ')
	}
	a.writeOperands(&b)
	b.WriteByte(')')
	return b.String()
}

// Subject returns the operand naming what the axiom is about.
func (a *Axiom) Subject() Object {
	switch a.Type {
	case ClassAssertion, AnnotationAssertion,
		ObjectPropertyAssertion, DataPropertyAssertion,
		NegativeObjectPropertyAssertion, NegativeDataPropertyAssertion:
		if len(a.Operands) > 1 {
			return a.Operands[1]
		}
	}
	if len(a.Operands) == 0 {
		return nil
	}
	return a.Operands[0]
}

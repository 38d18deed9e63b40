package owl

import (
	"strconv"
)

// ClassExpression is a named class or an anonymous class expression.
type ClassExpression interface {
	Object
	classExpression()
}

// ObjectPropertyExpression is a named object property or its inverse.
type ObjectPropertyExpression interface {
	Object
	objectPropertyExpression()
}

func (Class) classExpression()                    {}
func (ObjectProperty) objectPropertyExpression()  {}
func (ObjectInverseOf) objectPropertyExpression() {}
func (ObjectIntersectionOf) classExpression()     {}
func (ObjectUnionOf) classExpression()            {}
func (ObjectComplementOf) classExpression()       {}
func (ObjectOneOf) classExpression()              {}
func (*ObjectRestriction) classExpression()       {}
func (*DataRestriction) classExpression()         {}

// ObjectInverseOf is the inverse of a named object property.
type ObjectInverseOf struct {
	Property ObjectProperty
}

func (e ObjectInverseOf) String() string {
	return "ObjectInverseOf(" + e.Property.String() + ")"
}

// ObjectIntersectionOf is the conjunction of class expressions.
type ObjectIntersectionOf []ClassExpression

func (e ObjectIntersectionOf) String() string {
	return "ObjectIntersectionOf(" + join(classOperands(e)) + ")"
}

// ObjectUnionOf is the disjunction of class expressions.
type ObjectUnionOf []ClassExpression

func (e ObjectUnionOf) String() string {
	return "ObjectUnionOf(" + join(classOperands(e)) + ")"
}

func classOperands(list []ClassExpression) []Object {
	objs := make([]Object, 0, len(list))
	for _, c := range list {
		objs = append(objs, c)
	}
	sortObjects(objs)
	return dedupObjects(objs)
}

// ObjectComplementOf is the negation of a class expression.
type ObjectComplementOf struct {
	Operand ClassExpression
}

func (e ObjectComplementOf) String() string {
	return "ObjectComplementOf(" + e.Operand.String() + ")"
}

// ObjectOneOf enumerates individuals.
type ObjectOneOf []Individual

func (e ObjectOneOf) String() string {
	objs := make([]Object, 0, len(e))
	for _, c := range e {
		objs = append(objs, c)
	}
	sortObjects(objs)
	return "ObjectOneOf(" + join(dedupObjects(objs)) + ")"
}

// RestrictionKind selects the flavour of a property restriction.
type RestrictionKind int

const (
	SomeValuesFrom RestrictionKind = iota + 1
	AllValuesFrom
	HasValue
	HasSelf
	MinCardinality
	MaxCardinality
	ExactCardinality
)

var restrictionNames = map[RestrictionKind]string{
	SomeValuesFrom:   "SomeValuesFrom",
	AllValuesFrom:    "AllValuesFrom",
	HasValue:         "HasValue",
	HasSelf:          "HasSelf",
	MinCardinality:   "MinCardinality",
	MaxCardinality:   "MaxCardinality",
	ExactCardinality: "ExactCardinality",
}

func (k RestrictionKind) String() string { return restrictionNames[k] }

// IsCardinality reports whether the restriction carries a cardinality.
func (k RestrictionKind) IsCardinality() bool {
	return k == MinCardinality || k == MaxCardinality || k == ExactCardinality
}

// ObjectRestriction restricts the values of an object property.
//
// Filler is used by SomeValuesFrom, AllValuesFrom and qualified cardinality
// restrictions, Value by HasValue. HasSelf uses neither.
type ObjectRestriction struct {
	Kind        RestrictionKind
	Property    ObjectPropertyExpression
	Filler      ClassExpression
	Value       Individual
	Cardinality int
}

func (r *ObjectRestriction) String() string {
	s := "Object" + r.Kind.String() + "("
	switch {
	case r.Kind.IsCardinality():
		s += strconv.Itoa(r.Cardinality) + " " + r.Property.String()
		if r.Filler != nil {
			s += " " + r.Filler.String()
		}
	case r.Kind == HasValue:
		s += r.Property.String() + " " + r.Value.String()
	case r.Kind == HasSelf:
		s += r.Property.String()
	default:
		s += r.Property.String() + " " + r.Filler.String()
	}
	return s + ")"
}

// DataRestriction restricts the values of a data property.
type DataRestriction struct {
	Kind        RestrictionKind
	Property    DataProperty
	Range       DataRange
	Value       Literal
	Cardinality int
}

func (r *DataRestriction) String() string {
	s := "Data" + r.Kind.String() + "("
	switch {
	case r.Kind.IsCardinality():
		s += strconv.Itoa(r.Cardinality) + " " + r.Property.String()
		if r.Range != nil {
			s += " " + r.Range.String()
		}
	case r.Kind == HasValue:
		s += r.Property.String() + " " + r.Value.String()
	default:
		s += r.Property.String() + " " + r.Range.String()
	}
	return s + ")"
}

// ObjectPropertyChain is the composition of object properties used as the
// sub property of a property chain axiom.
type ObjectPropertyChain []ObjectPropertyExpression

func (c ObjectPropertyChain) String() string {
	objs := make([]Object, 0, len(c))
	for _, p := range c {
		objs = append(objs, p)
	}
	return "ObjectPropertyChain(" + join(objs) + ")"
}

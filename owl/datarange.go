package owl

// DataRange is a datatype or an anonymous data range.
type DataRange interface {
	Object
	dataRange()
}

func (Datatype) dataRange()             {}
func (DataIntersectionOf) dataRange()   {}
func (DataUnionOf) dataRange()          {}
func (DataComplementOf) dataRange()     {}
func (DataOneOf) dataRange()            {}
func (*DatatypeRestriction) dataRange() {}

// DataIntersectionOf is the conjunction of data ranges.
type DataIntersectionOf []DataRange

func (e DataIntersectionOf) String() string {
	return "DataIntersectionOf(" + join(rangeOperands(e)) + ")"
}

// DataUnionOf is the disjunction of data ranges.
type DataUnionOf []DataRange

func (e DataUnionOf) String() string {
	return "DataUnionOf(" + join(rangeOperands(e)) + ")"
}

func rangeOperands(list []DataRange) []Object {
	objs := make([]Object, 0, len(list))
	for _, r := range list {
		objs = append(objs, r)
	}
	sortObjects(objs)
	return dedupObjects(objs)
}

// DataComplementOf is the complement of a data range.
type DataComplementOf struct {
	Operand DataRange
}

func (e DataComplementOf) String() string {
	return "DataComplementOf(" + e.Operand.String() + ")"
}

// DataOneOf enumerates literals.
type DataOneOf []Literal

func (e DataOneOf) String() string {
	objs := make([]Object, 0, len(e))
	for _, l := range e {
		objs = append(objs, l)
	}
	sortObjects(objs)
	return "DataOneOf(" + join(dedupObjects(objs)) + ")"
}

// FacetRestriction constrains a datatype facet to a value.
type FacetRestriction struct {
	Facet Object
	Value Literal
}

// DatatypeRestriction narrows a datatype with facets.
type DatatypeRestriction struct {
	Datatype Datatype
	Facets   []FacetRestriction
}

func (r *DatatypeRestriction) String() string {
	s := "DatatypeRestriction(" + r.Datatype.String()
	for _, f := range r.Facets {
		s += " " + f.Facet.String() + " " + f.Value.String()
	}
	return s + ")"
}

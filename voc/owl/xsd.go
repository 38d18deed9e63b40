package owl

import "github.com/cayleygraph/quad/voc/xsd"

// XML Schema datatypes and facets referenced by the mapping that the xsd
// vocabulary package does not name.
const (
	XSDInteger            = xsd.NS + "integer"
	XSDNonNegativeInteger = xsd.NS + "nonNegativeInteger"
	XSDDecimal            = xsd.NS + "decimal"
	XSDDouble             = xsd.NS + "double"
	XSDFloat              = xsd.NS + "float"

	XSDMinInclusive = xsd.NS + "minInclusive"
	XSDMaxInclusive = xsd.NS + "maxInclusive"
	XSDMinExclusive = xsd.NS + "minExclusive"
	XSDMaxExclusive = xsd.NS + "maxExclusive"
	XSDLength       = xsd.NS + "length"
	XSDMinLength    = xsd.NS + "minLength"
	XSDMaxLength    = xsd.NS + "maxLength"
	XSDPattern      = xsd.NS + "pattern"
	XSDLangRange    = `http://www.w3.org/1999/02/22-rdf-syntax-ns#langRange`
)

// IsFacet reports whether iri names a constraining facet usable in a
// datatype restriction.
func IsFacet(iri string) bool {
	switch iri {
	case XSDMinInclusive, XSDMaxInclusive, XSDMinExclusive, XSDMaxExclusive,
		XSDLength, XSDMinLength, XSDMaxLength, XSDPattern, XSDLangRange:
		return true
	}
	return false
}

// IsBuiltinDatatype reports whether iri belongs to the XML Schema namespace,
// or is rdfs:Literal, rdf:PlainLiteral, rdf:langString or rdf:XMLLiteral.
func IsBuiltinDatatype(iri string) bool {
	switch iri {
	case `http://www.w3.org/2000/01/rdf-schema#Literal`,
		`http://www.w3.org/1999/02/22-rdf-syntax-ns#PlainLiteral`,
		`http://www.w3.org/1999/02/22-rdf-syntax-ns#langString`,
		`http://www.w3.org/1999/02/22-rdf-syntax-ns#XMLLiteral`:
		return true
	}
	return len(iri) > len(xsd.NS) && iri[:len(xsd.NS)] == xsd.NS && !IsFacet(iri)
}

const (
	XSDString  = xsd.NS + "string"
	XSDBoolean = xsd.NS + "boolean"
)

// Package rdf contains the RDF vocabulary expanded to full IRIs.
//
// Constants in github.com/cayleygraph/quad/voc/rdf are prefixed ("rdf:type"),
// while documents read by the quad format readers carry full IRIs.
package rdf

import (
	"github.com/cayleygraph/quad/voc/rdf"
)

const (
	NS     = rdf.NS
	Prefix = rdf.Prefix
)

const (
	// Types

	// The datatype of language-tagged string values
	LangString = NS + "langString"
	// The class of plain (i.e. untyped) literal values, as used in RIF and OWL 2
	PlainLiteral = NS + "PlainLiteral"
	// The datatype of XML literal values
	XMLLiteral = NS + "XMLLiteral"
	// The class of RDF properties.
	Property = NS + "Property"
	// The class of RDF Lists.
	List = NS + "List"
	// The empty list, with no items in it. If the rest of a list is nil then the list has no more items in it.
	Nil = NS + "nil"

	// Properties

	// The subject is an instance of a class.
	Type = NS + "type"
	// The first item in the subject RDF list.
	First = NS + "first"
	// The rest of the subject RDF list after the first item.
	Rest = NS + "rest"
)

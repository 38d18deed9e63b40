// Package rdfs contains the RDF Schema vocabulary expanded to full IRIs.
package rdfs

import (
	"github.com/cayleygraph/quad/voc/rdfs"
)

const (
	NS     = rdfs.NS
	Prefix = rdfs.Prefix
)

const (
	// Classes

	// The class resource, everything.
	Resource = NS + "Resource"
	// The class of classes.
	Class = NS + "Class"
	// The class of literal values, eg. textual strings and integers.
	Literal = NS + "Literal"
	// The class of RDF datatypes.
	Datatype = NS + "Datatype"

	// Properties

	// The subject is a subclass of a class.
	SubClassOf = NS + "subClassOf"
	// The subject is a subproperty of a property.
	SubPropertyOf = NS + "subPropertyOf"
	// A domain of the subject property.
	Domain = NS + "domain"
	// A range of the subject property.
	Range = NS + "range"
	// A description of the subject resource.
	Comment = NS + "comment"
	// A human-readable name for the subject.
	Label = NS + "label"
	// Further information about the subject resource.
	SeeAlso = NS + "seeAlso"
	// The defininition of the subject resource.
	IsDefinedBy = NS + "isDefinedBy"
)

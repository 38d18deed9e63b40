// Package core imports all vocabularies used by the translator, registering
// their prefixes with github.com/cayleygraph/quad/voc.
package core

import (
	_ "github.com/cayleygraph/quad/voc/xsd"

	_ "github.com/cayleygraph/owlrdf/voc/owl"
	_ "github.com/cayleygraph/owlrdf/voc/rdf"
	_ "github.com/cayleygraph/owlrdf/voc/rdfs"
)

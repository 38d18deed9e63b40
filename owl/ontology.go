package owl

import (
	"bufio"
	"io"

	"github.com/cayleygraph/quad"
)

// Ontology is the header of a translated document.
type Ontology struct {
	IRI         quad.IRI
	VersionIRI  quad.IRI
	Imports     []quad.IRI
	Annotations []Annotation
}

// WriteFunctional writes the ontology header followed by the axioms in
// functional-style syntax.
func WriteFunctional(w io.Writer, o *Ontology, axioms []*Axiom) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Ontology(")
	if o != nil && o.IRI != "" {
		bw.WriteString(o.IRI.String())
		if o.VersionIRI != "" {
			bw.WriteString(" " + o.VersionIRI.String())
		}
	}
	bw.WriteString("\n")
	if o != nil {
		for _, imp := range o.Imports {
			bw.WriteString("Import(" + imp.String() + ")\n")
		}
		for _, a := range o.Annotations {
			bw.WriteString(a.String() + "\n")
		}
	}
	for _, ax := range axioms {
		bw.WriteString(ax.String() + "\n")
	}
	bw.WriteString(")\n")
	return bw.Flush()
}

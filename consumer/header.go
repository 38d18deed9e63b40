package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/inference"
	"github.com/cayleygraph/owlrdf/owl"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

// builtinAnnotations are the annotation properties every document may use
// without declaring them.
var builtinAnnotations = []quad.IRI{
	rdfs.Label,
	rdfs.Comment,
	rdfs.SeeAlso,
	rdfs.IsDefinedBy,
	vowl.VersionInfo,
	vowl.Deprecated,
	vowl.PriorVersion,
	vowl.BackwardCompatibleWith,
	vowl.IncompatibleWith,
}

func isBuiltinAnnotation(p quad.IRI) bool {
	for _, b := range builtinAnnotations {
		if b == p {
			return true
		}
	}
	return false
}

// annotationAssertion translates (s p v) where p is an annotation property.
// Annotations of the ontology node go to the ontology header.
func (tr *translation) annotationAssertion(p quad.IRI, t quad.Quad) ([]*owl.Axiom, bool) {
	if tr.s.isBookkeeping(t.Subject) {
		return nil, false
	}
	val, ok := annotationValue(t.Object)
	if !ok {
		return nil, false
	}
	if tr.s.types.Is(t.Subject, inference.Ontology) {
		s := tr.s
		ann := owl.Annotation{Property: owl.AnnotationProperty(p), Value: val}
		tr.then(func() {
			s.ontology.Annotations = owl.SortAnnotations(append(s.ontology.Annotations, ann))
		})
		return nil, true
	}
	subj, ok := annotationSubject(t.Subject)
	if !ok {
		return nil, false
	}
	return []*owl.Axiom{tr.axiom(owl.AnnotationAssertion, owl.AnnotationProperty(p), subj, val)}, true
}

func buildAnnotation(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	p, ok := isNamed(t.Predicate)
	if !ok {
		return nil, false
	}
	return tr.annotationAssertion(p, t)
}

// buildImport translates (o owl:imports x) on the ontology node.
func buildImport(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	if !tr.s.types.Is(t.Subject, inference.Ontology) {
		return nil, false
	}
	iri, ok := isNamed(t.Object)
	if !ok {
		return nil, false
	}
	s := tr.s
	tr.then(func() {
		for _, imp := range s.ontology.Imports {
			if imp == iri {
				return
			}
		}
		s.ontology.Imports = append(s.ontology.Imports, iri)
	})
	return nil, true
}

// buildVersionIRI translates (o owl:versionIRI v) on the ontology node.
func buildVersionIRI(tr *translation, t quad.Quad) ([]*owl.Axiom, bool) {
	if !tr.s.types.Is(t.Subject, inference.Ontology) {
		return nil, false
	}
	iri, ok := isNamed(t.Object)
	if !ok {
		return nil, false
	}
	s := tr.s
	tr.then(func() { s.ontology.VersionIRI = iri })
	return nil, true
}

package expression

import (
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"

	"github.com/cayleygraph/owlrdf/owl"
	_ "github.com/cayleygraph/owlrdf/voc/core"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
)

// OntologyChecker resolves names against the entities mentioned by a set of
// axioms. A name may be a full IRI, a prefixed name such as owl:Thing, or a
// local name that identifies a single entity of the requested type.
type OntologyChecker struct {
	entities map[owl.EntityType]map[quad.IRI]struct{}
	local    map[owl.EntityType]map[string][]quad.IRI
}

var _ EntityChecker = (*OntologyChecker)(nil)

// NewOntologyChecker indexes every entity used by axioms.
func NewOntologyChecker(axioms []*owl.Axiom) *OntologyChecker {
	c := &OntologyChecker{
		entities: make(map[owl.EntityType]map[quad.IRI]struct{}),
		local:    make(map[owl.EntityType]map[string][]quad.IRI),
	}
	for _, ax := range axioms {
		for _, o := range ax.Operands {
			c.collect(o)
		}
		for _, an := range ax.Annotations {
			c.collect(an.Value)
		}
	}
	return c
}

// Add registers an entity.
func (c *OntologyChecker) Add(e owl.Entity) {
	t, iri := e.EntityType(), e.IRI()
	m := c.entities[t]
	if m == nil {
		m = make(map[quad.IRI]struct{})
		c.entities[t] = m
	}
	if _, ok := m[iri]; ok {
		return
	}
	m[iri] = struct{}{}
	l := c.local[t]
	if l == nil {
		l = make(map[string][]quad.IRI)
		c.local[t] = l
	}
	name := localName(string(iri))
	l[name] = append(l[name], iri)
}

func (c *OntologyChecker) collect(o owl.Object) {
	switch o := o.(type) {
	case owl.Entity:
		c.Add(o)
	case owl.ObjectInverseOf:
		c.Add(o.Property)
	case owl.ObjectIntersectionOf:
		for _, e := range o {
			c.collect(e)
		}
	case owl.ObjectUnionOf:
		for _, e := range o {
			c.collect(e)
		}
	case owl.ObjectComplementOf:
		c.collect(o.Operand)
	case owl.ObjectOneOf:
		for _, e := range o {
			c.collect(e)
		}
	case *owl.ObjectRestriction:
		c.collect(o.Property)
		if o.Filler != nil {
			c.collect(o.Filler)
		}
		if o.Value != nil {
			c.collect(o.Value)
		}
	case *owl.DataRestriction:
		c.Add(o.Property)
		if o.Range != nil {
			c.collect(o.Range)
		}
	case owl.ObjectPropertyChain:
		for _, e := range o {
			c.collect(e)
		}
	case owl.DataIntersectionOf:
		for _, e := range o {
			c.collect(e)
		}
	case owl.DataUnionOf:
		for _, e := range o {
			c.collect(e)
		}
	case owl.DataComplementOf:
		c.collect(o.Operand)
	case *owl.DatatypeRestriction:
		c.Add(o.Datatype)
	}
}

func localName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/:"); i >= 0 && i+1 < len(iri) {
		return iri[i+1:]
	}
	return iri
}

func (c *OntologyChecker) lookup(t owl.EntityType, name string) (quad.IRI, bool) {
	m := c.entities[t]
	if _, ok := m[quad.IRI(name)]; ok {
		return quad.IRI(name), true
	}
	if full := quad.IRI(voc.FullIRI(name)); full != quad.IRI(name) {
		if _, ok := m[full]; ok {
			return full, true
		}
	}
	if iris := c.local[t][name]; len(iris) == 1 {
		return iris[0], true
	}
	return "", false
}

func (c *OntologyChecker) Class(name string) (owl.Class, bool) {
	switch quad.IRI(voc.FullIRI(name)) {
	case owl.Thing.IRI():
		return owl.Thing, true
	case owl.Nothing.IRI():
		return owl.Nothing, true
	}
	iri, ok := c.lookup(owl.ClassEntity, name)
	return owl.Class(iri), ok
}

func (c *OntologyChecker) ObjectProperty(name string) (owl.ObjectProperty, bool) {
	iri, ok := c.lookup(owl.ObjectPropertyEntity, name)
	return owl.ObjectProperty(iri), ok
}

func (c *OntologyChecker) DataProperty(name string) (owl.DataProperty, bool) {
	iri, ok := c.lookup(owl.DataPropertyEntity, name)
	return owl.DataProperty(iri), ok
}

// Datatype also resolves the built-in datatypes, such as xsd:integer.
func (c *OntologyChecker) Datatype(name string) (owl.Datatype, bool) {
	if full := voc.FullIRI(name); vowl.IsBuiltinDatatype(full) {
		return owl.Datatype(full), true
	}
	iri, ok := c.lookup(owl.DatatypeEntity, name)
	return owl.Datatype(iri), ok
}

func (c *OntologyChecker) Individual(name string) (owl.NamedIndividual, bool) {
	iri, ok := c.lookup(owl.NamedIndividualEntity, name)
	return owl.NamedIndividual(iri), ok
}

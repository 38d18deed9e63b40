package owl

import (
	"bytes"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlrdf/nodeid"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

const (
	foo = Class("http://example.org/Foo")
	bar = Class("http://example.org/Bar")
	baz = ObjectProperty("http://example.org/baz")
	age = DataProperty("http://example.org/age")
)

func TestAxiomRendering(t *testing.T) {
	f := NewFactory()
	anon := AnonymousIndividual{ID: nodeid.Canonical("b1")}
	var cases = []struct {
		name string
		ax   *Axiom
		exp  string
	}{
		{
			name: "declaration",
			ax:   f.Axiom(Declaration, []Object{foo}, nil),
			exp:  "Declaration(Class(<http://example.org/Foo>))",
		},
		{
			name: "equivalent classes are a set",
			ax:   f.Axiom(EquivalentClasses, []Object{foo, bar, foo}, nil),
			exp:  "EquivalentClasses(<http://example.org/Bar> <http://example.org/Foo>)",
		},
		{
			name: "restriction",
			ax: f.Axiom(SubClassOf, []Object{foo, &ObjectRestriction{
				Kind: ExactCardinality, Property: baz, Cardinality: 1, Filler: bar,
			}}, nil),
			exp: "SubClassOf(<http://example.org/Foo> ObjectExactCardinality(1 <http://example.org/baz> <http://example.org/Bar>))",
		},
		{
			name: "data restriction",
			ax: f.Axiom(SubClassOf, []Object{foo, &DataRestriction{
				Kind: SomeValuesFrom, Property: age, Range: &DatatypeRestriction{
					Datatype: Datatype(vowl.XSDInteger),
					Facets: []FacetRestriction{{
						Facet: IRI(vowl.XSDMinInclusive),
						Value: Literal{Value: quad.TypedString{Value: "18", Type: vowl.XSDInteger}},
					}},
				},
			}}, nil),
			exp: `SubClassOf(<http://example.org/Foo> DataSomeValuesFrom(<http://example.org/age> DatatypeRestriction(<http://www.w3.org/2001/XMLSchema#integer> <http://www.w3.org/2001/XMLSchema#minInclusive> "18"^^<http://www.w3.org/2001/XMLSchema#integer>)))`,
		},
		{
			name: "class assertion of anonymous individual",
			ax:   f.Axiom(ClassAssertion, []Object{foo, anon}, nil),
			exp:  "ClassAssertion(<http://example.org/Foo> _:b1)",
		},
		{
			name: "has key",
			ax:   f.Axiom(HasKey, []Object{foo, baz, age}, nil),
			exp:  "HasKey(<http://example.org/Foo> (<http://example.org/baz>) (<http://example.org/age>))",
		},
		{
			name: "union operands are sorted",
			ax:   f.Axiom(EquivalentClasses, []Object{foo, ObjectUnionOf{foo, bar}}, nil),
			exp:  "EquivalentClasses(<http://example.org/Foo> ObjectUnionOf(<http://example.org/Bar> <http://example.org/Foo>))",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.exp, c.ax.String())
		})
	}
}

func TestAnnotate(t *testing.T) {
	f := NewFactory()
	label := Annotation{Property: AnnotationProperty(rdfs.Label), Value: Literal{Value: quad.String("foo")}}
	comment := Annotation{Property: AnnotationProperty(rdfs.Comment), Value: Literal{Value: quad.String("c")}}
	ax := f.Axiom(SubClassOf, []Object{foo, bar}, []Annotation{label})
	ax2 := f.Annotate(ax, []Annotation{comment, label})
	require.Len(t, ax.Annotations, 1)
	require.Len(t, ax2.Annotations, 2)
	require.Equal(t, ax.Key(), ax2.Key())
	require.Equal(t, `SubClassOf(Annotation(<http://www.w3.org/2000/01/rdf-schema#comment> "c") Annotation(<http://www.w3.org/2000/01/rdf-schema#label> "foo") <http://example.org/Foo> <http://example.org/Bar>)`, ax2.String())
}

func TestLiteral(t *testing.T) {
	l, ok := NewLiteral(quad.LangString{Value: "chat", Lang: "fr"})
	require.True(t, ok)
	require.Equal(t, "chat", l.Lexical())
	require.Equal(t, "fr", l.Lang())
	_, ok = NewLiteral(quad.IRI("http://example.org/x"))
	require.False(t, ok)
	l, _ = NewLiteral(quad.String("x"))
	require.Equal(t, quad.IRI(vowl.XSDString), l.Datatype())
}

func TestWriteFunctional(t *testing.T) {
	f := NewFactory()
	buf := bytes.NewBuffer(nil)
	o := &Ontology{IRI: "http://example.org/onto", Imports: []quad.IRI{"http://example.org/other"}}
	err := WriteFunctional(buf, o, []*Axiom{f.Axiom(SubClassOf, []Object{foo, bar}, nil)})
	require.NoError(t, err)
	require.Equal(t, "Ontology(<http://example.org/onto>\n"+
		"Import(<http://example.org/other>)\n"+
		"SubClassOf(<http://example.org/Foo> <http://example.org/Bar>)\n"+
		")\n", buf.String())
}

func TestAxiomTypes(t *testing.T) {
	types := AxiomTypes()
	require.Equal(t, Declaration, types[0])
	require.Equal(t, AnnotationAssertion, types[len(types)-1])
	for _, at := range types {
		require.NotEqual(t, "Axiom", at.String())
	}
}

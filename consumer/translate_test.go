package consumer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var translateCases = []struct {
	name   string
	strict bool
	doc    string
	exp    []string
}{
	{
		name: "data property domain and range",
		doc: `
ex:p rdfs:domain ex:A
ex:p rdfs:range xsd:string
ex:p rdf:type owl:DatatypeProperty
`,
		exp: []string{
			"DataPropertyDomain(<http://example.org/p> <http://example.org/A>)",
			"DataPropertyRange(<http://example.org/p> <http://www.w3.org/2001/XMLSchema#string>)",
			"Declaration(DataProperty(<http://example.org/p>))",
		},
	},
	{
		name: "property assertions",
		doc: `
ex:knows rdf:type owl:ObjectProperty
ex:age rdf:type owl:DatatypeProperty
ex:alice ex:knows ex:bob
ex:alice ex:age "42"^^xsd:integer
`,
		exp: []string{
			`DataPropertyAssertion(<http://example.org/age> <http://example.org/alice> "42"^^<http://www.w3.org/2001/XMLSchema#integer>)`,
			"Declaration(DataProperty(<http://example.org/age>))",
			"Declaration(ObjectProperty(<http://example.org/knows>))",
			"ObjectPropertyAssertion(<http://example.org/knows> <http://example.org/alice> <http://example.org/bob>)",
		},
	},
	{
		name: "named intersection",
		doc: `
ex:C owl:intersectionOf _:l1
_:l1 rdf:first ex:A
_:l1 rdf:rest _:l2
_:l2 rdf:first ex:B
_:l2 rdf:rest rdf:nil
`,
		exp: []string{
			"EquivalentClasses(<http://example.org/C> ObjectIntersectionOf(<http://example.org/A> <http://example.org/B>))",
		},
	},
	{
		name: "data cardinality",
		doc: `
ex:A rdfs:subClassOf _:r
_:r owl:onProperty ex:age
_:r owl:maxCardinality "1"^^xsd:nonNegativeInteger
ex:age rdf:type owl:DatatypeProperty
`,
		exp: []string{
			"Declaration(DataProperty(<http://example.org/age>))",
			"SubClassOf(<http://example.org/A> DataMaxCardinality(1 <http://example.org/age>))",
		},
	},
	{
		name: "qualified cardinality on inverse",
		doc: `
ex:A rdfs:subClassOf _:r
_:r owl:onProperty _:inv
_:inv owl:inverseOf ex:p
_:r owl:qualifiedCardinality "2"^^xsd:nonNegativeInteger
_:r owl:onClass ex:B
`,
		exp: []string{
			"SubClassOf(<http://example.org/A> ObjectExactCardinality(2 ObjectInverseOf(<http://example.org/p>) <http://example.org/B>))",
		},
	},
	{
		name: "characteristics",
		doc: `
ex:Old rdf:type owl:DeprecatedClass
ex:p rdf:type owl:TransitiveProperty
ex:q rdf:type owl:FunctionalProperty
`,
		exp: []string{
			`AnnotationAssertion(<http://www.w3.org/2002/07/owl#deprecated> <http://example.org/Old> "true"^^<http://www.w3.org/2001/XMLSchema#boolean>)`,
			"Declaration(Class(<http://example.org/Old>))",
			"FunctionalObjectProperty(<http://example.org/q>)",
			"TransitiveObjectProperty(<http://example.org/p>)",
		},
	},
	{
		name: "all disjoint classes",
		doc: `
_:d rdf:type owl:AllDisjointClasses
_:d owl:members _:l1
_:l1 rdf:first ex:C
_:l1 rdf:rest _:l2
_:l2 rdf:first ex:A
_:l2 rdf:rest _:l3
_:l3 rdf:first ex:B
_:l3 rdf:rest rdf:nil
`,
		exp: []string{
			"DisjointClasses(<http://example.org/A> <http://example.org/B> <http://example.org/C>)",
		},
	},
	{
		name: "negative object property assertion",
		doc: `
ex:knows rdf:type owl:ObjectProperty
_:n rdf:type owl:NegativePropertyAssertion
_:n owl:sourceIndividual ex:alice
_:n owl:assertionProperty ex:knows
_:n owl:targetIndividual ex:bob
`,
		exp: []string{
			"Declaration(ObjectProperty(<http://example.org/knows>))",
			"NegativeObjectPropertyAssertion(<http://example.org/knows> <http://example.org/alice> <http://example.org/bob>)",
		},
	},
	{
		name: "property relations",
		doc: `
ex:p rdf:type owl:ObjectProperty
ex:q rdfs:subPropertyOf ex:p
ex:r owl:inverseOf ex:p
`,
		exp: []string{
			"Declaration(ObjectProperty(<http://example.org/p>))",
			"InverseObjectProperties(<http://example.org/p> <http://example.org/r>)",
			"SubObjectPropertyOf(<http://example.org/q> <http://example.org/p>)",
		},
	},
	{
		name: "property chain",
		doc: `
ex:p owl:propertyChainAxiom _:l1
_:l1 rdf:first ex:q
_:l1 rdf:rest _:l2
_:l2 rdf:first ex:r
_:l2 rdf:rest rdf:nil
ex:q rdf:type owl:ObjectProperty
ex:r rdf:type owl:ObjectProperty
`,
		exp: []string{
			"Declaration(ObjectProperty(<http://example.org/q>))",
			"Declaration(ObjectProperty(<http://example.org/r>))",
			"SubObjectPropertyOf(ObjectPropertyChain(<http://example.org/q> <http://example.org/r>) <http://example.org/p>)",
		},
	},
	{
		name: "annotations",
		doc: `
ex:A rdfs:label "A"@en
ex:note rdf:type owl:AnnotationProperty
ex:A ex:note "x"
`,
		exp: []string{
			`AnnotationAssertion(<http://example.org/note> <http://example.org/A> "x")`,
			`AnnotationAssertion(<http://www.w3.org/2000/01/rdf-schema#label> <http://example.org/A> "A"@en)`,
			"Declaration(AnnotationProperty(<http://example.org/note>))",
		},
	},
	{
		name: "datatype restriction",
		doc: `
ex:adult rdf:type rdfs:Datatype
ex:adult owl:equivalentClass _:dt
_:dt rdf:type rdfs:Datatype
_:dt owl:onDatatype xsd:integer
_:dt owl:withRestrictions _:l1
_:l1 rdf:first _:f
_:l1 rdf:rest rdf:nil
_:f xsd:minInclusive "18"^^xsd:integer
`,
		exp: []string{
			`DatatypeDefinition(<http://example.org/adult> DatatypeRestriction(<http://www.w3.org/2001/XMLSchema#integer> <http://www.w3.org/2001/XMLSchema#minInclusive> "18"^^<http://www.w3.org/2001/XMLSchema#integer>))`,
			"Declaration(Datatype(<http://example.org/adult>))",
		},
	},
	{
		name:   "has value in strict",
		strict: true,
		doc: `
ex:alice rdf:type _:r
_:r rdf:type owl:Restriction
_:r owl:onProperty ex:knows
_:r owl:hasValue ex:bob
ex:knows rdf:type owl:ObjectProperty
`,
		exp: []string{
			"ClassAssertion(ObjectHasValue(<http://example.org/knows> <http://example.org/bob>) <http://example.org/alice>)",
			"Declaration(ObjectProperty(<http://example.org/knows>))",
		},
	},
}

func TestTranslate(t *testing.T) {
	for _, c := range translateCases {
		t.Run(c.name, func(t *testing.T) {
			res := run(t, Config{Strict: c.strict}, parseDoc(c.doc))
			require.Equal(t, c.exp, rendered(res.Axioms))
			require.Empty(t, res.Residue)
			require.Zero(t, res.Dropped)
		})
	}
}

func TestOntologyHeader(t *testing.T) {
	for _, strict := range []bool{false, true} {
		res := run(t, Config{Strict: strict}, parseDoc(`
ex:onto rdfs:label "O"
ex:onto rdf:type owl:Ontology
ex:onto owl:imports ex:other
ex:onto owl:imports ex:other2
ex:onto owl:versionIRI ex:onto1
`))
		require.Empty(t, res.Axioms)
		require.Empty(t, res.Residue)
		require.Equal(t, iri("onto"), res.Ontology.IRI)
		require.Equal(t, iri("onto1"), res.Ontology.VersionIRI)
		require.Len(t, res.Ontology.Imports, 2)
		require.Len(t, res.Ontology.Annotations, 1)
		require.Equal(t, `Annotation(<http://www.w3.org/2000/01/rdf-schema#label> "O")`, res.Ontology.Annotations[0].String())
	}
}

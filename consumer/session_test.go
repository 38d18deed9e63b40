package consumer

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlrdf/nodeid"
	"github.com/cayleygraph/owlrdf/owl"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdf"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

const ex = "http://example.org/"

func iri(s string) quad.IRI { return quad.IRI(ex + s) }

func triple(s, p, o quad.Value) quad.Quad {
	return quad.Quad{Subject: s, Predicate: p, Object: o}
}

var prefixes = map[string]string{
	"ex:":   ex,
	"owl:":  vowl.NS,
	"rdf:":  rdf.NS,
	"rdfs:": rdfs.NS,
	"xsd:":  "http://www.w3.org/2001/XMLSchema#",
}

func term(s string) quad.Value {
	switch {
	case strings.HasPrefix(s, "_:"):
		return quad.BNode(s[2:])
	case strings.HasPrefix(s, `"`):
		i := strings.LastIndex(s, `"`)
		lex := quad.String(s[1:i])
		if rest := s[i+1:]; strings.HasPrefix(rest, "^^") {
			return quad.TypedString{Value: lex, Type: term(rest[2:]).(quad.IRI)}
		} else if strings.HasPrefix(rest, "@") {
			return quad.LangString{Value: lex, Lang: rest[1:]}
		}
		return lex
	}
	for p, ns := range prefixes {
		if strings.HasPrefix(s, p) {
			return quad.IRI(ns + s[len(p):])
		}
	}
	panic("unknown term: " + s)
}

// parseDoc reads one triple per line written with the prefixes above.
// Literals must not contain spaces.
func parseDoc(doc string) []quad.Quad {
	var out []quad.Quad
	for _, line := range strings.Split(doc, "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if len(f) != 3 {
			panic("bad line: " + line)
		}
		out = append(out, triple(term(f[0]), term(f[1]), term(f[2])))
	}
	return out
}

func run(t testing.TB, cfg Config, quads []quad.Quad) *Result {
	s := NewSession(cfg)
	for _, q := range quads {
		require.NoError(t, s.HandleTriple(q))
	}
	res, err := s.EndModel(context.Background())
	require.NoError(t, err)
	return res
}

func rendered(axioms []*owl.Axiom) []string {
	out := make([]string, 0, len(axioms))
	for _, ax := range axioms {
		out = append(out, ax.String())
	}
	sort.Strings(out)
	return out
}

func TestLaxEquivalenceStreams(t *testing.T) {
	streamed := testutil.ToFloat64(mTriplesStreamed)
	equiv := testutil.ToFloat64(mAxioms.WithLabelValues("EquivalentClasses"))

	res := run(t, Config{}, parseDoc(`ex:A owl:equivalentClass ex:B`))
	require.Equal(t, []string{"EquivalentClasses(<http://example.org/A> <http://example.org/B>)"}, rendered(res.Axioms))
	require.Empty(t, res.Residue)
	require.Zero(t, res.Dropped)
	require.Equal(t, Stats{Triples: 1, Streamed: 1, Sweeps: 1}, res.Stats)

	require.Equal(t, streamed+1, testutil.ToFloat64(mTriplesStreamed))
	require.Equal(t, equiv+1, testutil.ToFloat64(mAxioms.WithLabelValues("EquivalentClasses")))
}

func TestStrictDatatypeEquivalence(t *testing.T) {
	res := run(t, Config{Strict: true}, parseDoc(`
ex:A owl:equivalentClass ex:B
ex:B rdf:type rdfs:Datatype
`))
	require.Equal(t, []string{
		"DatatypeDefinition(<http://example.org/A> <http://example.org/B>)",
		"Declaration(Datatype(<http://example.org/B>))",
	}, rendered(res.Axioms))
	// the declaration is translated first, unblocking the equivalence
	require.Equal(t, owl.Declaration, res.Axioms[0].Type)
	require.Equal(t, owl.DatatypeDefinition, res.Axioms[1].Type)
	require.Empty(t, res.Residue)
	require.Equal(t, 0, res.Stats.Streamed)
	require.Equal(t, 2, res.Stats.Deferred)
	require.Equal(t, 3, res.Stats.Sweeps)
}

func TestUnknownPredicate(t *testing.T) {
	doc := parseDoc(`ex:X ex:unknownPredicate ex:Y`)

	res := run(t, Config{Strict: true}, doc)
	require.Empty(t, res.Axioms)
	require.Len(t, res.Residue, 1)
	require.Equal(t, ReasonNoHandler, res.Residue[0].Reason)
	require.Equal(t, doc[0], res.Residue[0].Triple)
	require.Error(t, res.Err())
	require.Contains(t, res.Err().Error(), "no registered handler")

	res = run(t, Config{}, doc)
	require.Empty(t, res.Axioms)
	require.Empty(t, res.Residue)
	require.NoError(t, res.Err())
	require.Equal(t, 1, res.Dropped)
}

func TestEquivalenceStreamingModes(t *testing.T) {
	h := equivalenceHandler{}
	named := triple(iri("A"), quad.IRI(vowl.EquivalentClass), iri("B"))
	anon := triple(quad.BNode("a"), quad.IRI(vowl.EquivalentClass), quad.BNode("b"))

	lax := NewSession(Config{})
	strict := NewSession(Config{Strict: true})
	require.False(t, h.CanHandleStreaming(lax, anon))
	require.False(t, h.CanHandleStreaming(strict, anon))
	require.True(t, h.CanHandleStreaming(lax, named))
	require.False(t, h.CanHandleStreaming(strict, named))
}

func TestHandleIsIdempotent(t *testing.T) {
	s := NewSession(Config{})
	h := equivalenceHandler{}
	q := triple(iri("A"), quad.IRI(vowl.EquivalentClass), iri("B"))

	require.Equal(t, Resolved, h.Handle(s, q))
	require.Equal(t, Resolved, h.Handle(s, q))
	require.Len(t, s.Axioms(), 1)
	require.Equal(t, 1, s.Store().ConsumedCount())

	require.NoError(t, s.HandleTriple(q))
	require.Len(t, s.Axioms(), 1)
}

func TestDuplicateTriples(t *testing.T) {
	doc := parseDoc(`
ex:A rdfs:subClassOf _:r
_:r rdf:type owl:Restriction
_:r owl:onProperty ex:p
_:r owl:someValuesFrom ex:B
ex:A rdfs:subClassOf _:r
_:r owl:onProperty ex:p
`)
	res := run(t, Config{}, doc)
	require.Len(t, res.Axioms, 1)
	require.Equal(t, 4, res.Stats.Deferred)
	require.Zero(t, res.Dropped)
}

var restrictionDoc = `
ex:A rdfs:subClassOf _:r
_:r rdf:type owl:Restriction
_:r owl:onProperty ex:p
_:r owl:someValuesFrom ex:B
ex:p rdf:type owl:ObjectProperty
ex:A rdf:type owl:Class
ex:B rdf:type owl:Class
`

var restrictionAxioms = []string{
	"Declaration(Class(<http://example.org/A>))",
	"Declaration(Class(<http://example.org/B>))",
	"Declaration(ObjectProperty(<http://example.org/p>))",
	"SubClassOf(<http://example.org/A> ObjectSomeValuesFrom(<http://example.org/p> <http://example.org/B>))",
}

// permutations calls fn with every ordering of quads.
func permutations(quads []quad.Quad, fn func([]quad.Quad)) {
	var perm func(int)
	perm = func(k int) {
		if k == len(quads) {
			cp := make([]quad.Quad, len(quads))
			copy(cp, quads)
			fn(cp)
			return
		}
		for i := k; i < len(quads); i++ {
			quads[k], quads[i] = quads[i], quads[k]
			perm(k + 1)
			quads[k], quads[i] = quads[i], quads[k]
		}
	}
	perm(0)
}

func TestOrderIndependence(t *testing.T) {
	for _, strict := range []bool{false, true} {
		n := 0
		permutations(parseDoc(restrictionDoc), func(quads []quad.Quad) {
			n++
			res := run(t, Config{Strict: strict, ExpectedTriples: 64}, quads)
			require.Equal(t, restrictionAxioms, rendered(res.Axioms), "strict=%v order=%v", strict, quads)
			require.Empty(t, res.Residue)
			require.Zero(t, res.Dropped)
		})
		require.Equal(t, 5040, n)
	}
}

func TestFixpointConverges(t *testing.T) {
	// each declaration unblocks a triple listed before it
	doc := parseDoc(`
ex:x ex:p ex:y
ex:A rdfs:subClassOf ex:B
ex:p rdf:type owl:ObjectProperty
ex:A rdf:type owl:Class
ex:B rdf:type owl:Class
`)
	res := run(t, Config{Strict: true}, doc)
	require.Empty(t, res.Residue)
	require.Equal(t, 3, res.Stats.Sweeps)
	require.Equal(t, 5, res.Stats.Swept)
	require.Contains(t, rendered(res.Axioms),
		"ObjectPropertyAssertion(<http://example.org/p> <http://example.org/x> <http://example.org/y>)")

	res = run(t, Config{Strict: true, MaxSweeps: 1}, doc)
	require.Equal(t, 1, res.Stats.Sweeps)
	require.Len(t, res.Residue, 2)
	for _, u := range res.Residue {
		require.Equal(t, ReasonUnresolvable, u.Reason)
	}
}

func TestCyclicListTerminates(t *testing.T) {
	doc := parseDoc(`
ex:C owl:intersectionOf _:l1
_:l1 rdf:first ex:A
_:l1 rdf:rest _:l2
_:l2 rdf:first ex:B
_:l2 rdf:rest _:l1
ex:A rdf:type owl:Class
ex:B rdf:type owl:Class
ex:C rdf:type owl:Class
`)
	res := run(t, Config{Strict: true}, doc)
	require.Len(t, res.Axioms, 3)
	require.Len(t, res.Residue, 5)
	require.Equal(t, 2, res.Stats.Sweeps)
	for _, u := range res.Residue {
		require.Equal(t, ReasonUnresolvable, u.Reason)
	}

	res = run(t, Config{}, doc)
	require.Len(t, res.Axioms, 3)
	require.Equal(t, 5, res.Dropped)
	require.Equal(t, 1, res.Stats.Sweeps)
}

func TestRejectedCardinality(t *testing.T) {
	res := run(t, Config{Strict: true}, parseDoc(`
ex:A rdf:type owl:Class
ex:p rdf:type owl:ObjectProperty
ex:A rdfs:subClassOf _:r
_:r rdf:type owl:Restriction
_:r owl:onProperty ex:p
_:r owl:cardinality "-1"^^xsd:nonNegativeInteger
`))
	require.Len(t, res.Axioms, 2)
	require.Len(t, res.Residue, 4)
	rej := res.Residue[0]
	require.Equal(t, ReasonRejected, rej.Reason)
	require.Equal(t, quad.IRI(rdfs.SubClassOf), rej.Triple.Predicate)
	require.Error(t, rej.Err)
	require.Contains(t, rej.Error(), "non-negative")
	for _, u := range res.Residue[1:] {
		require.Equal(t, ReasonUnresolvable, u.Reason)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(Config{})
	require.Equal(t, Streaming, s.State())
	require.Error(t, s.HandleTriple(quad.Quad{Subject: iri("a")}))

	_, err := s.EndModel(context.Background())
	require.NoError(t, err)
	require.Equal(t, Done, s.State())
	require.ErrorIs(t, s.HandleTriple(triple(iri("a"), iri("p"), iri("b"))), ErrDone)
	_, err = s.EndModel(context.Background())
	require.ErrorIs(t, err, ErrDone)
}

func TestEndModelCancelled(t *testing.T) {
	s := NewSession(Config{Strict: true})
	for _, q := range parseDoc(restrictionDoc) {
		require.NoError(t, s.HandleTriple(q))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.EndModel(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	require.Empty(t, res.Axioms)
	require.Len(t, res.Residue, 7)
}

func TestBlankNodePolicies(t *testing.T) {
	doc := parseDoc(`
_:a rdf:type ex:C
_:b rdf:type ex:C
_:a rdf:type ex:D
`)
	var cases = []struct {
		policy BlankNodePolicy
		a, b   string
	}{
		{Preserve, "_:a", "_:b"},
		{Shared, "_:genid-nodeid-a", "_:genid-nodeid-b"},
		{Fresh, "_:genid42", "_:genid43"},
	}
	for _, c := range cases {
		t.Run(c.policy.String(), func(t *testing.T) {
			res := run(t, Config{BlankNodes: c.policy, IDs: nodeid.NewGenerator(41)}, doc)
			require.Equal(t, []string{
				"ClassAssertion(<http://example.org/C> " + c.a + ")",
				"ClassAssertion(<http://example.org/C> " + c.b + ")",
				"ClassAssertion(<http://example.org/D> " + c.a + ")",
			}, rendered(res.Axioms))
		})
	}
}

func TestParseBlankNodePolicy(t *testing.T) {
	for _, p := range []BlankNodePolicy{Preserve, Shared, Fresh} {
		got, err := ParseBlankNodePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	got, err := ParseBlankNodePolicy("")
	require.NoError(t, err)
	require.Equal(t, Preserve, got)
	_, err = ParseBlankNodePolicy("random")
	require.Error(t, err)
}

var reificationDoc = `
_:ax rdf:type owl:Axiom
_:ax owl:annotatedSource ex:A
_:ax owl:annotatedProperty rdfs:subClassOf
_:ax owl:annotatedTarget ex:B
_:ax rdfs:comment "why"
ex:A rdfs:subClassOf ex:B
ex:A rdf:type owl:Class
ex:B rdf:type owl:Class
`

const annotatedSubClass = `SubClassOf(Annotation(<http://www.w3.org/2000/01/rdf-schema#comment> "why") <http://example.org/A> <http://example.org/B>)`

func TestReification(t *testing.T) {
	// lax: the target streams first and is annotated afterwards
	res := run(t, Config{}, parseDoc(reificationDoc))
	require.Contains(t, rendered(res.Axioms), annotatedSubClass)
	require.Len(t, res.Axioms, 3)
	require.Zero(t, res.Dropped)

	// strict: the target waits for the declarations and takes the pending annotation
	res = run(t, Config{Strict: true}, parseDoc(reificationDoc))
	require.Equal(t, []string{
		"Declaration(Class(<http://example.org/A>))",
		"Declaration(Class(<http://example.org/B>))",
		annotatedSubClass,
	}, rendered(res.Axioms))
	require.Empty(t, res.Residue)
}

func TestTranslateNQuads(t *testing.T) {
	doc := `<http://example.org/A> <http://www.w3.org/2002/07/owl#equivalentClass> <http://example.org/B> .
<http://example.org/onto> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Ontology> .
`
	res, err := Translate(context.Background(), nquads.NewReader(strings.NewReader(doc), false), Config{})
	require.NoError(t, err)
	require.Len(t, res.Axioms, 1)
	require.Equal(t, iri("onto"), res.Ontology.IRI)
	require.Equal(t, 2, res.Stats.Triples)
}

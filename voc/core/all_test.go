package core

import (
	"testing"

	"github.com/cayleygraph/quad/voc"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/owlrdf/voc/owl"
	"github.com/cayleygraph/owlrdf/voc/rdf"
	"github.com/cayleygraph/owlrdf/voc/rdfs"
)

var casesShortIRI = []struct {
	full  string
	short string
}{
	{full: owl.Class, short: "owl:Class"},
	{full: owl.EquivalentClass, short: "owl:equivalentClass"},
	{full: rdf.Type, short: "rdf:type"},
	{full: rdfs.SubClassOf, short: "rdfs:subClassOf"},
	{full: owl.XSDInteger, short: "xsd:integer"},
}

func TestShortIRI(t *testing.T) {
	for _, c := range casesShortIRI {
		require.Equal(t, c.short, voc.ShortIRI(c.full))
		require.Equal(t, c.full, voc.FullIRI(c.short))
	}
}

func TestBuiltinDatatype(t *testing.T) {
	require.True(t, owl.IsBuiltinDatatype(owl.XSDInteger))
	require.True(t, owl.IsBuiltinDatatype(rdfs.Literal))
	require.False(t, owl.IsBuiltinDatatype(owl.XSDMinInclusive))
	require.False(t, owl.IsBuiltinDatatype(owl.Class))
	require.True(t, owl.IsFacet(owl.XSDPattern))
}

package consumer

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"
)

func TestStoreAddConsume(t *testing.T) {
	qs := NewStore(0)
	a := triple(iri("a"), iri("p"), iri("b"))
	b := triple(iri("b"), iri("p"), iri("c"))

	require.True(t, qs.Add(a))
	require.False(t, qs.Add(a), "duplicate triple")
	require.True(t, qs.Add(b))
	require.Equal(t, 2, qs.Waiting())
	require.True(t, qs.IsWaiting(a))

	require.True(t, qs.Consume(a))
	require.False(t, qs.Consume(a), "second consume is a no-op")
	require.False(t, qs.IsWaiting(a))
	require.True(t, qs.IsConsumed(a))
	require.True(t, qs.Known(a))
	require.Equal(t, 1, qs.Waiting())
	require.Equal(t, 1, qs.ConsumedCount())
	require.Equal(t, []quad.Quad{b}, qs.Remaining())

	// consumed entries stay visible to lookups
	require.Equal(t, []quad.Quad{a}, qs.BySubject(iri("a")))
	require.Len(t, qs.ByPredicate(iri("p")), 2)
	got, ok := qs.One(iri("a"), iri("p"))
	require.True(t, ok)
	require.Equal(t, a, got)
	_, ok = qs.One(iri("c"), iri("p"))
	require.False(t, ok)
}

func TestStoreConsumeUnknown(t *testing.T) {
	qs := NewStore(16)
	a := triple(iri("a"), iri("p"), iri("b"))
	require.True(t, qs.Consume(a))
	require.False(t, qs.IsWaiting(a))
	require.False(t, qs.Add(a), "streamed triples are never stored")
	require.Equal(t, 0, qs.Waiting())
	require.Empty(t, qs.Remaining())
}

func TestStoreIgnoresLabel(t *testing.T) {
	qs := NewStore(0)
	a := triple(iri("a"), iri("p"), iri("b"))
	b := a
	b.Label = iri("graph")
	require.True(t, qs.Add(b))
	require.False(t, qs.Add(a))
	require.Nil(t, qs.Remaining()[0].Label)
}

func TestStoreOrder(t *testing.T) {
	qs := NewStore(0)
	var exp []quad.Quad
	for _, s := range []string{"z", "a", "m", "b"} {
		q := triple(iri(s), iri("p"), quad.String(s))
		exp = append(exp, q)
		qs.Add(q)
	}
	require.Equal(t, exp, qs.Remaining())
	qs.Consume(exp[1])
	require.Equal(t, []quad.Quad{exp[0], exp[2], exp[3]}, qs.Remaining())
}

package nodeid

import (
	"sync"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	g := NewGenerator(0)
	for _, c := range []struct {
		raw, exp string
	}{
		{raw: "b1", exp: "_:b1"},
		{raw: "_:b1", exp: "_:b1"},
		{raw: "_:genid-nodeid-x", exp: "_:genid-nodeid-x"},
	} {
		id := g.Canonical(c.raw)
		require.Equal(t, c.exp, id.String())
		require.Equal(t, id, g.Canonical(c.raw))
	}
	// canonicalisation never touches the counter
	require.Equal(t, "_:genid1", g.Next().String())
}

func TestCanonicalEmptyIsFresh(t *testing.T) {
	g := NewGenerator(41)
	a := g.Canonical("")
	b := g.Canonical("")
	require.Equal(t, "_:genid42", a.String())
	require.Equal(t, "_:genid43", b.String())
	require.NotEqual(t, a, b)
	require.True(t, a.Less(b))
}

func TestConcurrentMinting(t *testing.T) {
	const (
		workers = 8
		each    = 500
	)
	g := NewGenerator(0)
	var (
		mu   sync.Mutex
		seen = make(map[NodeID]struct{})
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]NodeID, 0, each)
			for j := 0; j < each; j++ {
				local = append(local, g.Next())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Len(t, seen, workers*each)
}

func TestShared(t *testing.T) {
	id := Shared("genidabc")
	require.Equal(t, "_:genid-nodeid-abc", id.String())
	require.Equal(t, id, Shared("abc"))
	require.True(t, IsSyntheticLabel(id.String()))
	require.Equal(t, quad.BNode("genid-nodeid-abc"), id.BNode())
}

func TestRecognition(t *testing.T) {
	for _, c := range []struct {
		s         string
		anon, syn bool
	}{
		{s: "_:b0", anon: true},
		{s: "http://example.org/genid7", anon: true},
		{s: "_:genid-nodeid-7", anon: true, syn: true},
		{s: "http://example.org/A"},
	} {
		require.Equal(t, c.anon, IsAnonymousReference(c.s), c.s)
		require.Equal(t, c.syn, IsSyntheticLabel(c.s), c.s)
	}
	require.True(t, IsAnonymous(quad.BNode("x")))
	require.False(t, IsAnonymous(quad.IRI("http://example.org/A")))
	require.False(t, IsAnonymous(quad.String("_:x")))
}

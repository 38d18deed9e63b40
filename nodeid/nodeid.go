// Package nodeid implements identity of anonymous (blank) nodes.
//
// Labels taken from a document are kept verbatim with the blank node prefix
// enforced. Labels minted by the engine carry the "genid" tag followed by a
// value of a monotonically increasing counter, so they never collide with each
// other, even across concurrently running sessions sharing a Generator.
package nodeid

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cayleygraph/quad"
)

const (
	// Prefix starts every canonical blank node label.
	Prefix = "_:"
	// Tag marks labels minted by a Generator.
	Tag = "genid"
	// SharedTag marks labels derived from rdf:nodeID attributes.
	SharedTag = "genid-nodeid-"
)

// NodeID is a canonical blank node identity. The zero value is not a valid
// identity; use Canonical or a Generator.
type NodeID struct {
	id string
}

// String returns the canonical label, always starting with Prefix.
func (n NodeID) String() string { return n.id }

// IsZero reports whether n was never assigned.
func (n NodeID) IsZero() bool { return n.id == "" }

// Less orders identities by their canonical labels.
func (n NodeID) Less(o NodeID) bool { return n.id < o.id }

// BNode converts the identity to a quad blank node value.
func (n NodeID) BNode() quad.BNode {
	return quad.BNode(strings.TrimPrefix(n.id, Prefix))
}

// Generator mints fresh identities. It is safe for concurrent use.
type Generator struct {
	counter uint64
}

// NewGenerator creates a generator whose first minted label uses start+1.
func NewGenerator(start uint64) *Generator {
	return &Generator{counter: start}
}

// Default is the process-wide generator.
var Default = NewGenerator(0)

// Next mints a fresh identity.
func (g *Generator) Next() NodeID {
	n := atomic.AddUint64(&g.counter, 1)
	return NodeID{id: Prefix + Tag + strconv.FormatUint(n, 10)}
}

// Canonical returns the identity for raw. An empty raw mints a fresh one,
// otherwise raw is returned with Prefix enforced.
func (g *Generator) Canonical(raw string) NodeID {
	if raw == "" {
		return g.Next()
	}
	if strings.HasPrefix(raw, Prefix) {
		return NodeID{id: raw}
	}
	return NodeID{id: Prefix + raw}
}

// Canonical is a shorthand for Default.Canonical.
func Canonical(raw string) NodeID {
	return Default.Canonical(raw)
}

// Next is a shorthand for Default.Next.
func Next() NodeID {
	return Default.Next()
}

// Shared returns the identity used for an rdf:nodeID label, so that every
// reference to the same label within a document resolves to one node.
func Shared(label string) NodeID {
	return NodeID{id: Prefix + SharedTag + strings.Replace(label, Tag, "", -1)}
}

// IsAnonymousReference reports whether s denotes an anonymous node, either as
// a prefixed label or as a minted label that leaked into an IRI.
func IsAnonymousReference(s string) bool {
	return strings.HasPrefix(s, Prefix) || strings.Contains(s, Tag)
}

// IsSyntheticLabel reports whether s is a label minted for an rdf:nodeID.
func IsSyntheticLabel(s string) bool {
	return strings.Contains(s, SharedTag)
}

// IsAnonymous reports whether the quad value v refers to an anonymous node.
func IsAnonymous(v quad.Value) bool {
	switch v := v.(type) {
	case quad.BNode:
		return true
	case quad.IRI:
		return IsAnonymousReference(string(v))
	}
	return false
}

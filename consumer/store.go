package consumer

import (
	"strings"

	"github.com/cayleygraph/quad"
	boom "github.com/tylertreat/BoomFilters"
)

// DefaultExpectedTriples sizes the store bloom filter when the caller gives no hint.
const DefaultExpectedTriples = 64 * 1024

// tripleKey identifies a triple regardless of its graph label.
func tripleKey(q quad.Quad) string {
	var b strings.Builder
	b.WriteString(quad.ToString(q.Subject))
	b.WriteByte(' ')
	b.WriteString(quad.ToString(q.Predicate))
	b.WriteByte(' ')
	b.WriteString(quad.ToString(q.Object))
	return b.String()
}

// LogEntry is a triple held by the store.
type LogEntry struct {
	ID       int64
	Quad     quad.Quad
	Consumed bool
}

// Store is the working set of a session. It keeps every deferred triple in
// insertion order, indexed by subject, predicate and (subject, predicate), and
// the set of consumed triples. Consumed entries stay readable through the
// lookup methods, so shared structures can be read by more than one owner.
//
// A triple is either waiting (present and not consumed) or consumed, never both.
type Store struct {
	log       []LogEntry
	ids       map[string]int64
	consumed  map[string]struct{}
	waiting   int
	bySubject map[string][]int64
	byPred    map[string][]int64
	bySP      map[string][]int64

	exists *boom.BloomFilter
}

// NewStore creates an empty store sized for roughly n triples.
func NewStore(n uint) *Store {
	if n == 0 {
		n = DefaultExpectedTriples
	}
	return &Store{
		// Sentinel null entry so indices start at 1
		log:       make([]LogEntry, 1, 256),
		ids:       make(map[string]int64),
		consumed:  make(map[string]struct{}),
		bySubject: make(map[string][]int64),
		byPred:    make(map[string][]int64),
		bySP:      make(map[string][]int64),
		exists:    boom.NewBloomFilter(n, 0.01),
	}
}

func spKey(s quad.Value, p quad.Value) string {
	return quad.ToString(s) + " " + quad.ToString(p)
}

func (qs *Store) indexOf(k string) (int64, bool) {
	if !qs.exists.Test([]byte(k)) {
		mStoreBloomHit.Inc()
		return 0, false
	}
	mStoreBloomMiss.Inc()
	id, ok := qs.ids[k]
	return id, ok
}

// Add inserts a triple into the working set. It reports false if the triple
// is already known, either waiting or consumed.
func (qs *Store) Add(q quad.Quad) bool {
	k := tripleKey(q)
	if _, ok := qs.consumed[k]; ok {
		return false
	}
	if _, ok := qs.indexOf(k); ok {
		return false
	}
	q.Label = nil
	id := int64(len(qs.log))
	qs.log = append(qs.log, LogEntry{ID: id, Quad: q})
	qs.ids[k] = id
	qs.exists.Add([]byte(k))
	sk := quad.ToString(q.Subject)
	qs.bySubject[sk] = append(qs.bySubject[sk], id)
	pk := quad.ToString(q.Predicate)
	qs.byPred[pk] = append(qs.byPred[pk], id)
	spk := spKey(q.Subject, q.Predicate)
	qs.bySP[spk] = append(qs.bySP[spk], id)
	qs.waiting++
	return true
}

// Consume marks a triple as translated. It reports whether the triple was
// not consumed before; consuming twice is a no-op. Triples that were never
// added, such as the ones translated while streaming, are recorded as
// consumed without entering the log.
func (qs *Store) Consume(q quad.Quad) bool {
	k := tripleKey(q)
	if _, ok := qs.consumed[k]; ok {
		return false
	}
	qs.consumed[k] = struct{}{}
	if id, ok := qs.indexOf(k); ok {
		qs.log[id].Consumed = true
		qs.waiting--
	}
	return true
}

// IsConsumed reports whether a triple was translated.
func (qs *Store) IsConsumed(q quad.Quad) bool {
	_, ok := qs.consumed[tripleKey(q)]
	return ok
}

// IsWaiting reports whether a triple is in the working set and not consumed.
func (qs *Store) IsWaiting(q quad.Quad) bool {
	k := tripleKey(q)
	if _, ok := qs.consumed[k]; ok {
		return false
	}
	_, ok := qs.indexOf(k)
	return ok
}

// Known reports whether a triple was seen, waiting or consumed.
func (qs *Store) Known(q quad.Quad) bool {
	return qs.IsConsumed(q) || qs.IsWaiting(q)
}

// Waiting returns the number of triples left in the working set.
func (qs *Store) Waiting() int {
	return qs.waiting
}

// ConsumedCount returns the number of consumed triples.
func (qs *Store) ConsumedCount() int {
	return len(qs.consumed)
}

// Remaining returns the waiting triples in insertion order.
func (qs *Store) Remaining() []quad.Quad {
	out := make([]quad.Quad, 0, qs.waiting)
	for _, e := range qs.log[1:] {
		if !e.Consumed {
			out = append(out, e.Quad)
		}
	}
	return out
}

func (qs *Store) quads(ids []int64) []quad.Quad {
	if len(ids) == 0 {
		return nil
	}
	out := make([]quad.Quad, 0, len(ids))
	for _, id := range ids {
		out = append(out, qs.log[id].Quad)
	}
	return out
}

// BySubject returns all triples with the given subject, consumed or not.
func (qs *Store) BySubject(s quad.Value) []quad.Quad {
	return qs.quads(qs.bySubject[quad.ToString(s)])
}

// ByPredicate returns all triples with the given predicate, consumed or not.
func (qs *Store) ByPredicate(p quad.Value) []quad.Quad {
	return qs.quads(qs.byPred[quad.ToString(p)])
}

// Find returns all triples with the given subject and predicate, consumed or not.
func (qs *Store) Find(s, p quad.Value) []quad.Quad {
	return qs.quads(qs.bySP[spKey(s, p)])
}

// One returns the first triple with the given subject and predicate.
func (qs *Store) One(s, p quad.Value) (quad.Quad, bool) {
	ids := qs.bySP[spKey(s, p)]
	if len(ids) == 0 {
		return quad.Quad{}, false
	}
	return qs.log[ids[0]].Quad, true
}

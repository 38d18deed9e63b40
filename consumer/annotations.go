package consumer

import (
	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/owl"
)

type pendingAnnotation struct {
	pred, obj string
	ann       owl.Annotation
}

func (p pendingAnnotation) matches(pred, obj string) bool {
	return (p.pred == "" || p.pred == pred) && (p.obj == "" || p.obj == obj)
}

// Annotations accumulates annotations per subject until the next axiom for
// that subject is built.
type Annotations struct {
	pending map[string][]pendingAnnotation
}

// NewAnnotations creates an empty accumulator.
func NewAnnotations() *Annotations {
	return &Annotations{pending: make(map[string][]pendingAnnotation)}
}

// Add registers annotations for the next axiom about subject.
func (a *Annotations) Add(subject quad.Value, anns ...owl.Annotation) {
	a.AddFor(subject, nil, nil, anns...)
}

// AddFor registers annotations for the next axiom built from a triple with
// the given subject, predicate and object. Nil pred or obj match any value.
func (a *Annotations) AddFor(subject, pred, obj quad.Value, anns ...owl.Annotation) {
	k := quad.ToString(subject)
	for _, an := range anns {
		a.pending[k] = append(a.pending[k], pendingAnnotation{
			pred: quad.ToString(pred), obj: quad.ToString(obj), ann: an,
		})
	}
}

// Peek returns the annotations that would attach to an axiom built from the
// triple (subject, pred, obj), without removing them.
func (a *Annotations) Peek(subject, pred, obj quad.Value) []owl.Annotation {
	var out []owl.Annotation
	p, o := quad.ToString(pred), quad.ToString(obj)
	for _, e := range a.pending[quad.ToString(subject)] {
		if e.matches(p, o) {
			out = append(out, e.ann)
		}
	}
	return out
}

// Take returns and clears the annotations matching the triple.
func (a *Annotations) Take(subject, pred, obj quad.Value) []owl.Annotation {
	k := quad.ToString(subject)
	list := a.pending[k]
	if len(list) == 0 {
		return nil
	}
	var (
		out  []owl.Annotation
		keep []pendingAnnotation
	)
	p, o := quad.ToString(pred), quad.ToString(obj)
	for _, e := range list {
		if e.matches(p, o) {
			out = append(out, e.ann)
		} else {
			keep = append(keep, e)
		}
	}
	if len(keep) == 0 {
		delete(a.pending, k)
	} else {
		a.pending[k] = keep
	}
	return out
}

// Len returns the number of subjects with pending annotations.
func (a *Annotations) Len() int {
	return len(a.pending)
}

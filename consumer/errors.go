package consumer

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"
)

var (
	// ErrNotStreaming is returned when a triple is pushed after the stream ended.
	ErrNotStreaming = errors.New("consumer: session is not streaming")
	// ErrDone is returned when a finished session is used again.
	ErrDone = errors.New("consumer: session is done")
)

// Reason explains why a triple was left untranslated.
type Reason int

const (
	// ReasonNoHandler means no handler is registered for the predicate.
	ReasonNoHandler Reason = iota + 1
	// ReasonUnresolvable means handlers exist but none could translate the triple.
	ReasonUnresolvable
	// ReasonRejected means a handler claimed the triple but found it malformed.
	ReasonRejected
)

func (r Reason) String() string {
	switch r {
	case ReasonNoHandler:
		return "no registered handler"
	case ReasonUnresolvable:
		return "unresolvable"
	case ReasonRejected:
		return "rejected"
	}
	return "unknown"
}

// Unresolved is a triple left in the working set after the sweeps.
type Unresolved struct {
	Triple quad.Quad
	Reason Reason
	// Err holds the handler error for rejected triples.
	Err error
}

func (u Unresolved) Error() string {
	s := fmt.Sprintf("%s %s %s: %v", quad.ToString(u.Triple.Subject),
		quad.ToString(u.Triple.Predicate), quad.ToString(u.Triple.Object), u.Reason)
	if u.Err != nil {
		s += ": " + u.Err.Error()
	}
	return s
}

func (u Unresolved) Unwrap() error { return u.Err }

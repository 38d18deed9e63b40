package owl

// DataFactory builds axioms from resolved operands. Implementations may
// assume operands are well typed for the axiom type.
type DataFactory interface {
	// Axiom builds an axiom of type t.
	Axiom(t AxiomType, operands []Object, annotations []Annotation) *Axiom
	// Annotate returns a copy of ax carrying the union of its annotations
	// and the given ones.
	Annotate(ax *Axiom, annotations []Annotation) *Axiom
}

// Factory is the default DataFactory. It normalises set-valued operands and
// annotations so that equal axioms render equally.
type Factory struct{}

var _ DataFactory = Factory{}

// NewFactory returns the default factory.
func NewFactory() DataFactory { return Factory{} }

func (Factory) Axiom(t AxiomType, operands []Object, annotations []Annotation) *Axiom {
	ops := make([]Object, len(operands))
	copy(ops, operands)
	switch {
	case t.IsSymmetric():
		sortObjects(ops)
		ops = dedupObjects(ops)
	case t == DisjointUnion && len(ops) > 1:
		rest := ops[1:]
		sortObjects(rest)
		ops = append(ops[:1], dedupObjects(rest)...)
	}
	return &Axiom{Type: t, Operands: ops, Annotations: SortAnnotations(annotations)}
}

func (Factory) Annotate(ax *Axiom, annotations []Annotation) *Axiom {
	all := make([]Annotation, 0, len(ax.Annotations)+len(annotations))
	all = append(all, ax.Annotations...)
	all = append(all, annotations...)
	return &Axiom{Type: ax.Type, Operands: ax.Operands, Annotations: SortAnnotations(all)}
}

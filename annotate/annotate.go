// Package annotate decouples the walk engine's output from graph storage:
// rather than mutating nodes in place to carry their final rank, the
// walker emits (node id, rank) pairs into a GraphAnnotator, which severs
// graph structure from algorithm output and lets multiple ranking runs
// target the same graph concurrently without racing on it.
package annotate

// GraphAnnotator receives (node id, rank) pairs as the walk engine produces
// them.
type GraphAnnotator interface {
	Annotate(nodeID string, rank float64) error
}

// Annotation is a single recorded (node id, rank) pair, in the order it was
// annotated.
type Annotation struct {
	NodeID string
	Rank   float64
}

// MemoryAnnotator is the in-process GraphAnnotator the CLI host uses: an
// insertion-order log plus a map for lookup, drained once the run
// completes.
type MemoryAnnotator struct {
	byID  map[string]float64
	order []Annotation
}

// NewMemoryAnnotator returns an empty annotator ready to receive calls.
func NewMemoryAnnotator() *MemoryAnnotator {
	return &MemoryAnnotator{byID: make(map[string]float64)}
}

// Annotate records rank for nodeID. A later call for the same nodeID
// overwrites the stored rank but does not duplicate the insertion-order
// entry; callers that annotate a given node more than once should not rely
// on Drain reflecting update history, only the latest value.
func (a *MemoryAnnotator) Annotate(nodeID string, rank float64) error {
	if _, exists := a.byID[nodeID]; !exists {
		a.order = append(a.order, Annotation{NodeID: nodeID, Rank: rank})
	}
	a.byID[nodeID] = rank
	for i := range a.order {
		if a.order[i].NodeID == nodeID {
			a.order[i].Rank = rank
			break
		}
	}
	return nil
}

// Drain returns every annotation recorded so far, in first-annotated
// order, with the latest rank for each node.
func (a *MemoryAnnotator) Drain() []Annotation {
	out := make([]Annotation, len(a.order))
	copy(out, a.order)
	return out
}

// Lookup returns the rank recorded for nodeID, if any.
func (a *MemoryAnnotator) Lookup(nodeID string) (float64, bool) {
	r, ok := a.byID[nodeID]
	return r, ok
}

package transform

// Provenance maps a surviving E-graph vertex ID to the ordered set of
// original E-graph vertex IDs it "stands for" after one or more
// RemoveAndContract calls folded other vertices into its neighbourhood —
// initially just itself.
type Provenance map[string][]string

// NewIdentityProvenance returns a Provenance where every id maps only to
// itself — the starting point before any contraction, and the right
// value to use when a partitioner runs with no contraction pattern at
// all.
func NewIdentityProvenance(ids []string) Provenance { return newProvenance(ids) }

func newProvenance(ids []string) Provenance {
	p := make(Provenance, len(ids))
	for _, id := range ids {
		p[id] = []string{id}
	}

	return p
}

// absorb folds removed's provenance into every vertex in survivors (the
// predecessors and successors removed had immediately before it was
// contracted out), then forgets removed's own entry.
func (p Provenance) absorb(survivors []string, removed string) {
	gone := p[removed]
	if gone == nil {
		gone = []string{removed}
	}
	for _, s := range survivors {
		existing := p[s]
		seen := make(map[string]bool, len(existing))
		for _, id := range existing {
			seen[id] = true
		}
		for _, id := range gone {
			if !seen[id] {
				existing = append(existing, id)
				seen[id] = true
			}
		}
		p[s] = existing
	}
	delete(p, removed)
}

// Closure returns the ordered set of original elements id stands for.
func (p Provenance) Closure(id string) []string {
	return append([]string(nil), p[id]...)
}

package element

// View is a non-mutating, non-copying read-only projection of a Graph that
// hides a set of excluded vertex IDs (the head/tail bookends, typically).
// Rather than allocating a filtered copy, View wraps the parent graph
// and a membership set so masking never copies the underlying graph.
type View struct {
	parent   *Graph
	excluded map[string]bool
}

// Mask returns a View of g that omits headID and tailID from every
// enumeration method, without copying g.
func (g *Graph) Mask(headID, tailID string) *View {
	return &View{parent: g, excluded: map[string]bool{headID: true, tailID: true}}
}

// MaskTo returns a View of g that omits every vertex not named in keep,
// without copying g. Used by the partitioner to project a match's
// element closure into a sub-graph view over the parent graph.
func (g *Graph) MaskTo(keep []string) *View {
	kept := make(map[string]bool, len(keep))
	for _, id := range keep {
		kept[id] = true
	}
	excluded := make(map[string]bool)
	for _, id := range g.VertexIDsInOrder() {
		if !kept[id] {
			excluded[id] = true
		}
	}

	return &View{parent: g, excluded: excluded}
}

// HasVertex reports whether id is present in the underlying graph and not
// excluded by this view.
func (v *View) HasVertex(id string) bool {
	if v.excluded[id] {
		return false
	}

	return v.parent.HasVertex(id)
}

// Element delegates to the parent graph for non-excluded vertices.
func (v *View) Element(id string) (FlowElement, error) {
	if v.excluded[id] {
		return nil, ErrVertexNotFound
	}

	return v.parent.Element(id)
}

// VertexIDsInOrder returns the parent's vertex IDs, minus excluded ones.
func (v *View) VertexIDsInOrder() []string {
	ids := v.parent.VertexIDsInOrder()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !v.excluded[id] {
			out = append(out, id)
		}
	}

	return out
}

// OutNeighbors returns the parent's out-neighbors of id, minus excluded
// vertices. Returns nil if id itself is excluded.
func (v *View) OutNeighbors(id string) []string {
	if v.excluded[id] {
		return nil
	}
	nbs := v.parent.OutNeighbors(id)
	out := make([]string, 0, len(nbs))
	for _, n := range nbs {
		if !v.excluded[n] {
			out = append(out, n)
		}
	}

	return out
}

// InNeighbors returns the parent's in-neighbors of id, minus excluded
// vertices. Returns nil if id itself is excluded.
func (v *View) InNeighbors(id string) []string {
	if v.excluded[id] {
		return nil
	}
	nbs := v.parent.InNeighbors(id)
	out := make([]string, 0, len(nbs))
	for _, n := range nbs {
		if !v.excluded[n] {
			out = append(out, n)
		}
	}

	return out
}

// EdgesBetween delegates to the parent; both endpoints are assumed
// non-excluded by callers that first filtered via VertexIDsInOrder /
// OutNeighbors / InNeighbors.
func (v *View) EdgesBetween(fromID, toID string) ([]EdgeView, error) {
	if v.excluded[fromID] || v.excluded[toID] {
		return nil, nil
	}

	return v.parent.EdgesBetween(fromID, toID)
}

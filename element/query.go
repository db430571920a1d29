package element

// OutEdges returns the edges leaving id, in the order they were attached.
func (g *Graph) OutEdges(id string) ([]EdgeView, error) {
	g.muVert.RLock()
	v, ok := g.vertices[id]
	var outIDs []string
	if ok {
		outIDs = append(outIDs, v.out...)
	}
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]EdgeView, 0, len(outIDs))
	for _, eid := range outIDs {
		if e, ok := g.edges[eid]; ok {
			out = append(out, EdgeView{ID: e.id, From: e.from, To: e.to, Scope: e.scope})
		}
	}

	return out, nil
}

// InEdges returns the edges arriving at id, in the order they were
// attached.
func (g *Graph) InEdges(id string) ([]EdgeView, error) {
	g.muVert.RLock()
	v, ok := g.vertices[id]
	var inIDs []string
	if ok {
		inIDs = append(inIDs, v.in...)
	}
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]EdgeView, 0, len(inIDs))
	for _, eid := range inIDs {
		if e, ok := g.edges[eid]; ok {
			out = append(out, EdgeView{ID: e.id, From: e.from, To: e.to, Scope: e.scope})
		}
	}

	return out, nil
}

// EdgesBetween returns the bundle of parallel edges fromID→toID, in
// insertion order. An empty (nil) slice means no such edge exists.
func (g *Graph) EdgesBetween(fromID, toID string) ([]EdgeView, error) {
	out, err := g.OutEdges(fromID)
	if err != nil {
		return nil, err
	}
	bundle := make([]EdgeView, 0, len(out))
	for _, e := range out {
		if e.To == toID {
			bundle = append(bundle, e)
		}
	}

	return bundle, nil
}

// GetEdge returns a single edge by ID.
func (g *Graph) GetEdge(id string) (EdgeView, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return EdgeView{}, ErrEdgeNotFound
	}

	return EdgeView{ID: e.id, From: e.from, To: e.to, Scope: e.scope}, nil
}

// RemoveEdge deletes a single edge by ID, detaching it from both
// endpoints' adjacency lists.
func (g *Graph) RemoveEdge(id string) error {
	g.muEdgeAdj.Lock()
	e, ok := g.edges[id]
	if !ok {
		g.muEdgeAdj.Unlock()
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.muEdgeAdj.Unlock()

	detachFromVertexOut(g, e.from, id)
	detachFromVertexIn(g, e.to, id)

	return nil
}

// VertexIDsInOrder returns all vertex IDs ordered by their monotonic
// insertion sequence (v1, v2, ...), which is the order indexed.View uses
// as its base ordering before a search-order permutation is applied.
//
// Complexity: O(V log V).
func (g *Graph) VertexIDsInOrder() []string {
	ids := g.VertexIDs()
	// vN textual IDs compare correctly under a numeric-suffix sort; a
	// plain lexical sort (already applied in VertexIDs) misorders v10
	// before v2, so re-sort numerically here.
	sortByNumericSuffix(ids, vertexIDPrefix)

	return ids
}

// OutNeighbors returns the distinct successor vertex IDs of id, each
// appearing once even if connected by multiple parallel edges, in the
// order first encountered.
func (g *Graph) OutNeighbors(id string) []string {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if !seen[e.To] {
			seen[e.To] = true
			out = append(out, e.To)
		}
	}

	return out
}

// InNeighbors returns the distinct predecessor vertex IDs of id.
func (g *Graph) InNeighbors(id string) []string {
	edges, err := g.InEdges(id)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		if !seen[e.From] {
			seen[e.From] = true
			out = append(out, e.From)
		}
	}

	return out
}

// sortByNumericSuffix sorts ids in place by the integer value following
// the given single-byte prefix (insertion sort; graphs are small enough
// in planner workloads that this never dominates runtime).
func sortByNumericSuffix(ids []string, prefix byte) {
	val := func(s string) int {
		n := 0
		for i := 1; i < len(s); i++ {
			n = n*10 + int(s[i]-'0')
		}

		return n
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && val(ids[j-1]) > val(ids[j]); j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

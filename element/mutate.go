package element

// AddVertex inserts v as a new vertex and returns its freshly minted ID.
// Every call mints a new vertex, even if v is value-identical to an
// existing FlowElement: vertex identity is insertion identity.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v FlowElement) (string, error) {
	if v == nil {
		return "", ErrNilElement
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	id := nextVID(g)
	g.vertices[id] = &vertexRecord{id: id, value: v}

	return id, nil
}

// AddEdge installs a new scope edge fromID→toID and returns its ID.
// Parallel edges between the same ordered pair are always permitted and
// semantically significant; self-loops are never permitted, regardless
// of configuration.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(fromID, toID string, scope Scope) (string, error) {
	if fromID == toID {
		return "", ErrSelfLoop
	}
	g.muVert.RLock()
	from, fok := g.vertices[fromID]
	to, tok := g.vertices[toID]
	g.muVert.RUnlock()
	if !fok || !tok {
		return "", ErrGraphShape
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid := nextEID(g)
	g.edges[eid] = &edgeRecord{id: eid, from: fromID, to: toID, scope: scope}
	from.out = append(from.out, eid)
	to.in = append(to.in, eid)

	return eid, nil
}

// removeVertexLocked deletes v's catalog entry. Caller holds muVert write
// lock. It does not touch edges; callers are responsible for detaching
// edges first (RemoveAndContract, ReplaceElementWith).
func (g *Graph) removeVertexLocked(id string) {
	delete(g.vertices, id)
}

// RemoveAndContract removes vertex id from the graph. For every
// (predecessor p, successor s) pair of id, a new edge p→s is installed
// carrying the Composer's composition of the p→id scope and the id→s
// scope, unless p == s: a self-loop produced by contraction is dropped
// rather than installed. Then id and its incident edges are removed.
//
// Complexity: O(deg_in(id) * deg_out(id)) for the cross product of
// predecessor/successor pairs, each producing one Compose call and one
// AddEdge.
func (g *Graph) RemoveAndContract(id string) error {
	if g.composer == nil {
		return ErrNilComposer
	}
	g.muVert.RLock()
	v, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	inEdges := make([]*edgeRecord, 0, len(v.in))
	for _, eid := range v.in {
		if e, ok := g.edges[eid]; ok {
			inEdges = append(inEdges, e)
		}
	}
	outEdges := make([]*edgeRecord, 0, len(v.out))
	for _, eid := range v.out {
		if e, ok := g.edges[eid]; ok {
			outEdges = append(outEdges, e)
		}
	}

	type pending struct {
		from, to string
		scope    Scope
	}
	var toInstall []pending
	for _, in := range inEdges {
		for _, out := range outEdges {
			if in.from == out.to {
				// would create a self-loop; drop the composed edge.
				continue
			}
			composed, err := g.composer.Compose(in.scope, out.scope)
			if err != nil {
				g.muEdgeAdj.Unlock()
				return err
			}
			toInstall = append(toInstall, pending{from: in.from, to: out.to, scope: composed})
		}
	}

	// detach id's incident edges from neighboring adjacency lists and the
	// edge catalog before reinserting the contracted edges.
	for _, e := range inEdges {
		detachFromVertexOut(g, e.from, e.id)
		delete(g.edges, e.id)
	}
	for _, e := range outEdges {
		detachFromVertexIn(g, e.to, e.id)
		delete(g.edges, e.id)
	}
	g.muEdgeAdj.Unlock()

	g.muVert.Lock()
	g.removeVertexLocked(id)
	g.muVert.Unlock()

	for _, p := range toInstall {
		if _, err := g.AddEdge(p.from, p.to, p.scope); err != nil {
			return err
		}
	}

	return nil
}

// detachFromVertexOut / detachFromVertexIn remove a single edge ID from a
// vertex's out/in adjacency slice. The vertex lookup takes a muVert read
// lock; the slice itself is edited without one. RemoveAndContract and
// ReplaceElementWith call these while holding the muEdgeAdj write lock;
// RemoveEdge calls them after releasing it.
func detachFromVertexOut(g *Graph, vertexID, edgeID string) {
	g.muVert.RLock()
	v, ok := g.vertices[vertexID]
	g.muVert.RUnlock()
	if !ok {
		return
	}
	v.out = removeString(v.out, edgeID)
}

func detachFromVertexIn(g *Graph, vertexID, edgeID string) {
	g.muVert.RLock()
	v, ok := g.vertices[vertexID]
	g.muVert.RUnlock()
	if !ok {
		return
	}
	v.in = removeString(v.in, edgeID)
}

func removeString(ss []string, target string) []string {
	out := ss[:0]
	for _, s := range ss {
		if s != target {
			out = append(out, s)
		}
	}

	return out
}

// ReplaceElementWith rewires every incoming and outgoing edge of oldID to
// terminate at newID instead, preserving scope identity and the order in
// which edges were originally attached, then removes oldID.
//
// Complexity: O(deg(oldID)).
func (g *Graph) ReplaceElementWith(oldID, newID string) error {
	g.muVert.RLock()
	oldV, oldOK := g.vertices[oldID]
	_, newOK := g.vertices[newID]
	g.muVert.RUnlock()
	if !oldOK || !newOK {
		return ErrVertexNotFound
	}
	if oldID == newID {
		return nil
	}

	g.muEdgeAdj.Lock()
	inIDs := append([]string(nil), oldV.in...)
	outIDs := append([]string(nil), oldV.out...)
	for _, eid := range inIDs {
		e, ok := g.edges[eid]
		if !ok {
			continue
		}
		if e.from == newID {
			// would become a self-loop on newID; drop rather than violate
			// the no-self-loop invariant.
			detachFromVertexOut(g, e.from, eid)
			delete(g.edges, eid)
			continue
		}
		e.to = newID
	}
	for _, eid := range outIDs {
		e, ok := g.edges[eid]
		if !ok {
			continue
		}
		if e.to == newID {
			detachFromVertexIn(g, e.to, eid)
			delete(g.edges, eid)
			continue
		}
		e.from = newID
	}
	g.muEdgeAdj.Unlock()

	g.muVert.Lock()
	newV := g.vertices[newID]
	newV.in = append(newV.in, filterSurviving(g, inIDs)...)
	newV.out = append(newV.out, filterSurviving(g, outIDs)...)
	g.removeVertexLocked(oldID)
	g.muVert.Unlock()

	return nil
}

// filterSurviving keeps only edge IDs still present in the edge catalog
// (some may have been dropped above to avoid a self-loop).
func filterSurviving(g *Graph, ids []string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := g.edges[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

// InsertFlowElementAfter splits every outgoing edge prev→s of prev into
// prev→new→s: the new→s leg inherits the original scope, and the prev→new
// leg carries a fresh scope produced by freshScope. The collaborator
// decides what a "default" scope looks like; the graph itself has no
// opinion and leaves the caller free to normalise afterwards. Returns
// the new vertex's ID.
//
// Complexity: O(deg_out(prevID)).
func (g *Graph) InsertFlowElementAfter(prevID string, newElem FlowElement, freshScope func() Scope) (string, error) {
	if !g.HasVertex(prevID) {
		return "", ErrVertexNotFound
	}
	newID, err := g.AddVertex(newElem)
	if err != nil {
		return "", err
	}

	originalOut, err := g.OutEdges(prevID)
	if err != nil {
		return "", err
	}

	if _, err := g.AddEdge(prevID, newID, freshScope()); err != nil {
		return "", err
	}
	for _, e := range originalOut {
		if err := g.RemoveEdge(e.ID); err != nil {
			return "", err
		}
		if _, err := g.AddEdge(newID, e.To, e.Scope); err != nil {
			return "", err
		}
	}

	return newID, nil
}

package element

import "sync/atomic"

// Copy returns a deep copy of the graph's structure (vertices, edges,
// adjacency). FlowElement and Scope values are shared by reference with
// the source: only the graph container is isolated, not the opaque
// payloads it carries, so a rule handed a copy can mutate its own
// structure freely without disturbing the caller's graph.
//
// Clones in two phases (vertex shell under one read lock, then edges
// under a second), carrying the monotonic ID counters forward so future
// AddVertex/AddEdge calls on the copy never collide with the source's
// IDs.
//
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	g.muVert.RLock()
	clone := &Graph{
		vertices: make(map[string]*vertexRecord, len(g.vertices)),
		edges:    make(map[string]*edgeRecord),
		composer: g.composer,
		headID:   g.headID,
		tailID:   g.tailID,
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &vertexRecord{id: id, value: v.value}
	}
	atomic.StoreUint64(&clone.nextVertexID, atomic.LoadUint64(&g.nextVertexID))
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for id, e := range g.edges {
		ne := &edgeRecord{id: e.id, from: e.from, to: e.to, scope: e.scope}
		clone.edges[id] = ne
		if fv, ok := clone.vertices[e.from]; ok {
			fv.out = append(fv.out, id)
		}
		if tv, ok := clone.vertices[e.to]; ok {
			tv.in = append(tv.in, id)
		}
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	g.muEdgeAdj.RUnlock()

	// out/in slices were appended in map-iteration order above, which is
	// not deterministic; restore the original insertion order recorded on
	// the source vertexRecord so the clone's adjacency order matches the
	// source exactly. A rule must see the same adjacency order on its
	// private copy as the driver saw on the original.
	g.muVert.RLock()
	for id, v := range g.vertices {
		cv := clone.vertices[id]
		cv.out = reorderLike(cv.out, v.out)
		cv.in = reorderLike(cv.in, v.in)
	}
	g.muVert.RUnlock()

	return clone
}

// reorderLike returns a slice containing the elements of got, ordered to
// match want wherever possible (want is the authoritative order; any
// element of got not present in want, or vice versa, is a programmer
// error and never occurs given Copy's construction, since got and want
// are always the same set by edge-ID).
func reorderLike(got, want []string) []string {
	present := make(map[string]bool, len(got))
	for _, s := range got {
		present[s] = true
	}
	out := make([]string, 0, len(want))
	for _, w := range want {
		if present[w] {
			out = append(out, w)
		}
	}

	return out
}

// CloneEmpty returns a new Graph with the same vertices and configuration
// as g, but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	clone := &Graph{
		vertices: make(map[string]*vertexRecord, len(g.vertices)),
		edges:    make(map[string]*edgeRecord),
		composer: g.composer,
		headID:   g.headID,
		tailID:   g.tailID,
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &vertexRecord{id: id, value: v.value}
	}
	atomic.StoreUint64(&clone.nextVertexID, atomic.LoadUint64(&g.nextVertexID))

	return clone
}

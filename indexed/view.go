package indexed

// View assigns each vertex of a Source a dense index 0..n-1 (per
// SearchOrder) and materializes, once, the successor and predecessor
// index sets for every vertex — the matcher iterates these tables
// exclusively and never re-queries the underlying graph by string ID
// during a search.
type View struct {
	src Source

	ids []string       // index -> id
	pos map[string]int // id -> index

	succ [][]int // index -> successor indices, in the source's neighbour order
	pred [][]int // index -> predecessor indices, in the source's neighbour order
}

// New builds a View over src using the given SearchOrder.
//
// Complexity: O(V + E).
func New(src Source, how SearchOrder) *View {
	ids := computeOrder(src, how)
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	v := &View{src: src, ids: ids, pos: pos}
	v.succ = make([][]int, len(ids))
	v.pred = make([][]int, len(ids))
	for i, id := range ids {
		for _, n := range src.OutNeighbors(id) {
			if j, ok := pos[n]; ok {
				v.succ[i] = append(v.succ[i], j)
			}
		}
		for _, n := range src.InNeighbors(id) {
			if j, ok := pos[n]; ok {
				v.pred[i] = append(v.pred[i], j)
			}
		}
	}

	return v
}

// Len returns the number of indexed vertices (n).
func (v *View) Len() int { return len(v.ids) }

// ID returns the vertex ID at index i.
func (v *View) ID(i int) string { return v.ids[i] }

// Index returns the index assigned to vertex id, or (-1, false) if id is
// not part of this view.
func (v *View) Index(id string) (int, bool) {
	i, ok := v.pos[id]
	if !ok {
		return -1, false
	}

	return i, ok
}

// Successors returns the index set of i's out-neighbors.
func (v *View) Successors(i int) []int { return v.succ[i] }

// Predecessors returns the index set of i's in-neighbors.
func (v *View) Predecessors(i int) []int { return v.pred[i] }

// IsSuccessor reports whether j is an out-neighbor of i.
func (v *View) IsSuccessor(i, j int) bool {
	for _, k := range v.succ[i] {
		if k == j {
			return true
		}
	}

	return false
}

// IsPredecessor reports whether j is an in-neighbor of i.
func (v *View) IsPredecessor(i, j int) bool {
	for _, k := range v.pred[i] {
		if k == j {
			return true
		}
	}

	return false
}

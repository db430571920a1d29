package element

// StructurallyEqual reports whether g and other have the same vertex set
// (by ID), the same edge set (by ID, endpoints, and scope identity via
// ==), and the same head/tail bookends. It does not compare FlowElement
// values for deep equality — only by Go == — since FlowElement is opaque
// to this package and may not be comparable at all; a graph whose
// elements are uncomparable always compares equal to itself (identity
// loop) and unequal to any other graph sharing no element pointers.
//
// The rule driver installs a new graph by reference identity, but uses
// this method as an additional correctness probe to flag a rule that
// rebuilds an equivalent graph in a fresh container (which reference
// comparison alone would treat as "changed").
//
// Complexity: O(V + E).
func (g *Graph) StructurallyEqual(other *Graph) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}

	g.muVert.RLock()
	other.muVert.RLock()
	if g.headID != other.headID || g.tailID != other.tailID || len(g.vertices) != len(other.vertices) {
		g.muVert.RUnlock()
		other.muVert.RUnlock()
		return false
	}
	for id, v := range g.vertices {
		ov, ok := other.vertices[id]
		if !ok || !safeEqual(v.value, ov.value) {
			g.muVert.RUnlock()
			other.muVert.RUnlock()
			return false
		}
	}
	g.muVert.RUnlock()
	other.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	other.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	defer other.muEdgeAdj.RUnlock()
	if len(g.edges) != len(other.edges) {
		return false
	}
	for id, e := range g.edges {
		oe, ok := other.edges[id]
		if !ok || e.from != oe.from || e.to != oe.to || !safeEqual(e.scope, oe.scope) {
			return false
		}
	}

	return true
}

// safeEqual compares two opaque values with ==, recovering from the
// runtime panic Go raises when an interface holds an uncomparable dynamic
// type (e.g. a slice or map). In that case the values are treated as
// unequal, even when both hold the same underlying value.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}

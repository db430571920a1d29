package indexed

// computeOrder returns the base vertex IDs of src permuted according to
// how. Every vertex in base appears exactly once in the result, even for
// disconnected or cyclic sources: each unvisited base vertex restarts
// its own traversal until every vertex has been visited.
func computeOrder(src Source, how SearchOrder) []string {
	base := src.VertexIDsInOrder()
	switch how {
	case Topological:
		return topoOrder(src, base, false)
	case ReverseTopological:
		return topoOrder(src, base, true)
	case DepthFirst:
		return dfsOrder(src, base)
	case BreadthFirst:
		return bfsOrder(src, base)
	default:
		return append([]string(nil), base...)
	}
}

// topoOrder computes a topological (or reverse-topological) order via
// iterative post-order DFS from every unvisited base vertex in turn.
// Cycles do not error here; any vertex on a cycle is simply appended in
// discovery post-order like any other, since the matcher only needs *a*
// consistent order, not a true topological witness, when the source is
// cyclic.
func topoOrder(src Source, base []string, reverse bool) []string {
	state := make(map[string]int, len(base)) // 0 unvisited, 1 visiting, 2 done
	post := make([]string, 0, len(base))

	var visit func(id string)
	visit = func(id string) {
		if state[id] != 0 {
			return
		}
		state[id] = 1
		for _, n := range src.OutNeighbors(id) {
			if state[n] == 0 {
				visit(n)
			}
		}
		state[id] = 2
		post = append(post, id)
	}
	for _, id := range base {
		visit(id)
	}

	// post is post-order; a topological order is the reverse of it.
	out := make([]string, len(post))
	for i, id := range post {
		if reverse {
			out[i] = id
		} else {
			out[len(post)-1-i] = id
		}
	}

	return out
}

// dfsOrder computes pre-order DFS discovery order across every
// component.
func dfsOrder(src Source, base []string) []string {
	visited := make(map[string]bool, len(base))
	out := make([]string, 0, len(base))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		out = append(out, id)
		for _, n := range src.OutNeighbors(id) {
			visit(n)
		}
	}
	for _, id := range base {
		visit(id)
	}

	return out
}

// bfsOrder computes breadth-first discovery order across every
// component.
func bfsOrder(src Source, base []string) []string {
	visited := make(map[string]bool, len(base))
	out := make([]string, 0, len(base))

	for _, root := range base {
		if visited[root] {
			continue
		}
		queue := []string{root}
		visited[root] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			out = append(out, id)
			for _, n := range src.OutNeighbors(id) {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}

	return out
}

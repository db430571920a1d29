package bipartite

// PermutationMatch decides the same question as PerfectMatch by
// enumerating every injective mapping of the n left indices into the m
// right indices and testing compat on each, short-circuiting on the
// first success. It exists solely as a slow, obviously-correct oracle
// for edge-matching.algorithm=permutation regression comparison against
// PerfectMatch; callers outside tests must not reach this on
// any production path because it is factorial in n.
func PermutationMatch(n, m int, compat Compat) (assignment []int, ok bool) {
	if n > m {
		return nil, false
	}

	right := make([]int, m)
	for j := range right {
		right[j] = j
	}
	used := make([]bool, m)
	current := make([]int, n)

	var try func(i int) bool
	try = func(i int) bool {
		if i == n {
			return true
		}
		for _, j := range right {
			if used[j] || !compat(i, j) {
				continue
			}
			used[j] = true
			current[i] = j
			if try(i + 1) {
				return true
			}
			used[j] = false
		}

		return false
	}

	if try(0) {
		return append([]int(nil), current...), true
	}

	return nil, false
}

package vf2

import (
	"github.com/arcflow/flowplan/indexed"
	"github.com/arcflow/flowplan/internal/bipartite"
	"github.com/arcflow/flowplan/pattern"
)

const unmapped = -1

// state is one matcher's working memory: the six VF2 arrays sized n1
// (pattern) and n2 (element), plus the adjacency tables both candidates
// and isFeasiblePair need by index rather than by string ID.
type state struct {
	p  *indexed.View
	e  *indexed.View
	pg *pattern.Graph
	eg ElementSource

	opts Options

	core1 []int // P index -> E index, or unmapped
	core2 []int // E index -> P index, or unmapped

	in1, out1 []int // P index -> depth first seen as a terminal neighbour, 0 if never
	in2, out2 []int // same, E side

	coreLen int

	// stop is set once emitMatch's callback declines further matches;
	// checked by the search driver to unwind without an error value.
	stop bool

	// freeOrder is the order candidates() walks P indices when no
	// terminal-set constraint distinguishes them: the pattern's explicit
	// Order() if set, else 0..n1-1.
	freeOrder []int
}

func newState(p, e *indexed.View, pg *pattern.Graph, eg ElementSource, opts Options) *state {
	n1, n2 := p.Len(), e.Len()
	s := &state{
		p: p, e: e, pg: pg, eg: eg, opts: opts,
		core1: make([]int, n1), core2: make([]int, n2),
		in1: make([]int, n1), out1: make([]int, n1),
		in2: make([]int, n2), out2: make([]int, n2),
	}
	for i := range s.core1 {
		s.core1[i] = unmapped
	}
	for j := range s.core2 {
		s.core2[j] = unmapped
	}

	if order := pg.Order(); len(order) > 0 {
		for _, id := range order {
			if idx, ok := p.Index(id); ok {
				s.freeOrder = append(s.freeOrder, idx)
			}
		}
		for i := 0; i < n1; i++ {
			found := false
			for _, k := range s.freeOrder {
				if k == i {
					found = true

					break
				}
			}
			if !found {
				s.freeOrder = append(s.freeOrder, i)
			}
		}
	} else {
		s.freeOrder = make([]int, n1)
		for i := range s.freeOrder {
			s.freeOrder[i] = i
		}
	}

	return s
}

func (s *state) isGoal() bool { return s.coreLen == len(s.core1) }

// isDead reports whether this branch can never reach a goal: either the
// pattern is already larger than the remaining element graph, or a
// terminal-set count on the P side exceeds its E-side counterpart.
func (s *state) isDead() bool {
	if len(s.core1) > len(s.core2) {
		return true
	}
	c1 := s.termCounts(s.core1, s.in1, s.out1)
	c2 := s.termCounts(s.core2, s.in2, s.out2)

	return c1.in > c2.in || c1.out > c2.out || c1.both > c2.both
}

type termCounts struct{ in, out, both int }

func (s *state) termCounts(core, in, out []int) termCounts {
	var c termCounts
	for i := range core {
		if core[i] != unmapped {
			continue
		}
		hi, ho := in[i] > 0, out[i] > 0
		if hi {
			c.in++
		}
		if ho {
			c.out++
		}
		if hi && ho {
			c.both++
		}
	}

	return c
}

// candidates returns the next set of (i, j) pairs to try, with priority
// both-in-and-out, then out-only, then in-only, then free — within the
// chosen constraint the P-graph side is pinned to its first unmapped
// member (lowest index, or first in freeOrder when no constraint
// applies) and every unmapped E-graph index in the same terminal set is
// offered against it.
func (s *state) candidates() [][2]int {
	if i := s.pinnedP(false, func(k int) bool { return s.in1[k] > 0 && s.out1[k] > 0 }); i != unmapped {
		if pairs := s.pairsWith(i, func(l int) bool { return s.in2[l] > 0 && s.out2[l] > 0 }); len(pairs) > 0 {
			return pairs
		}
	}
	if i := s.pinnedP(false, func(k int) bool { return s.out1[k] > 0 }); i != unmapped {
		if pairs := s.pairsWith(i, func(l int) bool { return s.out2[l] > 0 }); len(pairs) > 0 {
			return pairs
		}
	}
	if i := s.pinnedP(false, func(k int) bool { return s.in1[k] > 0 }); i != unmapped {
		if pairs := s.pairsWith(i, func(l int) bool { return s.in2[l] > 0 }); len(pairs) > 0 {
			return pairs
		}
	}
	i := s.pinnedP(true, func(int) bool { return true })
	if i == unmapped {
		return nil
	}

	return s.pairsWith(i, func(int) bool { return true })
}

func (s *state) pinnedP(free bool, pred func(int) bool) int {
	for n := range s.core1 {
		i := n
		if free {
			i = s.freeOrder[n]
		}
		if s.core1[i] == unmapped && pred(i) {
			return i
		}
	}

	return unmapped
}

func (s *state) pairsWith(i int, pred func(int) bool) [][2]int {
	var out [][2]int
	for l := range s.core2 {
		if s.core2[l] == unmapped && pred(l) {
			out = append(out, [2]int{i, l})
		}
	}

	return out
}

// isFeasiblePair checks node-predicate acceptance, capture-required-set
// membership, exclusion, and the four VF2 neighbour passes.
func (s *state) isFeasiblePair(i, j int) (bool, error) {
	pID := s.p.ID(i)
	eID := s.e.ID(j)

	if s.opts.Excluded[eID] || s.opts.Ignored[eID] {
		return false, nil
	}

	expr, err := s.pg.Expr(pID)
	if err != nil {
		return false, err
	}
	el, err := s.eg.Element(eID)
	if err != nil {
		return false, err
	}
	if !expr.Accepts(el) {
		return false, nil
	}
	if expr.Label == pattern.Primary && len(s.opts.Required) > 0 && !s.opts.Required[eID] {
		return false, nil
	}

	var termin1, termout1, new1 int
	var termin2, termout2, new2 int

	for _, k := range s.p.Successors(i) {
		if s.core1[k] != unmapped {
			ok, err := s.edgesCompatible(pID, s.p.ID(k), eID, s.e.ID(s.core1[k]))
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}

			continue
		}
		if s.in1[k] > 0 || s.out1[k] > 0 {
			termout1++
		} else {
			new1++
		}
	}
	for _, k := range s.p.Predecessors(i) {
		if s.core1[k] != unmapped {
			ok, err := s.edgesCompatible(s.p.ID(k), pID, s.e.ID(s.core1[k]), eID)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}

			continue
		}
		if s.in1[k] > 0 || s.out1[k] > 0 {
			termin1++
		} else {
			new1++
		}
	}
	for _, l := range s.e.Successors(j) {
		if s.core2[l] == unmapped {
			if s.in2[l] > 0 || s.out2[l] > 0 {
				termout2++
			} else {
				new2++
			}
		}
	}
	for _, l := range s.e.Predecessors(j) {
		if s.core2[l] == unmapped {
			if s.in2[l] > 0 || s.out2[l] > 0 {
				termin2++
			} else {
				new2++
			}
		}
	}

	return termin1 <= termin2 && termout1 <= termout2 && new1 <= new2, nil
}

// edgesCompatible decides whether the P-graph bundle pFrom->pTo is
// compatible with the E-graph bundle eFrom->eTo.
func (s *state) edgesCompatible(pFromID, pToID, eFromID, eToID string) (bool, error) {
	bundle := s.pg.Bundle(pFromID, pToID)
	edges, err := s.eg.EdgesBetween(eFromID, eToID)
	if err != nil {
		return false, err
	}

	if len(bundle) == 1 && bundle[0].IsWildcard() {
		return len(edges) >= 1, nil
	}
	if len(bundle) != len(edges) {
		return false, nil
	}
	k := len(bundle)
	if k == 0 {
		return true, nil
	}
	compat := func(a, b int) bool { return bundle[a].Applies(edges[b].Scope) }

	if s.opts.EdgeMatching == Permutation {
		_, ok := bipartite.PermutationMatch(k, k, compat)

		return ok, nil
	}
	_, ok := bipartite.PerfectMatch(k, k, compat)

	return ok, nil
}

// addPair installs (i, j) into the core mapping and stamps every
// currently-unmapped P/E neighbour whose terminal flag was still zero
// with the new depth.
func (s *state) addPair(i, j int) {
	s.core1[i] = j
	s.core2[j] = i
	s.coreLen++
	depth := s.coreLen

	for _, k := range s.p.Successors(i) {
		if s.core1[k] == unmapped && s.out1[k] == 0 {
			s.out1[k] = depth
		}
	}
	for _, k := range s.p.Predecessors(i) {
		if s.core1[k] == unmapped && s.in1[k] == 0 {
			s.in1[k] = depth
		}
	}
	for _, l := range s.e.Successors(j) {
		if s.core2[l] == unmapped && s.out2[l] == 0 {
			s.out2[l] = depth
		}
	}
	for _, l := range s.e.Predecessors(j) {
		if s.core2[l] == unmapped && s.in2[l] == 0 {
			s.in2[l] = depth
		}
	}
}

// backTrack reverses exactly the stamps addPair(i, j) made, leaving the
// state bit-identical to before the matching addPair call.
func (s *state) backTrack(i, j int) {
	depth := s.coreLen

	for _, k := range s.p.Successors(i) {
		if s.out1[k] == depth {
			s.out1[k] = 0
		}
	}
	for _, k := range s.p.Predecessors(i) {
		if s.in1[k] == depth {
			s.in1[k] = 0
		}
	}
	for _, l := range s.e.Successors(j) {
		if s.out2[l] == depth {
			s.out2[l] = 0
		}
	}
	for _, l := range s.e.Predecessors(j) {
		if s.in2[l] == depth {
			s.in2[l] = 0
		}
	}

	s.core1[i] = unmapped
	s.core2[j] = unmapped
	s.coreLen--
}

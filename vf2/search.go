package vf2

import "github.com/arcflow/flowplan/match"

// search performs the depth-first VF2 walk, invoking emit for every goal
// state reached. emit returning false stops the search early (used by
// FindFirst).
func search(s *state, emit func(*match.Match) bool) error {
	return searchStep(s, emit)
}

func searchStep(s *state, emit func(*match.Match) bool) error {
	if s.isGoal() {
		return emitMatch(s, emit)
	}
	if s.isDead() {
		return nil
	}

	for _, pair := range s.candidates() {
		i, j := pair[0], pair[1]
		ok, err := s.isFeasiblePair(i, j)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		s.addPair(i, j)
		if err := searchStep(s, emit); err != nil {
			s.backTrack(i, j)

			return err
		}
		s.backTrack(i, j)

		if stopped(s) {
			return nil
		}
	}

	return nil
}

func stopped(s *state) bool { return s.stop }

func emitMatch(s *state, emit func(*match.Match) bool) error {
	m := match.New()
	for i := 0; i < len(s.core1); i++ {
		pID := s.p.ID(i)
		eID := s.e.ID(s.core1[i])
		expr, err := s.pg.Expr(pID)
		if err != nil {
			return err
		}
		m.Bind(pID, eID, expr.Label)
	}

	if !emit(m) {
		s.stop = true
	}

	return nil
}

package vf2

import (
	"github.com/arcflow/flowplan/indexed"
	"github.com/arcflow/flowplan/match"
	"github.com/arcflow/flowplan/pattern"
)

// FindAll runs the matcher to exhaustion and returns every match found,
// in the deterministic order the search discovers them.
func FindAll(pg *pattern.Graph, eg ElementSource, opts Options) ([]*match.Match, error) {
	var out []*match.Match
	err := Find(pg, eg, opts, func(m *match.Match) bool {
		out = append(out, m)

		return true
	})

	return out, err
}

// FindFirst returns the first match found, or ok=false if none exists.
func FindFirst(pg *pattern.Graph, eg ElementSource, opts Options) (*match.Match, bool, error) {
	var found *match.Match
	err := Find(pg, eg, opts, func(m *match.Match) bool {
		found = m

		return false
	})

	return found, found != nil, err
}

// Find runs the VF2 search, invoking emit for each match in discovery
// order until emit returns false or the search is exhausted.
func Find(pg *pattern.Graph, eg ElementSource, opts Options, emit func(*match.Match) bool) error {
	pView := indexed.New(pg, opts.Order)
	eView := indexed.New(eg, opts.Order)

	s := newState(pView, eView, pg, eg, opts)

	return search(s, emit)
}

package transform

import (
	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/match"
	"github.com/arcflow/flowplan/pattern"
	"github.com/arcflow/flowplan/vf2"
)

// SubGraph composes Contraction with a second pattern, Match, matched
// against the contracted graph, then projects each matched vertex back
// to the original elements it stands for.
type SubGraph struct {
	Contraction Contracted
	Match       *pattern.Graph
	Options     vf2.Options
}

// Projected is one SubGraph search result: the match found in the
// contracted graph, plus the original-element closure of each of its
// matched vertices.
type Projected struct {
	Match    *match.Match
	Elements map[string][]string // Match P-vertex id -> original E-ids
}

// Apply runs the contraction, then finds every occurrence of sg.Match in
// the result, in discovery order.
func (sg SubGraph) Apply(g *element.Graph) ([]*Projected, error) {
	contracted, prov, err := sg.Contraction.Apply(g)
	if err != nil {
		return nil, err
	}

	view := contracted.Mask(contracted.HeadID(), contracted.TailID())
	matches, err := vf2.FindAll(sg.Match, view, sg.Options)
	if err != nil {
		return nil, err
	}

	out := make([]*Projected, 0, len(matches))
	for _, m := range matches {
		elements := make(map[string][]string, len(sg.Match.VertexIDs()))
		for _, pID := range sg.Match.VertexIDs() {
			eID, ok := m.Element(pID)
			if !ok {
				continue
			}
			elements[pID] = prov.Closure(eID)
		}
		out = append(out, &Projected{Match: m, Elements: elements})
	}

	return out, nil
}

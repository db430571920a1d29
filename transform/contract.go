package transform

import (
	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/pattern"
	"github.com/arcflow/flowplan/vf2"
)

// Contracted repeatedly finds Pattern in the working graph and contracts
// every captured element that is not Primary, Include, or Ignore,
// stopping at the first search that finds nothing.
type Contracted struct {
	Pattern *pattern.Graph
	Options vf2.Options
}

// Apply runs Contracted against a deep copy of g, returning the
// contracted graph and the provenance map recording which original
// elements each surviving vertex absorbed.
func (c Contracted) Apply(g *element.Graph) (*element.Graph, Provenance, error) {
	working := g.Copy()
	prov := newProvenance(working.VertexIDsInOrder())

	for {
		view := working.Mask(working.HeadID(), working.TailID())
		m, ok, err := vf2.FindFirst(c.Pattern, view, c.Options)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}

		for _, pID := range c.Pattern.VertexIDs() {
			expr, err := c.Pattern.Expr(pID)
			if err != nil {
				return nil, nil, err
			}
			if expr.Label == pattern.Include || expr.Label == pattern.Ignore || expr.Label == pattern.Primary {
				continue
			}
			eID, ok := m.Element(pID)
			if !ok {
				continue
			}

			survivors := append(working.InNeighbors(eID), working.OutNeighbors(eID)...)
			if err := working.RemoveAndContract(eID); err != nil {
				return nil, nil, err
			}
			prov.absorb(survivors, eID)
		}
	}

	return working, prov, nil
}

package partition

import (
	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/pattern"
	"github.com/arcflow/flowplan/transform"
	"github.com/arcflow/flowplan/vf2"
)

// Annotation records that a partition's annotation key To should collect
// the elements a match captured under pattern label From. Most callers
// want To == From (an annotation named "Primary" collecting the match's
// Primary capture); the indirection exists because S4-style partitioner
// rules sometimes want to relabel a capture for the partition's own
// annotation vocabulary.
type Annotation struct {
	To   pattern.Label
	From pattern.Label
}

// ExpressionGraphPartitioner carves a parent E-graph into annotated
// sub-graphs.
type ExpressionGraphPartitioner struct {
	// Contraction, if non-nil, is applied (to fixed point) before
	// Expression is matched.
	Contraction *pattern.Graph
	// Expression, if nil, makes Partitions return the whole graph as a
	// single, unannotated partition.
	Expression  *pattern.Graph
	Annotations []Annotation
	Options     vf2.Options
}

// Partition is one annotated sub-graph view over the parent E-graph.
type Partition struct {
	Graph       *element.View
	Annotations map[pattern.Label][]string
	Index       int
}

// Partitions runs the partitioner against g.
func (p ExpressionGraphPartitioner) Partitions(g *element.Graph) ([]*Partition, error) {
	if p.Expression == nil {
		view := g.Mask(g.HeadID(), g.TailID())

		return []*Partition{{Graph: view, Annotations: map[pattern.Label][]string{}, Index: 0}}, nil
	}

	var contracted *element.Graph
	var prov transform.Provenance
	if p.Contraction != nil {
		c := transform.Contracted{Pattern: p.Contraction, Options: p.Options}
		var err error
		contracted, prov, err = c.Apply(g)
		if err != nil {
			return nil, err
		}
	} else {
		contracted = g.Copy()
		prov = transform.NewIdentityProvenance(contracted.VertexIDsInOrder())
	}

	view := contracted.Mask(contracted.HeadID(), contracted.TailID())
	matches, err := vf2.FindAll(p.Expression, view, p.Options)
	if err != nil {
		return nil, err
	}

	partitions := make([]*Partition, 0, len(matches))
	for idx, m := range matches {
		keep := make(map[string]bool)
		for _, pID := range p.Expression.VertexIDs() {
			eID, ok := m.Element(pID)
			if !ok {
				continue
			}
			for _, orig := range prov.Closure(eID) {
				keep[orig] = true
			}
		}

		annotations := make(map[pattern.Label][]string)
		for _, a := range p.Annotations {
			for _, eID := range m.Captured(a.From) {
				annotations[a.To] = append(annotations[a.To], prov.Closure(eID)...)
			}
		}

		keepList := make([]string, 0, len(keep))
		for id := range keep {
			keepList = append(keepList, id)
		}

		partitions = append(partitions, &Partition{
			Graph:       g.MaskTo(keepList),
			Annotations: annotations,
			Index:       idx,
		})
	}

	return partitions, nil
}

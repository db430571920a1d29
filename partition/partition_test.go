package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/partition"
	"github.com/arcflow/flowplan/pattern"
)

type kind string

type concatComposer struct{}

func (concatComposer) Compose(in, out element.Scope) (element.Scope, error) {
	return in.(string) + "|" + out.(string), nil
}

func kindIs(k string) pattern.NodePredicate {
	return func(el element.FlowElement) bool {
		s, ok := el.(kind)

		return ok && string(s) == k
	}
}

func TestPartitionerWithNoExpressionReturnsWholeGraph(t *testing.T) {
	g := element.NewGraph(kind("head"), kind("tail"), concatComposer{})
	v, _ := g.AddVertex(kind("Tap"))
	_, err := g.AddEdge(g.HeadID(), v, "h")
	require.NoError(t, err)
	_, err = g.AddEdge(v, g.TailID(), "t")
	require.NoError(t, err)

	p := partition.ExpressionGraphPartitioner{}
	partitions, err := p.Partitions(g)
	require.NoError(t, err)
	require.Len(t, partitions, 1)
	assert.True(t, partitions[0].Graph.HasVertex(v))
	assert.False(t, partitions[0].Graph.HasVertex(g.HeadID()))
	assert.Empty(t, partitions[0].Annotations)
}

func TestPartitionerAnnotatesSharedTapHashJoin(t *testing.T) {
	g := element.NewGraph(kind("head"), kind("tail"), concatComposer{})
	tap, _ := g.AddVertex(kind("Tap"))
	join, _ := g.AddVertex(kind("HashJoin"))
	_, err := g.AddEdge(g.HeadID(), tap, "h")
	require.NoError(t, err)
	_, err = g.AddEdge(tap, join, "blocking")
	require.NoError(t, err)
	_, err = g.AddEdge(tap, join, "non-blocking")
	require.NoError(t, err)
	_, err = g.AddEdge(join, g.TailID(), "t")
	require.NoError(t, err)

	pg := pattern.New()
	pTap := pg.AddVertex(pattern.Element(kindIs("Tap"), pattern.Primary))
	pJoin := pg.AddVertex(pattern.Element(kindIs("HashJoin"), pattern.Secondary))
	_, _ = pg.AddEdge(pTap, pJoin, pattern.Any())

	p := partition.ExpressionGraphPartitioner{
		Expression: pg,
		Annotations: []partition.Annotation{
			{To: pattern.Primary, From: pattern.Primary},
			{To: pattern.Secondary, From: pattern.Secondary},
		},
	}

	partitions, err := p.Partitions(g)
	require.NoError(t, err)
	require.Len(t, partitions, 1)

	assert.Equal(t, []string{tap}, partitions[0].Annotations[pattern.Primary])
	assert.Equal(t, []string{join}, partitions[0].Annotations[pattern.Secondary])
	assert.True(t, partitions[0].Graph.HasVertex(tap))
	assert.True(t, partitions[0].Graph.HasVertex(join))
	assert.Equal(t, 0, partitions[0].Index)
}

package rule_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/pattern"
	"github.com/arcflow/flowplan/rule"
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

// buildChain builds Source -> A -> B -> Sink, threaded between the
// graph's head and tail sentinels.
func buildChain(t *testing.T) (*element.Graph, map[string]string) {
	t.Helper()
	g := element.NewGraph(kind("head"), kind("tail"), concatComposer{})
	ids := map[string]string{}
	var err error
	ids["source"], err = g.AddVertex(kind("Source"))
	require.NoError(t, err)
	ids["a"], err = g.AddVertex(kind("A"))
	require.NoError(t, err)
	ids["b"], err = g.AddVertex(kind("B"))
	require.NoError(t, err)
	ids["sink"], err = g.AddVertex(kind("Sink"))
	require.NoError(t, err)

	_, err = g.AddEdge(g.HeadID(), ids["source"], "h")
	require.NoError(t, err)
	_, err = g.AddEdge(ids["source"], ids["a"], "s1")
	require.NoError(t, err)
	_, err = g.AddEdge(ids["a"], ids["b"], "s2")
	require.NoError(t, err)
	_, err = g.AddEdge(ids["b"], ids["sink"], "s3")
	require.NoError(t, err)
	_, err = g.AddEdge(ids["sink"], g.TailID(), "t")
	require.NoError(t, err)

	return g, ids
}

func kindPattern(label pattern.Label, k string) *pattern.Graph {
	pg := pattern.New()
	pg.AddVertex(pattern.Element(kindIs(k), label))

	return pg
}

func TestAssertRuleFiresWithMessageSubstitution(t *testing.T) {
	g, _ := buildChain(t)
	r := rule.AssertRule{
		RuleName:        "no-bare-a",
		PhaseValue:      rule.PreBalance,
		Pattern:         kindPattern(pattern.Primary, "A"),
		MessageTemplate: "found forbidden element {Primary}",
	}

	_, err := r.Run(g)
	require.Error(t, err)

	var assertErr *rule.AssertionError
	require.True(t, errors.As(err, &assertErr))
	assert.True(t, errors.Is(err, rule.ErrPlannerAssertion))
	assert.Equal(t, "no-bare-a", assertErr.RuleName)
	assert.Equal(t, "found forbidden element A", assertErr.Message)
	assert.NotNil(t, assertErr.Match)
}

func TestAssertRulePassesWhenPatternAbsent(t *testing.T) {
	g, _ := buildChain(t)
	r := rule.AssertRule{
		RuleName:        "no-missing-kind",
		PhaseValue:      rule.PreBalance,
		Pattern:         kindPattern(pattern.Primary, "NothingLikeThis"),
		MessageTemplate: "unreachable",
	}

	out, err := r.Run(g)
	require.NoError(t, err)
	assert.Same(t, g, out.EndGraph)
}

func TestTransformerReplaceRewiresGraph(t *testing.T) {
	g, ids := buildChain(t)
	pg := pattern.New()
	primary := pg.AddVertex(pattern.Element(kindIs("A"), pattern.Primary))
	secondary := pg.AddVertex(pattern.Element(kindIs("B"), pattern.Secondary))
	_, err := pg.AddEdge(primary, secondary, pattern.Any())
	require.NoError(t, err)

	r := rule.TransformerRule{
		RuleName:   "collapse-a-into-b",
		PhaseValue: rule.Balance,
		Pattern:    pg,
		Variant:    rule.Replace,
	}

	out, err := r.Run(g)
	require.NoError(t, err)
	require.NotNil(t, out.EndGraph)

	assert.False(t, g.HasVertex(ids["a"]), "A must be gone after replace")
	assert.True(t, g.HasVertex(ids["b"]))

	edges, err := g.EdgesBetween(ids["source"], ids["b"])
	require.NoError(t, err)
	require.Len(t, edges, 1, "Source must now point directly at B")
}

func TestTransformerRemoveRequiresPrimaryCapture(t *testing.T) {
	g, _ := buildChain(t)
	pg := pattern.New()
	pg.AddVertex(pattern.Element(kindIs("A"), pattern.Secondary))

	r := rule.TransformerRule{
		RuleName:   "bad-remove",
		PhaseValue: rule.Balance,
		Pattern:    pg,
		Variant:    rule.Remove,
	}

	_, err := r.Run(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rule.ErrBadCaptures))

	var badCaptures *rule.BadCapturesError
	require.True(t, errors.As(err, &badCaptures))
	assert.Equal(t, "bad-remove", badCaptures.RuleName)
}

func TestTransformerInsertSplicesNewElement(t *testing.T) {
	g, ids := buildChain(t)
	r := rule.TransformerRule{
		RuleName:   "insert-after-a",
		PhaseValue: rule.Balance,
		Pattern:    kindPattern(pattern.Primary, "A"),
		Variant:    rule.Insert,
		NewElement: kind("Inserted"),
		FreshScope: func() element.Scope { return "fresh" },
	}

	_, err := r.Run(g)
	require.NoError(t, err)

	edges, err := g.OutEdges(ids["a"])
	require.NoError(t, err)
	require.Len(t, edges, 1)

	inserted, err := g.Element(edges[0].To)
	require.NoError(t, err)
	assert.Equal(t, kind("Inserted"), inserted)
}

func TestTransformerContractsBeforeMatching(t *testing.T) {
	// Source -> A -> Noise -> B -> Sink; a contraction pattern absorbs
	// Noise into A before the Replace pattern (A -> B) is matched.
	g := element.NewGraph(kind("head"), kind("tail"), concatComposer{})
	source, err := g.AddVertex(kind("Source"))
	require.NoError(t, err)
	a, err := g.AddVertex(kind("A"))
	require.NoError(t, err)
	noise, err := g.AddVertex(kind("Noise"))
	require.NoError(t, err)
	b, err := g.AddVertex(kind("B"))
	require.NoError(t, err)
	sink, err := g.AddVertex(kind("Sink"))
	require.NoError(t, err)

	_, err = g.AddEdge(g.HeadID(), source, "h")
	require.NoError(t, err)
	_, err = g.AddEdge(source, a, "s1")
	require.NoError(t, err)
	_, err = g.AddEdge(a, noise, "s2")
	require.NoError(t, err)
	_, err = g.AddEdge(noise, b, "s3")
	require.NoError(t, err)
	_, err = g.AddEdge(b, sink, "s4")
	require.NoError(t, err)
	_, err = g.AddEdge(sink, g.TailID(), "t")
	require.NoError(t, err)

	contraction := pattern.New()
	contraction.AddVertex(pattern.Element(kindIs("Noise"), pattern.Secondary))

	pg := pattern.New()
	primary := pg.AddVertex(pattern.Element(kindIs("A"), pattern.Primary))
	secondary := pg.AddVertex(pattern.Element(kindIs("B"), pattern.Secondary))
	_, err = pg.AddEdge(primary, secondary, pattern.Any())
	require.NoError(t, err)

	r := rule.TransformerRule{
		RuleName:    "collapse-a-into-b-through-noise",
		PhaseValue:  rule.Balance,
		Contraction: contraction,
		Pattern:     pg,
		Variant:     rule.Replace,
	}

	out, err := r.Run(g)
	require.NoError(t, err)
	require.NotNil(t, out.EndGraph)

	assert.False(t, out.EndGraph.HasVertex(a), "A must be gone after replace")
	assert.False(t, out.EndGraph.HasVertex(noise), "Noise must be gone after contraction")
	assert.True(t, out.EndGraph.HasVertex(b))

	edges, err := out.EndGraph.EdgesBetween(source, b)
	require.NoError(t, err)
	require.Len(t, edges, 1, "Source must now point directly at B")

	assert.True(t, g.HasVertex(noise), "g itself is untouched; mutation happened on the contracted copy")
}

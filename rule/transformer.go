package rule

import (
	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/pattern"
	"github.com/arcflow/flowplan/transform"
	"github.com/arcflow/flowplan/vf2"
)

// Variant selects a TransformerRule's rewrite shape.
type Variant int

const (
	// Remove contracts the Primary capture out of the graph.
	Remove Variant = iota
	// Replace swaps the Primary capture for the Secondary capture.
	Replace
	// Insert splices NewElement in immediately after the Primary capture.
	Insert
)

func (v Variant) String() string {
	switch v {
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	case Insert:
		return "insert"
	default:
		return "unknown-variant"
	}
}

// TransformerRule rewrites the working graph when Pattern matches, per
// Variant. Remove requires a Primary capture; Replace requires Primary
// and Secondary; Insert requires a Primary capture and uses FreshScope
// to wire the new element in.
//
// Contraction, if set, is applied to fixed point before Pattern is
// matched — the same contract-then-match shape transform.SubGraph and
// partition.ExpressionGraphPartitioner use. Since Contracted.Apply
// already deep-copies, Run's mutation target becomes the contracted
// graph rather than the graph it was handed; the caller must use the
// returned Transform.EndGraph, not assume g itself was mutated.
type TransformerRule struct {
	RuleName    string
	PhaseValue  PlanPhase
	Contraction *pattern.Graph
	Pattern     *pattern.Graph
	Variant     Variant
	Options     vf2.Options

	NewElement element.FlowElement
	FreshScope func() element.Scope
}

func (r TransformerRule) Name() string     { return defaultName(r.RuleName, "transformer") }
func (r TransformerRule) Phase() PlanPhase { return r.PhaseValue }

// Run implements Rule.
func (r TransformerRule) Run(g *element.Graph) (Transform, error) {
	target := g
	if r.Contraction != nil {
		c := transform.Contracted{Pattern: r.Contraction, Options: r.Options}
		contracted, _, err := c.Apply(g)
		if err != nil {
			return Transform{}, err
		}
		target = contracted
	}

	view := target.Mask(target.HeadID(), target.TailID())
	m, ok, err := vf2.FindFirst(r.Pattern, view, r.Options)
	if err != nil {
		return Transform{}, err
	}
	if !ok {
		return Transform{EndGraph: target}, nil
	}

	switch r.Variant {
	case Remove:
		primary, ok := m.Primary()
		if !ok {
			return Transform{}, &BadCapturesError{
				RuleName: r.Name(),
				Reason:   "remove requires exactly one Primary capture",
			}
		}
		if err := target.RemoveAndContract(primary); err != nil {
			return Transform{}, err
		}

	case Replace:
		primary, ok1 := m.Primary()
		secondary, ok2 := m.Secondary()
		if !ok1 || !ok2 {
			return Transform{}, &BadCapturesError{
				RuleName: r.Name(),
				Reason:   "replace requires exactly one Primary and one Secondary capture",
			}
		}
		if err := target.ReplaceElementWith(primary, secondary); err != nil {
			return Transform{}, err
		}

	case Insert:
		primary, ok := m.Primary()
		if !ok {
			return Transform{}, &BadCapturesError{
				RuleName: r.Name(),
				Reason:   "insert requires exactly one Primary capture",
			}
		}
		if _, err := target.InsertFlowElementAfter(primary, r.NewElement, r.FreshScope); err != nil {
			return Transform{}, err
		}
	}

	return Transform{EndGraph: target}, nil
}

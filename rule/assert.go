package rule

import (
	"fmt"
	"strings"

	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/match"
	"github.com/arcflow/flowplan/pattern"
	"github.com/arcflow/flowplan/vf2"
)

// AssertRule fails the plan with an AssertionError if Pattern matches
// the working graph. MessageTemplate may reference "{Primary}" and
// "{Secondary}", substituted with a %v rendering of the matched
// FlowElement.
type AssertRule struct {
	RuleName        string
	PhaseValue      PlanPhase
	Pattern         *pattern.Graph
	MessageTemplate string
	Options         vf2.Options
}

func (r AssertRule) Name() string    { return defaultName(r.RuleName, "assert") }
func (r AssertRule) Phase() PlanPhase { return r.PhaseValue }

// Run implements Rule.
func (r AssertRule) Run(g *element.Graph) (Transform, error) {
	view := g.Mask(g.HeadID(), g.TailID())
	m, ok, err := vf2.FindFirst(r.Pattern, view, r.Options)
	if err != nil {
		return Transform{}, err
	}
	if !ok {
		return Transform{EndGraph: g}, nil
	}

	return Transform{}, &AssertionError{
		RuleName: r.Name(),
		Message:  interpolate(r.MessageTemplate, m, g),
		Match:    m,
	}
}

func interpolate(tmpl string, m *match.Match, g *element.Graph) string {
	out := tmpl
	if id, ok := m.Primary(); ok {
		if el, err := g.Element(id); err == nil {
			out = strings.ReplaceAll(out, "{Primary}", fmt.Sprintf("%v", el))
		}
	}
	if id, ok := m.Secondary(); ok {
		if el, err := g.Element(id); err == nil {
			out = strings.ReplaceAll(out, "{Secondary}", fmt.Sprintf("%v", el))
		}
	}

	return out
}

package rule

import (
	"errors"
	"fmt"

	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/match"
	"github.com/arcflow/flowplan/partition"
)

// ErrPlannerAssertion is the sentinel an AssertionError unwraps to;
// callers branch on it with errors.Is.
var ErrPlannerAssertion = errors.New("rule: assert rule matched")

// ErrBadCaptures is the sentinel a BadCapturesError unwraps to.
var ErrBadCaptures = errors.New("rule: capture set has the wrong arity")

// AssertionError carries an assert rule's filled-in message and the
// match that triggered it.
type AssertionError struct {
	RuleName string
	Message  string
	Match    *match.Match
}

func (e *AssertionError) Error() string { return fmt.Sprintf("%s: %s", e.RuleName, e.Message) }
func (e *AssertionError) Unwrap() error { return ErrPlannerAssertion }

// BadCapturesError reports that a transformer variant received a
// capture set of the wrong size.
type BadCapturesError struct {
	RuleName string
	Reason   string
}

func (e *BadCapturesError) Error() string { return fmt.Sprintf("%s: %s", e.RuleName, e.Reason) }
func (e *BadCapturesError) Unwrap() error { return ErrBadCaptures }

// Rule is one unit of planner work: assert, transformer, or partitioner.
type Rule interface {
	Name() string
	Phase() PlanPhase
	Run(g *element.Graph) (Transform, error)
}

// Transform is what a Rule's Run reports back to the driver: the
// (possibly unchanged) end graph, any child transforms it produced
// internally, diagnostics for the trace surface, and — for a
// partitioner rule only — the partitions it carved.
//
// Changed and StructurallyChanged are not set by Run; the driver fills
// them in after comparing EndGraph against the graph it held before
// copying it for the rule (Changed by pointer identity, StructurallyChanged by
// element.Graph.StructurallyEqual) before recording the Transform.
type Transform struct {
	EndGraph    *element.Graph
	Children    []Transform
	Diagnostics []string
	Partitions  []*partition.Partition

	Changed             bool
	StructurallyChanged bool
}

// defaultName falls back to kind, a lower-cased hyphenated rule-kind
// name, whenever the rule author left RuleName empty.
func defaultName(name, kind string) string {
	if name != "" {
		return name
	}

	return kind
}

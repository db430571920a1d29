package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/arcflow/flowplan/element"
	"github.com/arcflow/flowplan/rule"
)

// Planner runs a fixed rule list across the phase lifecycle.
type Planner struct {
	rules  []rule.Rule
	config *Config
}

// NewPlanner validates cfg against rules and returns a ready-to-run
// Planner, or a ConfigError if the configuration is inconsistent.
// ConfigError is only ever raised here, at construction time.
func NewPlanner(rules []rule.Rule, opts ...Option) (*Planner, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(rules); err != nil {
		return nil, err
	}

	return &Planner{rules: rules, config: cfg}, nil
}

// Run executes every PlanPhase in order, running each rule tagged with
// that phase in declaration order, against g. It returns the final
// installed graph, the transform produced by every rule that ran, and
// the first error encountered.
//
// Because element.Graph's mutation primitives work in place, a rule
// that is handed a deep copy and mutates it returns that same pointer
// whether or not it changed anything — pointer identity against the
// copy the rule received is never informative. The driver instead
// compares the rule's pre-invocation graph against its returned graph
// by both pointer identity (Transform.Changed, always true here since
// the driver always hands the rule a fresh Copy and therefore a
// distinct pointer from the graph the rule was compared against — this
// mirrors the original design's conflation of "new object" with
// "changed") and structural equality (Transform.StructurallyChanged,
// the operationally meaningful signal). A rule is always installed;
// Changed-without-StructurallyChanged is logged as a correctness probe,
// never used to block installation.
func (p *Planner) Run(g *element.Graph) (*element.Graph, []rule.Transform, error) {
	current := g
	transforms := make([]rule.Transform, 0, len(p.rules))
	lastCheck := time.Now()

	for _, phase := range rule.Phases() {
		for _, r := range p.rules {
			if r.Phase() != phase {
				continue
			}

			if p.config.phaseTimeout > 0 && time.Since(lastCheck) > p.config.phaseTimeout {
				err := &TimeoutError{Phase: phase.String(), Rule: r.Name()}
				p.config.Logger.Error("planner: phase timeout", "phase", phase.String(), "rule", r.Name())
				p.writeTrace(phase, r.Name(), current, err)

				return current, transforms, annotate(err, phase.String(), r.Name())
			}

			before := current
			working := current.Copy()

			t, err := r.Run(working)
			lastCheck = time.Now()
			if err != nil {
				p.config.Logger.Error("planner: rule failed", "phase", phase.String(), "rule", r.Name(), "error", err)
				p.writeTrace(phase, r.Name(), working, err)

				return before, transforms, annotate(err, phase.String(), r.Name())
			}

			t.Changed = t.EndGraph != before
			t.StructurallyChanged = !before.StructurallyEqual(t.EndGraph)
			if t.Changed && !t.StructurallyChanged {
				p.config.Logger.Debug("planner: rule produced a structurally-identical copy", "phase", phase.String(), "rule", r.Name())
			}

			current = t.EndGraph
			transforms = append(transforms, t)
		}
	}

	return current, transforms, nil
}

// writeTrace files one artifact when planning aborts, if trace writing
// is enabled. Write failures are logged, not surfaced, since a broken
// trace sink must never mask the original planning error.
func (p *Planner) writeTrace(phase rule.PlanPhase, ruleName string, failing *element.Graph, cause error) {
	if !p.config.traceEnabled || p.config.traceWriter == nil {
		return
	}

	artifact := TraceArtifact{
		ID:    uuid.NewString(),
		Phase: phase.String(),
		Rule:  ruleName,
		Graph: failing,
		Cause: cause,
	}
	if err := p.config.traceWriter.WriteTrace(artifact); err != nil {
		p.config.Logger.Warn("planner: trace write failed", "phase", phase.String(), "rule", ruleName, "error", err)
	}
}

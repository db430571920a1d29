package pattern

import "github.com/arcflow/flowplan/element"

// NodePredicate decides whether a flow element is accepted by a pattern
// vertex. Predicates must be pure (no graph mutation, deterministic for
// the same input) so that matcher search order stays reproducible.
type NodePredicate func(el element.FlowElement) bool

// EdgePredicate decides whether a scope is accepted by a pattern edge.
type EdgePredicate func(sc element.Scope) bool

// ElementExpr is one P-graph vertex: a predicate over flow elements plus
// the capture label it contributes to when matched.
type ElementExpr struct {
	Predicate NodePredicate
	Label     Label
}

// Element builds an ElementExpr. A nil predicate always rejects (the zero
// value of NodePredicate), never accepts — there is no implicit
// "match anything" node predicate; use Element(func(element.FlowElement)
// bool { return true }, label) explicitly if that is intended.
func Element(pred NodePredicate, label Label) ElementExpr {
	return ElementExpr{Predicate: pred, Label: label}
}

// Accepts reports whether el satisfies this vertex's predicate.
func (e ElementExpr) Accepts(el element.FlowElement) bool {
	if e.Predicate == nil {
		return false
	}

	return e.Predicate(el)
}

// ScopeExpr is one P-graph edge: either a predicate over scopes, or the
// distinguished wildcard that applies to all — a wildcard bundle of
// size one matches any bundle of one-or-more parallel E-graph scopes
// without requiring a perfect matching.
type ScopeExpr struct {
	predicate EdgePredicate
	wildcard  bool
}

// Any returns the wildcard ScopeExpr.
func Any() ScopeExpr {
	return ScopeExpr{wildcard: true}
}

// MatchScope builds a concrete (non-wildcard) ScopeExpr.
func MatchScope(pred EdgePredicate) ScopeExpr {
	return ScopeExpr{predicate: pred}
}

// IsWildcard reports whether this is the "applies to all" expression.
func (s ScopeExpr) IsWildcard() bool {
	return s.wildcard
}

// Applies reports whether sc satisfies this scope expression. Wildcards
// always apply; a nil concrete predicate never does.
func (s ScopeExpr) Applies(sc element.Scope) bool {
	if s.wildcard {
		return true
	}
	if s.predicate == nil {
		return false
	}

	return s.predicate(sc)
}

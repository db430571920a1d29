package planner

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrPlannerTimeout is the sentinel a TimeoutError unwraps to.
var ErrPlannerTimeout = errors.New("planner: phase timeout exceeded")

// ErrConfigError is the sentinel a ConfigError unwraps to.
var ErrConfigError = errors.New("planner: configuration is inconsistent")

// TimeoutError reports that the wall-clock ceiling between rule
// invocations elapsed before Rule could run.
type TimeoutError struct {
	Phase string
	Rule  string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("phase %s: timed out before rule %q ran", e.Phase, e.Rule)
}
func (e *TimeoutError) Unwrap() error { return ErrPlannerTimeout }

// ConfigError reports a semantically inconsistent Config, raised only
// from NewPlanner, never mid-plan.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("planner: %s", e.Reason) }
func (e *ConfigError) Unwrap() error { return ErrConfigError }

// PhaseError annotates any error a rule surfaces with the phase and rule
// name active when it occurred, so a plan abort always names where it
// happened.
type PhaseError struct {
	Phase string
	Rule  string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s, rule %q: %v", e.Phase, e.Rule, e.Err)
}
func (e *PhaseError) Unwrap() error { return e.Err }

// annotate wraps err with phase/rule context and, exactly once at this
// driver boundary, captures a stack trace via pkg/errors.
func annotate(err error, phase, ruleName string) error {
	return pkgerrors.WithStack(&PhaseError{Phase: phase, Rule: ruleName, Err: err})
}

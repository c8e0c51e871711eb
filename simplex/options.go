// SPDX-License-Identifier: MIT

// Package simplex: functional configuration for the solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - NewSolverOptions, the resolver used by NewSolver.
package simplex

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRule is the entering/leaving selection policy.
	DefaultRule = Dantzig

	// DefaultMaxIterations caps the number of pivots per solve.
	DefaultMaxIterations = 10000

	// DefaultEpsilon is the tolerance of the feasible-start precondition.
	// Pivot selection itself always compares against exact zero.
	DefaultEpsilon = 1e-9

	// DefaultRequireFeasibleStart: the slack basis is assumed feasible and
	// never checked.
	DefaultRequireFeasibleStart = false
)

// ---------- Internal panic messages ----------

const (
	panicRuleInvalid    = "simplex: WithRule: unknown rule"
	panicMaxIterInvalid = "simplex: WithMaxIterations: n must be > 0"
	panicEpsilonInvalid = "simplex: WithEpsilon: eps must be finite, non-negative"
	panicPivotHookNil   = "simplex: WithPivotHook: hook must not be nil"
)

// PivotEvent describes one completed pivot. It is passed by value and does
// not expose the tableau.
type PivotEvent struct {
	Iteration  int     // 1-based pivot counter
	Row        int     // pivot row p
	Entering   int     // variable index entering the basis (pivot column q)
	Leaving    int     // variable index that left row p
	Ratio      float64 // winning min-ratio value RHS[p]/T[p][q] before the pivot
	Objective  float64 // objective value after the pivot
	Degenerate bool    // Ratio == 0: the vertex did not move
}

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective solver configuration.
type Options struct {
	rule                 Rule
	maxIterations        int
	eps                  float64
	requireFeasibleStart bool
	onPivot              func(PivotEvent)
}

// Rule returns the resolved pivoting rule.
func (o Options) Rule() Rule { return o.rule }

// MaxIterations returns the resolved pivot cap.
func (o Options) MaxIterations() int { return o.maxIterations }

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RequireFeasibleStart reports whether NewSolver checks the slack basis.
func (o Options) RequireFeasibleStart() bool { return o.requireFeasibleStart }

// WithRule selects Dantzig (default) or Bland.
// Panics on an unknown rule.
func WithRule(r Rule) Option {
	if !r.Valid() {
		panic(panicRuleInvalid)
	}

	return func(o *Options) { o.rule = r }
}

// WithMaxIterations caps the number of pivots. Exceeding it ends the solve
// with ErrIterationLimit. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithEpsilon sets the tolerance used by the feasible-start precondition.
// Panics when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRequireFeasibleStart makes NewSolver fail with ErrInfeasibleStart
// unless every slack column is a unit vector and every RHS is non-negative.
//
// Notes:
//   - There is no phase-1: an LP whose slack basis is infeasible is rejected,
//     not repaired.
func WithRequireFeasibleStart() Option {
	return func(o *Options) { o.requireFeasibleStart = true }
}

// WithPivotHook registers fn to be called synchronously after every pivot.
// The last hook in the option list wins. Panics when fn is nil.
func WithPivotHook(fn func(PivotEvent)) Option {
	if fn == nil {
		panic(panicPivotHookNil)
	}

	return func(o *Options) { o.onPivot = fn }
}

// NewSolverOptions resolves opts on top of the documented defaults
// (last-writer-wins). NewSolver uses it; callers may use it to inspect
// the effective configuration of an option list.
func NewSolverOptions(opts ...Option) Options {
	o := Options{
		rule:                 DefaultRule,
		maxIterations:        DefaultMaxIterations,
		eps:                  DefaultEpsilon,
		requireFeasibleStart: DefaultRequireFeasibleStart,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

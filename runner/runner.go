// SPDX-License-Identifier: MIT

// Package runner solves problem documents for the command line and the HTTP
// server: it resolves solver options from configuration, traces pivots
// through klog, records metrics and labels the outcome.
package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlp/lpfile"
	"github.com/katalvlaran/lvlp/metrics"
	"github.com/katalvlaran/lvlp/simplex"
	"k8s.io/klog/v2"
)

// ErrInvalidConfig indicates a Config that cannot produce solver options.
var ErrInvalidConfig = errors.New("runner: invalid configuration")

// Verbosity levels.
const (
	logSummary = 2 // one line per solve
	logPivots  = 4 // one line per pivot
)

// Config is the process-level solver configuration.
type Config struct {
	Rule                 simplex.Rule
	MaxIterations        int
	RequireFeasibleStart bool
}

// DefaultConfig mirrors the simplex package defaults.
func DefaultConfig() Config {
	return Config{
		Rule:                 simplex.DefaultRule,
		MaxIterations:        simplex.DefaultMaxIterations,
		RequireFeasibleStart: simplex.DefaultRequireFeasibleStart,
	}
}

// Validate rejects values the simplex option constructors would panic on.
func (c Config) Validate() error {
	if !c.Rule.Valid() {
		return fmt.Errorf("rule %s: %w", c.Rule, ErrInvalidConfig)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max-iterations %d must be > 0: %w", c.MaxIterations, ErrInvalidConfig)
	}

	return nil
}

// Options translates a validated Config into simplex options.
func (c Config) Options() []simplex.Option {
	opts := []simplex.Option{
		simplex.WithRule(c.Rule),
		simplex.WithMaxIterations(c.MaxIterations),
	}
	if c.RequireFeasibleStart {
		opts = append(opts, simplex.WithRequireFeasibleStart())
	}

	return opts
}

// Runner solves documents under one Config.
type Runner struct {
	cfg Config
	col *metrics.Collectors
}

// New validates cfg. col may be nil when metrics are not collected.
func New(cfg Config, col *metrics.Collectors) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg, col: col}, nil
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() Config { return r.cfg }

// Run solves doc with the runner's configuration.
func (r *Runner) Run(doc *lpfile.Document) (lpfile.Result, error) {
	return r.RunWith(doc, r.cfg)
}

// RunWith solves doc under cfg instead of the runner's own configuration.
// MAIN DESCRIPTION:
//   - Document -> Problem -> simplex.Solve -> lpfile.Result.
//
// Behavior highlights:
//   - The Result is always populated, also on error, so callers can render
//     the failure in their own output format.
//   - Every outcome (invalid input included) is counted in the collectors.
//   - At verbosity 4 every pivot is logged.
//
// Errors:
//   - ErrInvalidConfig, lpfile.ErrEmptyDocument for a nil doc, and any
//     lpfile or simplex error.
func (r *Runner) RunWith(doc *lpfile.Document, cfg Config) (lpfile.Result, error) {
	if doc == nil {
		return r.reject(nil, "<nil>", fmt.Errorf("RunWith: nil document: %w", lpfile.ErrEmptyDocument))
	}
	name := doc.Name
	if name == "" {
		name = "<unnamed>"
	}
	if err := cfg.Validate(); err != nil {
		return r.reject(doc, name, err)
	}

	p, err := doc.Problem()
	if err != nil {
		return r.reject(doc, name, err)
	}

	opts := cfg.Options()
	if klog.V(logPivots).Enabled() {
		opts = append(opts, simplex.WithPivotHook(func(e simplex.PivotEvent) {
			klog.Infof("solve %s: pivot %d row=%d enter=%d leave=%d ratio=%g z=%g degenerate=%t",
				name, e.Iteration, e.Row, e.Entering, e.Leaving, e.Ratio, e.Objective, e.Degenerate)
		}))
	}

	start := time.Now()
	sol, err := simplex.Solve(p, opts...)
	elapsed := time.Since(start)

	r.col.Observe(sol.Status.String(), sol.Iterations, elapsed)
	klog.V(logSummary).Infof("solve %s: %s after %d pivots (%d degenerate) in %s",
		name, sol.Status, sol.Iterations, sol.DegeneratePivots, elapsed)

	return lpfile.NewResult(doc, sol, err), err
}

// reject counts and logs a solve refused before any pivot.
func (r *Runner) reject(doc *lpfile.Document, name string, err error) (lpfile.Result, error) {
	r.col.Observe(simplex.InvalidInput.String(), 0, 0)
	klog.V(logSummary).Infof("solve %s: rejected: %v", name, err)

	return lpfile.NewResult(doc, simplex.Solution{Status: simplex.InvalidInput}, err), err
}

// Package lvlp solves small linear programs with the primal simplex method.
//
// Layout:
//
//	matrix/   dense row-major storage, row kernels and validators
//	simplex/  tableau builder, Dantzig/Bland pivoting, solver state machine
//	lpfile/   YAML/JSON problem documents and labelled results
//	metrics/  Prometheus collectors for solve outcomes
//	runner/   configuration, klog tracing and metrics around one solve
//	server/   HTTP front end (POST /v1/solve, /healthz, /metrics)
//	cli/      cobra commands behind cmd/lvlp
//
// Quick start:
//
//	sol, err := simplex.Solve(simplex.Problem{
//		A:     [][]float64{{1, 1}, {1, 0}},
//		B:     []float64{4, 2},
//		Ops:   []simplex.Operator{simplex.LessEqual, simplex.LessEqual},
//		C:     []float64{3, 2},
//		Sense: simplex.Maximize,
//	})
//	// sol.Value == 10, sol.X == [2 2]
//
// From the shell:
//
//	lvlp solve -f examples/production.yaml -o json
//	lvlp serve --listen :8080
//
// The solver starts from the all-slack basis and has no phase-1: problems
// with >= or = rows may end at a point that violates them. Enable
// WithRequireFeasibleStart (--require-feasible-start) to reject those, and
// check returned points with simplex.Verify.
package lvlp

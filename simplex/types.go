// SPDX-License-Identifier: MIT

// Package simplex: enumerations shared by the builder, the solver and callers.
// Every enumeration has a stable text form so problem documents and logs can
// carry it verbatim.
package simplex

import (
	"fmt"
	"strings"
)

// Operator is the relational operator of one constraint row.
type Operator int

const (
	// LessEqual is "a·x <= b"; its slack coefficient is +1.
	LessEqual Operator = iota
	// Equal is "a·x = b"; its slack coefficient is 0.
	Equal
	// GreaterEqual is "a·x >= b"; its slack (surplus) coefficient is -1.
	GreaterEqual
)

// Slack returns the coefficient written into the row's slack column.
func (o Operator) Slack() float64 {
	switch o {
	case LessEqual:
		return 1
	case GreaterEqual:
		return -1
	default:
		return 0
	}
}

// Valid reports whether o is one of the three known operators.
func (o Operator) Valid() bool {
	return o == LessEqual || o == Equal || o == GreaterEqual
}

// String returns "<=", "=" or ">=".
func (o Operator) String() string {
	switch o {
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case GreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// operatorAliases maps accepted spellings to operators.
var operatorAliases = map[string]Operator{
	"<=": LessEqual, "≤": LessEqual, "le": LessEqual,
	"=": Equal, "==": Equal, "eq": Equal,
	">=": GreaterEqual, "≥": GreaterEqual, "ge": GreaterEqual,
}

// ParseOperator accepts "<=", "≤", "le", "=", "==", "eq", ">=", "≥", "ge"
// (case-insensitive, surrounding space ignored).
func ParseOperator(s string) (Operator, error) {
	op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownOperator)
	}

	return op, nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Operator) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%d: %w", int(o), ErrUnknownOperator)
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op

	return nil
}

// Sense selects the optimization direction.
type Sense int

const (
	// Maximize selects the column with the largest positive reduced cost.
	Maximize Sense = iota
	// Minimize selects the column with the most negative reduced cost.
	Minimize
)

// Valid reports whether s is Maximize or Minimize.
func (s Sense) Valid() bool { return s == Maximize || s == Minimize }

// String returns "max" or "min".
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// ParseSense accepts "max", "maximize", "min", "minimize" (case-insensitive).
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownSense)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Sense) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%d: %w", int(s), ErrUnknownSense)
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sense) UnmarshalText(text []byte) error {
	v, err := ParseSense(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Rule selects the entering/leaving tie-break policy.
type Rule int

const (
	// Dantzig picks the most improving reduced cost; first index wins ties.
	// It may cycle on degenerate tableaux.
	Dantzig Rule = iota
	// Bland picks the lowest-index improving column and, among tied ratios,
	// the row whose basic variable has the lowest index. It never cycles.
	Bland
)

// Valid reports whether r is a known rule.
func (r Rule) Valid() bool { return r == Dantzig || r == Bland }

// String returns "dantzig" or "bland".
func (r Rule) String() string {
	switch r {
	case Dantzig:
		return "dantzig"
	case Bland:
		return "bland"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule accepts "dantzig" or "bland" (case-insensitive).
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dantzig":
		return Dantzig, nil
	case "bland":
		return Bland, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRule)
	}
}

// Status is the solver state. Running is the only non-terminal state.
type Status int

const (
	// Running means more pivots may follow.
	Running Status = iota
	// Optimal means no entering column improves the objective.
	Optimal
	// Unbounded means an entering column had no bounding row.
	Unbounded
	// IterationLimit means the pivot budget ran out before optimality.
	IterationLimit
	// InfeasibleStart means the required feasible starting basis was absent.
	InfeasibleStart
	// InvalidInput means the problem was rejected before any pivot.
	InvalidInput
	// NumericalFailure means a pivot produced NaN or ±Inf.
	NumericalFailure
)

var statusNames = [...]string{
	Running:          "running",
	Optimal:          "optimal",
	Unbounded:        "unbounded",
	IterationLimit:   "iteration_limit",
	InfeasibleStart:  "infeasible_start",
	InvalidInput:     "invalid_input",
	NumericalFailure: "numerical_failure",
}

// String returns the snake_case status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// Terminal reports whether no further pivots can happen.
func (s Status) Terminal() bool { return s != Running }

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	var i int
	for i = range statusNames {
		if statusNames[i] == s {
			return Status(i), nil
		}
	}

	return 0, fmt.Errorf("unknown status %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

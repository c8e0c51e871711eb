// SPDX-License-Identifier: MIT

package lpfile

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvlp/simplex"
	"sigs.k8s.io/yaml"
)

// Output formats accepted by Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Assignment is one named variable value.
type Assignment struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Result is the document-level outcome of a solve.
//
// Value, Variables, Basis and Feasible are set only for optimal outcomes.
// Feasible reports whether the returned point satisfies every constraint;
// it can be false when >= or = rows made the starting basis infeasible.
type Result struct {
	Name             string         `json:"name,omitempty"`
	Status           simplex.Status `json:"status"`
	Value            *float64       `json:"value,omitempty"`
	Variables        []Assignment   `json:"variables,omitempty"`
	Basis            []string       `json:"basis,omitempty"`
	Iterations       int            `json:"iterations"`
	DegeneratePivots int            `json:"degenerate_pivots"`
	Feasible         *bool          `json:"feasible,omitempty"`
	Violation        string         `json:"violation,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// NewResult labels sol with the names of doc. A non-nil err is recorded in
// Result.Error and only the counters of sol are kept.
func NewResult(doc *Document, sol simplex.Solution, err error) Result {
	r := Result{
		Status:           sol.Status,
		Iterations:       sol.Iterations,
		DegeneratePivots: sol.DegeneratePivots,
	}
	if doc != nil {
		r.Name = doc.Name
	}
	if err != nil {
		r.Status = simplex.StatusOf(err)
		r.Error = err.Error()
		return r
	}
	if doc == nil {
		return r
	}

	names := doc.Names()
	v := sol.Value
	r.Value = &v
	r.Variables = make([]Assignment, len(sol.X))
	var i int
	for i = range sol.X {
		r.Variables[i] = Assignment{Name: names[i], Value: sol.X[i]}
	}
	r.Basis = make([]string, len(sol.Basis))
	for i = range sol.Basis {
		r.Basis[i] = basisName(names, sol.Basis[i])
	}

	if p, perr := doc.Problem(); perr == nil {
		verr := simplex.Verify(p, sol.X, simplex.DefaultEpsilon)
		ok := verr == nil
		r.Feasible = &ok
		if verr != nil {
			r.Violation = verr.Error()
		}
	}

	return r
}

// basisName names structural variables by the document and slack k as s<k+1>.
func basisName(names []string, j int) string {
	if j < len(names) {
		return names[j]
	}

	return fmt.Sprintf("s%d", j-len(names)+1)
}

// Encode renders v as indented JSON or YAML (followed by a newline).
// Errors: ErrBadFormat for any other format, marshalling errors otherwise.
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("Encode: %w", err)
		}
		return append(b, '\n'), nil
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("Encode: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("Encode: output format %q: %w", format, ErrBadFormat)
	}
}

// SPDX-License-Identifier: MIT

package lpfile

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlp/simplex"
	"sigs.k8s.io/yaml"
)

// Constraint is one row: coefficients · x  operator  rhs.
type Constraint struct {
	Name         string            `json:"name,omitempty"`
	Coefficients []float64         `json:"coefficients"`
	Operator     *simplex.Operator `json:"operator"`
	RHS          float64           `json:"rhs"`
}

// Document is the on-disk form of a linear program.
type Document struct {
	Name        string         `json:"name,omitempty"`
	Sense       *simplex.Sense `json:"sense"`
	Variables   []string       `json:"variables,omitempty"`
	Objective   []float64      `json:"objective"`
	Constraints []Constraint   `json:"constraints,omitempty"`
}

// Decode parses a YAML or JSON document.
// Errors: ErrEmptyDocument, ErrBadFormat (wrapping the parser error).
func Decode(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("Decode: %w: %w", ErrBadFormat, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return doc, nil
}

// validate checks the document-level fields that have no simplex.Problem
// counterpart: required keys and variable names.
func (d *Document) validate() error {
	if d.Sense == nil {
		return fmt.Errorf("missing sense: %w", ErrBadFormat)
	}
	if len(d.Objective) == 0 {
		return fmt.Errorf("missing objective: %w", ErrBadFormat)
	}

	var i int
	for i = range d.Constraints {
		if d.Constraints[i].Operator == nil {
			return fmt.Errorf("constraint %d: missing operator: %w", i, ErrBadFormat)
		}
	}

	if d.Variables == nil {
		return nil
	}
	if len(d.Variables) != len(d.Objective) {
		return fmt.Errorf("%d variable names for %d objective coefficients: %w",
			len(d.Variables), len(d.Objective), ErrBadFormat)
	}
	seen := make(map[string]struct{}, len(d.Variables))
	for i = range d.Variables {
		if d.Variables[i] == "" {
			return fmt.Errorf("variable %d: empty name: %w", i, ErrBadFormat)
		}
		if _, dup := seen[d.Variables[i]]; dup {
			return fmt.Errorf("variable %q declared twice: %w", d.Variables[i], ErrBadFormat)
		}
		seen[d.Variables[i]] = struct{}{}
	}

	return nil
}

// Problem converts the document into a validated simplex.Problem.
// Slices are copied; the document stays untouched by solving.
// Errors: ErrBadFormat for missing keys, and the simplex builder errors
// (ErrInvalidDimensions, ErrUnknownOperator, ErrNaNInf).
func (d *Document) Problem() (simplex.Problem, error) {
	if err := d.validate(); err != nil {
		return simplex.Problem{}, fmt.Errorf("Problem: %w", err)
	}

	m := len(d.Constraints)
	p := simplex.Problem{
		A:     make([][]float64, m),
		B:     make([]float64, m),
		Ops:   make([]simplex.Operator, m),
		C:     append([]float64(nil), d.Objective...),
		Sense: *d.Sense,
	}
	var i int
	for i = 0; i < m; i++ {
		p.A[i] = append([]float64(nil), d.Constraints[i].Coefficients...)
		p.B[i] = d.Constraints[i].RHS
		p.Ops[i] = *d.Constraints[i].Operator
	}
	if err := p.Validate(); err != nil {
		return simplex.Problem{}, fmt.Errorf("Problem: %w", err)
	}

	return p, nil
}

// Names returns the variable names, defaulting to x1..xn.
func (d *Document) Names() []string {
	if d.Variables != nil {
		return append([]string(nil), d.Variables...)
	}
	names := make([]string, len(d.Objective))
	var i int
	for i = range names {
		names[i] = "x" + strconv.Itoa(i+1)
	}

	return names
}

// Package validation holds the per-step field rule sets checked when a step
// is submitted. Rules are declarative: a field path, a validator tag and the
// message shown next to the input. A step only ever checks its own fields.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"intake/internal/application/paths"
)

// Rule constrains one field.
type Rule struct {
	Field   string
	Tag     string
	Message string
}

// FieldErrors maps an invalid field path to its human-readable message.
type FieldErrors map[string]string

// Result is the outcome of validating one step.
type Result struct {
	Fields FieldErrors `json:"fields"`
	// Banner carries a structural error that no single input can show, such
	// as a required list that is still empty.
	Banner string `json:"banner,omitempty"`
}

// Valid reports whether the step may advance.
func (r Result) Valid() bool {
	return len(r.Fields) == 0 && r.Banner == ""
}

type compiled[T any] struct {
	Rule
	lens paths.Lens[T]
}

func compile[T any](lookup func(string) (paths.Lens[T], error), rules []Rule) []compiled[T] {
	out := make([]compiled[T], 0, len(rules))
	for _, r := range rules {
		lens, err := lookup(r.Field)
		if err != nil {
			panic(fmt.Sprintf("validation: rule for %s: %v", r.Field, err))
		}
		out = append(out, compiled[T]{Rule: r, lens: lens})
	}
	return out
}

// check runs rules against target and records the first failure per field
// under prefix+field.
func check[T any](v *validator.Validate, target *T, prefix string, rules []compiled[T], errs FieldErrors) {
	for _, r := range rules {
		key := prefix + r.Field
		if _, seen := errs[key]; seen {
			continue
		}
		if err := v.Var(r.lens.Get(target), r.Tag); err != nil {
			errs[key] = r.Message
		}
	}
}

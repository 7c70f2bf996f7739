// Package filter evaluates row-selection expressions against canonical
// field maps. Expressions are compiled once at setup; a bad expression is a
// configuration error surfaced before any row is processed.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled row predicate.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile builds a predicate from an expression over the `fields` map,
// e.g. `fields["org"] == "Bubba Gump Shrimp Co."`. The expression must
// evaluate to a boolean.
func Compile(source string) (*Filter, error) {
	env := map[string]any{
		"fields": map[string]string{},
	}
	program, err := expr.Compile(source, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter expression: %w", err)
	}
	return &Filter{source: source, program: program}, nil
}

// Match evaluates the predicate for one row's canonical field map.
func (f *Filter) Match(fields map[string]string) (bool, error) {
	if fields == nil {
		fields = map[string]string{}
	}
	out, err := expr.Run(f.program, map[string]any{"fields": fields})
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, want bool", f.source, out)
	}
	return keep, nil
}

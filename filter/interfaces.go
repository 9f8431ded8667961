package filter

import (
	"context"
)

// Record is one decoded JSON object that filters are evaluated against.
// Field names are the API's JSON keys.
type Record map[string]any

// KeyField holds the map key a record was listed under, when it came from
// a keyed collection such as a leaderboard or the guild list.
const KeyField = "_key"

// Key returns the record's collection key or, failing that, its name
func (r Record) Key() string {
	for _, field := range []string{KeyField, "name", "username", "internalName"} {
		if s, ok := r[field].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Filter decides whether a record is kept
type Filter interface {
	Match(record Record) bool
}

// CompiledFilter is a filter produced from an expression
type CompiledFilter interface {
	Filter

	// Expression returns the source the filter was compiled from
	Expression() string

	// Eval is Match with the evaluation error exposed
	Eval(record Record) (bool, error)
}

// Compiler turns expressions into filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator applies a filter to a set of records
type Evaluator interface {
	Evaluate(ctx context.Context, filter CompiledFilter, records []Record) ([]Record, error)
}

package filter

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*ExprCompiler)

// WithCache enables caching of compiled programs
func WithCache(size int) ExprCompilerOption {
	return func(c *ExprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[*exprFilter](size)
		}
	}
}

// WithCustomFunctions adds helper functions available to every expression
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *ExprCompiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// NewExprCompiler creates an expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) *ExprCompiler {
	c := &ExprCompiler{helpers: helperFunctions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExprCompiler compiles expr expressions, optionally caching the programs
type ExprCompiler struct {
	helpers map[string]any
	cache   *lruCache[*exprFilter]
}

// Compile compiles expression into a filter. Record fields are referenced
// by their JSON names, e.g. `level >= 100 and icontains(name, "storm")`.
// Fields named like an expr builtin (type, len) are reachable as Record.type.
func (c *ExprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(compileEnv(c.helpers)),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{expression: expression, program: program, helpers: c.helpers}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Clear empties the program cache
func (c *ExprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached programs
func (c *ExprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Match reports whether record satisfies the filter. Records the
// expression cannot be evaluated against do not match.
func (f *exprFilter) Match(record Record) bool {
	ok, err := f.Eval(record)
	return err == nil && ok
}

func (f *exprFilter) Eval(record Record) (bool, error) {
	out, err := expr.Run(f.program, runtimeEnv(f.helpers, record))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			RecordKey:  record.Key(),
			Reason:     "expression failed",
			Err:        err,
		}
	}
	return out.(bool), nil
}

func (f *exprFilter) Expression() string {
	return f.expression
}

// compileEnv exposes the helpers plus the record-bound functions so that
// calls to them type-check.
func compileEnv(helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+3)
	maps.Copy(env, helpers)
	bindRecord(env, Record{})
	return env
}

func runtimeEnv(helpers map[string]any, record Record) map[string]any {
	env := make(map[string]any, len(record)+len(helpers)+3)
	maps.Copy(env, record)
	maps.Copy(env, helpers)
	bindRecord(env, record)
	return env
}

func bindRecord(env map[string]any, record Record) {
	env["Record"] = map[string]any(record)
	env["get"] = func(path string) any {
		v, _ := lookup(record, path)
		return v
	}
	env["has"] = func(path string) bool {
		v, ok := lookup(record, path)
		return ok && v != nil
	}
}

// lookup resolves a dotted path such as "guild.name" or "characters.0.level"
func lookup(record Record, path string) (any, bool) {
	var cur any = map[string]any(record)
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case Record:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func helperFunctions() map[string]any {
	return map[string]any{
		// contains, startsWith and endsWith are expr operators, so the
		// case-insensitive variants carry an i prefix
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"istartsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"iendsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"parseDate": func(s string) time.Time {
			t, _ := parseTime(s)
			return t
		},
		// API dates are ISO-8601 strings, so the day helpers take strings too
		"daysSince": func(s string) int {
			t, err := parseTime(s)
			if err != nil {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,
		"str": func(v any) string {
			return fmt.Sprint(v)
		},
	}
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Manager keeps named filter presets. Names are case-insensitive, matching
// how viper lowercases the keys of the filter config map.
type Manager struct {
	compiler  Compiler
	evaluator *ConcurrentEvaluator
	filters   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator *ConcurrentEvaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		filters:   make(map[string]CompiledFilter),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register compiles and stores a preset, replacing any with the same name
func (m *Manager) Register(name, expression string) error {
	f, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[presetKey(name)] = f
	m.mu.Unlock()
	return nil
}

// RegisterAll registers every preset or none of them
func (m *Manager) RegisterAll(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))
	for name, expression := range presets {
		f, err := m.compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[presetKey(name)] = f
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()
	return nil
}

// Get returns a registered preset
func (m *Manager) Get(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.filters[presetKey(name)]
	return f, ok
}

func presetKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Names returns the registered preset names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve returns the preset called nameOrExpr, or compiles it as an
// expression when no such preset exists.
func (m *Manager) Resolve(nameOrExpr string) (CompiledFilter, error) {
	if f, ok := m.Get(nameOrExpr); ok {
		return f, nil
	}
	return m.compiler.Compile(nameOrExpr)
}

// Apply filters records with a preset or ad-hoc expression
func (m *Manager) Apply(ctx context.Context, nameOrExpr string, records []Record) ([]Record, error) {
	f, err := m.Resolve(nameOrExpr)
	if err != nil {
		return nil, err
	}
	return m.evaluator.Evaluate(ctx, f, records)
}

// ApplyAll evaluates every registered preset against records
func (m *Manager) ApplyAll(ctx context.Context, records []Record) (map[string][]Record, error) {
	m.mu.RLock()
	filters := maps.Clone(m.filters)
	m.mu.RUnlock()

	return m.evaluator.EvaluateBatch(ctx, filters, records)
}

package filter

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/wynnapi/wapi"
)

func generateTestRecords(count int) []Record {
	classes := []string{"MAGE", "ARCHER", "WARRIOR", "ASSASSIN", "SHAMAN"}
	records := make([]Record, count)
	for i := range records {
		records[i] = Record{
			"name":  fmt.Sprintf("player%d", i),
			"class": classes[i%len(classes)],
			"level": 1 + i%106,
			"guild": map[string]any{"prefix": []string{"AVO", "ERN"}[i%2]},
		}
	}
	return records
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "field comparison",
			expression: `level >= 100`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `icontains(name, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "helpers and record functions",
			expression: `istartsWith(class, "ma") and has("guild.prefix") and get("guild.prefix") == "AVO"`,
		},
		{
			name:       "non boolean result",
			expression: `lower("X")`,
			wantErr:    true,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	record := Record{
		"username": "Salted",
		"online":   true,
		"playtime": 1234.5,
		"guild":    map[string]any{"name": "Avicia", "prefix": "AVO"},
		"characters": []any{
			map[string]any{"type": "MAGE", "level": 106},
		},
		"firstJoin": "2013-04-22T16:06:54.000Z",
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`online`, true},
		{`playtime > 1000`, true},
		{`username == "Salted" and not online`, false},
		{`icontains(username, "salt")`, true},
		{`iendsWith(get("guild.name"), "CIA")`, true},
		{`istartsWith(username, "SAL")`, true},
		{`username contains "Salt"`, true},
		{`username startsWith "salt"`, false},
		{`get("characters.0.level") == 106`, true},
		{`has("characters.1")`, false},
		{`daysSince(firstJoin) > 365`, true},
		{`Record.guild.prefix == "AVO"`, true},
		{`missing > 3`, false},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(record))
		})
	}
}

func TestHelpersCallable(t *testing.T) {
	record := Record{"name": "Storm", "joined": "2020-01-02"}
	calls := map[string]string{
		"icontains":   `icontains(name, "TOR")`,
		"istartsWith": `istartsWith(name, "st")`,
		"iendsWith":   `iendsWith(name, "RM")`,
		"lower":       `lower(name) == "storm"`,
		"upper":       `upper(name) == "STORM"`,
		"str":         `str(1) == "1"`,
		"parseDate":   `parseDate(joined).Year() == 2020`,
		"daysSince":   `daysSince(joined) > 0`,
		"daysAgo":     `daysAgo(1).Before(now())`,
		"now":         `now().After(parseDate(joined))`,
	}

	compiler := NewExprCompiler()
	for name := range helperFunctions() {
		t.Run(name, func(t *testing.T) {
			expression, ok := calls[name]
			require.True(t, ok, "no call registered for helper %s", name)
			f, err := compiler.Compile(expression)
			require.NoError(t, err)
			assert.True(t, f.Match(record))
		})
	}
}

func TestEvalError(t *testing.T) {
	f, err := NewExprCompiler().Compile(`level > 3`)
	require.NoError(t, err)

	_, err = f.Eval(Record{"name": "x", "level": "high"})
	require.Error(t, err)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "x", evalErr.RecordKey)
	assert.Contains(t, err.Error(), "level > 3")
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isMaxLevel": func(level int) bool { return level >= 106 },
	}))

	f, err := compiler.Compile(`isMaxLevel(level)`)
	require.NoError(t, err)
	assert.True(t, f.Match(Record{"level": 106}))
	assert.False(t, f.Match(Record{"level": 50}))
}

func TestConcurrentEvaluation(t *testing.T) {
	records := generateTestRecords(1000)

	f, err := NewExprCompiler().Compile(`class == "MAGE" and level > 50`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	matches, err := evaluator.Evaluate(context.Background(), f, records)
	require.NoError(t, err)

	want := matchAll(f, records)
	require.Equal(t, len(want), len(matches))
	assert.Equal(t, want, matches)
}

func TestEvaluateCancelled(t *testing.T) {
	f, err := NewExprCompiler().Compile(`level > 1`)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewConcurrentEvaluator(WithBatchSize(10)).Evaluate(ctx, f, generateTestRecords(200))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManager(t *testing.T) {
	m := NewManager()
	ctx := context.Background()

	require.NoError(t, m.RegisterAll(map[string]string{
		"mages":   `class == "MAGE"`,
		"veteran": `level >= 100`,
	}))
	assert.Equal(t, []string{"mages", "veteran"}, m.Names())

	err := m.RegisterAll(map[string]string{"broken": `level >`})
	require.Error(t, err)
	_, ok := m.Get("broken")
	assert.False(t, ok)

	records := generateTestRecords(100)

	t.Run("preset", func(t *testing.T) {
		matches, err := m.Apply(ctx, "mages", records)
		require.NoError(t, err)
		assert.Len(t, matches, 20)
	})

	t.Run("preset names ignore case", func(t *testing.T) {
		require.NoError(t, m.Register("BigGuilds", `level >= 100`))
		defer func() {
			m.mu.Lock()
			delete(m.filters, "bigguilds")
			m.mu.Unlock()
		}()

		assert.Contains(t, m.Names(), "bigguilds")
		_, ok := m.Get("bigguilds")
		assert.True(t, ok)

		upper, err := m.Resolve("BIGGUILDS")
		require.NoError(t, err)
		lower, err := m.Resolve("bigguilds")
		require.NoError(t, err)
		assert.Same(t, upper, lower)
	})

	t.Run("ad hoc expression", func(t *testing.T) {
		matches, err := m.Apply(ctx, `get("guild.prefix") == "ERN"`, records)
		require.NoError(t, err)
		assert.Len(t, matches, 50)
	})

	t.Run("all presets", func(t *testing.T) {
		results, err := m.ApplyAll(ctx, records)
		require.NoError(t, err)
		assert.Len(t, results, 2)
		assert.Len(t, results["mages"], 20)
	})
}

func TestCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`level > 1`)
	require.NoError(t, err)
	second, err := compiler.Compile(`level > 1`)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	_, _ = compiler.Compile(`level > 2`)
	_, _ = compiler.Compile(`level > 3`)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Zero(t, compiler.Size())
}

func TestRecordsFromValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantLen  int
		wantKeys []string
	}{
		{
			name:     "keyed collection",
			raw:      `{"1":{"name":"a","score":3},"2":{"name":"b","score":2}}`,
			wantLen:  2,
			wantKeys: []string{"1", "2"},
		},
		{
			name:     "array of objects",
			raw:      `[{"title":"x"},{"title":"y"},3]`,
			wantLen:  2,
			wantKeys: []string{"", ""},
		},
		{
			name:     "single object",
			raw:      `{"username":"Salted","guild":{"name":"Avicia"}}`,
			wantLen:  1,
			wantKeys: []string{"Salted"},
		},
		{
			name:    "scalar",
			raw:     `42`,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v wapi.Value
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))

			records := RecordsFromValue(v)
			require.Len(t, records, tt.wantLen)
			for i, key := range tt.wantKeys {
				assert.Equal(t, key, records[i].Key())
			}
		})
	}
}

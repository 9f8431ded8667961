package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/wynnapi/filter"
	"github.com/s0up4200/wynnapi/wapi"
)

// maxCellWidth truncates long text such as news bodies in table output
const maxCellWidth = 60

// view describes how a response is shown in table form
type view struct {
	// columns lists record fields to show; empty means every scalar field
	columns []string
	// title is printed above the table
	title string
}

// emit prints a Result in the configured format, applying --filter first.
func emit[T any](ctx context.Context, w io.Writer, res wapi.Result[T], v view) error {
	if res.IsFailure() {
		return res.Err()
	}

	value, err := toValue(res.DataOrZero())
	if err != nil {
		return fmt.Errorf("failed to convert response: %w", err)
	}

	records := filter.RecordsFromValue(value)
	if filterExpr != "" {
		records, err = filters.Apply(ctx, filterExpr, records)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
		logger.Debug().Int("matches", len(records)).Str("filter", filterExpr).Msg("Filter applied")
		return render(w, cfg.Output.Format, filter.ToValues(records), records, v)
	}

	return render(w, cfg.Output.Format, value.Interface(), records, v)
}

func toValue(data any) (wapi.Value, error) {
	if v, ok := data.(wapi.Value); ok {
		return v, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return wapi.Value{}, err
	}
	var v wapi.Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return wapi.Value{}, err
	}
	return v, nil
}

func render(w io.Writer, format string, doc any, records []filter.Record, v view) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderTable(w, records, v)
	}
}

func renderTable(w io.Writer, records []filter.Record, v view) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	columns := v.columns
	if len(columns) == 0 {
		columns = scalarColumns(records)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	if v.title != "" {
		t.SetTitle(v.title)
	}

	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = columnTitle(c)
	}
	t.AppendHeader(header)

	for _, r := range records {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[i] = cell(r, c)
		}
		t.AppendRow(row)
	}

	if len(records) > 1 {
		footer := make(table.Row, len(columns))
		footer[0] = fmt.Sprintf("%d results", len(records))
		t.AppendFooter(footer)
	}

	t.Render()
	return nil
}

// scalarColumns picks the fields holding plain values, keeping the
// collection key first.
func scalarColumns(records []filter.Record) []string {
	seen := map[string]bool{}
	for _, r := range records {
		for k, val := range r {
			switch val.(type) {
			case map[string]any, []any:
			default:
				seen[k] = true
			}
		}
	}

	columns := make([]string, 0, len(seen))
	for k := range seen {
		if k != filter.KeyField {
			columns = append(columns, k)
		}
	}
	sort.Strings(columns)
	if seen[filter.KeyField] {
		columns = slices.Insert(columns, 0, filter.KeyField)
	}
	return columns
}

func columnTitle(field string) string {
	if field == filter.KeyField {
		return "Key"
	}
	return field
}

func cell(r filter.Record, field string) string {
	val, ok := r[field]
	if !ok && strings.Contains(field, ".") {
		val, ok = lookupPath(r, field)
	}
	if !ok || val == nil {
		return ""
	}

	var s string
	switch x := val.(type) {
	case string:
		s = x
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = fmt.Sprint(item)
		}
		s = strings.Join(parts, ", ")
	case map[string]any:
		s = fmt.Sprintf("{%d fields}", len(x))
	default:
		s = fmt.Sprint(x)
	}

	s = strings.ReplaceAll(s, "\n", " ")
	if len([]rune(s)) > maxCellWidth {
		s = string([]rune(s)[:maxCellWidth-1]) + "…"
	}
	return s
}

func lookupPath(r filter.Record, path string) (any, bool) {
	var cur any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

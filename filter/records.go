package filter

import (
	"github.com/s0up4200/wynnapi/wapi"
)

// RecordsFromValue flattens an API response into filterable records.
// Arrays yield one record per object element. Objects whose members are
// all objects (keyed collections like the guild list or a leaderboard)
// yield one record per member, with the member key stored under KeyField.
// Any other object is a single record.
func RecordsFromValue(v wapi.Value) []Record {
	switch v.Kind() {
	case wapi.KindArray:
		records := make([]Record, 0, v.Len())
		for _, item := range v.Array() {
			if m, ok := item.Interface().(map[string]any); ok {
				records = append(records, Record(m))
			}
		}
		return records
	case wapi.KindObject:
		if !isCollection(v) {
			return []Record{Record(v.Interface().(map[string]any))}
		}
		records := make([]Record, 0, v.Len())
		for _, member := range v.Object() {
			m := member.Value.Interface().(map[string]any)
			if _, taken := m[KeyField]; !taken {
				m[KeyField] = member.Key
			}
			records = append(records, Record(m))
		}
		return records
	default:
		return nil
	}
}

func isCollection(v wapi.Value) bool {
	if v.Len() == 0 {
		return false
	}
	for _, member := range v.Object() {
		if member.Value.Kind() != wapi.KindObject {
			return false
		}
	}
	return true
}

// ToValues converts records back into JSON values for output
func ToValues(records []Record) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = map[string]any(r)
	}
	return out
}

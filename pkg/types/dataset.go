package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Dataset is the tabular in-memory form every data_ref resolves to.
// Columns preserves source ordering; Rows hold one map per record.
type Dataset struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Records returns the row maps; this is the JSON-safe representation
// used when a dataset appears inside a result payload.
func (d *Dataset) Records() []map[string]any {
	if d == nil {
		return nil
	}
	return d.Rows
}

// JSONSafe converts arbitrary result values into JSON-encodable form:
// datasets become row records, times become RFC 3339 strings, maps and
// slices are walked recursively, and anything the encoder would choke
// on is stringified.
func JSONSafe(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *Dataset:
		return val.Records()
	case Dataset:
		return val.Records()
	case time.Time:
		return val.Format(time.RFC3339)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = JSONSafe(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = JSONSafe(item)
		}
		return out
	default:
		if _, err := json.Marshal(val); err != nil {
			return fmt.Sprintf("%v", val)
		}
		return val
	}
}

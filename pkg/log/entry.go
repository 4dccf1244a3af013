package log

import (
	"encoding/json"
	"time"
)

// Entry is a single structured log record.
type Entry struct {
	Timestamp time.Time
	Level     Level
	RequestID string
	Message   string
	Fields    map[string]any
}

func newEntry(level Level, msg string) Entry {
	return Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Fields:    make(map[string]any),
	}
}

// addPairs folds alternating key/value arguments into the entry fields.
// A trailing key without a value is dropped.
func (e *Entry) addPairs(keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		e.Fields[key] = keysAndValues[i+1]
	}
}

// MarshalJSON renders the entry as a flat JSON object. Optional fields are
// omitted when empty.
func (e Entry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Fields)+4)
	m["timestamp"] = e.Timestamp.UTC().Format(time.RFC3339)
	m["level"] = e.Level.String()
	m["msg"] = e.Message
	if e.RequestID != "" {
		m["request_id"] = e.RequestID
	}
	for k, v := range e.Fields {
		m[k] = v
	}
	return json.Marshal(m)
}

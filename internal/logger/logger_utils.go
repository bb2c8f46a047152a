package logger

import (
	"sort"

	"github.com/rs/zerolog"
)

// FieldsWrapper logs a flat key/value record as a nested zerolog object with
// keys in a stable order.
type FieldsWrapper struct {
	Fields map[string]interface{}
}

func (w FieldsWrapper) MarshalZerologObject(e *zerolog.Event) {
	keys := make([]string, 0, len(w.Fields))
	for key := range w.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch v := w.Fields[key].(type) {
		case string:
			e.Str(key, v)
		case bool:
			e.Bool(key, v)
		case nil:
			// omitted
		default:
			e.Interface(key, v)
		}
	}
}

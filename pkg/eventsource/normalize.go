package eventsource

import (
	"bytes"
	"encoding/json"
)

// Normalize returns event as a tree of map[string]any, []any and scalars.
//
// Trees and scalars pass through unchanged. Raw JSON ([]byte or
// json.RawMessage) is decoded. Any other value, such as the typed records in
// github.com/aws/aws-lambda-go/events, is marshalled and decoded again so its
// json tags name the tree's keys. Numbers decode as json.Number.
func Normalize(event any) (any, error) {
	switch typed := event.(type) {
	case nil, string, bool, float64, json.Number,
		map[string]any, []any,
		map[string]string, map[string][]string, []string, []map[string]any:
		return event, nil
	case json.RawMessage:
		return decode(typed)
	case []byte:
		return decode(typed)
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return decode(raw)
}

func decode(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, Error.Wrap(err)
	}
	return tree, nil
}

package reportquery

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolve walks a dot path through a fetched record. A nil or absent value
// at any segment resolves to (nil, false); it never panics on malformed
// documents. This is the single canonical path walker; the projector and the
// aggregation engine both go through it.
func Resolve(record bson.M, path string) (any, bool) {
	var current any = record
	for _, segment := range strings.Split(path, ".") {
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// step reads one key out of whatever document shape the driver handed back.
func step(v any, key string) (any, bool) {
	switch doc := v.(type) {
	case bson.M:
		val, ok := doc[key]
		return val, ok
	case map[string]any:
		val, ok := doc[key]
		return val, ok
	case bson.D:
		for _, elem := range doc {
			if elem.Key == key {
				return elem.Value, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// Project flattens a record into an output row: one entry per selected field
// id, nil where the path does not resolve. Pure and deterministic.
func Project(record bson.M, fields []FieldDescriptor) map[string]any {
	row := make(map[string]any, len(fields))
	for _, f := range fields {
		val, ok := Resolve(record, f.ID)
		if !ok {
			row[f.ID] = nil
			continue
		}
		row[f.ID] = normalizeValue(val)
	}
	return row
}

// normalizeValue converts driver-native scalars into JSON-friendly ones.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time()
	case primitive.ObjectID:
		return t.Hex()
	default:
		return v
	}
}

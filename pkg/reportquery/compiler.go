package reportquery

import (
	"strings"
	"time"
)

// Filter is one predicate of a report spec. Filters combine with AND
// semantics; there is no OR or grouping at this level.
type Filter struct {
	Field    string `json:"field" bson:"field"`
	Operator string `json:"operator" bson:"operator"`
	Value    any    `json:"value" bson:"value"`
}

// Sort is one sort key of a report spec.
type Sort struct {
	Field string `json:"field" bson:"field"`
	Desc  bool   `json:"desc" bson:"desc"`
}

// Plan is the compiled form of a report spec: the resolved projection, the
// predicate tree, and the relation chains the adapter must make available.
type Plan struct {
	Source   DataSource
	Fields   []FieldDescriptor
	Tree     Tree
	Includes [][]string
}

// Compile validates a report spec against the field registry and operator
// catalog and produces an execution plan. It is a pure transform: no store
// access, no mutation of its inputs.
func Compile(ds DataSource, selectedFields []string, filters []Filter) (*Plan, error) {
	if _, err := FieldsFor(ds); err != nil {
		return nil, err
	}

	plan := &Plan{Source: ds}
	seen := map[string]bool{}

	for _, id := range selectedFields {
		desc, err := FieldByID(ds, id)
		if err != nil {
			return nil, err
		}
		plan.Fields = append(plan.Fields, desc)
		plan.Includes = appendInclude(plan.Includes, seen, id)
	}

	for _, f := range filters {
		desc, err := FieldByID(ds, f.Field)
		if err != nil {
			return nil, err
		}
		if !operatorAllowed(desc.Type, f.Operator) {
			return nil, invalidOperator(f.Field, f.Operator)
		}
		cond, err := buildCondition(desc, f)
		if err != nil {
			return nil, err
		}
		plan.Tree = plan.Tree.With(chainFor(f.Field, cond))
		plan.Includes = appendInclude(plan.Includes, seen, f.Field)
	}

	return plan, nil
}

// appendInclude records the relation chain (all segments but the leaf) that a
// dot path traverses, deduplicated in first-seen order.
func appendInclude(includes [][]string, seen map[string]bool, id string) [][]string {
	segments := strings.Split(id, ".")
	if len(segments) < 2 {
		return includes
	}
	chain := segments[:len(segments)-1]
	key := strings.Join(chain, ".")
	if seen[key] {
		return includes
	}
	seen[key] = true
	return append(includes, chain)
}

func buildCondition(desc FieldDescriptor, f Filter) (Condition, error) {
	switch f.Operator {
	case OpIsEmpty, OpIsNotEmpty:
		return Condition{Operator: f.Operator}, nil

	case OpBetween:
		pair, ok := asSlice(f.Value)
		if !ok || len(pair) != 2 {
			return Condition{}, malformedValue(f.Field, f.Operator, "requires a [low, high] pair")
		}
		low, err := coerceValue(desc, f, pair[0])
		if err != nil {
			return Condition{}, err
		}
		high, err := coerceValue(desc, f, pair[1])
		if err != nil {
			return Condition{}, err
		}
		return Condition{Operator: f.Operator, Low: low, High: high}, nil

	case OpIn, OpNotIn:
		values, ok := asSlice(f.Value)
		if !ok || len(values) == 0 {
			return Condition{}, malformedValue(f.Field, f.Operator, "requires a non-empty list")
		}
		coerced := make([]any, 0, len(values))
		for _, v := range values {
			cv, err := coerceValue(desc, f, v)
			if err != nil {
				return Condition{}, err
			}
			coerced = append(coerced, cv)
		}
		return Condition{Operator: f.Operator, Values: coerced}, nil

	default:
		v, err := coerceValue(desc, f, f.Value)
		if err != nil {
			return Condition{}, err
		}
		return Condition{Operator: f.Operator, Value: v}, nil
	}
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

// coerceValue normalizes a filter value to the field's native type so the
// rendered predicate compares correctly in the store.
func coerceValue(desc FieldDescriptor, f Filter, v any) (any, error) {
	switch desc.Type {
	case FieldTypeText, FieldTypeEnum:
		s, ok := v.(string)
		if !ok {
			return nil, malformedValue(f.Field, f.Operator, "requires a string value")
		}
		return s, nil

	case FieldTypeNumber, FieldTypeCurrency, FieldTypePercentage:
		n, ok := toFloat(v)
		if !ok {
			return nil, malformedValue(f.Field, f.Operator, "requires a numeric value")
		}
		return n, nil

	case FieldTypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, malformedValue(f.Field, f.Operator, "requires a boolean value")
		}
		return b, nil

	case FieldTypeDate:
		return coerceDate(f, v)

	default:
		return v, nil
	}
}

func coerceDate(f Filter, v any) (any, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
		return nil, malformedValue(f.Field, f.Operator, "requires an RFC3339 or YYYY-MM-DD date")
	default:
		return nil, malformedValue(f.Field, f.Operator, "requires a date value")
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

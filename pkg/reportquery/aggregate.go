package reportquery

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AggregationType string

const (
	AggCount AggregationType = "COUNT"
	AggSum   AggregationType = "SUM"
	AggAvg   AggregationType = "AVG"
	AggMin   AggregationType = "MIN"
	AggMax   AggregationType = "MAX"
)

// ValidAggregation reports whether the given type is recognized.
func ValidAggregation(t AggregationType) bool {
	switch t {
	case AggCount, AggSum, AggAvg, AggMin, AggMax:
		return true
	}
	return false
}

// Aggregate computes one summary value over the full fetched set. COUNT
// counts every record regardless of the field's presence; the numeric
// aggregations consider only records whose field coerces to a number. Zero
// eligible values yield 0, never NaN.
func Aggregate(records []bson.M, field string, kind AggregationType) float64 {
	if kind == AggCount {
		return float64(len(records))
	}

	var (
		sum      float64
		min, max float64
		eligible int
	)
	for _, rec := range records {
		raw, ok := Resolve(rec, field)
		if !ok {
			continue
		}
		n, ok := numericValue(raw)
		if !ok {
			continue
		}
		if eligible == 0 {
			min, max = n, n
		} else {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		sum += n
		eligible++
	}

	if eligible == 0 {
		return 0
	}

	switch kind {
	case AggSum:
		return sum
	case AggAvg:
		return sum / float64(eligible)
	case AggMin:
		return min
	case AggMax:
		return max
	default:
		return 0
	}
}

func numericValue(v any) (float64, bool) {
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
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

package reportquery

import (
	"math"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAggregate(t *testing.T) {
	records := []bson.M{
		{"amount": 100.0},
		{"amount": 250.0},
		{"amount": int64(400)},
		{"amount": "not a number"},
		{"other": 1.0},
	}

	tests := []struct {
		name string
		kind AggregationType
		want float64
	}{
		{"Count includes every record", AggCount, 5},
		{"Sum over coercible values", AggSum, 750},
		{"Avg over coercible values", AggAvg, 250},
		{"Min", AggMin, 100},
		{"Max", AggMax, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(records, "amount", tt.kind); got != tt.want {
				t.Errorf("Aggregate(%s) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestAggregateEmptySet(t *testing.T) {
	for _, kind := range []AggregationType{AggCount, AggSum, AggAvg, AggMin, AggMax} {
		got := Aggregate(nil, "amount", kind)
		if got != 0 {
			t.Errorf("Aggregate(empty, %s) = %v, want 0", kind, got)
		}
		if math.IsNaN(got) {
			t.Errorf("Aggregate(empty, %s) is NaN", kind)
		}
	}
}

func TestAggregateAvgNoEligibleValues(t *testing.T) {
	records := []bson.M{{"amount": "x"}, {"amount": nil}, {}}
	if got := Aggregate(records, "amount", AggAvg); got != 0 {
		t.Fatalf("AVG with no numeric values = %v, want 0", got)
	}
	if got := Aggregate(records, "amount", AggCount); got != 3 {
		t.Fatalf("COUNT must ignore value presence, got %v", got)
	}
}

func TestAggregateNestedField(t *testing.T) {
	records := []bson.M{
		{"employee": bson.M{"salary": 1000.0}},
		{"employee": bson.M{"salary": 3000.0}},
		{"employee": nil},
	}
	if got := Aggregate(records, "employee.salary", AggAvg); got != 2000 {
		t.Fatalf("nested AVG = %v, want 2000", got)
	}
}

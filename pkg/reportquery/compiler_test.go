package reportquery

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCompileValidation(t *testing.T) {
	tests := []struct {
		name     string
		source   DataSource
		fields   []string
		filters  []Filter
		wantErr  error
		wantNoop bool
	}{
		{
			name:    "Unknown data source",
			source:  DataSource("INVENTORY"),
			fields:  []string{"name"},
			wantErr: ErrUnknownDataSource,
		},
		{
			name:    "Unknown selected field",
			source:  SourceEmployees,
			fields:  []string{"firstName", "favoriteColor"},
			wantErr: ErrInvalidField,
		},
		{
			name:    "Unknown filter field",
			source:  SourceLeave,
			fields:  []string{"type"},
			filters: []Filter{{Field: "approver", Operator: OpEquals, Value: "x"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "Operator not legal for type",
			source:  SourceEmployees,
			fields:  []string{"firstName"},
			filters: []Filter{{Field: "salary", Operator: OpContains, Value: "50"}},
			wantErr: ErrInvalidOperator,
		},
		{
			name:    "Enum rejects gt",
			source:  SourceEmployees,
			fields:  []string{"firstName"},
			filters: []Filter{{Field: "status", Operator: OpGt, Value: "A"}},
			wantErr: ErrInvalidOperator,
		},
		{
			name:    "Between needs a pair",
			source:  SourceExpenses,
			fields:  []string{"amount"},
			filters: []Filter{{Field: "amount", Operator: OpBetween, Value: []any{100.0}}},
			wantErr: ErrMalformedFilterValue,
		},
		{
			name:    "In needs a list",
			source:  SourceEmployees,
			fields:  []string{"firstName"},
			filters: []Filter{{Field: "status", Operator: OpIn, Value: "ACTIVE"}},
			wantErr: ErrMalformedFilterValue,
		},
		{
			name:    "Number filter rejects string value",
			source:  SourceExpenses,
			fields:  []string{"amount"},
			filters: []Filter{{Field: "amount", Operator: OpGt, Value: "lots"}},
			wantErr: ErrMalformedFilterValue,
		},
		{
			name:    "Valid spec compiles",
			source:  SourceEmployees,
			fields:  []string{"firstName", "department.name"},
			filters: []Filter{{Field: "status", Operator: OpEquals, Value: "ACTIVE"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Compile(tt.source, tt.fields, tt.filters)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compile() unexpected error: %v", err)
			}
			if len(plan.Fields) != len(tt.fields) {
				t.Errorf("resolved %d fields, want %d", len(plan.Fields), len(tt.fields))
			}
		})
	}
}

func TestCompileUnknownOperatorIsNeverANoop(t *testing.T) {
	// The fixed operator mapping treats anything outside it as a hard
	// failure; an unrecognized operator must not fall through silently.
	_, err := Compile(SourceEmployees, nil, []Filter{
		{Field: "firstName", Operator: "resembles", Value: "Jo"},
	})
	if !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("want ErrInvalidOperator, got %v", err)
	}
}

func TestCompileNestedPath(t *testing.T) {
	plan, err := Compile(SourceAttendance,
		[]string{"employee.department.name"},
		[]Filter{{Field: "employee.department.name", Operator: OpContains, Value: "Engineering"}},
	)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if len(plan.Includes) != 1 {
		t.Fatalf("want 1 include chain, got %d", len(plan.Includes))
	}
	chain := plan.Includes[0]
	if len(chain) != 2 || chain[0] != "employee" || chain[1] != "department" {
		t.Errorf("include chain = %v, want [employee department]", chain)
	}

	q, err := plan.Tree.ToBSON()
	if err != nil {
		t.Fatalf("ToBSON() error: %v", err)
	}
	if _, ok := q["employee.department.name"]; !ok {
		t.Errorf("predicate not keyed by full dot path: %v", q)
	}
}

func TestCompileBetweenInclusiveBounds(t *testing.T) {
	plan, err := Compile(SourceExpenses, []string{"amount"}, []Filter{
		{Field: "amount", Operator: OpBetween, Value: []any{100.0, 500.0}},
	})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	q, err := plan.Tree.ToBSON()
	if err != nil {
		t.Fatalf("ToBSON() error: %v", err)
	}
	cond, ok := q["amount"].(bson.M)
	if !ok {
		t.Fatalf("amount condition = %T, want bson.M", q["amount"])
	}
	if cond["$gte"] != 100.0 || cond["$lte"] != 500.0 {
		t.Errorf("between must render inclusive bounds, got %v", cond)
	}
}

func TestCompileDateCoercion(t *testing.T) {
	plan, err := Compile(SourceLeave, nil, []Filter{
		{Field: "startDate", Operator: OpGte, Value: "2026-01-01"},
	})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	q, err := plan.Tree.ToBSON()
	if err != nil {
		t.Fatalf("ToBSON() error: %v", err)
	}
	cond := q["startDate"].(bson.M)
	ts, ok := cond["$gte"].(time.Time)
	if !ok {
		t.Fatalf("date value = %T, want time.Time", cond["$gte"])
	}
	if ts.Year() != 2026 || ts.Month() != time.January {
		t.Errorf("parsed date = %v", ts)
	}
}

func TestCompileDoesNotMutateInputs(t *testing.T) {
	filters := []Filter{{Field: "status", Operator: OpEquals, Value: "ACTIVE"}}
	fields := []string{"firstName"}

	first, err := Compile(SourceEmployees, fields, filters)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	second, err := Compile(SourceEmployees, fields, filters)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if first.Tree.Len() != second.Tree.Len() {
		t.Errorf("repeated compilation diverged")
	}
	if filters[0].Value != "ACTIVE" {
		t.Errorf("filter input mutated: %v", filters[0])
	}
}

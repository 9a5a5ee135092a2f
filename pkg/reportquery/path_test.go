package reportquery

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestProject(t *testing.T) {
	record := bson.M{
		"firstName": "Priya",
		"salary":    int64(90000),
		"department": bson.M{
			"name": "Engineering",
		},
		"manager": nil,
	}
	fields := []FieldDescriptor{
		{ID: "firstName", Type: FieldTypeText},
		{ID: "department.name", Type: FieldTypeText},
		{ID: "manager.firstName", Type: FieldTypeText},
		{ID: "designation.name", Type: FieldTypeText},
	}

	row := Project(record, fields)

	if row["firstName"] != "Priya" {
		t.Errorf("firstName = %v", row["firstName"])
	}
	if row["department.name"] != "Engineering" {
		t.Errorf("department.name = %v", row["department.name"])
	}
	// Null relation and absent relation both flatten to nil, never panic.
	if row["manager.firstName"] != nil {
		t.Errorf("manager.firstName = %v, want nil", row["manager.firstName"])
	}
	if row["designation.name"] != nil {
		t.Errorf("designation.name = %v, want nil", row["designation.name"])
	}
}

func TestProjectDeterministic(t *testing.T) {
	record := bson.M{"a": 1, "nested": bson.M{"b": "x"}}
	fields := []FieldDescriptor{{ID: "a"}, {ID: "nested.b"}, {ID: "missing"}}

	first := Project(record, fields)
	second := Project(record, fields)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("projection not deterministic: %v vs %v", first, second)
	}
}

func TestResolveHandlesDriverShapes(t *testing.T) {
	// Depending on decode settings nested documents may come back as bson.D.
	record := bson.M{
		"employee": bson.D{
			{Key: "department", Value: bson.D{{Key: "name", Value: "Sales"}}},
		},
	}
	got, ok := Resolve(record, "employee.department.name")
	if !ok || got != "Sales" {
		t.Fatalf("Resolve = %v, %v", got, ok)
	}
}

func TestResolveScalarMidPath(t *testing.T) {
	record := bson.M{"employee": "not-a-document"}
	if _, ok := Resolve(record, "employee.firstName"); ok {
		t.Fatal("walking through a scalar must resolve to absent")
	}
}

package reportquery

import (
	"errors"
	"strings"
	"testing"
)

func TestEveryFieldHasOperators(t *testing.T) {
	for _, ds := range AllDataSources {
		fields, err := FieldsFor(ds)
		if err != nil {
			t.Fatalf("FieldsFor(%s) error: %v", ds, err)
		}
		if len(fields) == 0 {
			t.Errorf("%s has no registered fields", ds)
		}
		for _, f := range fields {
			if ops := OperatorsFor(f.Type); len(ops) == 0 {
				t.Errorf("%s.%s: no operators for type %s", ds, f.ID, f.Type)
			}
		}
	}
}

func TestFieldPathDepth(t *testing.T) {
	for _, ds := range AllDataSources {
		fields, _ := FieldsFor(ds)
		for _, f := range fields {
			n := len(strings.Split(f.ID, "."))
			if n < 1 || n > 3 {
				t.Errorf("%s.%s: path depth %d outside 1-3", ds, f.ID, n)
			}
		}
	}
}

func TestEnumFieldsCarryOptions(t *testing.T) {
	for _, ds := range AllDataSources {
		fields, _ := FieldsFor(ds)
		for _, f := range fields {
			if f.Type == FieldTypeEnum && len(f.Options) == 0 {
				t.Errorf("%s.%s: enum field without options", ds, f.ID)
			}
			if f.Type != FieldTypeEnum && len(f.Options) > 0 {
				t.Errorf("%s.%s: non-enum field carries options", ds, f.ID)
			}
		}
	}
}

func TestUnknownDataSource(t *testing.T) {
	if _, err := FieldsFor(DataSource("TICKETS")); !errors.Is(err, ErrUnknownDataSource) {
		t.Fatalf("want ErrUnknownDataSource, got %v", err)
	}
	if _, err := FieldByID(DataSource("TICKETS"), "name"); !errors.Is(err, ErrUnknownDataSource) {
		t.Fatalf("want ErrUnknownDataSource, got %v", err)
	}
}

package report

import (
	"strings"
	"testing"
	"time"

	"go-hrm/pkg/reportquery"
)

func TestExportCSV(t *testing.T) {
	rep := &GeneratedReport{
		TemplateName: "Headcount",
		DataSource:   reportquery.SourceEmployees,
		Fields:       []string{"firstName", "salary", "department.name"},
		Data: []map[string]any{
			{"firstName": "Asha", "salary": 95000.0, "department.name": "Engineering"},
			{"firstName": "Marco", "salary": 72000.0, "department.name": nil},
		},
		Summary: []AggregationResult{
			{Field: "salary", Type: reportquery.AggSum, Label: "Total", Value: 167000},
		},
		GeneratedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}

	payload, filename, err := ExportCSV(rep)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	if got := lines[0]; got != "First Name,Salary,Department" {
		t.Fatalf("header = %q", got)
	}
	if got := lines[1]; got != "Asha,95000,Engineering" {
		t.Fatalf("row 1 = %q", got)
	}
	// Unresolved relation renders empty, not "<nil>".
	if got := lines[2]; got != "Marco,72000," {
		t.Fatalf("row 2 = %q", got)
	}
	if got := lines[len(lines)-1]; got != "Total,167000" {
		t.Fatalf("summary row = %q", got)
	}

	if filename != "Headcount-20260829-120000.csv" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestExportColumnsFallBackToFieldID(t *testing.T) {
	rep := &GeneratedReport{
		DataSource: reportquery.SourceEmployees,
		Fields:     []string{"firstName", "noSuchField"},
	}
	_, headers := exportColumns(rep)
	if headers[0] != "First Name" || headers[1] != "noSuchField" {
		t.Fatalf("headers = %v", headers)
	}
}

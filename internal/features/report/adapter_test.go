package report

import (
	"context"
	"errors"
	"testing"

	common_models "go-hrm/internal/common/models"
	"go-hrm/pkg/reportquery"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func tenantContext(t *testing.T) (context.Context, primitive.ObjectID) {
	t.Helper()
	tenant := primitive.NewObjectID()
	ctx := context.WithValue(context.Background(), common_models.TenantIDKey, tenant.Hex())
	return ctx, tenant
}

func mustCompile(t *testing.T, ds reportquery.DataSource, fields []string, filters []reportquery.Filter) *reportquery.Plan {
	t.Helper()
	plan, err := reportquery.Compile(ds, fields, filters)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return plan
}

func TestBuildQueryInjectsTenant(t *testing.T) {
	ctx, tenant := tenantContext(t)
	plan := mustCompile(t, reportquery.SourceLeave, []string{"type"}, []reportquery.Filter{
		{Field: "status", Operator: reportquery.OpEquals, Value: "PENDING"},
	})

	query, err := buildQuery(ctx, plan)
	if err != nil {
		t.Fatalf("buildQuery: %v", err)
	}
	if got := query["tenantId"]; got != tenant {
		t.Fatalf("tenantId = %v, want %v", got, tenant)
	}
	if got := query["status"]; got != "PENDING" {
		t.Fatalf("status = %v, want PENDING", got)
	}
}

func TestBuildQueryRequiresTenant(t *testing.T) {
	plan := mustCompile(t, reportquery.SourceLeave, []string{"type"}, nil)

	if _, err := buildQuery(context.Background(), plan); !errors.Is(err, ErrTenantNotResolved) {
		t.Fatalf("missing tenant err = %v, want ErrTenantNotResolved", err)
	}

	bad := context.WithValue(context.Background(), common_models.TenantIDKey, "not-a-hex-id")
	if _, err := buildQuery(bad, plan); !errors.Is(err, ErrTenantNotResolved) {
		t.Fatalf("malformed tenant err = %v, want ErrTenantNotResolved", err)
	}
}

func TestBuildQueryImplicitActiveEmployees(t *testing.T) {
	ctx, _ := tenantContext(t)

	plan := mustCompile(t, reportquery.SourceEmployees, []string{"firstName"}, nil)
	query, err := buildQuery(ctx, plan)
	if err != nil {
		t.Fatalf("buildQuery: %v", err)
	}
	if got := query["status"]; got != "ACTIVE" {
		t.Fatalf("status = %v, want implicit ACTIVE", got)
	}
}

func TestBuildQueryExplicitStatusWins(t *testing.T) {
	ctx, _ := tenantContext(t)

	plan := mustCompile(t, reportquery.SourceEmployees, []string{"firstName"}, []reportquery.Filter{
		{Field: "status", Operator: reportquery.OpEquals, Value: "TERMINATED"},
	})
	query, err := buildQuery(ctx, plan)
	if err != nil {
		t.Fatalf("buildQuery: %v", err)
	}
	if got := query["status"]; got != "TERMINATED" {
		t.Fatalf("status = %v, caller's filter must not be overridden", got)
	}
}

func TestBuildQueryNoImplicitActiveForOtherSources(t *testing.T) {
	ctx, _ := tenantContext(t)

	plan := mustCompile(t, reportquery.SourcePayroll, []string{"netSalary"}, nil)
	query, err := buildQuery(ctx, plan)
	if err != nil {
		t.Fatalf("buildQuery: %v", err)
	}
	if _, ok := query["status"]; ok {
		t.Fatal("payroll query must not carry an implicit status filter")
	}
}

func TestSortDoc(t *testing.T) {
	def := sortDoc(nil)
	want := bson.D{{Key: "createdAt", Value: -1}}
	if len(def) != 1 || def[0] != want[0] {
		t.Fatalf("default sort = %v, want %v", def, want)
	}

	doc := sortDoc([]reportquery.Sort{
		{Field: "salary", Desc: true},
		{Field: "lastName"},
	})
	if doc[0].Key != "salary" || doc[0].Value != -1 {
		t.Fatalf("first key = %+v, want salary desc", doc[0])
	}
	if doc[1].Key != "lastName" || doc[1].Value != 1 {
		t.Fatalf("second key = %+v, want lastName asc", doc[1])
	}
}

func TestSourceForCoversAllSources(t *testing.T) {
	for _, ds := range reportquery.AllDataSources {
		info, err := sourceFor(ds)
		if err != nil {
			t.Fatalf("sourceFor(%s): %v", ds, err)
		}
		if info.Collection == "" || info.DateField == "" {
			t.Fatalf("sourceFor(%s) incomplete: %+v", ds, info)
		}
		// The date field must exist in the registry so run parameters
		// compile against it.
		if _, err := reportquery.FieldByID(ds, info.DateField); err != nil {
			t.Fatalf("date field %q not registered for %s: %v", info.DateField, ds, err)
		}
	}

	if _, err := sourceFor(reportquery.DataSource("NOPE")); !errors.Is(err, reportquery.ErrUnknownDataSource) {
		t.Fatalf("err = %v, want ErrUnknownDataSource", err)
	}
}

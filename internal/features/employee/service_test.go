package employee

import (
	"context"
	"errors"
	"testing"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeEmployeeRepo struct {
	employees map[primitive.ObjectID]*models.Employee
	statuses  map[primitive.ObjectID]string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: map[primitive.ObjectID]*models.Employee{},
		statuses:  map[primitive.ObjectID]string{},
	}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	for _, existing := range r.employees {
		if existing.EmployeeCode == emp.EmployeeCode {
			return ErrDuplicateEmployeeCode
		}
	}
	emp.ID = primitive.NewObjectID()
	cp := *emp
	r.employees[emp.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	cp := *emp
	return &cp, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Employee, int64, error) {
	var out []models.Employee
	for _, emp := range r.employees {
		out = append(out, *emp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp *models.Employee) error {
	if _, ok := r.employees[emp.ID]; !ok {
		return ErrEmployeeNotFound
	}
	cp := *emp
	r.employees[emp.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	emp, ok := r.employees[id]
	if !ok {
		return ErrEmployeeNotFound
	}
	emp.Status = status
	r.statuses[id] = status
	return nil
}

type fakeAudit struct {
	actions []common_models.AuditAction
}

func (a *fakeAudit) LogChange(ctx context.Context, action common_models.AuditAction, entity, entityID string, changes map[string]common_models.Change) error {
	a.actions = append(a.actions, action)
	return nil
}

func (a *fakeAudit) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func TestCreateDefaults(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, &fakeAudit{})

	emp := &models.Employee{
		EmployeeCode: "EMP001",
		FirstName:    "Asha",
		Email:        "asha@example.com",
	}
	if err := svc.Create(context.Background(), emp); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if emp.Status != models.EmployeeStatusActive {
		t.Fatalf("Status = %q, want ACTIVE default", emp.Status)
	}
	if emp.JoinDate.IsZero() {
		t.Fatal("JoinDate not defaulted")
	}

	dup := &models.Employee{EmployeeCode: "EMP001", FirstName: "Other", Email: "o@example.com"}
	if err := svc.Create(context.Background(), dup); !errors.Is(err, ErrDuplicateEmployeeCode) {
		t.Fatalf("duplicate code err = %v, want ErrDuplicateEmployeeCode", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &fakeAudit{})

	err := svc.Create(context.Background(), &models.Employee{FirstName: "NoCode"})
	if !errors.Is(err, ErrInvalidEmployee) {
		t.Fatalf("err = %v, want ErrInvalidEmployee", err)
	}
}

func TestTerminateKeepsRecord(t *testing.T) {
	repo := newFakeEmployeeRepo()
	auditSvc := &fakeAudit{}
	svc := NewEmployeeService(repo, auditSvc)
	ctx := context.Background()

	emp := &models.Employee{EmployeeCode: "EMP002", FirstName: "Marco", Email: "m@example.com"}
	if err := svc.Create(ctx, emp); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Terminate(ctx, emp.ID); err != nil {
		t.Fatalf("Terminate: %v", err)
	}

	// The document stays, only the status flips.
	got, err := repo.GetByID(ctx, emp.ID)
	if err != nil {
		t.Fatalf("employee deleted instead of terminated: %v", err)
	}
	if got.Status != models.EmployeeStatusTerminated {
		t.Fatalf("Status = %q, want TERMINATED", got.Status)
	}

	// Terminating again is a no-op, not an error.
	if err := svc.Terminate(ctx, emp.ID); err != nil {
		t.Fatalf("second Terminate: %v", err)
	}
	if len(auditSvc.actions) != 2 {
		t.Fatalf("audit entries = %d, want 2 (create + one delete)", len(auditSvc.actions))
	}
}

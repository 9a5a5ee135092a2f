package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/features/employee"
	"go-hrm/internal/models"
	"go-hrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeLeaveRepo struct {
	leaves map[primitive.ObjectID]*models.Leave
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: map[primitive.ObjectID]*models.Leave{}}
}

func (r *fakeLeaveRepo) Create(ctx context.Context, leave *models.Leave) error {
	leave.ID = primitive.NewObjectID()
	cp := *leave
	r.leaves[leave.ID] = &cp
	return nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	leave, ok := r.leaves[id]
	if !ok {
		return nil, ErrLeaveNotFound
	}
	cp := *leave
	return &cp, nil
}

func (r *fakeLeaveRepo) List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Leave, error) {
	var out []models.Leave
	for _, l := range r.leaves {
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeLeaveRepo) Update(ctx context.Context, leave *models.Leave) error {
	if _, ok := r.leaves[leave.ID]; !ok {
		return ErrLeaveNotFound
	}
	cp := *leave
	r.leaves[leave.ID] = &cp
	return nil
}

type fakeEmployeeRepo struct {
	employees map[primitive.ObjectID]*models.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error { return nil }

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp *models.Employee) error { return nil }

func (r *fakeEmployeeRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return nil
}

type fakeAudit struct{}

func (fakeAudit) LogChange(ctx context.Context, action common_models.AuditAction, entity, entityID string, changes map[string]common_models.Change) error {
	return nil
}

func (fakeAudit) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func approverContext(userID string) context.Context {
	ctx := context.Background()
	return context.WithValue(ctx, utils.UserClaimsKey, &utils.UserClaims{
		UserID: userID,
		Role:   common_models.RoleManager,
	})
}

func newLeaveFixture(t *testing.T) (LeaveService, *models.Employee) {
	t.Helper()
	emp := &models.Employee{
		ID:        primitive.NewObjectID(),
		FirstName: "Asha",
		LastName:  "Patel",
		Status:    models.EmployeeStatusActive,
	}
	employees := &fakeEmployeeRepo{employees: map[primitive.ObjectID]*models.Employee{emp.ID: emp}}
	return NewLeaveService(newFakeLeaveRepo(), employees, fakeAudit{}), emp
}

func TestApplyComputesDaysAndEmbedsRef(t *testing.T) {
	svc, emp := newLeaveFixture(t)

	leave, err := svc.Apply(context.Background(), ApplyRequest{
		EmployeeID: emp.ID.Hex(),
		Type:       "CASUAL",
		StartDate:  "2026-09-07",
		EndDate:    "2026-09-09",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if leave.Status != models.LeaveStatusPending {
		t.Fatalf("Status = %q, want PENDING", leave.Status)
	}
	if leave.Days != 3 {
		t.Fatalf("Days = %v, want 3", leave.Days)
	}
	if leave.Employee == nil || leave.Employee.FirstName != "Asha" {
		t.Fatalf("employee ref not embedded: %+v", leave.Employee)
	}
}

func TestApplyValidation(t *testing.T) {
	svc, emp := newLeaveFixture(t)

	tests := []struct {
		name string
		req  ApplyRequest
		want error
	}{
		{
			name: "end before start",
			req:  ApplyRequest{EmployeeID: emp.ID.Hex(), Type: "SICK", StartDate: "2026-09-09", EndDate: "2026-09-07"},
			want: ErrInvalidLeave,
		},
		{
			name: "missing type",
			req:  ApplyRequest{EmployeeID: emp.ID.Hex(), StartDate: "2026-09-07", EndDate: "2026-09-09"},
			want: ErrInvalidLeave,
		},
		{
			name: "unknown employee",
			req:  ApplyRequest{EmployeeID: primitive.NewObjectID().Hex(), Type: "SICK", StartDate: "2026-09-07", EndDate: "2026-09-09"},
			want: employee.ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Apply(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecisionIsFinal(t *testing.T) {
	svc, emp := newLeaveFixture(t)

	leave, err := svc.Apply(context.Background(), ApplyRequest{
		EmployeeID: emp.ID.Hex(),
		Type:       "EARNED",
		StartDate:  "2026-10-01",
		EndDate:    "2026-10-03",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	ctx := approverContext("manager-1")
	decided, err := svc.Decide(ctx, leave.ID, true, "enjoy")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decided.Status != models.LeaveStatusApproved {
		t.Fatalf("Status = %q, want APPROVED", decided.Status)
	}
	if decided.DecidedBy != "manager-1" || decided.DecidedAt == nil {
		t.Fatalf("decision metadata missing: %+v", decided)
	}

	if _, err := svc.Decide(ctx, leave.ID, false, ""); !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("re-decide err = %v, want ErrAlreadyDecided", err)
	}
	if _, err := svc.Cancel(ctx, leave.ID); !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("cancel after decide err = %v, want ErrAlreadyDecided", err)
	}
}

func TestCancelPendingLeave(t *testing.T) {
	svc, emp := newLeaveFixture(t)

	leave, err := svc.Apply(context.Background(), ApplyRequest{
		EmployeeID: emp.ID.Hex(),
		Type:       "UNPAID",
		StartDate:  time.Now().Format("2006-01-02"),
		EndDate:    time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), leave.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != models.LeaveStatusCancelled {
		t.Fatalf("Status = %q, want CANCELLED", cancelled.Status)
	}
}

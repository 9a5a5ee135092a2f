package employee

import (
	"context"
	"errors"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/features/audit"
	"go-hrm/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidEmployee = errors.New("invalid employee payload")

type EmployeeService interface {
	Create(ctx context.Context, emp *models.Employee) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	List(ctx context.Context, status, department string, page, limit int64) ([]models.Employee, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, emp *models.Employee) (*models.Employee, error)
	Terminate(ctx context.Context, id primitive.ObjectID) error
}

type EmployeeServiceImpl struct {
	Repo  EmployeeRepository
	Audit audit.AuditService
}

func NewEmployeeService(repo EmployeeRepository, auditSvc audit.AuditService) EmployeeService {
	return &EmployeeServiceImpl{Repo: repo, Audit: auditSvc}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, emp *models.Employee) error {
	if emp.EmployeeCode == "" || emp.FirstName == "" || emp.Email == "" {
		return ErrInvalidEmployee
	}
	if emp.Status == "" {
		emp.Status = models.EmployeeStatusActive
	}
	if emp.JoinDate.IsZero() {
		emp.JoinDate = time.Now()
	}

	now := time.Now()
	emp.ID = primitive.NilObjectID
	emp.CreatedAt = now
	emp.UpdatedAt = now

	if err := s.Repo.Create(ctx, emp); err != nil {
		return err
	}

	return s.Audit.LogChange(ctx, common_models.AuditActionCreate, "employee", emp.ID.Hex(), map[string]common_models.Change{
		"employeeCode": {New: emp.EmployeeCode},
	})
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) List(ctx context.Context, status, department string, page, limit int64) ([]models.Employee, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	filters := map[string]interface{}{
		"status":          status,
		"department.name": department,
	}
	return s.Repo.List(ctx, filters, limit, (page-1)*limit)
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id primitive.ObjectID, emp *models.Employee) (*models.Employee, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp.EmployeeCode == "" || emp.FirstName == "" || emp.Email == "" {
		return nil, ErrInvalidEmployee
	}

	changes := map[string]common_models.Change{}
	if existing.Status != emp.Status {
		changes["status"] = common_models.Change{Old: existing.Status, New: emp.Status}
	}
	if existing.Salary != emp.Salary {
		changes["salary"] = common_models.Change{Old: existing.Salary, New: emp.Salary}
	}

	emp.ID = existing.ID
	emp.TenantID = existing.TenantID
	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, emp); err != nil {
		return nil, err
	}

	if err := s.Audit.LogChange(ctx, common_models.AuditActionUpdate, "employee", id.Hex(), changes); err != nil {
		return nil, err
	}
	return emp, nil
}

// Terminate marks the employee TERMINATED instead of deleting the document,
// so historical attendance, payroll, and report data keep resolving.
func (s *EmployeeServiceImpl) Terminate(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == models.EmployeeStatusTerminated {
		return nil
	}

	if err := s.Repo.SetStatus(ctx, id, models.EmployeeStatusTerminated); err != nil {
		return err
	}
	return s.Audit.LogChange(ctx, common_models.AuditActionDelete, "employee", id.Hex(), map[string]common_models.Change{
		"status": {Old: existing.Status, New: models.EmployeeStatusTerminated},
	})
}

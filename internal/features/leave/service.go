package leave

import (
	"context"
	"errors"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/features/audit"
	"go-hrm/internal/features/employee"
	"go-hrm/internal/models"
	"go-hrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidLeave   = errors.New("invalid leave request payload")
	ErrAlreadyDecided = errors.New("leave request has already been decided")
)

// ApplyRequest is the payload for filing a leave request.
type ApplyRequest struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason,omitempty"`
}

// DecisionRequest carries the approver's verdict.
type DecisionRequest struct {
	Note string `json:"note,omitempty"`
}

type LeaveService interface {
	Apply(ctx context.Context, req ApplyRequest) (*models.Leave, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Leave, error)
	List(ctx context.Context, status, leaveType string, page, limit int64) ([]models.Leave, error)
	Decide(ctx context.Context, id primitive.ObjectID, approve bool, note string) (*models.Leave, error)
	Cancel(ctx context.Context, id primitive.ObjectID) (*models.Leave, error)
}

type LeaveServiceImpl struct {
	Repo      LeaveRepository
	Employees employee.EmployeeRepository
	Audit     audit.AuditService
}

func NewLeaveService(repo LeaveRepository, employees employee.EmployeeRepository, auditSvc audit.AuditService) LeaveService {
	return &LeaveServiceImpl{Repo: repo, Employees: employees, Audit: auditSvc}
}

func (s *LeaveServiceImpl) Apply(ctx context.Context, req ApplyRequest) (*models.Leave, error) {
	empID, err := primitive.ObjectIDFromHex(req.EmployeeID)
	if err != nil {
		return nil, ErrInvalidLeave
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidLeave
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidLeave
	}
	if end.Before(start) || req.Type == "" {
		return nil, ErrInvalidLeave
	}

	emp, err := s.Employees.GetByID(ctx, empID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	leave := &models.Leave{
		Employee:  emp.Ref(),
		Type:      req.Type,
		Status:    models.LeaveStatusPending,
		StartDate: start,
		EndDate:   end,
		Days:      end.Sub(start).Hours()/24 + 1,
		Reason:    req.Reason,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, leave); err != nil {
		return nil, err
	}

	err = s.Audit.LogChange(ctx, common_models.AuditActionCreate, "leave", leave.ID.Hex(), map[string]common_models.Change{
		"type": {New: leave.Type},
	})
	if err != nil {
		return nil, err
	}
	return leave, nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *LeaveServiceImpl) List(ctx context.Context, status, leaveType string, page, limit int64) ([]models.Leave, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}
	filters := map[string]interface{}{
		"status": status,
		"type":   leaveType,
	}
	return s.Repo.List(ctx, filters, limit, (page-1)*limit)
}

// Decide approves or rejects a pending request. Decisions are final; a
// decided request cannot be re-decided.
func (s *LeaveServiceImpl) Decide(ctx context.Context, id primitive.ObjectID, approve bool, note string) (*models.Leave, error) {
	leave, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if leave.Status != models.LeaveStatusPending {
		return nil, ErrAlreadyDecided
	}

	decider := "system"
	if claims, ok := ctx.Value(utils.UserClaimsKey).(*utils.UserClaims); ok {
		decider = claims.UserID
	}

	old := leave.Status
	now := time.Now()
	if approve {
		leave.Status = models.LeaveStatusApproved
	} else {
		leave.Status = models.LeaveStatusRejected
	}
	leave.DecidedBy = decider
	leave.DecidedAt = &now
	leave.DecisionNote = note
	leave.UpdatedAt = now

	if err := s.Repo.Update(ctx, leave); err != nil {
		return nil, err
	}

	err = s.Audit.LogChange(ctx, common_models.AuditActionUpdate, "leave", id.Hex(), map[string]common_models.Change{
		"status": {Old: old, New: leave.Status},
	})
	if err != nil {
		return nil, err
	}
	return leave, nil
}

// Cancel withdraws a pending request. Approved or rejected requests stay as
// decided.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	leave, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if leave.Status != models.LeaveStatusPending {
		return nil, ErrAlreadyDecided
	}

	old := leave.Status
	leave.Status = models.LeaveStatusCancelled
	leave.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, leave); err != nil {
		return nil, err
	}

	err = s.Audit.LogChange(ctx, common_models.AuditActionUpdate, "leave", id.Hex(), map[string]common_models.Change{
		"status": {Old: old, New: leave.Status},
	})
	if err != nil {
		return nil, err
	}
	return leave, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidLeave
}

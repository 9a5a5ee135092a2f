package attendance

import (
	"context"
	"errors"
	"time"

	"go-hrm/internal/features/employee"
	"go-hrm/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workday thresholds used to derive status and overtime.
const (
	standardWorkHours = 8.0
	lateCutoffHour    = 10
)

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("no open check-in for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)

type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID primitive.ObjectID) (*models.Attendance, error)
	CheckOut(ctx context.Context, employeeID primitive.ObjectID) (*models.Attendance, error)
	List(ctx context.Context, employeeID, status, from, to string, page, limit int64) ([]models.Attendance, error)
}

type AttendanceServiceImpl struct {
	Repo      AttendanceRepository
	Employees employee.EmployeeRepository
	Now       func() time.Time
}

func NewAttendanceService(repo AttendanceRepository, employees employee.EmployeeRepository) AttendanceService {
	return &AttendanceServiceImpl{Repo: repo, Employees: employees, Now: time.Now}
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID primitive.ObjectID) (*models.Attendance, error) {
	emp, err := s.Employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if _, err := s.Repo.GetByEmployeeAndDate(ctx, employeeID, now); err == nil {
		return nil, ErrAlreadyCheckedIn
	} else if !errors.Is(err, ErrAttendanceNotFound) {
		return nil, err
	}

	status := models.AttendanceStatusPresent
	if now.Hour() >= lateCutoffHour {
		status = models.AttendanceStatusLate
	}

	att := &models.Attendance{
		Employee:  emp.Ref(),
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Status:    status,
		CheckIn:   &now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID primitive.ObjectID) (*models.Attendance, error) {
	now := s.Now()
	att, err := s.Repo.GetByEmployeeAndDate(ctx, employeeID, now)
	if errors.Is(err, ErrAttendanceNotFound) {
		return nil, ErrNotCheckedIn
	}
	if err != nil {
		return nil, err
	}
	if att.CheckIn == nil {
		return nil, ErrNotCheckedIn
	}
	if att.CheckOut != nil {
		return nil, ErrAlreadyCheckedOut
	}

	att.CheckOut = &now
	att.WorkHours = now.Sub(*att.CheckIn).Hours()
	if att.WorkHours > standardWorkHours {
		att.OvertimeHours = att.WorkHours - standardWorkHours
	}
	if att.WorkHours < standardWorkHours/2 {
		att.Status = models.AttendanceStatusHalfDay
	}
	att.UpdatedAt = now

	if err := s.Repo.Update(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, employeeID, status, from, to string, page, limit int64) ([]models.Attendance, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 31
	}

	filters := map[string]interface{}{"status": status}
	if employeeID != "" {
		oid, err := primitive.ObjectIDFromHex(employeeID)
		if err != nil {
			return nil, errors.New("invalid employee id")
		}
		filters["employee.id"] = oid
	}

	var fromT, toT *time.Time
	if t, err := time.Parse("2006-01-02", from); err == nil {
		fromT = &t
	}
	if t, err := time.Parse("2006-01-02", to); err == nil {
		toT = &t
	}

	return s.Repo.List(ctx, filters, fromT, toT, limit, (page-1)*limit)
}

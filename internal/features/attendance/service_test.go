package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/features/employee"
	"go-hrm/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAttendanceRepo struct {
	records map[primitive.ObjectID]*models.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[primitive.ObjectID]*models.Attendance{}}
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, att *models.Attendance) error {
	att.ID = primitive.NewObjectID()
	cp := *att
	r.records[att.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, day time.Time) (*models.Attendance, error) {
	for _, att := range r.records {
		sameDay := att.Date.Year() == day.Year() && att.Date.YearDay() == day.YearDay()
		if att.Employee != nil && att.Employee.ID == employeeID && sameDay {
			cp := *att
			return &cp, nil
		}
	}
	return nil, ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filters map[string]interface{}, from, to *time.Time, limit, offset int64) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, att := range r.records {
		out = append(out, *att)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, att *models.Attendance) error {
	if _, ok := r.records[att.ID]; !ok {
		return ErrAttendanceNotFound
	}
	cp := *att
	r.records[att.ID] = &cp
	return nil
}

type fakeEmployeeRepo struct {
	emp *models.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error { return nil }

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	if r.emp != nil && r.emp.ID == id {
		return r.emp, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp *models.Employee) error { return nil }

func (r *fakeEmployeeRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return nil
}

func newFixture(now time.Time) (*AttendanceServiceImpl, *models.Employee) {
	emp := &models.Employee{
		ID:        primitive.NewObjectID(),
		FirstName: "Marco",
		LastName:  "Rossi",
	}
	svc := &AttendanceServiceImpl{
		Repo:      newFakeAttendanceRepo(),
		Employees: &fakeEmployeeRepo{emp: emp},
		Now:       func() time.Time { return now },
	}
	return svc, emp
}

func TestCheckInCheckOutDay(t *testing.T) {
	morning := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc, emp := newFixture(morning)
	ctx := context.Background()

	att, err := svc.CheckIn(ctx, emp.ID)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if att.Status != models.AttendanceStatusPresent {
		t.Fatalf("Status = %q, want PRESENT", att.Status)
	}
	if att.Employee == nil || att.Employee.FirstName != "Marco" {
		t.Fatalf("employee ref not embedded: %+v", att.Employee)
	}

	if _, err := svc.CheckIn(ctx, emp.ID); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("second check-in err = %v, want ErrAlreadyCheckedIn", err)
	}

	svc.Now = func() time.Time { return morning.Add(10 * time.Hour) }
	out, err := svc.CheckOut(ctx, emp.ID)
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if out.WorkHours != 10 {
		t.Fatalf("WorkHours = %v, want 10", out.WorkHours)
	}
	if out.OvertimeHours != 2 {
		t.Fatalf("OvertimeHours = %v, want 2", out.OvertimeHours)
	}

	if _, err := svc.CheckOut(ctx, emp.ID); !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Fatalf("second check-out err = %v, want ErrAlreadyCheckedOut", err)
	}
}

func TestLateAndHalfDayStatus(t *testing.T) {
	late := time.Date(2026, 8, 31, 11, 30, 0, 0, time.UTC)
	svc, emp := newFixture(late)
	ctx := context.Background()

	att, err := svc.CheckIn(ctx, emp.ID)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if att.Status != models.AttendanceStatusLate {
		t.Fatalf("Status = %q, want LATE", att.Status)
	}

	svc.Now = func() time.Time { return late.Add(3 * time.Hour) }
	out, err := svc.CheckOut(ctx, emp.ID)
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if out.Status != models.AttendanceStatusHalfDay {
		t.Fatalf("Status = %q, want HALF_DAY", out.Status)
	}
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, emp := newFixture(time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC))

	if _, err := svc.CheckOut(context.Background(), emp.ID); !errors.Is(err, ErrNotCheckedIn) {
		t.Fatalf("err = %v, want ErrNotCheckedIn", err)
	}
}

package main

import (
	"context"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/config"
	"go-hrm/internal/database"
	"go-hrm/internal/features/audit"
	"go-hrm/internal/features/employee"
	"go-hrm/internal/features/leave"
	"go-hrm/internal/features/report"
	"go-hrm/internal/logger"
	"go-hrm/internal/models"
	"go-hrm/pkg/reportquery"
	"go-hrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var (
	seedTenantID = mustObjectID("65a000000000000000000001")
	seedAdminID  = mustObjectID("65a000000000000000000002")
)

func mustObjectID(hex string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return oid
}

// seedContext builds a request-like context so the tenant-scoped
// repositories behave exactly as they do in production.
func seedContext() context.Context {
	ctx := context.WithValue(context.Background(), common_models.TenantIDKey, seedTenantID.Hex())
	ctx = context.WithValue(ctx, common_models.UserIDKey, seedAdminID.Hex())
	claims := &utils.UserClaims{
		UserID:   seedAdminID.Hex(),
		TenantID: seedTenantID.Hex(),
		Role:     common_models.RoleAdmin,
	}
	return context.WithValue(ctx, utils.UserClaimsKey, claims)
}

func Seed(
	lc fx.Lifecycle,
	employees employee.EmployeeService,
	leaves leave.LeaveService,
	templates report.TemplateRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				ctx := seedContext()

				engineering := &models.DepartmentRef{ID: primitive.NewObjectID(), Name: "Engineering"}
				sales := &models.DepartmentRef{ID: primitive.NewObjectID(), Name: "Sales"}

				demo := []*models.Employee{
					{
						EmployeeCode: "EMP001", FirstName: "Asha", LastName: "Patel",
						Email: "asha.patel@example.com", EmploymentType: "FULL_TIME",
						JoinDate: time.Now().AddDate(-2, 0, 0), Salary: 95000,
						Department:  engineering,
						Designation: &models.DesignationRef{ID: primitive.NewObjectID(), Name: "Senior Engineer"},
					},
					{
						EmployeeCode: "EMP002", FirstName: "Marco", LastName: "Rossi",
						Email: "marco.rossi@example.com", EmploymentType: "FULL_TIME",
						JoinDate: time.Now().AddDate(-1, -3, 0), Salary: 72000,
						Department:  sales,
						Designation: &models.DesignationRef{ID: primitive.NewObjectID(), Name: "Account Executive"},
					},
					{
						EmployeeCode: "EMP003", FirstName: "Lena", LastName: "Novak",
						Email: "lena.novak@example.com", EmploymentType: "CONTRACT",
						JoinDate: time.Now().AddDate(0, -6, 0), Salary: 54000,
						Department:  engineering,
						Designation: &models.DesignationRef{ID: primitive.NewObjectID(), Name: "QA Engineer"},
					},
				}

				for _, emp := range demo {
					if err := employees.Create(ctx, emp); err != nil {
						logger.Warn("skipping employee", zap.String("code", emp.EmployeeCode), zap.Error(err))
						continue
					}
					logger.Info("seeded employee", zap.String("code", emp.EmployeeCode))
				}

				if len(demo) > 0 && !demo[0].ID.IsZero() {
					_, err := leaves.Apply(ctx, leave.ApplyRequest{
						EmployeeID: demo[0].ID.Hex(),
						Type:       "CASUAL",
						StartDate:  time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
						EndDate:    time.Now().AddDate(0, 0, 9).Format("2006-01-02"),
						Reason:     "Family event",
					})
					if err != nil {
						logger.Warn("skipping demo leave", zap.Error(err))
					}
				}

				systemTemplates := []*report.ReportTemplate{
					{
						Name:        "Active Headcount by Department",
						Description: "All active employees with department and designation",
						DataSource:  reportquery.SourceEmployees,
						SelectedFields: []string{
							"employeeCode", "firstName", "lastName",
							"department.name", "designation.name", "joinDate",
						},
						SortBy: []reportquery.Sort{{Field: "department.name"}},
						Aggregations: []report.Aggregation{
							{Field: "employeeCode", Type: reportquery.AggCount, Label: "Headcount"},
							{Field: "salary", Type: reportquery.AggAvg, Label: "Average Salary"},
						},
						ChartType: "table",
					},
					{
						Name:        "Pending Leave Requests",
						Description: "Leave requests awaiting a decision",
						DataSource:  reportquery.SourceLeave,
						SelectedFields: []string{
							"employee.firstName", "employee.lastName",
							"type", "startDate", "endDate", "days",
						},
						Filters: []reportquery.Filter{
							{Field: "status", Operator: reportquery.OpEquals, Value: "PENDING"},
						},
						SortBy:    []reportquery.Sort{{Field: "startDate"}},
						ChartType: "table",
					},
				}

				now := time.Now()
				for _, tpl := range systemTemplates {
					tpl.IsPublic = true
					tpl.IsSystem = true
					tpl.CreatedBy = seedAdminID
					tpl.CreatedAt = now
					tpl.UpdatedAt = now
					if err := templates.Create(ctx, tpl); err != nil {
						logger.Warn("skipping system template", zap.String("name", tpl.Name), zap.Error(err))
						continue
					}
					logger.Info("seeded system template", zap.String("name", tpl.Name))
				}

				logger.Info("seeding complete")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,

			audit.NewAuditRepository,
			employee.NewEmployeeRepository,
			leave.NewLeaveRepository,
			report.NewTemplateRepository,

			audit.NewAuditService,
			employee.NewEmployeeService,
			leave.NewLeaveService,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}

package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-hrm/internal/common/api"
	"go-hrm/internal/config"
	"go-hrm/internal/connectors"
	"go-hrm/internal/database"
	"go-hrm/internal/features/attendance"
	"go-hrm/internal/features/audit"
	"go-hrm/internal/features/auth"
	"go-hrm/internal/features/employee"
	"go-hrm/internal/features/leave"
	"go-hrm/internal/features/report"
	"go-hrm/internal/housekeeping"
	"go-hrm/internal/logger"
	"go-hrm/internal/middleware"
	"go-hrm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates the Fiber app with the shared middleware stack.
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())
	app.Use(middleware.MetricsMiddleware())
	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

// AsRoute tags a constructor so Fx collects it into the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes calls Setup() on every collected route.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer starts Fiber in a goroutine and shuts it down with the app.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,
			connectors.NewWarehouseSink,

			// Repositories
			auth.NewAuthRepository,
			audit.NewAuditRepository,
			employee.NewEmployeeRepository,
			leave.NewLeaveRepository,
			attendance.NewAttendanceRepository,
			report.NewTemplateRepository,
			report.NewGeneratedRepository,
			report.NewMongoFetcher,

			// Services
			auth.NewAuthService,
			audit.NewAuditService,
			employee.NewEmployeeService,
			leave.NewLeaveService,
			attendance.NewAttendanceService,
			report.NewReportService,

			// Controllers
			auth.NewAuthController,
			audit.NewAuditController,
			employee.NewEmployeeController,
			leave.NewLeaveController,
			attendance.NewAttendanceController,
			report.NewReportController,

			// Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(employee.NewEmployeeApi),
			AsRoute(leave.NewLeaveApi),
			AsRoute(attendance.NewAttendanceApi),
			AsRoute(report.NewReportApi),

			housekeeping.NewScheduler,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			housekeeping.Register,
		),
	)

	app.Run()
}

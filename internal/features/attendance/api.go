package attendance

import (
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AttendanceApi struct {
	AttendanceController *AttendanceController
	Config               *config.Config
}

func NewAttendanceApi(attendanceController *AttendanceController, config *config.Config) *AttendanceApi {
	return &AttendanceApi{
		AttendanceController: attendanceController,
		Config:               config,
	}
}

func (api *AttendanceApi) Setup(app *fiber.App) {
	group := app.Group("/api/attendance", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.AttendanceController.List)
	group.Post("/check-in", api.AttendanceController.CheckIn)
	group.Post("/check-out", api.AttendanceController.CheckOut)
}

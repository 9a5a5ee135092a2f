package leave

import (
	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LeaveApi struct {
	LeaveController *LeaveController
	Config          *config.Config
}

func NewLeaveApi(leaveController *LeaveController, config *config.Config) *LeaveApi {
	return &LeaveApi{
		LeaveController: leaveController,
		Config:          config,
	}
}

func (api *LeaveApi) Setup(app *fiber.App) {
	group := app.Group("/api/leaves", middleware.AuthMiddleware(api.Config.SkipAuth))

	approver := middleware.RequireRole(common_models.RoleAdmin, common_models.RoleHR, common_models.RoleManager)

	group.Get("/", api.LeaveController.List)
	group.Post("/", api.LeaveController.Apply)
	group.Get("/:id", api.LeaveController.Get)
	group.Post("/:id/approve", approver, api.LeaveController.Approve)
	group.Post("/:id/reject", approver, api.LeaveController.Reject)
	group.Post("/:id/cancel", api.LeaveController.Cancel)
}

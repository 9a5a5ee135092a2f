package employee

import (
	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type EmployeeApi struct {
	EmployeeController *EmployeeController
	Config             *config.Config
}

func NewEmployeeApi(employeeController *EmployeeController, config *config.Config) *EmployeeApi {
	return &EmployeeApi{
		EmployeeController: employeeController,
		Config:             config,
	}
}

func (api *EmployeeApi) Setup(app *fiber.App) {
	group := app.Group("/api/employees", middleware.AuthMiddleware(api.Config.SkipAuth))

	hrOnly := middleware.RequireRole(common_models.RoleAdmin, common_models.RoleHR)

	group.Get("/", api.EmployeeController.List)
	group.Get("/:id", api.EmployeeController.Get)
	group.Post("/", hrOnly, api.EmployeeController.Create)
	group.Put("/:id", hrOnly, api.EmployeeController.Update)
	group.Delete("/:id", hrOnly, api.EmployeeController.Terminate)
}

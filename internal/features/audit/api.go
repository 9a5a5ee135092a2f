package audit

import (
	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	AuditController *AuditController
	Config          *config.Config
}

func NewAuditApi(auditController *AuditController, config *config.Config) *AuditApi {
	return &AuditApi{
		AuditController: auditController,
		Config:          config,
	}
}

func (api *AuditApi) Setup(app *fiber.App) {
	group := app.Group("/api/audit-logs", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", middleware.RequireRole(common_models.RoleAdmin, common_models.RoleHR), api.AuditController.List)
}

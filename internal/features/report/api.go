package report

import (
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
	Config           *config.Config
}

func NewReportApi(reportController *ReportController, config *config.Config) *ReportApi {
	return &ReportApi{
		ReportController: reportController,
		Config:           config,
	}
}

func (api *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/report-builder", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/fields", api.ReportController.Fields)
	group.Post("/preview", api.ReportController.Preview)

	group.Get("/templates", api.ReportController.ListTemplates)
	group.Post("/templates", api.ReportController.CreateTemplate)
	group.Get("/templates/:id", api.ReportController.GetTemplate)
	group.Put("/templates/:id", api.ReportController.UpdateTemplate)
	group.Delete("/templates/:id", api.ReportController.DeleteTemplate)
	group.Post("/templates/:id/run", api.ReportController.Run)

	group.Get("/reports", api.ReportController.ListGenerated)
	group.Get("/reports/:id", api.ReportController.GetGenerated)
	group.Get("/reports/:id/export", api.ReportController.Export)
	group.Delete("/reports/:id", api.ReportController.DeleteGenerated)
}

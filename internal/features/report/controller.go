package report

import (
	"errors"
	"strconv"

	"go-hrm/pkg/reportquery"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportController struct {
	ReportService ReportService
}

func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// statusForError maps the service error taxonomy onto HTTP statuses. Spec
// validation failures are client errors, never 500s.
func statusForError(err error) int {
	switch {
	case errors.Is(err, reportquery.ErrUnknownDataSource),
		errors.Is(err, reportquery.ErrInvalidField),
		errors.Is(err, reportquery.ErrInvalidOperator),
		errors.Is(err, reportquery.ErrMalformedFilterValue):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrTemplateNotFound),
		errors.Is(err, ErrGeneratedReportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDuplicateTemplateName):
		return fiber.StatusConflict
	case errors.Is(err, ErrSystemTemplateImmutable),
		errors.Is(err, ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, ErrTenantNotResolved):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(ctx *fiber.Ctx, err error) error {
	return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}

// Fields returns the builder catalog, optionally narrowed by ?dataSource=.
func (c *ReportController) Fields(ctx *fiber.Ctx) error {
	catalog, err := c.ReportService.Catalog(ctx.Query("dataSource"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(catalog)
}

func (c *ReportController) Preview(ctx *fiber.Ctx) error {
	var req PreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := c.ReportService.Preview(ctx.Context(), req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(result)
}

func (c *ReportController) CreateTemplate(ctx *fiber.Ctx) error {
	var tpl ReportTemplate
	if err := ctx.BodyParser(&tpl); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := c.ReportService.CreateTemplate(ctx.Context(), &tpl); err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(tpl)
}

func (c *ReportController) GetTemplate(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
	}

	tpl, err := c.ReportService.GetTemplate(ctx.Context(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(tpl)
}

func (c *ReportController) ListTemplates(ctx *fiber.Ctx) error {
	templates, err := c.ReportService.ListTemplates(ctx.Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(templates)
}

func (c *ReportController) UpdateTemplate(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
	}

	var tpl ReportTemplate
	if err := ctx.BodyParser(&tpl); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := c.ReportService.UpdateTemplate(ctx.Context(), id, &tpl)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(updated)
}

func (c *ReportController) DeleteTemplate(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
	}

	if err := c.ReportService.DeleteTemplate(ctx.Context(), id); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "template deleted"})
}

func (c *ReportController) Run(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
	}

	// An empty body means "run with the template as saved".
	var params RunParameters
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&params); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	generated, err := c.ReportService.Run(ctx.Context(), id, &params)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(generated)
}

func (c *ReportController) GetGenerated(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid report id"})
	}

	report, err := c.ReportService.GetGenerated(ctx.Context(), id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(report)
}

func (c *ReportController) ListGenerated(ctx *fiber.Ctx) error {
	page, _ := strconv.ParseInt(ctx.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.Query("limit", "20"), 10, 64)

	templateID := primitive.NilObjectID
	if raw := ctx.Query("templateId"); raw != "" {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template id"})
		}
		templateID = oid
	}

	reports, err := c.ReportService.ListGenerated(ctx.Context(), templateID, page, limit)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(reports)
}

func (c *ReportController) DeleteGenerated(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid report id"})
	}

	if err := c.ReportService.DeleteGenerated(ctx.Context(), id); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "report deleted"})
}

// Export streams a generated report as csv (default) or xlsx.
func (c *ReportController) Export(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid report id"})
	}

	report, err := c.ReportService.GetGenerated(ctx.Context(), id)
	if err != nil {
		return fail(ctx, err)
	}

	format := ctx.Query("format", "csv")
	var (
		payload     []byte
		filename    string
		contentType string
	)
	switch format {
	case "csv":
		payload, filename, err = ExportCSV(report)
		contentType = "text/csv"
	case "xlsx":
		payload, filename, err = ExportExcel(report)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported export format"})
	}
	if err != nil {
		return fail(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(payload)
}

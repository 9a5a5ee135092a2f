package attendance

import (
	"errors"
	"strconv"

	"go-hrm/internal/features/employee"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceController struct {
	AttendanceService AttendanceService
}

func NewAttendanceController(attendanceService AttendanceService) *AttendanceController {
	return &AttendanceController{AttendanceService: attendanceService}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrAttendanceNotFound), errors.Is(err, employee.ErrEmployeeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrAlreadyCheckedIn), errors.Is(err, ErrAlreadyCheckedOut):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotCheckedIn):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

type punchRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (c *AttendanceController) punch(ctx *fiber.Ctx, f func(*fiber.Ctx, primitive.ObjectID) error) error {
	var req punchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	id, err := primitive.ObjectIDFromHex(req.EmployeeID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}
	return f(ctx, id)
}

func (c *AttendanceController) CheckIn(ctx *fiber.Ctx) error {
	return c.punch(ctx, func(ctx *fiber.Ctx, id primitive.ObjectID) error {
		att, err := c.AttendanceService.CheckIn(ctx.Context(), id)
		if err != nil {
			return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusCreated).JSON(att)
	})
}

func (c *AttendanceController) CheckOut(ctx *fiber.Ctx) error {
	return c.punch(ctx, func(ctx *fiber.Ctx, id primitive.ObjectID) error {
		att, err := c.AttendanceService.CheckOut(ctx.Context(), id)
		if err != nil {
			return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(att)
	})
}

func (c *AttendanceController) List(ctx *fiber.Ctx) error {
	page, _ := strconv.ParseInt(ctx.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.Query("limit", "31"), 10, 64)

	records, err := c.AttendanceService.List(ctx.Context(),
		ctx.Query("employeeId"), ctx.Query("status"),
		ctx.Query("from"), ctx.Query("to"),
		page, limit)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(records)
}

package leave

import (
	"errors"
	"strconv"

	"go-hrm/internal/features/employee"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeaveController struct {
	LeaveService LeaveService
}

func NewLeaveController(leaveService LeaveService) *LeaveController {
	return &LeaveController{LeaveService: leaveService}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrLeaveNotFound), errors.Is(err, employee.ErrEmployeeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidLeave):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrAlreadyDecided):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (c *LeaveController) Apply(ctx *fiber.Ctx) error {
	var req ApplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	leave, err := c.LeaveService.Apply(ctx.Context(), req)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(leave)
}

func (c *LeaveController) Get(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid leave id"})
	}

	leave, err := c.LeaveService.Get(ctx.Context(), id)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(leave)
}

func (c *LeaveController) List(ctx *fiber.Ctx) error {
	page, _ := strconv.ParseInt(ctx.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.Query("limit", "25"), 10, 64)

	leaves, err := c.LeaveService.List(ctx.Context(), ctx.Query("status"), ctx.Query("type"), page, limit)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(leaves)
}

func (c *LeaveController) decide(ctx *fiber.Ctx, approve bool) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid leave id"})
	}

	var req DecisionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	leave, err := c.LeaveService.Decide(ctx.Context(), id, approve, req.Note)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(leave)
}

func (c *LeaveController) Approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, true)
}

func (c *LeaveController) Reject(ctx *fiber.Ctx) error {
	return c.decide(ctx, false)
}

func (c *LeaveController) Cancel(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid leave id"})
	}

	leave, err := c.LeaveService.Cancel(ctx.Context(), id)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(leave)
}

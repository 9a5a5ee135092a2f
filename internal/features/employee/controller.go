package employee

import (
	"errors"
	"strconv"

	"go-hrm/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeController struct {
	EmployeeService EmployeeService
}

func NewEmployeeController(employeeService EmployeeService) *EmployeeController {
	return &EmployeeController{EmployeeService: employeeService}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDuplicateEmployeeCode):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidEmployee):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (c *EmployeeController) Create(ctx *fiber.Ctx) error {
	var emp models.Employee
	if err := ctx.BodyParser(&emp); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := c.EmployeeService.Create(ctx.Context(), &emp); err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(emp)
}

func (c *EmployeeController) Get(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	emp, err := c.EmployeeService.Get(ctx.Context(), id)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(emp)
}

func (c *EmployeeController) List(ctx *fiber.Ctx) error {
	page, _ := strconv.ParseInt(ctx.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(ctx.Query("limit", "25"), 10, 64)

	employees, total, err := c.EmployeeService.List(ctx.Context(), ctx.Query("status"), ctx.Query("department"), page, limit)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": employees, "total": total, "page": page, "limit": limit})
}

func (c *EmployeeController) Update(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	var emp models.Employee
	if err := ctx.BodyParser(&emp); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := c.EmployeeService.Update(ctx.Context(), id, &emp)
	if err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(updated)
}

func (c *EmployeeController) Terminate(ctx *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	if err := c.EmployeeService.Terminate(ctx.Context(), id); err != nil {
		return ctx.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "employee terminated"})
}

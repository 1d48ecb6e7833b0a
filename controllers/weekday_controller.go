package controllers

import (
	"github.com/gofiber/fiber/v2"
	"restaurante-api/models"
	"restaurante-api/services"
)

// WeekdayController handles HTTP requests for the weekly schedule.
type WeekdayController struct {
	weekdayService services.IWeekdayService
}

// NewWeekdayController creates a new WeekdayController instance.
func NewWeekdayController(svc services.IWeekdayService) *WeekdayController {
	return &WeekdayController{weekdayService: svc}
}

// List handles GET /horario.
func (c *WeekdayController) List(ctx *fiber.Ctx) error {
	weekdays, err := c.weekdayService.List()
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": weekdays})
}

// Get handles GET /horario/:type_day.
func (c *WeekdayController) Get(ctx *fiber.Ctx) error {
	weekday, err := c.weekdayService.Get(ctx.Params("type_day"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": weekday})
}

// Create handles POST /horario/create (admin).
func (c *WeekdayController) Create(ctx *fiber.Ctx) error {
	var req struct {
		Day         string `json:"day"`
		LunchStart  string `json:"lunch_start"`
		LunchEnd    string `json:"lunch_end"`
		DinnerStart string `json:"dinner_start"`
		DinnerEnd   string `json:"dinner_end"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	weekday, err := c.weekdayService.Create(models.Weekday{
		Day:         req.Day,
		LunchStart:  req.LunchStart,
		LunchEnd:    req.LunchEnd,
		DinnerStart: req.DinnerStart,
		DinnerEnd:   req.DinnerEnd,
	})
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "new weekday created", "data": weekday})
}

// Update handles PUT /horario/:type_day/update (admin).
func (c *WeekdayController) Update(ctx *fiber.Ctx) error {
	var patch models.WeekdayPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	weekday, err := c.weekdayService.Update(ctx.Params("type_day"), patch)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": weekday})
}

package controllers

import (
	"github.com/gofiber/fiber/v2"
	"restaurante-api/models"
	"restaurante-api/services"
)

// FoodController handles HTTP requests for the food catalog.
type FoodController struct {
	foodService services.IFoodService
}

// NewFoodController creates a new FoodController instance.
func NewFoodController(svc services.IFoodService) *FoodController {
	return &FoodController{foodService: svc}
}

// List handles GET /food.
func (c *FoodController) List(ctx *fiber.Ctx) error {
	foods, err := c.foodService.List()
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": foods})
}

// Get handles GET /food/:id.
func (c *FoodController) Get(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	food, err := c.foodService.Get(id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": food})
}

// Create handles POST /food/create (admin).
func (c *FoodController) Create(ctx *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	food, err := c.foodService.Create(req.Name, req.Description, req.Category)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "new food created", "data": food})
}

// Update handles PUT /food/:id/update (admin).
func (c *FoodController) Update(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var patch models.FoodPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	food, err := c.foodService.Update(id, patch)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "food updated", "data": food})
}

// Delete handles DELETE /food/:id/delete (admin).
func (c *FoodController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	if err := c.foodService.Delete(id); err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "food deleted"})
}

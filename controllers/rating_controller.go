package controllers

import (
	"github.com/gofiber/fiber/v2"
	"restaurante-api/middleware"
	"restaurante-api/services"
)

// RatingController handles HTTP requests for order ratings.
type RatingController struct {
	ratingService services.IRatingService
}

// NewRatingController creates a new RatingController instance.
func NewRatingController(svc services.IRatingService) *RatingController {
	return &RatingController{ratingService: svc}
}

// Create handles POST /avaliacao/:order_id.
func (c *RatingController) Create(ctx *fiber.Ctx) error {
	authUser, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied"})
	}

	orderID, err := idParam(ctx, "order_id")
	if err != nil {
		return fail(ctx, err)
	}

	var req services.CreateRatingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	rating, err := c.ratingService.Create(orderID, authUser.ID, req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(rating)
}

// List handles GET /avaliacao/list (admin).
func (c *RatingController) List(ctx *fiber.Ctx) error {
	ratings, err := c.ratingService.ListAll()
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(ratings)
}

// ListMine handles GET /avaliacao/MyList.
func (c *RatingController) ListMine(ctx *fiber.Ctx) error {
	authUser, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied"})
	}

	ratings, err := c.ratingService.ListByUser(authUser.ID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(ratings)
}

// Get handles GET /avaliacao/:id.
func (c *RatingController) Get(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	rating, err := c.ratingService.Get(id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(rating)
}

// Delete handles DELETE /avaliacao/:id for the caller's own rating.
func (c *RatingController) Delete(ctx *fiber.Ctx) error {
	authUser, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied"})
	}

	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	if err := c.ratingService.DeleteOwn(id, authUser.ID); err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "rating deleted"})
}

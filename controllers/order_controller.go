package controllers

import (
	"github.com/gofiber/fiber/v2"
	"restaurante-api/middleware"
	"restaurante-api/models"
	"restaurante-api/services"
)

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// Create handles POST /order/create for the authenticated user.
func (c *OrderController) Create(ctx *fiber.Ctx) error {
	authUser, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied"})
	}

	var req services.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	order, err := c.orderService.Create(authUser.ID, req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// ListMine handles GET /order/user.
func (c *OrderController) ListMine(ctx *fiber.Ctx) error {
	authUser, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied"})
	}

	orders, err := c.orderService.ListByUser(authUser.ID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(orders)
}

// Get handles GET /order/orderid/:id.
func (c *OrderController) Get(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	order, err := c.orderService.Get(id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(order)
}

// Update handles PUT /order/orderid/:id (admin): status and rating
// permission changes.
func (c *OrderController) Update(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var patch models.OrderPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	order, err := c.orderService.Update(id, patch)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(order)
}

// Delete handles DELETE /order/:id (admin).
func (c *OrderController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}
	if err := c.orderService.Delete(id); err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "order deleted"})
}

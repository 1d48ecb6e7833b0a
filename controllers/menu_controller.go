package controllers

import (
	"github.com/gofiber/fiber/v2"
	"restaurante-api/models"
	"restaurante-api/services"
)

// MenuController handles HTTP requests for menus and their stock.
type MenuController struct {
	menuService services.IMenuService
}

// NewMenuController creates a new MenuController instance.
func NewMenuController(svc services.IMenuService) *MenuController {
	return &MenuController{menuService: svc}
}

// ListByDay handles GET /menu/:type_day.
func (c *MenuController) ListByDay(ctx *fiber.Ctx) error {
	menus, err := c.menuService.ListByDay(ctx.Params("type_day"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": menus})
}

// Get handles GET /menu/:type_day/:menu_type.
func (c *MenuController) Get(ctx *fiber.Ctx) error {
	menu, err := c.menuService.Get(ctx.Params("type_day"), ctx.Params("menu_type"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": menu})
}

// Create handles POST /menu/:type_day/create (admin).
func (c *MenuController) Create(ctx *fiber.Ctx) error {
	var req struct {
		MenuType        string `json:"menu_type"`
		MaximumCapacity int    `json:"maximum_capacity"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	menu, err := c.menuService.Create(ctx.Params("type_day"), req.MenuType, req.MaximumCapacity)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "new menu created", "data": menu})
}

// SetItems handles POST /menu/:menu_id/createMenuItem (admin).
func (c *MenuController) SetItems(ctx *fiber.Ctx) error {
	menuID, err := idParam(ctx, "menu_id")
	if err != nil {
		return fail(ctx, err)
	}

	var req struct {
		Items []services.MenuItemRequest `json:"items"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	items, err := c.menuService.SetItems(menuID, req.Items)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "new menu items created", "data": items})
}

// ApplyOrder handles PUT /menu/:type_day/:menu_type/updateMenuItemAfterOrder:
// the all-or-nothing seat and stock decrement for a confirmed order.
func (c *MenuController) ApplyOrder(ctx *fiber.Ctx) error {
	var req struct {
		NumberOfPeople int                  `json:"numberOfPeople"`
		OrderedItems   []models.OrderedItem `json:"orderedItems"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	err := c.menuService.ApplyOrder(ctx.Params("type_day"), ctx.Params("menu_type"), req.NumberOfPeople, req.OrderedItems)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "menu updated successfully"})
}

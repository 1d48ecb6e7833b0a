package controllers

import (
	"github.com/gofiber/fiber/v2"
	"restaurante-api/middleware"
	"restaurante-api/models"
	"restaurante-api/services"
)

// UserController handles HTTP requests for accounts and authentication.
type UserController struct {
	userService services.IUserService
}

// NewUserController creates a new UserController instance.
func NewUserController(svc services.IUserService) *UserController {
	return &UserController{userService: svc}
}

// Register handles POST /user/register.
func (c *UserController) Register(ctx *fiber.Ctx) error {
	var req services.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	user, err := c.userService.Register(req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /user.
func (c *UserController) Login(ctx *fiber.Ctx) error {
	var req struct {
		NameOrEmail string `json:"name_or_email"`
		Password    string `json:"password"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	token, user, err := c.userService.Login(req.NameOrEmail, req.Password)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"token": token, "user": user})
}

// List handles GET /user/list (admin).
func (c *UserController) List(ctx *fiber.Ctx) error {
	users, err := c.userService.List()
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(users)
}

// Update handles PUT /user/update for the authenticated user.
func (c *UserController) Update(ctx *fiber.Ctx) error {
	authUser, ok := middleware.UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied"})
	}

	var patch models.UserPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body format"})
	}

	user, err := c.userService.Update(authUser.ID, patch)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(user)
}

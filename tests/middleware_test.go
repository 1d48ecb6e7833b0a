package tests

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"restaurante-api/middleware"
	"restaurante-api/models"
	"restaurante-api/services"
)

// protectedApp wires a real UserService (real JWT signing and parsing)
// behind the auth middleware and two sample routes.
func protectedApp(t *testing.T, role string) (*fiber.App, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{Model: gorm.Model{ID: 7}, Name: "ana", Email: "ana@example.com", Password: string(hash), Role: role}

	userRepo := new(MockUserRepository)
	userRepo.On("FindByNameOrEmail", "ana").Return(user, nil)

	svc := services.NewUserService(userRepo, "test-secret", 2*time.Hour)
	token, _, err := svc.Login("ana", "hunter22")
	assert.NoError(t, err)

	auth := middleware.NewAuthMiddleware(svc)
	app := fiber.New()
	app.Get("/me", auth.RequireAuth, func(ctx *fiber.Ctx) error {
		authUser, _ := middleware.UserFromCtx(ctx)
		return ctx.JSON(fiber.Map{"id": authUser.ID, "role": authUser.Role})
	})
	app.Get("/admin-only", auth.RequireAuth, auth.RequireAdmin, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})
	return app, token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app, token := protectedApp(t, models.RoleClient)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app, _ := protectedApp(t, models.RoleClient)

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app, token := protectedApp(t, models.RoleClient)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Token "+token)
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	app, token := protectedApp(t, models.RoleClient)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_NonAdminForbidden(t *testing.T) {
	app, token := protectedApp(t, models.RoleClient)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_AdminAllowed(t *testing.T) {
	app, token := protectedApp(t, models.RoleAdmin)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"restaurante-api/models"
	"restaurante-api/services"
)

const authUserKey = "authUser"

// AuthUser is the authenticated identity attached to a request after the
// bearer token has been verified.
type AuthUser struct {
	ID   uint
	Name string
	Role string
}

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(tokenString string) (*services.Claims, error)
}

// AuthMiddleware gates routes behind bearer-token authentication.
type AuthMiddleware struct {
	parser TokenParser
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(parser TokenParser) *AuthMiddleware {
	return &AuthMiddleware{parser: parser}
}

// RequireAuth verifies the Authorization header and stores the caller's
// identity for the handler chain.
func (m *AuthMiddleware) RequireAuth(ctx *fiber.Ctx) error {
	header := ctx.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied: no token provided"})
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header format"})
	}

	claims, err := m.parser.ParseToken(parts[1])
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	ctx.Locals(authUserKey, AuthUser{
		ID:   claims.UserID,
		Name: claims.Name,
		Role: claims.Role,
	})
	return ctx.Next()
}

// RequireAdmin rejects authenticated callers without the admin role. It
// must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(ctx *fiber.Ctx) error {
	user, ok := UserFromCtx(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access denied: no token provided"})
	}
	if user.Role != models.RoleAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	return ctx.Next()
}

// UserFromCtx returns the authenticated identity stored by RequireAuth.
func UserFromCtx(ctx *fiber.Ctx) (AuthUser, bool) {
	user, ok := ctx.Locals(authUserKey).(AuthUser)
	return user, ok
}

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"restaurante-api/controllers"
	"restaurante-api/middleware"
	"restaurante-api/models"
	"restaurante-api/services"
)

func registerApp(svc services.IUserService) *fiber.App {
	ctrl := controllers.NewUserController(svc)
	app := fiber.New()
	app.Post("/user", ctrl.Login)
	app.Post("/user/register", ctrl.Register)
	return app
}

func TestUserController_Register_Success(t *testing.T) {
	mockSvc := new(MockUserService)
	created := &models.User{Model: gorm.Model{ID: 1}, Name: "ana", Email: "ana@example.com", Role: models.RoleClient}
	mockSvc.On("Register", mock.AnythingOfType("services.RegisterRequest")).Return(created, nil)

	app := registerApp(mockSvc)
	payload, _ := json.Marshal(map[string]string{
		"name":     "ana",
		"email":    "ana@example.com",
		"password": "hunter22",
	})
	req := httptest.NewRequest("POST", "/user/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "ana", user.Name)
	mockSvc.AssertExpectations(t)
}

func TestUserController_Register_DuplicateEmail(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("Register", mock.AnythingOfType("services.RegisterRequest")).
		Return(nil, fmt.Errorf("name or email already in use: %w", models.ErrConflict))

	app := registerApp(mockSvc)
	payload, _ := json.Marshal(map[string]string{
		"name":     "ana",
		"email":    "taken@example.com",
		"password": "hunter22",
	})
	req := httptest.NewRequest("POST", "/user/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Contains(t, body["error"], "already in use")
}

func TestUserController_Register_InvalidBody(t *testing.T) {
	mockSvc := new(MockUserService)
	app := registerApp(mockSvc)

	req := httptest.NewRequest("POST", "/user/register", bytes.NewReader([]byte("{invalid json}")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestUserController_Login_Success(t *testing.T) {
	mockSvc := new(MockUserService)
	user := &models.User{Model: gorm.Model{ID: 1}, Name: "ana", Role: models.RoleClient}
	mockSvc.On("Login", "ana", "hunter22").Return("signed-token", user, nil)

	app := registerApp(mockSvc)
	payload, _ := json.Marshal(map[string]string{
		"name_or_email": "ana",
		"password":      "hunter22",
	})
	req := httptest.NewRequest("POST", "/user", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "ana", body.User.Name)
}

func TestUserController_Login_InvalidCredentials(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("Login", "ana", "wrong").
		Return("", nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized))

	app := registerApp(mockSvc)
	payload, _ := json.Marshal(map[string]string{
		"name_or_email": "ana",
		"password":      "wrong",
	})
	req := httptest.NewRequest("POST", "/user", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserController_Update_DuplicateNameMapsTo400(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("ParseToken", "tok").
		Return(&services.Claims{UserID: 7, Name: "ana", Role: models.RoleClient}, nil)
	mockSvc.On("Update", uint(7), mock.AnythingOfType("models.UserPatch")).
		Return(nil, fmt.Errorf("failed to update user: %w", gorm.ErrDuplicatedKey))

	ctrl := controllers.NewUserController(mockSvc)
	auth := middleware.NewAuthMiddleware(mockSvc)
	app := fiber.New()
	app.Put("/user/update", auth.RequireAuth, ctrl.Update)

	body, _ := json.Marshal(fiber.Map{"name": "taken"})
	req := httptest.NewRequest("PUT", "/user/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok")
	resp, err := app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"restaurante-api/models"
	"restaurante-api/services"
)

func newUserService(repo *MockUserRepository) services.IUserService {
	return services.NewUserService(repo, "test-secret", 2*time.Hour)
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("NameOrEmailTaken", "ana", "ana@example.com").Return(false, nil)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	svc := newUserService(userRepo)
	user, err := svc.Register(services.RegisterRequest{
		Name:     "ana",
		Email:    "ana@example.com",
		Password: "hunter22",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)
	// The stored password is a bcrypt hash of the plaintext, never the
	// plaintext itself.
	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("NameOrEmailTaken", "ana", "ana@example.com").Return(true, nil)

	svc := newUserService(userRepo)
	user, err := svc.Register(services.RegisterRequest{
		Name:     "ana",
		Email:    "ana@example.com",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := newUserService(new(MockUserRepository))

	user, err := svc.Register(services.RegisterRequest{Name: "ana"})

	assert.ErrorIs(t, err, models.ErrInvalid)
	assert.Nil(t, user)
}

func TestUserService_Register_MalformedEmail(t *testing.T) {
	svc := newUserService(new(MockUserRepository))

	user, err := svc.Register(services.RegisterRequest{
		Name:     "ana",
		Email:    "not-an-email",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, models.ErrInvalid)
	assert.Nil(t, user)
}

func storedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &models.User{
		Model:    gorm.Model{ID: 42},
		Name:     "ana",
		Email:    "ana@example.com",
		Password: string(hash),
		Role:     models.RoleClient,
	}
}

func TestUserService_Login_TokenRoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByNameOrEmail", "ana").Return(storedUser(t, "hunter22"), nil)

	svc := newUserService(userRepo)
	token, user, err := svc.Login("ana", "hunter22")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(42), user.ID)

	claims, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ana", claims.Name)
	assert.Equal(t, models.RoleClient, claims.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByNameOrEmail", "ana").Return(storedUser(t, "hunter22"), nil)

	svc := newUserService(userRepo)
	token, user, err := svc.Login("ana", "wrong")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByNameOrEmail", "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := newUserService(userRepo)
	_, _, err := svc.Login("ghost", "whatever")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestUserService_ParseToken_Garbage(t *testing.T) {
	svc := newUserService(new(MockUserRepository))

	claims, err := svc.ParseToken("not.a.token")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Nil(t, claims)
}

func TestUserService_Update_PartialFields(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", uint(42)).Return(storedUser(t, "hunter22"), nil)
	userRepo.On("Save", mock.AnythingOfType("*models.User")).Return(nil)

	svc := newUserService(userRepo)
	tel := "912345678"
	user, err := svc.Update(42, models.UserPatch{Tel: &tel})

	assert.NoError(t, err)
	assert.Equal(t, "912345678", user.Tel)
	// Untouched fields keep their values.
	assert.Equal(t, "ana", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
}

package services

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"restaurante-api/models"
	"restaurante-api/repository"
)

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest is the payload of POST /user/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Tel      string `json:"tel"`
}

// IUserService defines the interface for account and auth business logic.
type IUserService interface {
	Register(req RegisterRequest) (*models.User, error)
	Login(nameOrEmail, password string) (string, *models.User, error)
	ParseToken(tokenString string) (*Claims, error)
	Update(userID uint, patch models.UserPatch) (*models.User, error)
	List() ([]models.User, error)
}

// UserService implements IUserService.
type UserService struct {
	userRepo repository.IUserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewUserService creates a new UserService instance.
func NewUserService(repo repository.IUserRepository, secret string, tokenTTL time.Duration) IUserService {
	return &UserService{
		userRepo: repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register validates the payload, enforces name/email uniqueness and stores
// the user with a bcrypt password hash.
func (s *UserService) Register(req RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", models.ErrInvalid)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("malformed email address: %w", models.ErrInvalid)
	}

	taken, err := s.userRepo.NameOrEmailTaken(req.Name, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check uniqueness: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("name or email already in use: %w", models.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Avatar:   req.Avatar,
		Tel:      req.Tel,
		Role:     models.RoleClient,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials against the stored hash and issues a signed
// token. The same generic failure is returned for an unknown identifier and
// a wrong password.
func (s *UserService) Login(nameOrEmail, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByNameOrEmail(nameOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func (s *UserService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthorized)
	}
	return claims, nil
}

// Update applies the supplied profile fields to the authenticated user.
func (s *UserService) Update(userID uint, patch models.UserPatch) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		if _, err := mail.ParseAddress(*patch.Email); err != nil {
			return nil, fmt.Errorf("malformed email address: %w", models.ErrInvalid)
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Tel != nil {
		user.Tel = *patch.Tel
	}

	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// List returns every registered user.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.FindAll()
}

package repository

import (
	"errors"

	"gorm.io/gorm"
	"restaurante-api/models"
)

// IUserRepository defines the interface for user data operations.
type IUserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByNameOrEmail(nameOrEmail string) (*models.User, error)
	NameOrEmailTaken(name, email string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
	FindAll() ([]models.User, error)
}

// UserRepository implements IUserRepository for GORM.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{DB: db}
}

// FindByID retrieves a user by primary key.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByNameOrEmail retrieves the user whose name or email matches the
// given credential identifier.
func (r *UserRepository) FindByNameOrEmail(nameOrEmail string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("name = ? OR email = ?", nameOrEmail, nameOrEmail).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// NameOrEmailTaken reports whether another user already holds the given
// name or email.
func (r *UserRepository) NameOrEmailTaken(name, email string) (bool, error) {
	var user models.User
	err := r.DB.Where("name = ? OR email = ?", name, email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(user *models.User) error {
	return r.DB.Create(user).Error
}

// Save persists changes to an existing user.
func (r *UserRepository) Save(user *models.User) error {
	return r.DB.Save(user).Error
}

// FindAll returns every registered user.
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

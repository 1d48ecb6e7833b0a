package repository

import (
	"errors"

	"gorm.io/gorm"
	"restaurante-api/models"
)

// IFoodRepository defines the interface for food catalog data operations.
type IFoodRepository interface {
	FindAll() ([]models.Food, error)
	FindByID(id uint) (*models.Food, error)
	NameTaken(name string) (bool, error)
	Create(food *models.Food) error
	Save(food *models.Food) error
	Delete(food *models.Food) error
}

// FoodRepository implements IFoodRepository for GORM.
type FoodRepository struct {
	DB *gorm.DB
}

// NewFoodRepository creates a new FoodRepository instance.
func NewFoodRepository(db *gorm.DB) IFoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) FindAll() ([]models.Food, error) {
	var foods []models.Food
	if err := r.DB.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepository) FindByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := r.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) NameTaken(name string) (bool, error) {
	var food models.Food
	err := r.DB.Where("name = ?", name).First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FoodRepository) Create(food *models.Food) error {
	return r.DB.Create(food).Error
}

func (r *FoodRepository) Save(food *models.Food) error {
	return r.DB.Save(food).Error
}

// Delete removes a food for good. The delete is unscoped so the unique
// index on name frees up and the same name can be registered again.
func (r *FoodRepository) Delete(food *models.Food) error {
	return r.DB.Unscoped().Delete(food).Error
}

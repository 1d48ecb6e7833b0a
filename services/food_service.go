package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"restaurante-api/models"
	"restaurante-api/repository"
)

// IFoodService defines the interface for food catalog business logic.
type IFoodService interface {
	List() ([]models.Food, error)
	Get(id uint) (*models.Food, error)
	Create(name, description, category string) (*models.Food, error)
	Update(id uint, patch models.FoodPatch) (*models.Food, error)
	Delete(id uint) error
}

// FoodService implements IFoodService.
type FoodService struct {
	foodRepo repository.IFoodRepository
}

// NewFoodService creates a new FoodService instance.
func NewFoodService(repo repository.IFoodRepository) IFoodService {
	return &FoodService{foodRepo: repo}
}

func (s *FoodService) List() ([]models.Food, error) {
	return s.foodRepo.FindAll()
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	food, err := s.foodRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up food: %w", err)
	}
	return food, nil
}

// Create adds a dish to the catalog. Name must be unused and the category
// must be one of the fixed set.
func (s *FoodService) Create(name, description, category string) (*models.Food, error) {
	if name == "" {
		return nil, fmt.Errorf("food name is required: %w", models.ErrInvalid)
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("unknown food category %q: %w", category, models.ErrInvalid)
	}

	taken, err := s.foodRepo.NameTaken(name)
	if err != nil {
		return nil, fmt.Errorf("failed to check food name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("food %q already exists: %w", name, models.ErrConflict)
	}

	food := &models.Food{Name: name, Description: description, Category: category}
	if err := s.foodRepo.Create(food); err != nil {
		return nil, fmt.Errorf("failed to create food: %w", err)
	}
	return food, nil
}

// Update applies the supplied catalog fields to an existing food.
func (s *FoodService) Update(id uint, patch models.FoodPatch) (*models.Food, error) {
	food, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		food.Name = *patch.Name
	}
	if patch.Description != nil {
		food.Description = *patch.Description
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			return nil, fmt.Errorf("unknown food category %q: %w", *patch.Category, models.ErrInvalid)
		}
		food.Category = *patch.Category
	}

	if err := s.foodRepo.Save(food); err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}
	return food, nil
}

func (s *FoodService) Delete(id uint) error {
	food, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.foodRepo.Delete(food); err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"restaurante-api/models"
	"restaurante-api/repository"
)

// MenuItemRequest is one {food, quantity} line of an admin item upload.
type MenuItemRequest struct {
	FoodID   uint `json:"food_id"`
	Quantity int  `json:"quantity"`
}

// IMenuService defines the interface for menu business logic.
type IMenuService interface {
	ListByDay(day string) ([]models.Menu, error)
	Get(day, period string) (*models.Menu, error)
	Create(day, period string, capacity int) (*models.Menu, error)
	SetItems(menuID uint, items []MenuItemRequest) ([]models.MenuItem, error)
	ApplyOrder(day, period string, numberOfPeople int, items []models.OrderedItem) error
}

// MenuService implements IMenuService.
type MenuService struct {
	menuRepo        repository.IMenuRepository
	weekdayRepo     repository.IWeekdayRepository
	foodRepo        repository.IFoodRepository
	defaultCapacity int
}

// NewMenuService creates a new MenuService instance.
func NewMenuService(menuRepo repository.IMenuRepository, weekdayRepo repository.IWeekdayRepository, foodRepo repository.IFoodRepository, defaultCapacity int) IMenuService {
	return &MenuService{
		menuRepo:        menuRepo,
		weekdayRepo:     weekdayRepo,
		foodRepo:        foodRepo,
		defaultCapacity: defaultCapacity,
	}
}

func (s *MenuService) resolveWeekday(day string) (*models.Weekday, error) {
	weekday, err := s.weekdayRepo.FindByDay(day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("weekday %q: %w", day, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up weekday: %w", err)
	}
	return weekday, nil
}

// ListByDay returns every menu of a weekday with items and foods.
func (s *MenuService) ListByDay(day string) ([]models.Menu, error) {
	weekday, err := s.resolveWeekday(day)
	if err != nil {
		return nil, err
	}
	return s.menuRepo.FindByWeekday(weekday.ID)
}

// Get returns the menu for one weekday and period.
func (s *MenuService) Get(day, period string) (*models.Menu, error) {
	if !models.ValidPeriod(period) {
		return nil, fmt.Errorf("unknown menu period %q: %w", period, models.ErrInvalid)
	}
	weekday, err := s.resolveWeekday(day)
	if err != nil {
		return nil, err
	}
	menu, err := s.menuRepo.FindByWeekdayAndPeriod(weekday.ID, period)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no %s menu for %s: %w", period, day, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up menu: %w", err)
	}
	return menu, nil
}

// Create adds the menu for (weekday, period). One menu may exist per pair.
func (s *MenuService) Create(day, period string, capacity int) (*models.Menu, error) {
	if !models.ValidPeriod(period) {
		return nil, fmt.Errorf("unknown menu period %q: %w", period, models.ErrInvalid)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity must not be negative: %w", models.ErrInvalid)
	}
	weekday, err := s.resolveWeekday(day)
	if err != nil {
		return nil, err
	}

	exists, err := s.menuRepo.PeriodExists(weekday.ID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to check menu: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%s menu already exists for %s: %w", period, day, models.ErrConflict)
	}

	menu := &models.Menu{WeekdayID: weekday.ID, Period: period, Capacity: capacity}
	if err := s.menuRepo.Create(menu); err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	return menu, nil
}

// SetItems replaces the item list of a menu with the posted foods and
// restores the menu's seat capacity to the configured default, starting a
// fresh service.
func (s *MenuService) SetItems(menuID uint, items []MenuItemRequest) ([]models.MenuItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("menu must contain at least one item: %w", models.ErrInvalid)
	}
	if _, err := s.menuRepo.FindByID(menuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu %d: %w", menuID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up menu: %w", err)
	}

	menuItems := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for food %d must be positive: %w", item.FoodID, models.ErrInvalid)
		}
		if _, err := s.foodRepo.FindByID(item.FoodID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("food %d does not exist: %w", item.FoodID, models.ErrInvalid)
			}
			return nil, fmt.Errorf("failed to look up food: %w", err)
		}
		menuItems = append(menuItems, models.MenuItem{FoodID: item.FoodID, Quantity: item.Quantity})
	}

	if err := s.menuRepo.ReplaceItems(menuID, menuItems, s.defaultCapacity); err != nil {
		return nil, fmt.Errorf("failed to replace menu items: %w", err)
	}
	return menuItems, nil
}

// ApplyOrder consumes seats and stock from the menu of (day, period) for a
// confirmed order. Validation of the request shape happens here; the
// atomic check-and-decrement happens in the repository transaction.
func (s *MenuService) ApplyOrder(day, period string, numberOfPeople int, items []models.OrderedItem) error {
	if numberOfPeople <= 0 {
		return fmt.Errorf("number of people must be positive: %w", models.ErrInvalid)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return fmt.Errorf("quantity for food %d must be positive: %w", item.FoodID, models.ErrInvalid)
		}
	}

	menu, err := s.Get(day, period)
	if err != nil {
		return err
	}
	return s.menuRepo.ApplyOrder(menu.ID, numberOfPeople, items)
}

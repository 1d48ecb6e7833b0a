package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"restaurante-api/models"
)

// IMenuRepository defines the interface for menu and stock data operations.
type IMenuRepository interface {
	FindByID(menuID uint) (*models.Menu, error)
	FindByWeekday(weekdayID uint) ([]models.Menu, error)
	FindByWeekdayAndPeriod(weekdayID uint, period string) (*models.Menu, error)
	PeriodExists(weekdayID uint, period string) (bool, error)
	Create(menu *models.Menu) error
	ReplaceItems(menuID uint, items []models.MenuItem, resetCapacity int) error
	ApplyOrder(menuID uint, numberOfPeople int, items []models.OrderedItem) error
}

// MenuRepository implements IMenuRepository for GORM.
type MenuRepository struct {
	DB *gorm.DB
}

// NewMenuRepository creates a new MenuRepository instance.
func NewMenuRepository(db *gorm.DB) IMenuRepository {
	return &MenuRepository{DB: db}
}

// FindByID returns the menu with the given id.
func (r *MenuRepository) FindByID(menuID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := r.DB.First(&menu, menuID).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// FindByWeekday returns every menu of a weekday with its items and foods.
func (r *MenuRepository) FindByWeekday(weekdayID uint) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.Preload("Items.Food").Where("weekday_id = ?", weekdayID).Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// FindByWeekdayAndPeriod returns the single menu of a weekday and period.
func (r *MenuRepository) FindByWeekdayAndPeriod(weekdayID uint, period string) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.Preload("Items.Food").
		Where("weekday_id = ? AND period = ?", weekdayID, period).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// PeriodExists reports whether a menu already exists for (weekday, period).
func (r *MenuRepository) PeriodExists(weekdayID uint, period string) (bool, error) {
	var menu models.Menu
	err := r.DB.Where("weekday_id = ? AND period = ?", weekdayID, period).First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create inserts a new menu.
func (r *MenuRepository) Create(menu *models.Menu) error {
	return r.DB.Create(menu).Error
}

// ReplaceItems swaps the full item list of a menu and resets its seat
// capacity, all in one transaction.
func (r *MenuRepository) ReplaceItems(menuID uint, items []models.MenuItem, resetCapacity int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menuID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].MenuID = menuID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Menu{}).Where("id = ?", menuID).
			UpdateColumn("capacity", resetCapacity).Error
	})
}

// ApplyOrder applies a confirmed order against a menu: each ordered food's
// remaining quantity and the menu's seat capacity are decremented together,
// or not at all. Every decrement is a conditional single-statement update
// guarded by the current counter value, so two concurrent orders can never
// both pass a check against stale reads; the loser's statement matches zero
// rows and the whole transaction rolls back.
func (r *MenuRepository) ApplyOrder(menuID uint, numberOfPeople int, items []models.OrderedItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var menu models.Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("menu %d: %w", menuID, models.ErrNotFound)
			}
			return err
		}

		for _, ordered := range items {
			var item models.MenuItem
			err := tx.Where("menu_id = ? AND food_id = ?", menuID, ordered.FoodID).
				First(&item).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("food %d is not on this menu: %w", ordered.FoodID, models.ErrInvalid)
				}
				return err
			}

			res := tx.Model(&models.MenuItem{}).
				Where("id = ? AND quantity >= ?", item.ID, ordered.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", ordered.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("insufficient stock for food %d: %w", ordered.FoodID, models.ErrConflict)
			}
		}

		res := tx.Model(&models.Menu{}).
			Where("id = ? AND capacity >= ?", menuID, numberOfPeople).
			UpdateColumn("capacity", gorm.Expr("capacity - ?", numberOfPeople))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("insufficient seat capacity: %w", models.ErrConflict)
		}

		return nil
	})
}

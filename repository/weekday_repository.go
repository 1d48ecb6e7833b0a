package repository

import (
	"errors"

	"gorm.io/gorm"
	"restaurante-api/models"
)

// IWeekdayRepository defines the interface for schedule data operations.
type IWeekdayRepository interface {
	FindAll() ([]models.Weekday, error)
	FindByDay(day string) (*models.Weekday, error)
	DayExists(day string) (bool, error)
	Create(weekday *models.Weekday) error
	Save(weekday *models.Weekday) error
}

// WeekdayRepository implements IWeekdayRepository for GORM.
type WeekdayRepository struct {
	DB *gorm.DB
}

// NewWeekdayRepository creates a new WeekdayRepository instance.
func NewWeekdayRepository(db *gorm.DB) IWeekdayRepository {
	return &WeekdayRepository{DB: db}
}

func (r *WeekdayRepository) FindAll() ([]models.Weekday, error) {
	var weekdays []models.Weekday
	if err := r.DB.Find(&weekdays).Error; err != nil {
		return nil, err
	}
	return weekdays, nil
}

func (r *WeekdayRepository) FindByDay(day string) (*models.Weekday, error) {
	var weekday models.Weekday
	if err := r.DB.Where("day = ?", day).First(&weekday).Error; err != nil {
		return nil, err
	}
	return &weekday, nil
}

func (r *WeekdayRepository) DayExists(day string) (bool, error) {
	var weekday models.Weekday
	err := r.DB.Where("day = ?", day).First(&weekday).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WeekdayRepository) Create(weekday *models.Weekday) error {
	return r.DB.Create(weekday).Error
}

func (r *WeekdayRepository) Save(weekday *models.Weekday) error {
	return r.DB.Save(weekday).Error
}

package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"restaurante-api/models"
	"restaurante-api/repository"
)

// IWeekdayService defines the interface for schedule business logic.
type IWeekdayService interface {
	List() ([]models.Weekday, error)
	Get(day string) (*models.Weekday, error)
	Create(weekday models.Weekday) (*models.Weekday, error)
	Update(day string, patch models.WeekdayPatch) (*models.Weekday, error)
}

// WeekdayService implements IWeekdayService.
type WeekdayService struct {
	weekdayRepo repository.IWeekdayRepository
}

// NewWeekdayService creates a new WeekdayService instance.
func NewWeekdayService(repo repository.IWeekdayRepository) IWeekdayService {
	return &WeekdayService{weekdayRepo: repo}
}

func (s *WeekdayService) List() ([]models.Weekday, error) {
	return s.weekdayRepo.FindAll()
}

func (s *WeekdayService) Get(day string) (*models.Weekday, error) {
	weekday, err := s.weekdayRepo.FindByDay(day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("weekday %q: %w", day, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up weekday: %w", err)
	}
	return weekday, nil
}

// Create adds a schedule entry for an open weekday. Each day may only be
// scheduled once.
func (s *WeekdayService) Create(weekday models.Weekday) (*models.Weekday, error) {
	if !models.ValidDay(weekday.Day) {
		return nil, fmt.Errorf("unknown weekday %q: %w", weekday.Day, models.ErrInvalid)
	}

	exists, err := s.weekdayRepo.DayExists(weekday.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to check weekday: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%s already scheduled: %w", weekday.Day, models.ErrConflict)
	}

	if err := s.weekdayRepo.Create(&weekday); err != nil {
		return nil, fmt.Errorf("failed to create weekday: %w", err)
	}
	return &weekday, nil
}

// Update applies the supplied service-window fields to a scheduled day.
func (s *WeekdayService) Update(day string, patch models.WeekdayPatch) (*models.Weekday, error) {
	weekday, err := s.Get(day)
	if err != nil {
		return nil, err
	}

	if patch.LunchStart != nil {
		weekday.LunchStart = *patch.LunchStart
	}
	if patch.LunchEnd != nil {
		weekday.LunchEnd = *patch.LunchEnd
	}
	if patch.DinnerStart != nil {
		weekday.DinnerStart = *patch.DinnerStart
	}
	if patch.DinnerEnd != nil {
		weekday.DinnerEnd = *patch.DinnerEnd
	}

	if err := s.weekdayRepo.Save(weekday); err != nil {
		return nil, fmt.Errorf("failed to update weekday: %w", err)
	}
	return weekday, nil
}

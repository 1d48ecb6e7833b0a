package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"restaurante-api/models"
	"restaurante-api/repository"
)

// FoodRatingRequest scores one food of the rated order.
type FoodRatingRequest struct {
	FoodID         uint   `json:"food_id"`
	QuantityRating int    `json:"quantity_rating"`
	Observation    string `json:"observation"`
}

// CreateRatingRequest is the payload of POST /avaliacao/:order_id.
type CreateRatingRequest struct {
	ServiceRating     int                 `json:"service_rating"`
	TemperatureRating int                 `json:"temperature_rating"`
	LightRating       int                 `json:"light_rating"`
	Observation       string              `json:"observation"`
	Foods             []FoodRatingRequest `json:"foods"`
}

// IRatingService defines the interface for order rating business logic.
type IRatingService interface {
	Create(orderID, userID uint, req CreateRatingRequest) (*models.Rating, error)
	ListAll() ([]models.Rating, error)
	ListByUser(userID uint) ([]models.Rating, error)
	Get(id uint) (*models.Rating, error)
	DeleteOwn(id, userID uint) error
}

// RatingService implements IRatingService.
type RatingService struct {
	ratingRepo repository.IRatingRepository
	orderRepo  repository.IOrderRepository
}

// NewRatingService creates a new RatingService instance.
func NewRatingService(ratingRepo repository.IRatingRepository, orderRepo repository.IOrderRepository) IRatingService {
	return &RatingService{ratingRepo: ratingRepo, orderRepo: orderRepo}
}

func validScore(s int) bool {
	return s >= 1 && s <= 5
}

// Create rates an order. The order must exist, an admin must have allowed
// rating it, and it must not be rated already.
func (s *RatingService) Create(orderID, userID uint, req CreateRatingRequest) (*models.Rating, error) {
	if !validScore(req.ServiceRating) || !validScore(req.TemperatureRating) || !validScore(req.LightRating) {
		return nil, fmt.Errorf("ratings must be between 1 and 5: %w", models.ErrInvalid)
	}
	for _, food := range req.Foods {
		if !validScore(food.QuantityRating) {
			return nil, fmt.Errorf("rating for food %d must be between 1 and 5: %w", food.FoodID, models.ErrInvalid)
		}
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d does not exist: %w", orderID, models.ErrInvalid)
		}
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	if !order.RatingAllowed {
		return nil, fmt.Errorf("order %d is not open for rating yet: %w", orderID, models.ErrInvalid)
	}

	exists, err := s.ratingRepo.ExistsForOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("order %d is already rated: %w", orderID, models.ErrConflict)
	}

	rating := &models.Rating{
		OrderID:           orderID,
		UserID:            userID,
		ServiceRating:     req.ServiceRating,
		TemperatureRating: req.TemperatureRating,
		LightRating:       req.LightRating,
		Observation:       req.Observation,
	}
	for _, food := range req.Foods {
		rating.Foods = append(rating.Foods, models.FoodRating{
			FoodID:         food.FoodID,
			QuantityRating: food.QuantityRating,
			Observation:    food.Observation,
		})
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		// The unique index on order_id catches the duplicate the existence
		// check raced against.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("order %d is already rated: %w", orderID, models.ErrConflict)
		}
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}
	return rating, nil
}

// ListAll returns every rating with its per-food scores.
func (s *RatingService) ListAll() ([]models.Rating, error) {
	return s.ratingRepo.FindAll()
}

// ListByUser returns the caller's ratings.
func (s *RatingService) ListByUser(userID uint) ([]models.Rating, error) {
	return s.ratingRepo.FindByUser(userID)
}

// Get returns one rating by id.
func (s *RatingService) Get(id uint) (*models.Rating, error) {
	rating, err := s.ratingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rating %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up rating: %w", err)
	}
	return rating, nil
}

// DeleteOwn removes a rating that belongs to the caller. A rating of
// another user is reported as not found rather than forbidden, so ids
// cannot be enumerated.
func (s *RatingService) DeleteOwn(id, userID uint) error {
	rating, err := s.ratingRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("rating %d: %w", id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to look up rating: %w", err)
	}
	if err := s.ratingRepo.Delete(rating); err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}

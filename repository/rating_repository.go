package repository

import (
	"errors"

	"gorm.io/gorm"
	"restaurante-api/models"
)

// IRatingRepository defines the interface for order rating data operations.
type IRatingRepository interface {
	Create(rating *models.Rating) error
	ExistsForOrder(orderID uint) (bool, error)
	FindAll() ([]models.Rating, error)
	FindByUser(userID uint) ([]models.Rating, error)
	FindByID(id uint) (*models.Rating, error)
	FindByIDAndUser(id, userID uint) (*models.Rating, error)
	Delete(rating *models.Rating) error
}

// RatingRepository implements IRatingRepository for GORM.
type RatingRepository struct {
	DB *gorm.DB
}

// NewRatingRepository creates a new RatingRepository instance.
func NewRatingRepository(db *gorm.DB) IRatingRepository {
	return &RatingRepository{DB: db}
}

// Create persists a rating with its per-food scores in one transaction.
// The unique index on order_id makes a concurrent duplicate fail here even
// when both requests passed the existence check.
func (r *RatingRepository) Create(rating *models.Rating) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(rating).Error
	})
}

// ExistsForOrder reports whether the order has already been rated.
func (r *RatingRepository) ExistsForOrder(orderID uint) (bool, error) {
	var rating models.Rating
	err := r.DB.Where("order_id = ?", orderID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RatingRepository) FindAll() ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.DB.Preload("Foods").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepository) FindByUser(userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.DB.Preload("Foods").Where("user_id = ?", userID).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepository) FindByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.DB.Preload("Foods").First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) FindByIDAndUser(id, userID uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Delete removes a rating and its per-food scores for good. The delete is
// unscoped so the unique index on order_id frees up and the order can be
// rated again.
func (r *RatingRepository) Delete(rating *models.Rating) error {
	return r.DB.Unscoped().Select("Foods").Delete(rating).Error
}

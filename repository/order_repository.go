package repository

import (
	"gorm.io/gorm"
	"restaurante-api/models"
)

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	Create(order *models.Order) error
	FindByUser(userID uint) ([]models.Order, error)
	FindByID(id uint) (*models.Order, error)
	FindByIDWithMeals(id uint) (*models.Order, error)
	Save(order *models.Order) error
	Delete(order *models.Order) error
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists an order together with its clients and meals. GORM walks
// the nested associations inside one transaction, so a failing meal insert
// rolls back the whole placement.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// FindByUser returns the orders of one user with clients, meals and foods.
func (r *OrderRepository) FindByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Clients.Meals.Food").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID retrieves a bare order row.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByIDWithMeals retrieves an order with its full client/meal tree.
func (r *OrderRepository) FindByIDWithMeals(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Clients.Meals.Food").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Save persists changes to an existing order.
func (r *OrderRepository) Save(order *models.Order) error {
	return r.DB.Save(order).Error
}

// Delete removes an order.
func (r *OrderRepository) Delete(order *models.Order) error {
	return r.DB.Delete(order).Error
}

package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"restaurante-api/models"
	"restaurante-api/repository"
)

// MealRequest is one food choice of one diner.
type MealRequest struct {
	FoodID      uint   `json:"food_id"`
	Observation string `json:"observation"`
}

// ClientRequest is one diner of an order placement.
type ClientRequest struct {
	Name        string        `json:"name"`
	Indifferent bool          `json:"indifferent"`
	Meals       []MealRequest `json:"meals"`
}

// CreateOrderRequest is the payload of POST /order/create.
type CreateOrderRequest struct {
	NumberPeople int             `json:"number_people"`
	Period       string          `json:"period"`
	Date         time.Time       `json:"date"`
	Contents     []ClientRequest `json:"contents"`
}

// IOrderService defines the interface for order business logic.
type IOrderService interface {
	Create(userID uint, req CreateOrderRequest) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	Get(id uint) (*models.Order, error)
	Update(id uint, patch models.OrderPatch) (*models.Order, error)
	Delete(id uint) error
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo repository.IOrderRepository
	foodRepo  repository.IFoodRepository
	events    IEventService
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orderRepo repository.IOrderRepository, foodRepo repository.IFoodRepository, events IEventService) IOrderService {
	return &OrderService{
		orderRepo: orderRepo,
		foodRepo:  foodRepo,
		events:    events,
	}
}

// Create places an order: the order row plus one client per diner and their
// meals, persisted in a single transaction. Every referenced food must
// exist or the whole placement is rejected.
func (s *OrderService) Create(userID uint, req CreateOrderRequest) (*models.Order, error) {
	if req.NumberPeople <= 0 {
		return nil, fmt.Errorf("number of people must be positive: %w", models.ErrInvalid)
	}
	if len(req.Contents) == 0 {
		return nil, fmt.Errorf("order must contain at least one client: %w", models.ErrInvalid)
	}
	if req.Period != "" && !models.ValidPeriod(req.Period) {
		return nil, fmt.Errorf("unknown menu period %q: %w", req.Period, models.ErrInvalid)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	order := &models.Order{
		UserID:       userID,
		NumberPeople: req.NumberPeople,
		Date:         date,
		Period:       req.Period,
		Status:       models.StatusInProgress,
	}

	for _, content := range req.Contents {
		client := models.Client{Name: content.Name, Indifferent: content.Indifferent}
		for _, meal := range content.Meals {
			if _, err := s.foodRepo.FindByID(meal.FoodID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("food %d does not exist: %w", meal.FoodID, models.ErrInvalid)
				}
				return nil, fmt.Errorf("failed to look up food: %w", err)
			}
			client.Meals = append(client.Meals, models.Meal{
				FoodID:      meal.FoodID,
				Observation: meal.Observation,
			})
		}
		order.Clients = append(order.Clients, client)
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(OrderEvent{
		Kind:      EventOrderCreated,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		Timestamp: time.Now(),
	})
	return order, nil
}

// publish pushes an order event, logging instead of failing the request:
// the order is already committed by the time the event leaves the process.
func (s *OrderService) publish(event OrderEvent) {
	if err := s.events.PublishOrderEvent(event); err != nil {
		log.Warningf("failed to publish %s for order %d: %v", event.Kind, event.OrderID, err)
	}
}

// ListByUser returns the caller's orders with clients, meals and foods.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

// Get returns one order with its full client/meal tree.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDWithMeals(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	return order, nil
}

// Update applies status and rating-permission changes to an order.
func (s *OrderService) Update(id uint, patch models.OrderPatch) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	if patch.Status != nil {
		if !models.ValidStatus(*patch.Status) {
			return nil, fmt.Errorf("unknown order status %q: %w", *patch.Status, models.ErrInvalid)
		}
		order.Status = *patch.Status
	}
	if patch.RatingAllowed != nil {
		order.RatingAllowed = *patch.RatingAllowed
	}

	if err := s.orderRepo.Save(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if patch.Status != nil {
		s.publish(OrderEvent{
			Kind:      EventOrderStatusChanged,
			OrderID:   order.ID,
			UserID:    order.UserID,
			Status:    order.Status,
			Timestamp: time.Now(),
		})
	}
	return order, nil
}

// Delete removes an order.
func (s *OrderService) Delete(id uint) error {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order %d: %w", id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to look up order: %w", err)
	}
	if err := s.orderRepo.Delete(order); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

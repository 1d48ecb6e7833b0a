package models

import (
	"time"

	"gorm.io/gorm"
)

// Order lifecycle states.
const (
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusCanceled   = "canceled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	return s == StatusInProgress || s == StatusDone || s == StatusCanceled
}

// Order is a booking placed by a user: a table of NumberPeople for a given
// date and period, with one Client entry per person at the table.
// RatingAllowed is set by an admin once the order may be reviewed.
type Order struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	NumberPeople  int       `json:"number_people"`
	Date          time.Time `json:"date"`
	Period        string    `json:"period"`
	Status        string    `json:"status" gorm:"not null;default:in_progress"`
	RatingAllowed bool      `json:"rating_allowed" gorm:"not null;default:false"`
	Clients       []Client  `json:"clients,omitempty" gorm:"foreignKey:OrderID"`
}

// Client is one diner within an order. Indifferent marks a diner with no
// food preference; such a client carries no meals.
type Client struct {
	gorm.Model
	OrderID     uint   `json:"order_id" gorm:"not null;index"`
	Name        string `json:"name"`
	Indifferent bool   `json:"indifferent"`
	Meals       []Meal `json:"meals,omitempty" gorm:"foreignKey:ClientID"`
}

// Meal is one food choice of one client, with an optional note for the kitchen.
type Meal struct {
	gorm.Model
	ClientID    uint   `json:"client_id" gorm:"not null;index"`
	FoodID      uint   `json:"food_id" gorm:"not null"`
	Observation string `json:"observation"`
	Food        *Food  `json:"food,omitempty" gorm:"foreignKey:FoodID"`
}

// OrderPatch carries the fields an admin order update supplies.
type OrderPatch struct {
	Status        *string `json:"status"`
	RatingAllowed *bool   `json:"rating_allowed"`
}

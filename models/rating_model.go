package models

import "gorm.io/gorm"

// Rating is a user's review of a completed order. The unique index on
// OrderID enforces one rating per order at the database level, backing the
// application-side existence check.
type Rating struct {
	gorm.Model
	OrderID           uint         `json:"order_id" gorm:"not null;uniqueIndex"`
	UserID            uint         `json:"user_id" gorm:"not null;index"`
	ServiceRating     int          `json:"service_rating"`
	TemperatureRating int          `json:"temperature_rating"`
	LightRating       int          `json:"light_rating"`
	Observation       string       `json:"observation"`
	Foods             []FoodRating `json:"foods,omitempty" gorm:"foreignKey:RatingID"`
}

// FoodRating scores one food that was part of the rated order.
type FoodRating struct {
	gorm.Model
	RatingID       uint   `json:"rating_id" gorm:"not null;index"`
	FoodID         uint   `json:"food_id" gorm:"not null"`
	QuantityRating int    `json:"quantity_rating"`
	Observation    string `json:"observation"`
}

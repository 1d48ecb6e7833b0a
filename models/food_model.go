package models

import "gorm.io/gorm"

// Food categories served by the restaurant.
const (
	CategoryStarter = "starter"
	CategoryMain    = "main"
	CategoryDessert = "dessert"
)

// ValidCategory reports whether c is one of the fixed food categories.
func ValidCategory(c string) bool {
	return c == CategoryStarter || c == CategoryMain || c == CategoryDessert
}

// FoodPatch carries the catalog fields an update supplies. Nil means
// "leave unchanged".
type FoodPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// Food is a dish in the catalog, referenced by menu items and meals.
type Food struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Category    string `json:"category" gorm:"not null"`
}

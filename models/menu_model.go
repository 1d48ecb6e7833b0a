package models

import "gorm.io/gorm"

// Menu periods. One menu exists per (weekday, period).
const (
	PeriodLunch  = "lunch"
	PeriodDinner = "dinner"
)

// ValidPeriod reports whether p is lunch or dinner.
func ValidPeriod(p string) bool {
	return p == PeriodLunch || p == PeriodDinner
}

// Menu is the offer for one weekday and period. Capacity is the number of
// seats still available; it is decremented as orders are confirmed.
type Menu struct {
	gorm.Model
	WeekdayID uint       `json:"weekday_id" gorm:"not null;uniqueIndex:idx_weekday_period"`
	Period    string     `json:"period" gorm:"not null;uniqueIndex:idx_weekday_period"`
	Capacity  int        `json:"capacity"`
	Items     []MenuItem `json:"items,omitempty" gorm:"foreignKey:MenuID"`
}

// MenuItem is one food on a menu with its remaining stock.
type MenuItem struct {
	gorm.Model
	MenuID   uint  `json:"menu_id" gorm:"not null;index"`
	FoodID   uint  `json:"food_id" gorm:"not null"`
	Quantity int   `json:"quantity"`
	Food     *Food `json:"food,omitempty" gorm:"foreignKey:FoodID"`
}

// OrderedItem is one line of a confirmed order applied against a menu:
// the food and how many portions of it were ordered.
type OrderedItem struct {
	FoodID   uint `json:"food_id"`
	Quantity int  `json:"quantity"`
}

package models

import "gorm.io/gorm"

// Days the restaurant is open. Weekends are not scheduled.
var openDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// ValidDay reports whether day names one of the open weekdays.
func ValidDay(day string) bool {
	for _, d := range openDays {
		if d == day {
			return true
		}
	}
	return false
}

// Weekday holds the lunch and dinner service windows for one day of the week.
// Times are HH:MM:SS strings, matching the schedule as the admin enters it.
type Weekday struct {
	gorm.Model
	Day         string `json:"day" gorm:"uniqueIndex;not null"`
	LunchStart  string `json:"lunch_start"`
	LunchEnd    string `json:"lunch_end"`
	DinnerStart string `json:"dinner_start"`
	DinnerEnd   string `json:"dinner_end"`
	Menus       []Menu `json:"menus,omitempty" gorm:"foreignKey:WeekdayID"`
}

// WeekdayPatch carries the schedule fields an update supplies. Nil means
// "leave unchanged"; a pointer to the zero value is an explicit set.
type WeekdayPatch struct {
	LunchStart  *string `json:"lunch_start"`
	LunchEnd    *string `json:"lunch_end"`
	DinnerStart *string `json:"dinner_start"`
	DinnerEnd   *string `json:"dinner_end"`
}

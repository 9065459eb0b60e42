package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Canteen struct {
	gorm.Model

	Name        string `json:"name" gorm:"uniqueIndex;size:255"`
	Description string `json:"description" gorm:"type:text"`
	Location    string `json:"location" gorm:"size:255"`

	// Structured per-day schedule, e.g. {"mon":{"open":"07:00","close":"20:00"}}
	OpeningHours datatypes.JSON `gorm:"column:opening_hours" json:"openingHours,omitempty"`

	ContactPhone string `json:"contactPhone" gorm:"column:contact_phone;size:32"`
}

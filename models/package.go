package models

import (
	"gorm.io/gorm"
)

// Package is a fixed-price dish bundle a canteen offers for banquets.
type Package struct {
	gorm.Model

	CanteenID   uint    `json:"canteenId" gorm:"index;column:canteen_id"`
	Name        string  `json:"name" gorm:"size:255"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`

	Canteen Canteen `gorm:"foreignKey:CanteenID" json:"canteen,omitempty"`
	Dishes  []Dish  `gorm:"many2many:package_dishes" json:"dishes"`
}

package models

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model

	CanteenID   uint    `json:"canteenId" gorm:"index;column:canteen_id"`
	Name        string  `json:"name" gorm:"size:255"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable" gorm:"column:is_available;default:true"`

	Canteen     Canteen      `gorm:"foreignKey:CanteenID" json:"canteen,omitempty"`
	DietaryTags []DietaryTag `gorm:"many2many:dish_dietary_tags" json:"dietaryTags"`
	Allergens   []Allergen   `gorm:"many2many:dish_allergens" json:"allergens"`
}

type DietaryTag struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;size:100"`
	Description string `json:"description" gorm:"size:255"`
}

type Allergen struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;size:100"`
	Description string `json:"description" gorm:"size:255"`
}

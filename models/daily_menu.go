package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

type DailyMenu struct {
	gorm.Model

	CanteenID uint      `json:"canteenId" gorm:"column:canteen_id;uniqueIndex:uniq_canteen_menu"`
	MenuDate  time.Time `json:"menuDate" gorm:"column:menu_date;uniqueIndex:uniq_canteen_menu"`
	MealType  string    `json:"mealType" gorm:"column:meal_type;size:32;uniqueIndex:uniq_canteen_menu"`

	Canteen Canteen `gorm:"foreignKey:CanteenID" json:"canteen,omitempty"`
	Dishes  []Dish  `gorm:"many2many:daily_menu_dishes" json:"dishes"`
}

package models

import (
	"gorm.io/gorm"
)

// RatingReview is one user's rating of a dish. A user may rate a dish once.
type RatingReview struct {
	gorm.Model

	UserID  uint   `json:"userId" gorm:"column:user_id;uniqueIndex:uniq_user_dish"`
	DishID  uint   `json:"dishId" gorm:"column:dish_id;uniqueIndex:uniq_user_dish"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment" gorm:"type:text"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Dish Dish `gorm:"foreignKey:DishID" json:"dish,omitempty"`
}

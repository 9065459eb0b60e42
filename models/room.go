package models

import (
	"gorm.io/gorm"
)

// Room is a banquet room belonging to a canteen. BaseFee is the flat fee
// added to a reservation total when the room is booked.
type Room struct {
	gorm.Model

	CanteenID   uint    `json:"canteenId" gorm:"index;column:canteen_id"`
	Name        string  `json:"name" gorm:"size:255"`
	Capacity    int     `json:"capacity"`
	BaseFee     float64 `json:"baseFee" gorm:"column:base_fee"`
	Description string  `json:"description" gorm:"type:text"`

	Canteen Canteen `gorm:"foreignKey:CanteenID" json:"canteen,omitempty"`
}

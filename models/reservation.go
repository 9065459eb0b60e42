package models

import (
	"time"

	"gorm.io/gorm"
)

// Banquet reservation statuses. CANCELLED and COMPLETED are terminal.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationCompleted = "COMPLETED"
)

type BanquetReservation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`

	UserID    uint  `gorm:"index;column:user_id" json:"user_id"`
	CanteenID uint  `gorm:"index;column:canteen_id" json:"canteen_id"`
	RoomID    *uint `gorm:"index;column:room_id" json:"room_id,omitempty"`

	EventDate time.Time `gorm:"column:event_date" json:"event_date"`
	EventTime string    `gorm:"column:event_time;size:5" json:"event_time"` // "HH:MM"

	NumberOfGuests int    `gorm:"column:number_of_guests" json:"number_of_guests"`
	ContactName    string `gorm:"column:contact_name;size:100" json:"contact_name"`
	ContactPhone   string `gorm:"column:contact_phone;size:32" json:"contact_phone"`

	Purpose           string `gorm:"size:255" json:"purpose,omitempty"`
	CustomMenuRequest string `gorm:"column:custom_menu_request;type:text" json:"custom_menu_request,omitempty"`
	HasBirthdayCake   bool   `gorm:"column:has_birthday_cake;default:false" json:"has_birthday_cake"`
	SpecialRequests   string `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	// Derived from room fee + dish items + packages; recomputed on every
	// mutation, never patched in place.
	TotalPrice float64 `gorm:"column:total_price" json:"total_price"`

	Status           string     `gorm:"size:32;default:PENDING" json:"status"`
	ConfirmationDate *time.Time `gorm:"column:confirmation_date" json:"confirmation_date,omitempty"`

	User      User                  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Canteen   Canteen               `gorm:"foreignKey:CanteenID" json:"canteen,omitempty"`
	Room      *Room                 `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	DishItems []ReservationDishItem `gorm:"foreignKey:ReservationID" json:"dish_items"`
	Packages  []Package             `gorm:"many2many:reservation_packages" json:"packages"`
}

type ReservationDishItem struct {
	gorm.Model
	ReservationID uint    `gorm:"index;column:reservation_id" json:"reservation_id"`
	DishID        uint    `gorm:"index;column:dish_id" json:"dish_id"`
	Quantity      int     `json:"quantity"`
	Subtotal      float64 `json:"subtotal"` // dish price at booking time × quantity

	Dish Dish `gorm:"foreignKey:DishID" json:"dish,omitempty"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal order statuses. CANCELLED and COMPLETED are terminal.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// MealOrder is a pickup order for a set of dishes from one canteen.
type MealOrder struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`

	UserID    uint `gorm:"index;column:user_id" json:"user_id"`
	CanteenID uint `gorm:"index;column:canteen_id" json:"canteen_id"`

	OrderDate  time.Time `gorm:"column:order_date" json:"order_date"`
	PickupTime string    `gorm:"column:pickup_time;size:5" json:"pickup_time"` // "HH:MM"

	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`
	Status      string  `gorm:"size:32;default:PENDING" json:"status"`

	User    User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Canteen Canteen     `gorm:"foreignKey:CanteenID" json:"canteen,omitempty"`
	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	gorm.Model
	OrderID  uint    `gorm:"index;column:order_id" json:"order_id"`
	DishID   uint    `gorm:"index;column:dish_id" json:"dish_id"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`

	Dish Dish `gorm:"foreignKey:DishID" json:"dish,omitempty"`
}

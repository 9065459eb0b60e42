package services

import (
	"errors"
	"fmt"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

// OrderService orchestrates meal pickup orders. Same shape as the
// reservation orchestrator without the room/availability steps.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemInput struct {
	DishID   uint `json:"dishId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

type OrderInput struct {
	CanteenID  uint             `json:"canteenId" binding:"required"`
	OrderDate  string           `json:"orderDate" binding:"required"`  // YYYY-MM-DD
	PickupTime string           `json:"pickupTime" binding:"required"` // HH:MM
	Items      []OrderItemInput `json:"items" binding:"required"`
}

// CreateOrder places a meal order for the given owner with status PENDING.
// The total amount is the sum of the item subtotals at current dish prices.
func (s *OrderService) CreateOrder(input OrderInput, ownerID uint) (*models.MealOrder, error) {
	date, err := parseDate(input.OrderDate)
	if err != nil {
		return nil, err
	}
	if _, err := parseClock(input.PickupTime); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, apperr.InvalidInput("order must contain at least one item")
	}

	var orderID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.First(&owner, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user %d not found", ownerID)
			}
			return fmt.Errorf("db error checking user %d: %w", ownerID, err)
		}
		var canteen models.Canteen
		if err := tx.First(&canteen, input.CanteenID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("canteen %d not found", input.CanteenID)
			}
			return fmt.Errorf("db error checking canteen %d: %w", input.CanteenID, err)
		}

		items := make([]models.OrderItem, 0, len(input.Items))
		for _, in := range input.Items {
			if in.Quantity <= 0 {
				return apperr.InvalidInput("dish quantity must be greater than zero for dish %d", in.DishID)
			}
			var dish models.Dish
			if err := tx.First(&dish, in.DishID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("dish %d not found", in.DishID)
				}
				return fmt.Errorf("db error checking dish %d: %w", in.DishID, err)
			}
			items = append(items, models.OrderItem{
				DishID:   dish.ID,
				Quantity: in.Quantity,
				Subtotal: dish.Price * float64(in.Quantity),
			})
		}

		order := models.MealOrder{
			ReferenceCode: newReferenceCode("MO"),
			UserID:        owner.ID,
			CanteenID:     canteen.ID,
			OrderDate:     dateOnly(date),
			PickupTime:    input.PickupTime,
			TotalAmount:   CalculateOrderTotal(items),
			Status:        models.OrderPending,
			Items:         items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		orderID = order.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetOrderByID(orderID)
}

// UpdateOrderStatus drives the order state machine. Staff only.
func (s *OrderService) UpdateOrderStatus(id uint, rawStatus string, actorRole string) (*models.MealOrder, error) {
	newStatus, err := ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if !CanForceStatus(actorRole) {
		return nil, apperr.Unauthorized("only staff can update order status")
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.MealOrder
		if err := lockForUpdate(tx).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order %d not found", id)
			}
			return fmt.Errorf("db error loading order %d: %w", id, err)
		}
		if err := CheckOrderTransition(order.Status, newStatus); err != nil {
			return err
		}
		if err := tx.Model(&order).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetOrderByID(id)
}

// CancelOrder cancels a PENDING or CONFIRMED order. Owner only.
func (s *OrderService) CancelOrder(id uint, actorID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.MealOrder
		if err := lockForUpdate(tx).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order %d not found", id)
			}
			return fmt.Errorf("db error loading order %d: %w", id, err)
		}
		if !CanCancelOrder(actorID, order.UserID) {
			return apperr.Unauthorized("you are not authorized to cancel this order")
		}
		if IsTerminalStatus(order.Status) {
			return apperr.InvalidInput("order cannot be cancelled, current status is %s", order.Status)
		}
		if err := tx.Model(&order).Update("status", models.OrderCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel order: %w", err)
		}
		return nil
	})
}

func (s *OrderService) orderQuery() *gorm.DB {
	return s.DB.
		Preload("User").
		Preload("Canteen").
		Preload("Items.Dish")
}

func (s *OrderService) GetOrderByID(id uint) (*models.MealOrder, error) {
	var order models.MealOrder
	if err := s.orderQuery().First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order %d not found", id)
		}
		return nil, fmt.Errorf("failed to retrieve order %d: %w", id, err)
	}
	return &order, nil
}

func (s *OrderService) GetAllOrders() ([]models.MealOrder, error) {
	var list []models.MealOrder
	if err := s.orderQuery().Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return list, nil
}

func (s *OrderService) GetOrdersByUser(userID uint) ([]models.MealOrder, error) {
	var list []models.MealOrder
	if err := s.orderQuery().Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders for user %d: %w", userID, err)
	}
	return list, nil
}

func (s *OrderService) GetOrdersByCanteen(canteenID uint) ([]models.MealOrder, error) {
	var list []models.MealOrder
	if err := s.orderQuery().Where("canteen_id = ?", canteenID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders for canteen %d: %w", canteenID, err)
	}
	return list, nil
}

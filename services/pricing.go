package services

import (
	"canteen-backend/models"
)

// CalculateReservationTotal computes the banquet total:
// room base fee (0 when no room) + sum of dish item subtotals + sum of
// package prices. Pure; callers must recompute whenever the room, the dish
// items or the packages change and persist the result together with them.
func CalculateReservationTotal(room *models.Room, items []models.ReservationDishItem, packages []models.Package) float64 {
	total := 0.0
	if room != nil {
		total += room.BaseFee
	}
	for _, item := range items {
		total += item.Subtotal
	}
	for _, pkg := range packages {
		total += pkg.Price
	}
	return total
}

// CalculateOrderTotal sums the order item subtotals.
func CalculateOrderTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

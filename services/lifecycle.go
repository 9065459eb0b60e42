package services

import (
	"strings"

	"canteen-backend/apperr"
	"canteen-backend/models"
)

// Status state machines for reservations and orders, validated in one place
// instead of scattering terminal-state checks across call sites.
//
//	PENDING   -> CONFIRMED | CANCELLED
//	CONFIRMED -> COMPLETED | CANCELLED
//	CANCELLED, COMPLETED: terminal
var reservationTransitions = map[string][]string{
	models.ReservationPending:   {models.ReservationConfirmed, models.ReservationCancelled},
	models.ReservationConfirmed: {models.ReservationCompleted, models.ReservationCancelled},
	models.ReservationCancelled: {},
	models.ReservationCompleted: {},
}

var orderTransitions = map[string][]string{
	models.OrderPending:   {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed: {models.OrderCompleted, models.OrderCancelled},
	models.OrderCancelled: {},
	models.OrderCompleted: {},
}

func IsTerminalStatus(status string) bool {
	return status == models.ReservationCancelled || status == models.ReservationCompleted
}

// parseStatus normalizes a client-supplied status string against the given
// transition table's known states.
func parseStatus(table map[string][]string, raw string) (string, error) {
	status := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := table[status]; !ok {
		return "", apperr.InvalidInput("unknown status %q", raw)
	}
	return status, nil
}

func ParseReservationStatus(raw string) (string, error) {
	return parseStatus(reservationTransitions, raw)
}

func ParseOrderStatus(raw string) (string, error) {
	return parseStatus(orderTransitions, raw)
}

// checkTransition validates current -> next against a transition table.
// Same-state transitions on non-terminal states are idempotent no-ops.
// A terminal state accepts only terminal targets; everything else is an
// InvalidInput, mirroring the guard "cannot change status from X to Y".
func checkTransition(table map[string][]string, current, next string) error {
	if IsTerminalStatus(current) {
		if IsTerminalStatus(next) {
			return nil
		}
		return apperr.InvalidInput("cannot change status from %s to %s", current, next)
	}
	if current == next {
		return nil
	}
	for _, allowed := range table[current] {
		if allowed == next {
			return nil
		}
	}
	return apperr.InvalidInput("cannot change status from %s to %s", current, next)
}

func CheckReservationTransition(current, next string) error {
	return checkTransition(reservationTransitions, current, next)
}

func CheckOrderTransition(current, next string) error {
	return checkTransition(orderTransitions, current, next)
}

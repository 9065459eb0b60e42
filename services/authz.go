package services

import (
	"canteen-backend/models"
)

// Authorization policy for mutating reservations and orders. Controllers
// resolve the actor once from the auth token; services receive opaque ids.

// CanManageReservation reports whether the actor may update or cancel a
// reservation: the owner may, and so may STAFF/ADMIN.
func CanManageReservation(actorID uint, actorRole string, ownerID uint) bool {
	if actorID == ownerID {
		return true
	}
	return models.IsElevated(actorRole)
}

// CanForceStatus reports whether the actor may confirm/complete resources,
// i.e. drive status transitions other than cancellation. Staff only.
func CanForceStatus(actorRole string) bool {
	return models.IsElevated(actorRole)
}

// CanCancelOrder: order cancellation is owner-only, with no staff override.
// Asymmetric with reservations on purpose; see DESIGN.md.
func CanCancelOrder(actorID uint, ownerID uint) bool {
	return actorID == ownerID
}

// CanViewResource reports whether the actor may read a single resource.
func CanViewResource(actorID uint, actorRole string, ownerID uint) bool {
	return actorID == ownerID || models.IsElevated(actorRole)
}

package services

import (
	"errors"
	"strings"
	"testing"

	"canteen-backend/apperr"
	"canteen-backend/models"
)

func baseReservationInput(f fixtures) ReservationInput {
	roomID := f.room.ID
	return ReservationInput{
		CanteenID:      f.canteen.ID,
		RoomID:         &roomID,
		EventDate:      "2026-09-10",
		EventTime:      "12:00",
		NumberOfGuests: 40,
		ContactName:    "Alice Zhang",
		ContactPhone:   "555-0100",
		Purpose:        "Department dinner",
		DishItems: []ReservationDishItemInput{
			{DishID: f.dish.ID, Quantity: 2},
		},
	}
}

func TestCreateReservation(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	reservation, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	if reservation.Status != models.ReservationPending {
		t.Errorf("status = %s, want %s", reservation.Status, models.ReservationPending)
	}
	// Room fee 300 + dish 25 x 2.
	if reservation.TotalPrice != 350 {
		t.Errorf("total = %v, want 350", reservation.TotalPrice)
	}
	if !strings.HasPrefix(reservation.ReferenceCode, "BQ-") {
		t.Errorf("reference code %q missing BQ- prefix", reservation.ReferenceCode)
	}
	if reservation.ConfirmationDate != nil {
		t.Error("confirmation date must be unset on a new reservation")
	}
	if len(reservation.DishItems) != 1 || reservation.DishItems[0].Subtotal != 50 {
		t.Errorf("dish items = %+v, want one item with subtotal 50", reservation.DishItems)
	}
}

func TestCreateReservationWithPackage(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	input := baseReservationInput(f)
	input.PackageIDs = []uint{f.pkg.ID}

	reservation, err := svc.CreateReservation(input, f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	// 300 room + 50 dishes + 120 package.
	if reservation.TotalPrice != 470 {
		t.Errorf("total = %v, want 470", reservation.TotalPrice)
	}
	if len(reservation.Packages) != 1 {
		t.Errorf("packages = %d, want 1", len(reservation.Packages))
	}
}

func TestCreateReservationValidation(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	tests := []struct {
		name   string
		mutate func(*ReservationInput)
		want   error
	}{
		{"bad date", func(in *ReservationInput) { in.EventDate = "10/09/2026" }, apperr.ErrInvalidInput},
		{"bad time", func(in *ReservationInput) { in.EventTime = "noonish" }, apperr.ErrInvalidInput},
		{"zero guests", func(in *ReservationInput) { in.NumberOfGuests = 0 }, apperr.ErrInvalidInput},
		{"over capacity", func(in *ReservationInput) { in.NumberOfGuests = 60 }, apperr.ErrInvalidInput},
		{"unknown canteen", func(in *ReservationInput) { in.CanteenID = 999 }, apperr.ErrNotFound},
		{"unknown dish", func(in *ReservationInput) {
			in.DishItems = []ReservationDishItemInput{{DishID: 999, Quantity: 1}}
		}, apperr.ErrNotFound},
		{"zero quantity", func(in *ReservationInput) {
			in.DishItems = []ReservationDishItemInput{{DishID: f.dish.ID, Quantity: 0}}
		}, apperr.ErrInvalidInput},
		{"unknown package", func(in *ReservationInput) { in.PackageIDs = []uint{999} }, apperr.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := baseReservationInput(f)
			tc.mutate(&input)
			if _, err := svc.CreateReservation(input, f.diner.ID); !errors.Is(err, tc.want) {
				t.Errorf("CreateReservation = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("unknown room", func(t *testing.T) {
		input := baseReservationInput(f)
		missing := uint(999)
		input.RoomID = &missing
		if _, err := svc.CreateReservation(input, f.diner.ID); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("CreateReservation = %v, want ErrNotFound", err)
		}
	})
}

func TestCreateReservationDoubleBooking(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	if _, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID); err != nil {
		t.Fatalf("first CreateReservation: %v", err)
	}

	// The first banquet occupies [12:00, 14:00).
	overlapping := baseReservationInput(f)
	overlapping.EventTime = "13:00"
	if _, err := svc.CreateReservation(overlapping, f.other.ID); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("overlapping CreateReservation = %v, want ErrInvalidInput", err)
	}

	// A banquet starting exactly at 14:00 does not overlap.
	backToBack := baseReservationInput(f)
	backToBack.EventTime = "14:00"
	if _, err := svc.CreateReservation(backToBack, f.other.ID); err != nil {
		t.Errorf("back-to-back CreateReservation: %v", err)
	}

	// A different date is always free.
	otherDay := baseReservationInput(f)
	otherDay.EventDate = "2026-09-11"
	if _, err := svc.CreateReservation(otherDay, f.other.ID); err != nil {
		t.Errorf("other-day CreateReservation: %v", err)
	}
}

func TestCancelledReservationFreesSlot(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	first, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if err := svc.CancelReservation(first.ID, f.diner.ID, models.RoleDiner); err != nil {
		t.Fatalf("CancelReservation: %v", err)
	}

	if _, err := svc.CreateReservation(baseReservationInput(f), f.other.ID); err != nil {
		t.Errorf("CreateReservation after cancellation: %v", err)
	}
}

func TestUpdateReservation(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	reservation, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	// Same room and slot: the availability re-check must not collide with the
	// reservation being updated.
	update := baseReservationInput(f)
	update.NumberOfGuests = 45
	update.DishItems = []ReservationDishItemInput{{DishID: f.dish.ID, Quantity: 4}}

	updated, err := svc.UpdateReservation(reservation.ID, update, f.diner.ID, models.RoleDiner)
	if err != nil {
		t.Fatalf("UpdateReservation: %v", err)
	}
	if updated.NumberOfGuests != 45 {
		t.Errorf("guests = %d, want 45", updated.NumberOfGuests)
	}
	// 300 room + 25 x 4.
	if updated.TotalPrice != 400 {
		t.Errorf("total = %v, want 400", updated.TotalPrice)
	}
	if len(updated.DishItems) != 1 || updated.DishItems[0].Quantity != 4 {
		t.Errorf("dish items = %+v, want one item with quantity 4", updated.DishItems)
	}
}

func TestUpdateReservationAuthz(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	reservation, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	update := baseReservationInput(f)
	if _, err := svc.UpdateReservation(reservation.ID, update, f.other.ID, models.RoleDiner); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("foreign diner UpdateReservation = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.UpdateReservation(reservation.ID, update, f.staff.ID, models.RoleStaff); err != nil {
		t.Errorf("staff UpdateReservation: %v", err)
	}
}

func TestUpdateReservationOnlyPending(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	reservation, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if _, err := svc.UpdateReservationStatus(reservation.ID, models.ReservationConfirmed, models.RoleStaff); err != nil {
		t.Fatalf("UpdateReservationStatus: %v", err)
	}

	update := baseReservationInput(f)
	if _, err := svc.UpdateReservation(reservation.ID, update, f.diner.ID, models.RoleDiner); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("UpdateReservation on confirmed = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateReservationStatus(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	reservation, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	// Diners cannot drive status transitions.
	if _, err := svc.UpdateReservationStatus(reservation.ID, models.ReservationConfirmed, models.RoleDiner); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("diner UpdateReservationStatus = %v, want ErrUnauthorized", err)
	}

	confirmed, err := svc.UpdateReservationStatus(reservation.ID, "confirmed", models.RoleStaff)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != models.ReservationConfirmed {
		t.Errorf("status = %s, want %s", confirmed.Status, models.ReservationConfirmed)
	}
	if confirmed.ConfirmationDate == nil {
		t.Fatal("confirmation date must be stamped on first confirm")
	}
	firstStamp := *confirmed.ConfirmationDate

	// Confirming again is a no-op and keeps the original stamp.
	again, err := svc.UpdateReservationStatus(reservation.ID, models.ReservationConfirmed, models.RoleStaff)
	if err != nil {
		t.Fatalf("re-confirm: %v", err)
	}
	if again.ConfirmationDate == nil || !again.ConfirmationDate.Equal(firstStamp) {
		t.Errorf("confirmation date changed on re-confirm: %v, want %v", again.ConfirmationDate, firstStamp)
	}

	// Skipping CONFIRMED is not allowed from PENDING, but CONFIRMED may complete.
	completed, err := svc.UpdateReservationStatus(reservation.ID, models.ReservationCompleted, models.RoleStaff)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != models.ReservationCompleted {
		t.Errorf("status = %s, want %s", completed.Status, models.ReservationCompleted)
	}

	// Terminal states cannot be reopened.
	if _, err := svc.UpdateReservationStatus(reservation.ID, models.ReservationPending, models.RoleStaff); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("reopen completed = %v, want ErrInvalidInput", err)
	}
}

func TestCancelReservation(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	reservation, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID)
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if _, err := svc.UpdateReservationStatus(reservation.ID, models.ReservationConfirmed, models.RoleStaff); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if err := svc.CancelReservation(reservation.ID, f.other.ID, models.RoleDiner); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("foreign diner cancel = %v, want ErrUnauthorized", err)
	}

	if err := svc.CancelReservation(reservation.ID, f.diner.ID, models.RoleDiner); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
	cancelled, err := svc.GetReservationByID(reservation.ID)
	if err != nil {
		t.Fatalf("GetReservationByID: %v", err)
	}
	if cancelled.Status != models.ReservationCancelled {
		t.Errorf("status = %s, want %s", cancelled.Status, models.ReservationCancelled)
	}

	if err := svc.CancelReservation(reservation.ID, f.diner.ID, models.RoleDiner); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("cancel twice = %v, want ErrInvalidInput", err)
	}
}

func TestIsRoomAvailable(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	date, err := ParseEventDate("2026-09-10")
	if err != nil {
		t.Fatalf("ParseEventDate: %v", err)
	}

	available, err := svc.IsRoomAvailable(f.room.ID, date, "12:00", 0)
	if err != nil {
		t.Fatalf("IsRoomAvailable: %v", err)
	}
	if !available {
		t.Error("empty room must be available")
	}

	if _, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID); err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	available, err = svc.IsRoomAvailable(f.room.ID, date, "13:30", 0)
	if err != nil {
		t.Fatalf("IsRoomAvailable: %v", err)
	}
	if available {
		t.Error("room must be occupied at 13:30")
	}

	if _, err := svc.IsRoomAvailable(999, date, "12:00", 0); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown room = %v, want ErrNotFound", err)
	}
}

func TestGetReservationsByUser(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewReservationService(db)

	if _, err := svc.CreateReservation(baseReservationInput(f), f.diner.ID); err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	other := baseReservationInput(f)
	other.EventTime = "15:00"
	if _, err := svc.CreateReservation(other, f.other.ID); err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}

	mine, err := svc.GetReservationsByUser(f.diner.ID)
	if err != nil {
		t.Fatalf("GetReservationsByUser: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != f.diner.ID {
		t.Errorf("got %d reservations for user %d, want 1 owned by them", len(mine), f.diner.ID)
	}

	all, err := svc.GetAllReservations()
	if err != nil {
		t.Fatalf("GetAllReservations: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d reservations, want 2", len(all))
	}
}

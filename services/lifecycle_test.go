package services

import (
	"errors"
	"testing"

	"canteen-backend/apperr"
	"canteen-backend/models"
)

func TestCheckReservationTransition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr bool
	}{
		{"pending to confirmed", models.ReservationPending, models.ReservationConfirmed, false},
		{"pending to cancelled", models.ReservationPending, models.ReservationCancelled, false},
		{"pending to completed", models.ReservationPending, models.ReservationCompleted, true},
		{"confirmed to completed", models.ReservationConfirmed, models.ReservationCompleted, false},
		{"confirmed to cancelled", models.ReservationConfirmed, models.ReservationCancelled, false},
		{"confirmed to pending", models.ReservationConfirmed, models.ReservationPending, true},
		{"cancelled to pending", models.ReservationCancelled, models.ReservationPending, true},
		{"cancelled to confirmed", models.ReservationCancelled, models.ReservationConfirmed, true},
		{"completed to pending", models.ReservationCompleted, models.ReservationPending, true},
		{"same state pending", models.ReservationPending, models.ReservationPending, false},
		{"same state confirmed", models.ReservationConfirmed, models.ReservationConfirmed, false},
		{"terminal to terminal", models.ReservationCompleted, models.ReservationCancelled, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckReservationTransition(tc.current, tc.next)
			if tc.wantErr {
				if !errors.Is(err, apperr.ErrInvalidInput) {
					t.Errorf("CheckReservationTransition(%s, %s) = %v, want ErrInvalidInput", tc.current, tc.next, err)
				}
			} else if err != nil {
				t.Errorf("CheckReservationTransition(%s, %s) = %v, want nil", tc.current, tc.next, err)
			}
		})
	}
}

func TestCheckOrderTransition(t *testing.T) {
	tests := []struct {
		current string
		next    string
		wantErr bool
	}{
		{models.OrderPending, models.OrderConfirmed, false},
		{models.OrderPending, models.OrderCancelled, false},
		{models.OrderPending, models.OrderCompleted, true},
		{models.OrderConfirmed, models.OrderCompleted, false},
		{models.OrderCancelled, models.OrderPending, true},
		{models.OrderConfirmed, models.OrderConfirmed, false},
	}

	for _, tc := range tests {
		err := CheckOrderTransition(tc.current, tc.next)
		if tc.wantErr && !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("CheckOrderTransition(%s, %s) = %v, want ErrInvalidInput", tc.current, tc.next, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("CheckOrderTransition(%s, %s) = %v, want nil", tc.current, tc.next, err)
		}
	}
}

func TestParseReservationStatus(t *testing.T) {
	got, err := ParseReservationStatus(" confirmed ")
	if err != nil {
		t.Fatalf("ParseReservationStatus: %v", err)
	}
	if got != models.ReservationConfirmed {
		t.Errorf("ParseReservationStatus(\" confirmed \") = %q, want %q", got, models.ReservationConfirmed)
	}

	if _, err := ParseReservationStatus("SHIPPED"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("ParseReservationStatus(SHIPPED) = %v, want ErrInvalidInput", err)
	}
}

func TestIsTerminalStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{models.ReservationPending, false},
		{models.ReservationConfirmed, false},
		{models.ReservationCancelled, true},
		{models.ReservationCompleted, true},
	}
	for _, tc := range tests {
		if got := IsTerminalStatus(tc.status); got != tc.want {
			t.Errorf("IsTerminalStatus(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

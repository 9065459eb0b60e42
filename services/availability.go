package services

import (
	"errors"
	"fmt"
	"time"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

// Every banquet occupies a fixed-length window [eventTime, eventTime+2h);
// the system does not support variable-length events.
const BanquetDurationMinutes = 120

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, apperr.InvalidInput("invalid time %q, expected HH:MM", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// windowsOverlap reports whether two fixed-duration windows starting at the
// given minutes-since-midnight overlap. Comparison is strict: a window that
// starts exactly when another ends does not overlap.
func windowsOverlap(startA, startB int) bool {
	endA := startA + BanquetDurationMinutes
	endB := startB + BanquetDurationMinutes
	return startA < endB && endA > startB
}

// isRoomAvailable reports whether the room is free for a banquet starting at
// eventTime on date. excludeID skips one reservation, so a caller updating
// its own reservation does not collide with itself; pass 0 to exclude none.
// Only PENDING/CONFIRMED reservations block a slot.
//
// Runs on the supplied handle so orchestrator transactions can call it under
// their room row lock.
func (s *ReservationService) isRoomAvailable(tx *gorm.DB, roomID uint, date time.Time, eventTime string, excludeID uint) (bool, error) {
	requestedStart, err := parseClock(eventTime)
	if err != nil {
		return false, err
	}

	var existing []models.BanquetReservation
	if err := tx.
		Where("room_id = ? AND event_date = ?", roomID, dateOnly(date)).
		Find(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to load reservations for room %d: %w", roomID, err)
	}

	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}
		if IsTerminalStatus(r.Status) {
			continue
		}
		existingStart, err := parseClock(r.EventTime)
		if err != nil {
			// Stored times are validated on write; treat garbage as blocking.
			return false, fmt.Errorf("reservation %d has malformed event time %q", r.ID, r.EventTime)
		}
		if windowsOverlap(requestedStart, existingStart) {
			return false, nil
		}
	}
	return true, nil
}

// IsRoomAvailable is the read-only entry point used by the availability
// endpoint. Fails with NotFound when the room id does not resolve.
func (s *ReservationService) IsRoomAvailable(roomID uint, date time.Time, eventTime string, excludeID uint) (bool, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.NotFound("room %d not found", roomID)
		}
		return false, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}
	return s.isRoomAvailable(s.DB, roomID, date, eventTime, excludeID)
}

// dateOnly truncates a timestamp to midnight so date comparisons ignore the
// time-of-day component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

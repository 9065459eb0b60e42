package services

import (
	"errors"
	"fmt"
	"time"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService orchestrates banquet reservations: entity resolution,
// availability checks, price computation, authorization and lifecycle
// transitions, each operation inside one transaction.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type ReservationDishItemInput struct {
	DishID   uint `json:"dishId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

type ReservationInput struct {
	CanteenID         uint                       `json:"canteenId" binding:"required"`
	RoomID            *uint                      `json:"roomId"`
	EventDate         string                     `json:"eventDate" binding:"required"` // YYYY-MM-DD
	EventTime         string                     `json:"eventTime" binding:"required"` // HH:MM
	NumberOfGuests    int                        `json:"numberOfGuests" binding:"required"`
	ContactName       string                     `json:"contactName" binding:"required"`
	ContactPhone      string                     `json:"contactPhone" binding:"required"`
	Purpose           string                     `json:"purpose"`
	CustomMenuRequest string                     `json:"customMenuRequest"`
	HasBirthdayCake   bool                       `json:"hasBirthdayCake"`
	SpecialRequests   string                     `json:"specialRequests"`
	DishItems         []ReservationDishItemInput `json:"dishItems"`
	PackageIDs        []uint                     `json:"packageIds"`
}

// lockForUpdate takes a row lock so the availability scan and the following
// insert are serialized per room. SQLite has no SELECT ... FOR UPDATE; its
// single-writer model already serializes the test runs.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// ParseEventDate parses a client-supplied date for availability queries.
func ParseEventDate(value string) (time.Time, error) {
	return parseDate(value)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return dateOnly(t), nil
	}
	return time.Time{}, apperr.InvalidInput("invalid date %q, expected YYYY-MM-DD", value)
}

func newReferenceCode(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}

// buildDishItems resolves each requested (dish, quantity) pair and snapshots
// the subtotal at the dish's current price.
func buildDishItems(tx *gorm.DB, inputs []ReservationDishItemInput) ([]models.ReservationDishItem, error) {
	items := make([]models.ReservationDishItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, apperr.InvalidInput("dish quantity must be greater than zero for dish %d", in.DishID)
		}
		var dish models.Dish
		if err := tx.First(&dish, in.DishID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("dish %d not found", in.DishID)
			}
			return nil, fmt.Errorf("db error checking dish %d: %w", in.DishID, err)
		}
		items = append(items, models.ReservationDishItem{
			DishID:   dish.ID,
			Quantity: in.Quantity,
			Subtotal: dish.Price * float64(in.Quantity),
		})
	}
	return items, nil
}

func resolvePackages(tx *gorm.DB, ids []uint) ([]models.Package, error) {
	packages := make([]models.Package, 0, len(ids))
	for _, id := range ids {
		var pkg models.Package
		if err := tx.First(&pkg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("package %d not found", id)
			}
			return nil, fmt.Errorf("db error checking package %d: %w", id, err)
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// checkRoom locks the room row, verifies availability for the requested
// window and that the guest count fits the capacity.
func (s *ReservationService) checkRoom(tx *gorm.DB, roomID uint, date time.Time, eventTime string, guests int, excludeID uint) (*models.Room, error) {
	var room models.Room
	if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("room %d not found", roomID)
		}
		return nil, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}
	available, err := s.isRoomAvailable(tx, room.ID, date, eventTime, excludeID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.InvalidInput("room %s is not available at the requested date and time", room.Name)
	}
	if guests > room.Capacity {
		return nil, apperr.InvalidInput("number of guests (%d) exceeds room capacity (%d)", guests, room.Capacity)
	}
	return &room, nil
}

// CreateReservation books a banquet for the given owner. The availability
// read, the price computation and the insert run in one transaction under a
// room row lock, so two concurrent requests cannot double-book a slot.
func (s *ReservationService) CreateReservation(input ReservationInput, ownerID uint) (*models.BanquetReservation, error) {
	date, err := parseDate(input.EventDate)
	if err != nil {
		return nil, err
	}
	if _, err := parseClock(input.EventTime); err != nil {
		return nil, err
	}
	if input.NumberOfGuests < 1 {
		return nil, apperr.InvalidInput("number of guests must be at least 1")
	}

	var reservationID uint
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

		var room *models.Room
		if input.RoomID != nil {
			room, err = s.checkRoom(tx, *input.RoomID, date, input.EventTime, input.NumberOfGuests, 0)
			if err != nil {
				return err
			}
		}

		items, err := buildDishItems(tx, input.DishItems)
		if err != nil {
			return err
		}
		packages, err := resolvePackages(tx, input.PackageIDs)
		if err != nil {
			return err
		}

		reservation := models.BanquetReservation{
			ReferenceCode:     newReferenceCode("BQ"),
			UserID:            owner.ID,
			CanteenID:         canteen.ID,
			RoomID:            input.RoomID,
			EventDate:         dateOnly(date),
			EventTime:         input.EventTime,
			NumberOfGuests:    input.NumberOfGuests,
			ContactName:       input.ContactName,
			ContactPhone:      input.ContactPhone,
			Purpose:           input.Purpose,
			CustomMenuRequest: input.CustomMenuRequest,
			HasBirthdayCake:   input.HasBirthdayCake,
			SpecialRequests:   input.SpecialRequests,
			TotalPrice:        CalculateReservationTotal(room, items, packages),
			Status:            models.ReservationPending,
			DishItems:         items,
			Packages:          packages,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		reservationID = reservation.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetReservationByID(reservationID)
}

// UpdateReservation overwrites the mutable fields of a PENDING reservation
// and recomputes the total. The availability re-check excludes the
// reservation itself.
func (s *ReservationService) UpdateReservation(id uint, input ReservationInput, actorID uint, actorRole string) (*models.BanquetReservation, error) {
	date, err := parseDate(input.EventDate)
	if err != nil {
		return nil, err
	}
	if _, err := parseClock(input.EventTime); err != nil {
		return nil, err
	}
	if input.NumberOfGuests < 1 {
		return nil, apperr.InvalidInput("number of guests must be at least 1")
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.BanquetReservation
		if err := tx.Preload("Packages").First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("reservation %d not found", id)
			}
			return fmt.Errorf("db error loading reservation %d: %w", id, err)
		}
		if !CanManageReservation(actorID, actorRole, reservation.UserID) {
			return apperr.Unauthorized("you are not authorized to update this reservation")
		}
		if reservation.Status != models.ReservationPending {
			return apperr.InvalidInput("only pending reservations can be updated, current status is %s", reservation.Status)
		}

		var canteen models.Canteen
		if err := tx.First(&canteen, input.CanteenID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("canteen %d not found", input.CanteenID)
			}
			return fmt.Errorf("db error checking canteen %d: %w", input.CanteenID, err)
		}

		var room *models.Room
		if input.RoomID != nil {
			room, err = s.checkRoom(tx, *input.RoomID, date, input.EventTime, input.NumberOfGuests, reservation.ID)
			if err != nil {
				return err
			}
		}

		items, err := buildDishItems(tx, input.DishItems)
		if err != nil {
			return err
		}
		packages, err := resolvePackages(tx, input.PackageIDs)
		if err != nil {
			return err
		}

		// Replace line items wholesale; the stored total is a cache of the
		// pricing calculator output and is recomputed alongside.
		if err := tx.Where("reservation_id = ?", reservation.ID).Delete(&models.ReservationDishItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear dish items: %w", err)
		}
		for i := range items {
			items[i].ReservationID = reservation.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("failed to create dish item: %w", err)
			}
		}
		if err := tx.Model(&reservation).Association("Packages").Replace(packages); err != nil {
			return fmt.Errorf("failed to replace packages: %w", err)
		}

		updates := map[string]interface{}{
			"canteen_id":          canteen.ID,
			"room_id":             input.RoomID,
			"event_date":          dateOnly(date),
			"event_time":          input.EventTime,
			"number_of_guests":    input.NumberOfGuests,
			"contact_name":        input.ContactName,
			"contact_phone":       input.ContactPhone,
			"purpose":             input.Purpose,
			"custom_menu_request": input.CustomMenuRequest,
			"has_birthday_cake":   input.HasBirthdayCake,
			"special_requests":    input.SpecialRequests,
			"total_price":         CalculateReservationTotal(room, items, packages),
		}
		if err := tx.Model(&reservation).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetReservationByID(id)
}

// UpdateReservationStatus drives the reservation state machine. Staff only.
// The first transition to CONFIRMED stamps the confirmation date; later
// transitions leave it untouched.
func (s *ReservationService) UpdateReservationStatus(id uint, rawStatus string, actorRole string) (*models.BanquetReservation, error) {
	newStatus, err := ParseReservationStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if !CanForceStatus(actorRole) {
		return nil, apperr.Unauthorized("only staff can update reservation status")
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.BanquetReservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("reservation %d not found", id)
			}
			return fmt.Errorf("db error loading reservation %d: %w", id, err)
		}
		if err := CheckReservationTransition(reservation.Status, newStatus); err != nil {
			return err
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.ReservationConfirmed && reservation.ConfirmationDate == nil {
			updates["confirmation_date"] = time.Now().UTC()
		}
		if err := tx.Model(&reservation).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update reservation status: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetReservationByID(id)
}

// CancelReservation cancels a PENDING or CONFIRMED reservation on behalf of
// its owner or a staff member.
func (s *ReservationService) CancelReservation(id uint, actorID uint, actorRole string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.BanquetReservation
		if err := lockForUpdate(tx).First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("reservation %d not found", id)
			}
			return fmt.Errorf("db error loading reservation %d: %w", id, err)
		}
		if !CanManageReservation(actorID, actorRole, reservation.UserID) {
			return apperr.Unauthorized("you are not authorized to cancel this reservation")
		}
		if IsTerminalStatus(reservation.Status) {
			return apperr.InvalidInput("reservation cannot be cancelled, current status is %s", reservation.Status)
		}
		if err := tx.Model(&reservation).Update("status", models.ReservationCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel reservation: %w", err)
		}
		return nil
	})
}

func (s *ReservationService) reservationQuery() *gorm.DB {
	return s.DB.
		Preload("User").
		Preload("Canteen").
		Preload("Room").
		Preload("DishItems.Dish").
		Preload("Packages")
}

func (s *ReservationService) GetReservationByID(id uint) (*models.BanquetReservation, error) {
	var reservation models.BanquetReservation
	if err := s.reservationQuery().First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("reservation %d not found", id)
		}
		return nil, fmt.Errorf("failed to retrieve reservation %d: %w", id, err)
	}
	return &reservation, nil
}

func (s *ReservationService) GetAllReservations() ([]models.BanquetReservation, error) {
	var list []models.BanquetReservation
	if err := s.reservationQuery().Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetReservationsByUser(userID uint) ([]models.BanquetReservation, error) {
	var list []models.BanquetReservation
	if err := s.reservationQuery().Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for user %d: %w", userID, err)
	}
	return list, nil
}

func (s *ReservationService) GetReservationsByCanteen(canteenID uint) ([]models.BanquetReservation, error) {
	var canteen models.Canteen
	if err := s.DB.First(&canteen, canteenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("canteen %d not found", canteenID)
		}
		return nil, fmt.Errorf("db error checking canteen %d: %w", canteenID, err)
	}
	var list []models.BanquetReservation
	if err := s.reservationQuery().Where("canteen_id = ?", canteenID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for canteen %d: %w", canteenID, err)
	}
	return list, nil
}

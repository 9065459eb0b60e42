package services

import (
	"errors"
	"fmt"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.Capacity <= 0 {
		return apperr.InvalidInput("room capacity must be greater than zero")
	}
	if room.BaseFee < 0 {
		return apperr.InvalidInput("room base fee cannot be negative")
	}
	var canteen models.Canteen
	if err := s.DB.First(&canteen, room.CanteenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("canteen %d not found", room.CanteenID)
		}
		return fmt.Errorf("db error checking canteen %d: %w", room.CanteenID, err)
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Canteen").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("room %d not found", id)
		}
		return nil, fmt.Errorf("db error loading room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) GetByCanteen(canteenID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("canteen_id = ?", canteenID).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms for canteen %d: %w", canteenID, err)
	}
	return rooms, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Canteen").Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if capacity, ok := updates["capacity"].(int); ok && capacity <= 0 {
		return nil, apperr.InvalidInput("room capacity must be greater than zero")
	}
	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Room{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

type CanteenService struct {
	DB *gorm.DB
}

func NewCanteenService(db *gorm.DB) *CanteenService {
	return &CanteenService{DB: db}
}

func (s *CanteenService) Create(canteen *models.Canteen) error {
	if err := s.DB.Create(canteen).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return apperr.DuplicateEntry("canteen %q already exists", canteen.Name)
		}
		return fmt.Errorf("failed to create canteen: %w", err)
	}
	return nil
}

func (s *CanteenService) GetAll() ([]models.Canteen, error) {
	var canteens []models.Canteen
	if err := s.DB.Order("id").Find(&canteens).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve canteens: %w", err)
	}
	return canteens, nil
}

func (s *CanteenService) GetByID(id uint) (*models.Canteen, error) {
	var canteen models.Canteen
	if err := s.DB.First(&canteen, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("canteen %d not found", id)
		}
		return nil, fmt.Errorf("db error loading canteen %d: %w", id, err)
	}
	return &canteen, nil
}

func (s *CanteenService) Update(id uint, updates map[string]interface{}) (*models.Canteen, error) {
	canteen, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(canteen).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update canteen %d: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *CanteenService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Canteen{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete canteen %d: %w", id, err)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

type PackageService struct {
	DB *gorm.DB
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{DB: db}
}

type PackageInput struct {
	CanteenID   uint    `json:"canteenId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DishIDs     []uint  `json:"dishIds"`
}

func (s *PackageService) Create(input PackageInput) (*models.Package, error) {
	if input.Price < 0 {
		return nil, apperr.InvalidInput("package price cannot be negative")
	}
	var canteen models.Canteen
	if err := s.DB.First(&canteen, input.CanteenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("canteen %d not found", input.CanteenID)
		}
		return nil, fmt.Errorf("db error checking canteen %d: %w", input.CanteenID, err)
	}

	dishes := make([]models.Dish, 0, len(input.DishIDs))
	for _, id := range input.DishIDs {
		var dish models.Dish
		if err := s.DB.First(&dish, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("dish %d not found", id)
			}
			return nil, fmt.Errorf("db error checking dish %d: %w", id, err)
		}
		dishes = append(dishes, dish)
	}

	pkg := models.Package{
		CanteenID:   canteen.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Dishes:      dishes,
	}
	if err := s.DB.Create(&pkg).Error; err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return s.GetByID(pkg.ID)
}

func (s *PackageService) GetByID(id uint) (*models.Package, error) {
	var pkg models.Package
	if err := s.DB.Preload("Dishes").First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("package %d not found", id)
		}
		return nil, fmt.Errorf("db error loading package %d: %w", id, err)
	}
	return &pkg, nil
}

func (s *PackageService) GetByCanteen(canteenID uint) ([]models.Package, error) {
	var packages []models.Package
	if err := s.DB.Preload("Dishes").Where("canteen_id = ?", canteenID).Order("id").Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve packages for canteen %d: %w", canteenID, err)
	}
	return packages, nil
}

func (s *PackageService) GetAll() ([]models.Package, error) {
	var packages []models.Package
	if err := s.DB.Preload("Dishes").Order("id").Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	return packages, nil
}

func (s *PackageService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Package{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete package %d: %w", id, err)
	}
	return nil
}

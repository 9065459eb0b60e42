package services

import (
	"errors"
	"fmt"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

type DishService struct {
	DB *gorm.DB
}

func NewDishService(db *gorm.DB) *DishService {
	return &DishService{DB: db}
}

type DishInput struct {
	CanteenID     uint    `json:"canteenId" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	IsAvailable   *bool   `json:"isAvailable"`
	DietaryTagIDs []uint  `json:"dietaryTagIds"`
	AllergenIDs   []uint  `json:"allergenIds"`
}

func (s *DishService) resolveTags(ids []uint) ([]models.DietaryTag, error) {
	tags := make([]models.DietaryTag, 0, len(ids))
	for _, id := range ids {
		var tag models.DietaryTag
		if err := s.DB.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("dietary tag %d not found", id)
			}
			return nil, fmt.Errorf("db error checking dietary tag %d: %w", id, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *DishService) resolveAllergens(ids []uint) ([]models.Allergen, error) {
	allergens := make([]models.Allergen, 0, len(ids))
	for _, id := range ids {
		var allergen models.Allergen
		if err := s.DB.First(&allergen, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("allergen %d not found", id)
			}
			return nil, fmt.Errorf("db error checking allergen %d: %w", id, err)
		}
		allergens = append(allergens, allergen)
	}
	return allergens, nil
}

func (s *DishService) Create(input DishInput) (*models.Dish, error) {
	if input.Price < 0 {
		return nil, apperr.InvalidInput("dish price cannot be negative")
	}
	var canteen models.Canteen
	if err := s.DB.First(&canteen, input.CanteenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("canteen %d not found", input.CanteenID)
		}
		return nil, fmt.Errorf("db error checking canteen %d: %w", input.CanteenID, err)
	}
	tags, err := s.resolveTags(input.DietaryTagIDs)
	if err != nil {
		return nil, err
	}
	allergens, err := s.resolveAllergens(input.AllergenIDs)
	if err != nil {
		return nil, err
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}
	dish := models.Dish{
		CanteenID:   canteen.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		IsAvailable: available,
		DietaryTags: tags,
		Allergens:   allergens,
	}
	if err := s.DB.Create(&dish).Error; err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}
	return s.GetByID(dish.ID)
}

func (s *DishService) GetByID(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.DB.Preload("DietaryTags").Preload("Allergens").First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("dish %d not found", id)
		}
		return nil, fmt.Errorf("db error loading dish %d: %w", id, err)
	}
	return &dish, nil
}

func (s *DishService) GetByCanteen(canteenID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.DB.Preload("DietaryTags").Preload("Allergens").
		Where("canteen_id = ?", canteenID).Order("id").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve dishes for canteen %d: %w", canteenID, err)
	}
	return dishes, nil
}

func (s *DishService) GetAll() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.DB.Preload("DietaryTags").Preload("Allergens").Order("id").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve dishes: %w", err)
	}
	return dishes, nil
}

func (s *DishService) Update(id uint, input DishInput) (*models.Dish, error) {
	dish, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Price < 0 {
		return nil, apperr.InvalidInput("dish price cannot be negative")
	}
	tags, err := s.resolveTags(input.DietaryTagIDs)
	if err != nil {
		return nil, err
	}
	allergens, err := s.resolveAllergens(input.AllergenIDs)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}
	if err := s.DB.Model(dish).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update dish %d: %w", id, err)
	}
	if err := s.DB.Model(dish).Association("DietaryTags").Replace(tags); err != nil {
		return nil, fmt.Errorf("failed to replace dietary tags: %w", err)
	}
	if err := s.DB.Model(dish).Association("Allergens").Replace(allergens); err != nil {
		return nil, fmt.Errorf("failed to replace allergens: %w", err)
	}
	return s.GetByID(id)
}

func (s *DishService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Dish{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete dish %d: %w", id, err)
	}
	return nil
}

// Catalog lookup tables.

func (s *DishService) CreateDietaryTag(tag *models.DietaryTag) error {
	if err := s.DB.Create(tag).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return apperr.DuplicateEntry("dietary tag %q already exists", tag.Name)
		}
		return fmt.Errorf("failed to create dietary tag: %w", err)
	}
	return nil
}

func (s *DishService) GetDietaryTags() ([]models.DietaryTag, error) {
	var tags []models.DietaryTag
	if err := s.DB.Order("id").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve dietary tags: %w", err)
	}
	return tags, nil
}

func (s *DishService) CreateAllergen(allergen *models.Allergen) error {
	if err := s.DB.Create(allergen).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return apperr.DuplicateEntry("allergen %q already exists", allergen.Name)
		}
		return fmt.Errorf("failed to create allergen: %w", err)
	}
	return nil
}

func (s *DishService) GetAllergens() ([]models.Allergen, error) {
	var allergens []models.Allergen
	if err := s.DB.Order("id").Find(&allergens).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve allergens: %w", err)
	}
	return allergens, nil
}

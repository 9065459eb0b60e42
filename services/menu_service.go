package services

import (
	"errors"
	"fmt"
	"strings"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

type MenuInput struct {
	CanteenID uint   `json:"canteenId" binding:"required"`
	MenuDate  string `json:"menuDate" binding:"required"` // YYYY-MM-DD
	MealType  string `json:"mealType" binding:"required"`
	DishIDs   []uint `json:"dishIds" binding:"required"`
}

func validMealType(mealType string) bool {
	switch mealType {
	case models.MealBreakfast, models.MealLunch, models.MealDinner:
		return true
	}
	return false
}

// Publish creates the daily menu for (canteen, date, meal type). Publishing
// the same slot twice is a DuplicateEntry.
func (s *MenuService) Publish(input MenuInput) (*models.DailyMenu, error) {
	mealType := strings.ToLower(strings.TrimSpace(input.MealType))
	if !validMealType(mealType) {
		return nil, apperr.InvalidInput("unknown meal type %q", input.MealType)
	}
	date, err := parseDate(input.MenuDate)
	if err != nil {
		return nil, err
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

	menu := models.DailyMenu{
		CanteenID: canteen.ID,
		MenuDate:  dateOnly(date),
		MealType:  mealType,
		Dishes:    dishes,
	}
	if err := s.DB.Create(&menu).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.DuplicateEntry("menu for canteen %d on %s (%s) already published", canteen.ID, input.MenuDate, mealType)
		}
		return nil, fmt.Errorf("failed to publish menu: %w", err)
	}
	return s.GetByID(menu.ID)
}

func (s *MenuService) GetByID(id uint) (*models.DailyMenu, error) {
	var menu models.DailyMenu
	if err := s.DB.Preload("Dishes").Preload("Canteen").First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu %d not found", id)
		}
		return nil, fmt.Errorf("db error loading menu %d: %w", id, err)
	}
	return &menu, nil
}

func (s *MenuService) GetByCanteenAndDate(canteenID uint, rawDate string) ([]models.DailyMenu, error) {
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, err
	}
	var menus []models.DailyMenu
	if err := s.DB.Preload("Dishes").
		Where("canteen_id = ? AND menu_date = ?", canteenID, dateOnly(date)).
		Order("meal_type").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve menus for canteen %d: %w", canteenID, err)
	}
	return menus, nil
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.DailyMenu{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete menu %d: %w", id, err)
	}
	return nil
}

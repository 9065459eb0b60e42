package services

import (
	"errors"
	"fmt"

	"canteen-backend/apperr"
	"canteen-backend/models"

	"gorm.io/gorm"
)

type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

type RatingInput struct {
	DishID  uint   `json:"dishId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (s *RatingService) Create(input RatingInput, userID uint) (*models.RatingReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperr.InvalidInput("rating must be between 1 and 5")
	}
	var dish models.Dish
	if err := s.DB.First(&dish, input.DishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("dish %d not found", input.DishID)
		}
		return nil, fmt.Errorf("db error checking dish %d: %w", input.DishID, err)
	}

	review := models.RatingReview{
		UserID:  userID,
		DishID:  dish.ID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := s.DB.Create(&review).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.DuplicateEntry("you have already rated this dish")
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

func (s *RatingService) GetByDish(dishID uint) ([]models.RatingReview, error) {
	var reviews []models.RatingReview
	if err := s.DB.Preload("User").Where("dish_id = ?", dishID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for dish %d: %w", dishID, err)
	}
	return reviews, nil
}

func (s *RatingService) Delete(id uint, actorID uint, actorRole string) error {
	var review models.RatingReview
	if err := s.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("review %d not found", id)
		}
		return fmt.Errorf("db error loading review %d: %w", id, err)
	}
	if review.UserID != actorID && !models.IsElevated(actorRole) {
		return apperr.Unauthorized("you are not authorized to delete this review")
	}
	if err := s.DB.Delete(&review).Error; err != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, err)
	}
	return nil
}

package controllers

import (
	"net/http"

	"canteen-backend/middleware"
	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingSvc *services.RatingService
}

func NewRatingController(svc *services.RatingService) *RatingController {
	return &RatingController{RatingSvc: svc}
}

func (ctrl *RatingController) Create(c *gin.Context) {
	var payload services.RatingInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	review, err := ctrl.RatingSvc.Create(payload, middleware.ActorID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

func (ctrl *RatingController) GetByDish(c *gin.Context) {
	dishID, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}
	reviews, err := ctrl.RatingSvc.GetByDish(dishID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

func (ctrl *RatingController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RatingSvc.Delete(id, middleware.ActorID(c), c.GetString("role")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

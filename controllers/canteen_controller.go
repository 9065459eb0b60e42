package controllers

import (
	"net/http"

	"canteen-backend/models"
	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type CanteenController struct {
	CanteenSvc *services.CanteenService
}

func NewCanteenController(svc *services.CanteenService) *CanteenController {
	return &CanteenController{CanteenSvc: svc}
}

type canteenPayload struct {
	Name         string         `json:"name" binding:"required"`
	Description  string         `json:"description"`
	Location     string         `json:"location"`
	OpeningHours datatypes.JSON `json:"openingHours"`
	ContactPhone string         `json:"contactPhone"`
}

func (ctrl *CanteenController) Create(c *gin.Context) {
	var payload canteenPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	canteen := models.Canteen{
		Name:         payload.Name,
		Description:  payload.Description,
		Location:     payload.Location,
		OpeningHours: payload.OpeningHours,
		ContactPhone: payload.ContactPhone,
	}
	if err := ctrl.CanteenSvc.Create(&canteen); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, canteen)
}

func (ctrl *CanteenController) GetAll(c *gin.Context) {
	canteens, err := ctrl.CanteenSvc.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, canteens)
}

func (ctrl *CanteenController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	canteen, err := ctrl.CanteenSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, canteen)
}

func (ctrl *CanteenController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload canteenPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	canteen, err := ctrl.CanteenSvc.Update(id, map[string]interface{}{
		"name":          payload.Name,
		"description":   payload.Description,
		"location":      payload.Location,
		"opening_hours": payload.OpeningHours,
		"contact_phone": payload.ContactPhone,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, canteen)
}

func (ctrl *CanteenController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.CanteenSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

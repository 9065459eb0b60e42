package controllers

import (
	"net/http"

	"canteen-backend/models"
	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	DishSvc *services.DishService
}

func NewDishController(svc *services.DishService) *DishController {
	return &DishController{DishSvc: svc}
}

func (ctrl *DishController) Create(c *gin.Context) {
	var payload services.DishInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	dish, err := ctrl.DishSvc.Create(payload)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, dish)
}

func (ctrl *DishController) GetAll(c *gin.Context) {
	if raw := c.Query("canteenId"); raw != "" {
		canteenID, ok := parseQueryID(c, raw)
		if !ok {
			return
		}
		dishes, err := ctrl.DishSvc.GetByCanteen(canteenID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, dishes)
		return
	}
	dishes, err := ctrl.DishSvc.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dishes)
}

func (ctrl *DishController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	dish, err := ctrl.DishSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dish)
}

func (ctrl *DishController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload services.DishInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	dish, err := ctrl.DishSvc.Update(id, payload)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dish)
}

func (ctrl *DishController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.DishSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

type namePayload struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (ctrl *DishController) CreateDietaryTag(c *gin.Context) {
	var payload namePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	tag := models.DietaryTag{Name: payload.Name, Description: payload.Description}
	if err := ctrl.DishSvc.CreateDietaryTag(&tag); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tag)
}

func (ctrl *DishController) GetDietaryTags(c *gin.Context) {
	tags, err := ctrl.DishSvc.GetDietaryTags()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tags)
}

func (ctrl *DishController) CreateAllergen(c *gin.Context) {
	var payload namePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	allergen := models.Allergen{Name: payload.Name, Description: payload.Description}
	if err := ctrl.DishSvc.CreateAllergen(&allergen); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, allergen)
}

func (ctrl *DishController) GetAllergens(c *gin.Context) {
	allergens, err := ctrl.DishSvc.GetAllergens()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, allergens)
}

package controllers

import (
	"net/http"
	"strings"

	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuSvc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{MenuSvc: svc}
}

func (ctrl *MenuController) Publish(c *gin.Context) {
	var payload services.MenuInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	menu, err := ctrl.MenuSvc.Publish(payload)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, menu)
}

// GetByCanteen lists the menus for a canteen on ?date (defaults to today on
// the caller's side; the date parameter is required here).
func (ctrl *MenuController) GetByCanteen(c *gin.Context) {
	canteenID, ok := parseIDParam(c, "canteenId")
	if !ok {
		return
	}
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}
	menus, err := ctrl.MenuSvc.GetByCanteenAndDate(canteenID, date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, menus)
}

func (ctrl *MenuController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.MenuSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

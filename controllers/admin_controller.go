package controllers

import (
	"net/http"

	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController exposes user-management endpoints for staff.
type AdminController struct {
	UserSvc *services.UserService
}

func NewAdminController(svc *services.UserService) *AdminController {
	return &AdminController{UserSvc: svc}
}

type rolePayload struct {
	Role string `json:"role" binding:"required"`
}

type passwordResetPayload struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (ctrl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctrl.UserSvc.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func (ctrl *AdminController) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "role is required")
		return
	}
	user, err := ctrl.UserSvc.UpdateRole(id, payload.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *AdminController) ResetPassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload passwordResetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "newPassword of at least 6 characters is required")
		return
	}
	if err := ctrl.UserSvc.ResetPassword(id, payload.NewPassword); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reset": id})
}

func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.UserSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

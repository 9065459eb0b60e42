package controllers

import (
	"net/http"

	"canteen-backend/middleware"
	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	UserSvc *services.UserService
}

func NewAuthController(svc *services.UserService) *AuthController {
	return &AuthController{UserSvc: svc}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload services.RegisterInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	user, err := ctrl.UserSvc.Register(payload)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}
	user, err := ctrl.UserSvc.Authenticate(payload.Username, payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user's account.
func (ctrl *AuthController) Me(c *gin.Context) {
	user, err := ctrl.UserSvc.GetByID(middleware.ActorID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

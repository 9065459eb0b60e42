package controllers

import (
	"net/http"

	"canteen-backend/middleware"
	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

type statusPayload struct {
	NewStatus string `json:"newStatus" binding:"required"`
}

func (ctrl *ReservationController) Create(c *gin.Context) {
	var payload services.ReservationInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	reservation, err := ctrl.ReservationSvc.CreateReservation(payload, middleware.ActorID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (ctrl *ReservationController) GetAll(c *gin.Context) {
	reservations, err := ctrl.ReservationSvc.GetAllReservations()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (ctrl *ReservationController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reservation, err := ctrl.ReservationSvc.GetReservationByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !services.CanViewResource(middleware.ActorID(c), c.GetString("role"), reservation.UserID) {
		utils.JSONError(c, http.StatusForbidden, "you are not authorized to view this reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// GetMine lists the authenticated user's reservations.
func (ctrl *ReservationController) GetMine(c *gin.Context) {
	reservations, err := ctrl.ReservationSvc.GetReservationsByUser(middleware.ActorID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (ctrl *ReservationController) GetByCanteen(c *gin.Context) {
	canteenID, ok := parseIDParam(c, "canteenId")
	if !ok {
		return
	}
	reservations, err := ctrl.ReservationSvc.GetReservationsByCanteen(canteenID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (ctrl *ReservationController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload services.ReservationInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	reservation, err := ctrl.ReservationSvc.UpdateReservation(id, payload, middleware.ActorID(c), c.GetString("role"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (ctrl *ReservationController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "newStatus is required")
		return
	}
	reservation, err := ctrl.ReservationSvc.UpdateReservationStatus(id, payload.NewStatus, c.GetString("role"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (ctrl *ReservationController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ReservationSvc.CancelReservation(id, middleware.ActorID(c), c.GetString("role")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": id})
}

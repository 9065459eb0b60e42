package controllers

import (
	"net/http"
	"strings"

	"canteen-backend/models"
	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc        *services.RoomService
	ReservationSvc *services.ReservationService
}

func NewRoomController(roomSvc *services.RoomService, reservationSvc *services.ReservationService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, ReservationSvc: reservationSvc}
}

type roomPayload struct {
	CanteenID   uint    `json:"canteenId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required"`
	BaseFee     float64 `json:"baseFee"`
	Description string  `json:"description"`
}

func (ctrl *RoomController) Create(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	room := models.Room{
		CanteenID:   payload.CanteenID,
		Name:        payload.Name,
		Capacity:    payload.Capacity,
		BaseFee:     payload.BaseFee,
		Description: payload.Description,
	}
	if err := ctrl.RoomSvc.Create(&room); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) GetAll(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	room, err := ctrl.RoomSvc.Update(id, map[string]interface{}{
		"name":        payload.Name,
		"capacity":    payload.Capacity,
		"base_fee":    payload.BaseFee,
		"description": payload.Description,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// CheckAvailability answers whether the room is free for a 2h banquet window
// starting at ?time on ?date.
func (ctrl *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rawDate := strings.TrimSpace(c.Query("date"))
	rawTime := strings.TrimSpace(c.Query("time"))
	if rawDate == "" || rawTime == "" {
		utils.JSONError(c, http.StatusBadRequest, "date and time query parameters are required")
		return
	}
	date, err := services.ParseEventDate(rawDate)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	available, err := ctrl.ReservationSvc.IsRoomAvailable(id, date, rawTime, 0)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomId":    id,
		"date":      rawDate,
		"time":      rawTime,
		"available": available,
	})
}

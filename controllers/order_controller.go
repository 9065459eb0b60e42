package controllers

import (
	"net/http"

	"canteen-backend/middleware"
	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	OrderSvc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{OrderSvc: svc}
}

func (ctrl *OrderController) Create(c *gin.Context) {
	var payload services.OrderInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	order, err := ctrl.OrderSvc.CreateOrder(payload, middleware.ActorID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (ctrl *OrderController) GetAll(c *gin.Context) {
	orders, err := ctrl.OrderSvc.GetAllOrders()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (ctrl *OrderController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := ctrl.OrderSvc.GetOrderByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !services.CanViewResource(middleware.ActorID(c), c.GetString("role"), order.UserID) {
		utils.JSONError(c, http.StatusForbidden, "you are not authorized to view this order")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (ctrl *OrderController) GetMine(c *gin.Context) {
	orders, err := ctrl.OrderSvc.GetOrdersByUser(middleware.ActorID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (ctrl *OrderController) GetByCanteen(c *gin.Context) {
	canteenID, ok := parseIDParam(c, "canteenId")
	if !ok {
		return
	}
	orders, err := ctrl.OrderSvc.GetOrdersByCanteen(canteenID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "newStatus is required")
		return
	}
	order, err := ctrl.OrderSvc.UpdateOrderStatus(id, payload.NewStatus, c.GetString("role"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (ctrl *OrderController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.OrderSvc.CancelOrder(id, middleware.ActorID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": id})
}

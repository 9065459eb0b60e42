package controllers

import (
	"net/http"

	"canteen-backend/services"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	PackageSvc *services.PackageService
}

func NewPackageController(svc *services.PackageService) *PackageController {
	return &PackageController{PackageSvc: svc}
}

func (ctrl *PackageController) Create(c *gin.Context) {
	var payload services.PackageInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	pkg, err := ctrl.PackageSvc.Create(payload)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, pkg)
}

func (ctrl *PackageController) GetAll(c *gin.Context) {
	if raw := c.Query("canteenId"); raw != "" {
		canteenID, ok := parseQueryID(c, raw)
		if !ok {
			return
		}
		packages, err := ctrl.PackageSvc.GetByCanteen(canteenID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, packages)
		return
	}
	packages, err := ctrl.PackageSvc.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, packages)
}

func (ctrl *PackageController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pkg, err := ctrl.PackageSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pkg)
}

func (ctrl *PackageController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.PackageSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

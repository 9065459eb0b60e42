package controllers

import (
	"net/http"
	"strconv"

	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a numeric path parameter; responds 400 and returns
// false when it is not a positive integer.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// parseQueryID parses a numeric query-string value the same way.
func parseQueryID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id query parameter")
		return 0, false
	}
	return uint(id), true
}

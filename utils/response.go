package utils

import (
	"errors"
	"net/http"

	"canteen-backend/apperr"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// RespondError maps domain errors to transport status codes. Anything not in
// the taxonomy is a 500 with a generic message.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrInvalidInput):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrDuplicateEntry):
		JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		JSONError(c, http.StatusForbidden, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

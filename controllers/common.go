package controllers

import (
	"errors"
	"net/http"

	"s2inventory/services"
	"s2inventory/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// repondErreur maps service errors to HTTP statuses: unknown records to 404,
// refused zones to 403, everything else to 400.
func repondErreur(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, services.ErrTacheInconnue):
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrAccesRefuse):
		utils.ErrorResponseWithStatus(c, http.StatusForbidden, err)
	default:
		utils.ErrorResponse(c, err)
	}
}

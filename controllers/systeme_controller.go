package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"s2inventory/pkg/logger"
	"s2inventory/services"
	"s2inventory/services/dto"
	"s2inventory/utils"

	"github.com/gin-gonic/gin"
)

var systemeSrv = services.NewSystemeService()

// SetSystemeService initializes the industrial system service instance.
func SetSystemeService(srv services.SystemeService) {
	systemeSrv = srv
}

// SearchSystemes searches industrial systems
// @Summary Search industrial systems
// @Description Searches industrial systems over the caller's consultation zones. Invalid filters fall back to the unfiltered scoped result with a warning
// @Tags Systemes
// @Accept json
// @Produce json
// @Param z_usid query []string false "Zone USID codes"
// @Param z_ville query string false "City name substring"
// @Param s_nom query string false "System name substring"
// @Param s_metier query int false "Business domain ID"
// @Param s_classe query []int false "Accreditation classes"
// @Success 200 {object} SystemeListResponse
// @Failure 401 {object} StandardErrorResponse
// @Router /api/systemes [get]
func searchSystemes(c *gin.Context) {
	u := utils.CurrentUser(c)
	systemes, avertissement, err := systemeSrv.Recherche(c.Request.Context(), u, c.Request.URL.Query())
	if err != nil {
		logger.Errorf("Failed to search systems for %s: %v", u.Username, err)
		utils.ErrorResponse(c, err)
		return
	}
	reponse := gin.H{"systemes": systemes}
	if avertissement != "" {
		reponse["avertissement"] = avertissement
	}
	utils.JSONResponse(c, http.StatusOK, reponse)
}

// GetSysteme retrieves one industrial system
// @Summary Get industrial system details
// @Description Returns a system with its interconnections, equipment, licences and criticality score
// @Tags Systemes
// @Accept json
// @Produce json
// @Param id path int true "System ID"
// @Success 200 {object} SystemeDetailResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /api/systemes/{id} [get]
func getSysteme(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid id"))
		return
	}
	u := utils.CurrentUser(c)
	details, err := systemeSrv.Details(c.Request.Context(), u, uint(id))
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, details)
}

// CreateSysteme creates an industrial system
// @Summary Create industrial system
// @Description Creates a system with its nested interconnections, equipment and licences. Requires write access to the zone of the referenced site
// @Tags Systemes
// @Accept json
// @Produce json
// @Param systeme body dto.SystemeModification true "System payload"
// @Success 201 {object} SystemeDetailResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /api/systemes [post]
func createSysteme(c *gin.Context) {
	var payload dto.SystemeModification
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	u := utils.CurrentUser(c)
	logger.Debugf("Creating system '%s' for %s", payload.Nom, u.Username)
	details, err := systemeSrv.Create(c.Request.Context(), u, &payload)
	if err != nil {
		logger.Errorf("Failed to create system '%s': %v", payload.Nom, err)
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, details)
}

// UpdateSysteme updates an industrial system
// @Summary Update industrial system
// @Description Rewrites a system and replaces its nested collections
// @Tags Systemes
// @Accept json
// @Produce json
// @Param id path int true "System ID"
// @Param systeme body dto.SystemeModification true "System payload"
// @Success 200 {object} SystemeDetailResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /api/systemes/{id} [put]
func updateSysteme(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid id"))
		return
	}
	var payload dto.SystemeModification
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	u := utils.CurrentUser(c)
	logger.Debugf("Updating system %d for %s", id, u.Username)
	details, err := systemeSrv.Update(c.Request.Context(), u, uint(id), &payload)
	if err != nil {
		logger.Errorf("Failed to update system %d: %v", id, err)
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, details)
}

// DeleteSysteme moves an industrial system to the trash
// @Summary Delete industrial system
// @Description Moves the system to the trash. The record is kept, scoped queries stop returning it
// @Tags Systemes
// @Accept json
// @Produce json
// @Param id path int true "System ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /api/systemes/{id} [delete]
func deleteSysteme(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid id"))
		return
	}
	u := utils.CurrentUser(c)
	if err := systemeSrv.Delete(c.Request.Context(), u, uint(id)); err != nil {
		logger.Errorf("Failed to delete system %d: %v", id, err)
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Système placé dans la corbeille",
	})
}

// RegisterSystemeRoutes registers all industrial system routes
func RegisterSystemeRoutes(router *gin.RouterGroup) {
	systemeRoutes := router.Group("/systemes")
	{
		systemeRoutes.GET("", searchSystemes)
		systemeRoutes.GET("/:id", getSysteme)
		systemeRoutes.POST("", createSysteme)
		systemeRoutes.PUT("/:id", updateSysteme)
		systemeRoutes.DELETE("/:id", deleteSysteme)
	}
}

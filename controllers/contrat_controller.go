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

var contratSrv = services.NewContratService()

// SetContratService initializes the maintenance contract service instance.
func SetContratService(srv services.ContratService) {
	contratSrv = srv
}

// SearchContrats searches maintenance contracts
// @Summary Search maintenance contracts
// @Description Searches contracts over the caller's consultation zones. Invalid filters fall back to the active-only scoped result with a warning
// @Tags Contrats
// @Accept json
// @Produce json
// @Param zone_usid query []string false "Zone USID codes"
// @Param numero_marche query string false "Contract number substring"
// @Param nom_societe query string false "Company name substring"
// @Param date_fin query string false "Expiring before (YYYY-MM-DD)"
// @Param est_actif query bool false "Include inactive contracts"
// @Success 200 {object} ContratListResponse
// @Failure 401 {object} StandardErrorResponse
// @Router /api/contrats [get]
func searchContrats(c *gin.Context) {
	u := utils.CurrentUser(c)
	contrats, avertissement, err := contratSrv.Recherche(c.Request.Context(), u, c.Request.URL.Query())
	if err != nil {
		logger.Errorf("Failed to search contracts for %s: %v", u.Username, err)
		utils.ErrorResponse(c, err)
		return
	}
	reponse := gin.H{"contrats": contrats}
	if avertissement != "" {
		reponse["avertissement"] = avertissement
	}
	utils.JSONResponse(c, http.StatusOK, reponse)
}

// GetContrat retrieves one maintenance contract
// @Summary Get maintenance contract details
// @Description Returns a contract with the systems it covers
// @Tags Contrats
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} ContratDetailResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /api/contrats/{id} [get]
func getContrat(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid id"))
		return
	}
	u := utils.CurrentUser(c)
	details, err := contratSrv.Details(c.Request.Context(), u, uint(id))
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, details)
}

// CreateContrat creates a maintenance contract
// @Summary Create maintenance contract
// @Description Creates a contract. The marché number must be unique, write access to the zone is required
// @Tags Contrats
// @Accept json
// @Produce json
// @Param contrat body dto.ContratModification true "Contract payload"
// @Success 201 {object} ContratDetailResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /api/contrats [post]
func createContrat(c *gin.Context) {
	var payload dto.ContratModification
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	u := utils.CurrentUser(c)
	logger.Debugf("Creating contract '%s' for %s", payload.NumeroMarche, u.Username)
	details, err := contratSrv.Create(c.Request.Context(), u, &payload)
	if err != nil {
		logger.Errorf("Failed to create contract '%s': %v", payload.NumeroMarche, err)
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, details)
}

// UpdateContrat updates a maintenance contract
// @Summary Update maintenance contract
// @Description Rewrites a contract. Moving it to another zone requires write access on both zones
// @Tags Contrats
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param contrat body dto.ContratModification true "Contract payload"
// @Success 200 {object} ContratDetailResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /api/contrats/{id} [put]
func updateContrat(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid id"))
		return
	}
	var payload dto.ContratModification
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	u := utils.CurrentUser(c)
	logger.Debugf("Updating contract %d for %s", id, u.Username)
	details, err := contratSrv.Update(c.Request.Context(), u, uint(id), &payload)
	if err != nil {
		logger.Errorf("Failed to update contract %d: %v", id, err)
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, details)
}

// DeleteContrat moves a maintenance contract to the trash
// @Summary Delete maintenance contract
// @Description Moves the contract to the trash. Covered systems keep their reference
// @Tags Contrats
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /api/contrats/{id} [delete]
func deleteContrat(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid id"))
		return
	}
	u := utils.CurrentUser(c)
	if err := contratSrv.Delete(c.Request.Context(), u, uint(id)); err != nil {
		logger.Errorf("Failed to delete contract %d: %v", id, err)
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Contrat placé dans la corbeille",
	})
}

// RegisterContratRoutes registers all maintenance contract routes
func RegisterContratRoutes(router *gin.RouterGroup) {
	contratRoutes := router.Group("/contrats")
	{
		contratRoutes.GET("", searchContrats)
		contratRoutes.GET("/:id", getContrat)
		contratRoutes.POST("", createContrat)
		contratRoutes.PUT("/:id", updateContrat)
		contratRoutes.DELETE("/:id", deleteContrat)
	}
}

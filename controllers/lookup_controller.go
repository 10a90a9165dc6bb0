package controllers

import (
	"net/http"

	"s2inventory/services"
	"s2inventory/utils"

	"github.com/gin-gonic/gin"
)

var lookupSrv = services.NewLookupService()

// SetLookupService initializes the lookup service instance.
func SetLookupService(srv services.LookupService) {
	lookupSrv = srv
}

// GetVilles lists the cities of zones
// @Summary List cities
// @Description Lists the distinct cities of the requested zones, restricted to the caller's consultation zones. Invalid input yields an empty list
// @Tags Lookups
// @Accept json
// @Produce json
// @Param usid query []string true "Zone USID codes"
// @Success 200 {object} LookupResponse
// @Router /api/villes [get]
func getVilles(c *gin.Context) {
	u := utils.CurrentUser(c)
	villes, err := lookupSrv.Villes(c.Request.Context(), u, c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"villes": villes})
}

// GetQuartiers lists the districts of cities
// @Summary List districts
// @Description Lists the distinct districts of the requested cities, restricted to the caller's consultation zones
// @Tags Lookups
// @Accept json
// @Produce json
// @Param ville query []string true "City names"
// @Success 200 {object} LookupResponse
// @Router /api/quartiers [get]
func getQuartiers(c *gin.Context) {
	u := utils.CurrentUser(c)
	quartiers, err := lookupSrv.Quartiers(c.Request.Context(), u, c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"quartiers": quartiers})
}

// GetZonesQuartier lists the sub-areas of districts
// @Summary List sub-areas
// @Description Lists the distinct sub-areas of the requested districts, restricted to the caller's consultation zones
// @Tags Lookups
// @Accept json
// @Produce json
// @Param quartier query []string true "District names"
// @Success 200 {object} LookupResponse
// @Router /api/zones [get]
func getZonesQuartier(c *gin.Context) {
	u := utils.CurrentUser(c)
	zones, err := lookupSrv.ZonesQuartier(c.Request.Context(), u, c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"zones": zones})
}

// GetFonctions lists the functions of a business domain
// @Summary List domain functions
// @Description Lists the functions of a business domain, ordered by id. Domains are global referential data
// @Tags Lookups
// @Accept json
// @Produce json
// @Param domaine query int true "Business domain ID"
// @Success 200 {object} FonctionListResponse
// @Router /api/fonctions [get]
func getFonctions(c *gin.Context) {
	u := utils.CurrentUser(c)
	fonctions, err := lookupSrv.Fonctions(c.Request.Context(), u, c.Request.URL.Query())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"fonctions": fonctions})
}

// RegisterLookupRoutes registers all lookup routes
func RegisterLookupRoutes(router *gin.RouterGroup) {
	router.GET("/villes", getVilles)
	router.GET("/quartiers", getQuartiers)
	router.GET("/zones", getZonesQuartier)
	router.GET("/fonctions", getFonctions)
}

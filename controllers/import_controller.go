package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"s2inventory/pkg/logger"
	"s2inventory/services"
	"s2inventory/services/job"
	"s2inventory/utils"

	"github.com/gin-gonic/gin"
)

var importSrv = services.NewImportService()

// SetImportService initializes the import service instance.
func SetImportService(srv services.ImportService) {
	importSrv = srv
}

// ImportRequest is the JSON body of an import trigger. Fichier carries the
// base64-encoded workbook.
type ImportRequest struct {
	ZoneUsid string `json:"zone_usid" validate:"required,len=3"`
	Fichier  string `json:"fichier" validate:"required"`
	Nettoie  bool   `json:"nettoie"`
}

// StartImport triggers a workbook import
// @Summary Start workbook import
// @Description Starts a background import of an inventory workbook for one zone. Accepts a JSON body with a base64 payload or a multipart upload. Requires write access to the zone
// @Tags Import
// @Accept json
// @Accept mpfd
// @Produce json
// @Param import body ImportRequest false "Import request (JSON mode)"
// @Param fichier formData file false "Workbook file (multipart mode)"
// @Param zone_usid formData string false "Zone USID code (multipart mode)"
// @Param nettoie formData bool false "Clean the zone before importing (multipart mode)"
// @Success 202 {object} ImportStartResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /api/import [post]
func startImport(c *gin.Context) {
	u := utils.CurrentUser(c)

	var zone string
	var contenu []byte
	var nettoie bool

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fichier, err := c.FormFile("fichier")
		if err != nil {
			utils.ErrorResponse(c, fmt.Errorf("fichier manquant"))
			return
		}
		ouvert, err := fichier.Open()
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		defer ouvert.Close()
		contenu, err = io.ReadAll(ouvert)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		zone = c.PostForm("zone_usid")
		nettoie = c.PostForm("nettoie") == "true" || c.PostForm("nettoie") == "on"
	} else {
		var payload ImportRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		if err := utils.ValidateStruct(&payload); err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		decode, err := base64.StdEncoding.DecodeString(payload.Fichier)
		if err != nil {
			utils.ErrorResponse(c, fmt.Errorf("contenu base64 invalide"))
			return
		}
		zone = payload.ZoneUsid
		contenu = decode
		nettoie = payload.Nettoie
	}

	logger.Debugf("Import request for zone %s by %s (%d bytes, nettoie=%v)", zone, u.Username, len(contenu), nettoie)
	jobID, err := importSrv.Lance(c.Request.Context(), u, zone, contenu, nettoie)
	if err != nil {
		logger.Errorf("Failed to start import for zone %s: %v", zone, err)
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusAccepted, gin.H{
		"message": "Importation lancée",
		"task_id": jobID,
	})
}

func messagePourStatut(status string) string {
	switch status {
	case job.StatusPending:
		return "Importation en attente"
	case job.StatusStarted:
		return "Importation démarrée"
	case job.StatusSuccess:
		return "Importation terminée"
	default:
		return "Importation échouée"
	}
}

// GetImportStatus polls an import job
// @Summary Get import job status
// @Description Returns the state of an import job and, once finished, its severity-classified report
// @Tags Import
// @Accept json
// @Produce json
// @Param task_id path string true "Job ID"
// @Success 200 {object} ImportStatusResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /api/import/{task_id} [get]
func getImportStatus(c *gin.Context) {
	u := utils.CurrentUser(c)
	info, err := importSrv.Statut(c.Request.Context(), u, c.Param("task_id"))
	if err != nil {
		repondErreur(c, err)
		return
	}
	reponse := gin.H{
		"task_id":     info.JobID,
		"zone_usid":   info.ZoneUsid,
		"utilisateur": info.Utilisateur,
		"status":      info.Status,
		"message":     messagePourStatut(info.Status),
	}
	if info.Result != nil {
		reponse["result"] = info.Result
	}
	utils.JSONResponse(c, http.StatusOK, reponse)
}

// ListImports lists the import jobs of the caller's zones
// @Summary List import jobs
// @Description Returns the import jobs of the caller's consultation zones, most recent first. Jobs live in memory and disappear on restart
// @Tags Import
// @Accept json
// @Produce json
// @Success 200 {object} ImportListResponse
// @Failure 400 {object} StandardErrorResponse
// @Router /api/import [get]
func listImports(c *gin.Context) {
	u := utils.CurrentUser(c)
	taches, err := importSrv.Taches(c.Request.Context(), u)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"taches": taches})
}

// RegisterImportRoutes registers all import routes
func RegisterImportRoutes(router *gin.RouterGroup) {
	importRoutes := router.Group("/import")
	{
		importRoutes.POST("", startImport)
		importRoutes.GET("", listImports)
		importRoutes.GET("/:task_id", getImportStatus)
	}
}

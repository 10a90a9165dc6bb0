package controllers

import (
	"s2inventory/models"
	"s2inventory/services/dto"
	"s2inventory/services/importer"
	"s2inventory/services/job"
)

// Example request/response models for Swagger documentation

// StandardErrorResponse represents a standard error response
type StandardErrorResponse struct {
	Error string `json:"error" example:"accès refusé pour cette zone"`
}

// MessageResponse represents a simple confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Système placé dans la corbeille"`
}

// SystemeListResponse represents the response of a system search
type SystemeListResponse struct {
	Systemes      []dto.SystemeDetails `json:"systemes"`
	Avertissement string               `json:"avertissement,omitempty" example:"paramètres de recherche invalides, filtres ignorés"`
}

// SystemeDetailResponse represents the detail of one system
type SystemeDetailResponse struct {
	dto.SystemeDetails
}

// ContratListResponse represents the response of a contract search
type ContratListResponse struct {
	Contrats      []models.ContratMaintenance `json:"contrats"`
	Avertissement string                      `json:"avertissement,omitempty" example:"paramètres de recherche invalides, filtres ignorés"`
}

// ContratDetailResponse represents the detail of one contract
type ContratDetailResponse struct {
	dto.ContratDetails
}

// ImportStartResponse represents the response when an import job starts
type ImportStartResponse struct {
	Message string `json:"message" example:"Importation lancée"`
	TaskID  string `json:"task_id" example:"1f6e3a1c-2f64-4a3e-9fd1-8c3a1d2e4b5f"`
}

// ImportStatusResponse represents the status of an import job
type ImportStatusResponse struct {
	TaskID      string           `json:"task_id" example:"1f6e3a1c-2f64-4a3e-9fd1-8c3a1d2e4b5f"`
	ZoneUsid    string           `json:"zone_usid" example:"RVC"`
	Utilisateur string           `json:"utilisateur" example:"rssi.rennes"`
	Status      string           `json:"status" example:"success"`
	Message     string           `json:"message" example:"Importation terminée"`
	Result      *importer.Result `json:"result,omitempty"`
}

// ImportListResponse represents the import jobs visible to the caller
type ImportListResponse struct {
	Taches []job.JobInfo `json:"taches"`
}

// LookupResponse represents a simple string list lookup
type LookupResponse struct {
	Villes []string `json:"villes" example:"rennes,saint-jacques-de-la-lande"`
}

// FonctionListResponse represents the functions of a business domain
type FonctionListResponse struct {
	Fonctions []models.FonctionMetier `json:"fonctions"`
}

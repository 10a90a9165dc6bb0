package bootstrap

import (
	"fmt"

	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/repository"
)

// Package-level variables store cached reference data for quick lookup
// throughout the application. They are filled once by LoadData and read-only
// afterwards.
var (
	// DomainesAll stores all business domains with their functions.
	DomainesAll []models.DomaineMetier
	// DomainesParCode indexes business domains by acronym for the importer
	// and the write paths.
	DomainesParCode map[string]models.DomaineMetier
	// FonctionsParDomaine indexes the functions of each domain by domain id.
	FonctionsParDomaine map[uint][]models.FonctionMetier
)

// LoadData seeds the business domain catalogue and caches the reference data.
func LoadData() error {
	logger.Infof("Starting bootstrap data loading...")

	metierRepo := repository.NewMetierRepository()

	if err := seedCatalogue(metierRepo); err != nil {
		return err
	}
	if err := loadDomainesAll(metierRepo); err != nil {
		return err
	}

	logger.Infof("Bootstrap data loading completed successfully")
	return nil
}

func seedCatalogue(repo repository.MetierRepository) error {
	for _, domaine := range Catalogue {
		created, err := repo.GetOrCreateDomaine(nil, &domaine)
		if err != nil {
			logger.Errorf("Failed to seed domain %s: %v", domaine.Code, err)
			return fmt.Errorf("failed to seed domain %s: %v", domaine.Code, err)
		}
		for _, fonction := range domaine.Fonctions {
			fonction.DomaineID = created.ID
			if _, err := repo.GetOrCreateFonction(nil, &fonction); err != nil {
				logger.Errorf("Failed to seed function %s/%s: %v", domaine.Code, fonction.Code, err)
				return fmt.Errorf("failed to seed function %s/%s: %v", domaine.Code, fonction.Code, err)
			}
		}
	}
	return nil
}

func loadDomainesAll(repo repository.MetierRepository) error {
	domaines, err := repo.GetAllDomaines(nil)
	if err != nil {
		logger.Errorf("Failed to load all domains: %v", err)
		return fmt.Errorf("failed to load all domains: %v", err)
	}
	DomainesAll = domaines

	parCode := make(map[string]models.DomaineMetier)
	parDomaine := make(map[uint][]models.FonctionMetier)
	for _, domaine := range domaines {
		parCode[domaine.Code] = domaine
		parDomaine[domaine.ID] = domaine.Fonctions
	}
	DomainesParCode = parCode
	FonctionsParDomaine = parDomaine

	logger.Infof("Loaded %d business domains", len(domaines))
	return nil
}

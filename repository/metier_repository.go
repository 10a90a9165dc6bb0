package repository

import (
	"errors"

	"s2inventory/config"
	"s2inventory/models"

	"gorm.io/gorm"
)

// MetierRepository provides data access operations for business domains and
// their functions.
type MetierRepository interface {
	GetAllDomaines(tx *gorm.DB) ([]models.DomaineMetier, error)
	GetDomaineById(tx *gorm.DB, id uint) (*models.DomaineMetier, error)
	GetDomaineByCode(tx *gorm.DB, code string) (*models.DomaineMetier, error)
	GetOrCreateDomaine(tx *gorm.DB, domaine *models.DomaineMetier) (*models.DomaineMetier, error)
	GetOrCreateFonction(tx *gorm.DB, fonction *models.FonctionMetier) (*models.FonctionMetier, error)
	FonctionsByDomaine(tx *gorm.DB, domaineID uint) ([]models.FonctionMetier, error)
	FonctionsByIds(tx *gorm.DB, ids []uint) ([]models.FonctionMetier, error)
	FonctionsByCodes(tx *gorm.DB, domaineID uint, codes []string) ([]models.FonctionMetier, error)
}

type metierRepository struct {
	db *gorm.DB
}

// NewMetierRepository creates a new business domain repository instance.
func NewMetierRepository() MetierRepository {
	return &metierRepository{
		db: config.DB,
	}
}

func (r *metierRepository) GetAllDomaines(tx *gorm.DB) ([]models.DomaineMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var domaines []models.DomaineMetier
	if err := db.Model(models.DomaineMetier{}).Preload("Fonctions").Order("code").Find(&domaines).Error; err != nil {
		return nil, err
	}
	return domaines, nil
}

func (r *metierRepository) GetDomaineById(tx *gorm.DB, id uint) (*models.DomaineMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var domaine models.DomaineMetier
	if err := db.Model(models.DomaineMetier{}).Where("id = ?", id).First(&domaine).Error; err != nil {
		return nil, err
	}
	return &domaine, nil
}

func (r *metierRepository) GetDomaineByCode(tx *gorm.DB, code string) (*models.DomaineMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var domaine models.DomaineMetier
	if err := db.Model(models.DomaineMetier{}).Where("code = ?", code).First(&domaine).Error; err != nil {
		return nil, err
	}
	return &domaine, nil
}

// GetOrCreateDomaine looks the domain up by code and creates it when absent.
// Coefficients of an existing row are left untouched.
func (r *metierRepository) GetOrCreateDomaine(tx *gorm.DB, domaine *models.DomaineMetier) (*models.DomaineMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	existing, err := r.GetDomaineByCode(db, domaine.Code)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	created := models.DomaineMetier{Code: domaine.Code, Nom: domaine.Nom, CoeffCriticite: domaine.CoeffCriticite}
	if err := db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// GetOrCreateFonction looks the function up by (domaine, code) and creates it
// when absent.
func (r *metierRepository) GetOrCreateFonction(tx *gorm.DB, fonction *models.FonctionMetier) (*models.FonctionMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var existing models.FonctionMetier
	err := db.Model(models.FonctionMetier{}).
		Where("domaine_id = ? AND code = ?", fonction.DomaineID, fonction.Code).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	created := models.FonctionMetier{
		DomaineID:      fonction.DomaineID,
		Code:           fonction.Code,
		Nom:            fonction.Nom,
		CoeffCriticite: fonction.CoeffCriticite,
	}
	if err := db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *metierRepository) FonctionsByDomaine(tx *gorm.DB, domaineID uint) ([]models.FonctionMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var fonctions []models.FonctionMetier
	if err := db.Model(models.FonctionMetier{}).
		Where("domaine_id = ?", domaineID).
		Order("id").
		Find(&fonctions).Error; err != nil {
		return nil, err
	}
	return fonctions, nil
}

func (r *metierRepository) FonctionsByIds(tx *gorm.DB, ids []uint) ([]models.FonctionMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var fonctions []models.FonctionMetier
	if err := db.Model(models.FonctionMetier{}).Where("id IN ?", ids).Find(&fonctions).Error; err != nil {
		return nil, err
	}
	return fonctions, nil
}

func (r *metierRepository) FonctionsByCodes(tx *gorm.DB, domaineID uint, codes []string) ([]models.FonctionMetier, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	if len(codes) == 0 {
		return nil, nil
	}
	var fonctions []models.FonctionMetier
	if err := db.Model(models.FonctionMetier{}).
		Where("domaine_id = ? AND code IN ?", domaineID, codes).
		Find(&fonctions).Error; err != nil {
		return nil, err
	}
	return fonctions, nil
}

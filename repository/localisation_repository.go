package repository

import (
	"s2inventory/config"
	"s2inventory/models"

	"gorm.io/gorm"
)

// LocalisationRepository provides data access operations for sites.
type LocalisationRepository interface {
	GetById(tx *gorm.DB, id uint) (*models.Localisation, error)
	GetByIdentite(tx *gorm.DB, zone models.ZoneUsid, ville, quartier, zoneQuartier string) (*models.Localisation, error)
	Create(tx *gorm.DB, loc *models.Localisation) error
	Villes(tx *gorm.DB, zonesConsult []models.ZoneUsid, usid []models.ZoneUsid) ([]string, error)
	Quartiers(tx *gorm.DB, zonesConsult []models.ZoneUsid, villes []string) ([]string, error)
	ZonesQuartier(tx *gorm.DB, zonesConsult []models.ZoneUsid, quartiers []string) ([]string, error)
	DeleteByZone(tx *gorm.DB, zone models.ZoneUsid) error
}

type localisationRepository struct {
	db *gorm.DB
}

// NewLocalisationRepository creates a new site repository instance.
func NewLocalisationRepository() LocalisationRepository {
	return &localisationRepository{
		db: config.DB,
	}
}

func (r *localisationRepository) GetById(tx *gorm.DB, id uint) (*models.Localisation, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var loc models.Localisation
	if err := db.Model(models.Localisation{}).Where("id = ?", id).First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// GetByIdentite retrieves a site by its full identity tuple. Returns
// gorm.ErrRecordNotFound when no such site exists.
func (r *localisationRepository) GetByIdentite(tx *gorm.DB, zone models.ZoneUsid, ville, quartier, zoneQuartier string) (*models.Localisation, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var loc models.Localisation
	if err := db.Model(models.Localisation{}).
		Where("zone_usid = ? AND nom_ville = ? AND nom_quartier = ? AND zone_quartier = ?",
			zone, ville, quartier, zoneQuartier).
		First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *localisationRepository) Create(tx *gorm.DB, loc *models.Localisation) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(loc).Error
}

// Villes lists the distinct cities of the requested zones, restricted to the
// caller's consultation zones.
func (r *localisationRepository) Villes(tx *gorm.DB, zonesConsult []models.ZoneUsid, usid []models.ZoneUsid) ([]string, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var villes []string
	if err := db.Model(models.Localisation{}).
		Where("zone_usid IN ?", zonesConsult).
		Where("zone_usid IN ?", usid).
		Distinct().Order("nom_ville").
		Pluck("nom_ville", &villes).Error; err != nil {
		return nil, err
	}
	return villes, nil
}

// Quartiers lists the distinct districts of the requested cities, restricted
// to the caller's consultation zones.
func (r *localisationRepository) Quartiers(tx *gorm.DB, zonesConsult []models.ZoneUsid, villes []string) ([]string, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var quartiers []string
	if err := db.Model(models.Localisation{}).
		Where("zone_usid IN ?", zonesConsult).
		Where("nom_ville IN ?", villes).
		Distinct().Order("nom_quartier").
		Pluck("nom_quartier", &quartiers).Error; err != nil {
		return nil, err
	}
	return quartiers, nil
}

// ZonesQuartier lists the distinct sub-areas of the requested districts,
// restricted to the caller's consultation zones.
func (r *localisationRepository) ZonesQuartier(tx *gorm.DB, zonesConsult []models.ZoneUsid, quartiers []string) ([]string, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var zones []string
	if err := db.Model(models.Localisation{}).
		Where("zone_usid IN ?", zonesConsult).
		Where("nom_quartier IN ?", quartiers).
		Distinct().Order("zone_quartier").
		Pluck("zone_quartier", &zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *localisationRepository) DeleteByZone(tx *gorm.DB, zone models.ZoneUsid) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("zone_usid = ?", zone).Delete(&models.Localisation{}).Error
}

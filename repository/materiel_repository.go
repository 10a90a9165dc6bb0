package repository

import (
	"s2inventory/config"
	"s2inventory/models"

	"gorm.io/gorm"
)

// MaterielRepository provides data access operations for the equipment of a
// system: computers, field components and software licences.
type MaterielRepository interface {
	CreateOrdinateur(tx *gorm.DB, ordi *models.MaterielOrdinateur) error
	CreateEffecteur(tx *gorm.DB, eff *models.MaterielEffecteur) error
	CreateLicence(tx *gorm.DB, lic *models.LicenceLogiciel) error
	ReplaceOrdinateurs(tx *gorm.DB, systemeID uint, ordis []models.MaterielOrdinateur) error
	ReplaceEffecteurs(tx *gorm.DB, systemeID uint, effs []models.MaterielEffecteur) error
	ReplaceLicences(tx *gorm.DB, systemeID uint, lics []models.LicenceLogiciel) error
	DeleteOrdinateursByZone(tx *gorm.DB, zone models.ZoneUsid) error
	DeleteEffecteursByZone(tx *gorm.DB, zone models.ZoneUsid) error
	DeleteLicencesByZone(tx *gorm.DB, zone models.ZoneUsid) error
}

type materielRepository struct {
	db *gorm.DB
}

// NewMaterielRepository creates a new equipment repository instance.
func NewMaterielRepository() MaterielRepository {
	return &materielRepository{
		db: config.DB,
	}
}

func (r *materielRepository) CreateOrdinateur(tx *gorm.DB, ordi *models.MaterielOrdinateur) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(ordi).Error
}

func (r *materielRepository) CreateEffecteur(tx *gorm.DB, eff *models.MaterielEffecteur) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(eff).Error
}

func (r *materielRepository) CreateLicence(tx *gorm.DB, lic *models.LicenceLogiciel) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(lic).Error
}

// ReplaceOrdinateurs swaps the IT inventory of the system for the given rows.
func (r *materielRepository) ReplaceOrdinateurs(tx *gorm.DB, systemeID uint, ordis []models.MaterielOrdinateur) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.Where("systeme_id = ?", systemeID).Delete(&models.MaterielOrdinateur{}).Error; err != nil {
		return err
	}
	for i := range ordis {
		ordis[i].ID = 0
		ordis[i].SystemeID = systemeID
	}
	if len(ordis) == 0 {
		return nil
	}
	return db.Create(&ordis).Error
}

// ReplaceEffecteurs swaps the OT inventory of the system for the given rows.
func (r *materielRepository) ReplaceEffecteurs(tx *gorm.DB, systemeID uint, effs []models.MaterielEffecteur) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.Where("systeme_id = ?", systemeID).Delete(&models.MaterielEffecteur{}).Error; err != nil {
		return err
	}
	for i := range effs {
		effs[i].ID = 0
		effs[i].SystemeID = systemeID
	}
	if len(effs) == 0 {
		return nil
	}
	return db.Create(&effs).Error
}

// ReplaceLicences swaps the licences of the system for the given rows.
func (r *materielRepository) ReplaceLicences(tx *gorm.DB, systemeID uint, lics []models.LicenceLogiciel) error {
	db := tx
	if db == nil {
		db = r.db
	}
	if err := db.Where("systeme_id = ?", systemeID).Delete(&models.LicenceLogiciel{}).Error; err != nil {
		return err
	}
	for i := range lics {
		lics[i].ID = 0
		lics[i].SystemeID = systemeID
	}
	if len(lics) == 0 {
		return nil
	}
	return db.Create(&lics).Error
}

func (r *materielRepository) systemesDeZone(db *gorm.DB, zone models.ZoneUsid) *gorm.DB {
	return db.Table("inventaire_systeme AS s").
		Joins("JOIN inventaire_localisation AS l ON l.id = s.localisation_id").
		Where("l.zone_usid = ?", zone).
		Select("s.id")
}

func (r *materielRepository) DeleteOrdinateursByZone(tx *gorm.DB, zone models.ZoneUsid) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("systeme_id IN (?)", r.systemesDeZone(db, zone)).
		Delete(&models.MaterielOrdinateur{}).Error
}

func (r *materielRepository) DeleteEffecteursByZone(tx *gorm.DB, zone models.ZoneUsid) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("systeme_id IN (?)", r.systemesDeZone(db, zone)).
		Delete(&models.MaterielEffecteur{}).Error
}

func (r *materielRepository) DeleteLicencesByZone(tx *gorm.DB, zone models.ZoneUsid) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("systeme_id IN (?)", r.systemesDeZone(db, zone)).
		Delete(&models.LicenceLogiciel{}).Error
}

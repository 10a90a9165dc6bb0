package repository

import (
	"s2inventory/config"
	"s2inventory/models"

	"gorm.io/gorm"
)

// InterconnexionRepository provides data access operations for network links
// between systems. Mirroring of the (from, to) and (to, from) rows is handled
// by the service layer; the repository only touches single rows.
type InterconnexionRepository interface {
	Get(tx *gorm.DB, fromID, toID uint) (*models.Interconnexion, error)
	Create(tx *gorm.DB, interco *models.Interconnexion) error
	Save(tx *gorm.DB, interco *models.Interconnexion) error
	Delete(tx *gorm.DB, fromID, toID uint) error
	DeleteForSysteme(tx *gorm.DB, systemeID uint) error
}

type interconnexionRepository struct {
	db *gorm.DB
}

// NewInterconnexionRepository creates a new interconnection repository instance.
func NewInterconnexionRepository() InterconnexionRepository {
	return &interconnexionRepository{
		db: config.DB,
	}
}

func (r *interconnexionRepository) Get(tx *gorm.DB, fromID, toID uint) (*models.Interconnexion, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var interco models.Interconnexion
	if err := db.Model(models.Interconnexion{}).
		Where("systeme_from_id = ? AND systeme_to_id = ?", fromID, toID).
		First(&interco).Error; err != nil {
		return nil, err
	}
	return &interco, nil
}

func (r *interconnexionRepository) Create(tx *gorm.DB, interco *models.Interconnexion) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(interco).Error
}

func (r *interconnexionRepository) Save(tx *gorm.DB, interco *models.Interconnexion) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(interco).Error
}

// Delete removes the (from, to) row. Deleting a missing row is not an error.
func (r *interconnexionRepository) Delete(tx *gorm.DB, fromID, toID uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("systeme_from_id = ? AND systeme_to_id = ?", fromID, toID).
		Delete(&models.Interconnexion{}).Error
}

// DeleteForSysteme removes every link touching the system, both directions.
func (r *interconnexionRepository) DeleteForSysteme(tx *gorm.DB, systemeID uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("systeme_from_id = ? OR systeme_to_id = ?", systemeID, systemeID).
		Delete(&models.Interconnexion{}).Error
}

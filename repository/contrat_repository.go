package repository

import (
	"s2inventory/config"
	"s2inventory/models"
	"s2inventory/services/dto"

	"gorm.io/gorm"
)

// ContratRepository provides data access operations for maintenance contracts.
type ContratRepository interface {
	GetById(tx *gorm.DB, zonesConsult []models.ZoneUsid, id uint) (*models.ContratMaintenance, error)
	GetByNumeroMarche(tx *gorm.DB, numero string) (*models.ContratMaintenance, error)
	Search(tx *gorm.DB, zonesConsult []models.ZoneUsid, filtre *dto.RechercheContrats) ([]models.ContratMaintenance, error)
	Create(tx *gorm.DB, contrat *models.ContratMaintenance) error
	Save(tx *gorm.DB, contrat *models.ContratMaintenance) error
	SystemesLies(tx *gorm.DB, contratID uint) ([]models.SystemeIndustriel, error)
	CountByZones(tx *gorm.DB, zones []models.ZoneUsid) (int64, error)
}

type contratRepository struct {
	db *gorm.DB
}

// NewContratRepository creates a new maintenance contract repository instance.
func NewContratRepository() ContratRepository {
	return &contratRepository{
		db: config.DB,
	}
}

// GetById retrieves a contract restricted to the caller's consultation zones,
// ignoring trashed records.
func (r *contratRepository) GetById(tx *gorm.DB, zonesConsult []models.ZoneUsid, id uint) (*models.ContratMaintenance, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var contrat models.ContratMaintenance
	if err := db.Model(models.ContratMaintenance{}).
		Where("id = ? AND zone_usid IN ? AND fiche_corbeille = ?", id, zonesConsult, false).
		First(&contrat).Error; err != nil {
		return nil, err
	}
	return &contrat, nil
}

func (r *contratRepository) GetByNumeroMarche(tx *gorm.DB, numero string) (*models.ContratMaintenance, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var contrat models.ContratMaintenance
	if err := db.Model(models.ContratMaintenance{}).
		Where("numero_marche = ?", numero).
		First(&contrat).Error; err != nil {
		return nil, err
	}
	return &contrat, nil
}

// Search runs the contract search. A nil filtre is the degraded mode used
// when the query parameters were invalid: permission scope plus active-only.
func (r *contratRepository) Search(tx *gorm.DB, zonesConsult []models.ZoneUsid, filtre *dto.RechercheContrats) ([]models.ContratMaintenance, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	query := db.Model(models.ContratMaintenance{}).
		Where("zone_usid IN ? AND fiche_corbeille = ?", zonesConsult, false)

	if filtre == nil {
		query = query.Where("est_actif = ?", true)
	} else {
		if len(filtre.ZonesUsid) > 0 {
			query = query.Where("zone_usid IN ?", filtre.ZonesUsid)
		}
		if filtre.NumeroMarche != "" {
			query = query.Where("numero_marche LIKE ?", "%"+filtre.NumeroMarche+"%")
		}
		if filtre.NomSociete != "" {
			query = query.Where("nom_societe LIKE ?", "%"+filtre.NomSociete+"%")
		}
		if filtre.FinAvant != nil {
			query = query.Where("date_fin < ?", *filtre.FinAvant)
		}
		if !filtre.AvecInactifs {
			query = query.Where("est_actif = ?", true)
		}
	}

	var contrats []models.ContratMaintenance
	if err := query.Order("zone_usid").Order("numero_marche").Find(&contrats).Error; err != nil {
		return nil, err
	}
	return contrats, nil
}

func (r *contratRepository) Create(tx *gorm.DB, contrat *models.ContratMaintenance) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(contrat).Error
}

func (r *contratRepository) Save(tx *gorm.DB, contrat *models.ContratMaintenance) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(contrat).Error
}

// SystemesLies lists the systems covered by the contract, trash excluded.
func (r *contratRepository) SystemesLies(tx *gorm.DB, contratID uint) ([]models.SystemeIndustriel, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var systemes []models.SystemeIndustriel
	if err := db.Model(models.SystemeIndustriel{}).
		Where("contrat_mcs_id = ? AND fiche_corbeille = ?", contratID, false).
		Preload("Localisation").
		Find(&systemes).Error; err != nil {
		return nil, err
	}
	return systemes, nil
}

func (r *contratRepository) CountByZones(tx *gorm.DB, zones []models.ZoneUsid) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(models.ContratMaintenance{}).
		Where("zone_usid IN ?", zones).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package repository

import (
	"s2inventory/config"
	"s2inventory/models"
	"s2inventory/services/dto"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompteParLibelle is one slice of an aggregate breakdown keyed by a label.
type CompteParLibelle struct {
	Libelle string `json:"libelle"`
	Nombre  int64  `json:"nombre"`
}

// CompteParClasse is one slice of the accreditation class breakdown.
type CompteParClasse struct {
	Classe models.ClasseHomologation `json:"classe"`
	Nombre int64                     `json:"nombre"`
}

// SystemeRepository provides data access operations for industrial systems.
type SystemeRepository interface {
	GetById(tx *gorm.DB, zonesConsult []models.ZoneUsid, id uint) (*models.SystemeIndustriel, error)
	GetByIdentite(tx *gorm.DB, localisationID uint, nom string, env models.Environnement, domaineID uint) (*models.SystemeIndustriel, error)
	Search(tx *gorm.DB, zonesConsult []models.ZoneUsid, filtre *dto.RechercheSystemes) ([]models.SystemeIndustriel, error)
	Create(tx *gorm.DB, systeme *models.SystemeIndustriel) error
	Save(tx *gorm.DB, systeme *models.SystemeIndustriel) error
	ReplaceFonctions(tx *gorm.DB, systeme *models.SystemeIndustriel, fonctions []models.FonctionMetier) error
	AddFonctions(tx *gorm.DB, systeme *models.SystemeIndustriel, fonctions []models.FonctionMetier) error
	DeleteByZone(tx *gorm.DB, zone models.ZoneUsid) error
	CountByZones(tx *gorm.DB, zones []models.ZoneUsid) (int64, error)
	CountParDomaine(tx *gorm.DB, zones []models.ZoneUsid) ([]CompteParLibelle, error)
	CountParVille(tx *gorm.DB, zones []models.ZoneUsid) ([]CompteParLibelle, error)
	CountParClasse(tx *gorm.DB, zones []models.ZoneUsid) ([]CompteParClasse, error)
}

type systemeRepository struct {
	db *gorm.DB
}

// NewSystemeRepository creates a new industrial system repository instance.
func NewSystemeRepository() SystemeRepository {
	return &systemeRepository{
		db: config.DB,
	}
}

// GetById retrieves a system with all of its children, restricted to the
// caller's consultation zones and ignoring trashed records. Links pointing at
// a trashed target are filtered out; each child collection comes back in its
// display order.
func (r *systemeRepository) GetById(tx *gorm.DB, zonesConsult []models.ZoneUsid, id uint) (*models.SystemeIndustriel, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var systeme models.SystemeIndustriel
	err := db.Model(models.SystemeIndustriel{}).
		Joins("JOIN inventaire_localisation ON inventaire_localisation.id = inventaire_systeme.localisation_id").
		Where("inventaire_systeme.id = ? AND inventaire_localisation.zone_usid IN ? AND inventaire_systeme.fiche_corbeille = ?",
			id, zonesConsult, false).
		Preload("Localisation").
		Preload("ContratMcs").
		Preload("DomaineMetier").
		Preload("FonctionsMetiers").
		Preload("Interconnexions", func(db *gorm.DB) *gorm.DB {
			return db.Select("inventaire_interconnexion.*").
				Joins("JOIN inventaire_systeme AS cible ON cible.id = inventaire_interconnexion.systeme_to_id").
				Joins("LEFT JOIN inventaire_localisation AS cible_loc ON cible_loc.id = cible.localisation_id").
				Where("cible.fiche_corbeille = ?", false).
				Order("cible_loc.zone_usid, cible_loc.nom_ville, cible_loc.nom_quartier, cible_loc.zone_quartier, cible.nom")
		}).
		Preload("Interconnexions.SystemeTo").
		Preload("Interconnexions.SystemeTo.Localisation").
		Preload("MaterielsIT", func(db *gorm.DB) *gorm.DB {
			return db.Order("fonction, marque, modele")
		}).
		Preload("MaterielsOT", func(db *gorm.DB) *gorm.DB {
			return db.Order("type, marque, modele")
		}).
		Preload("Licences", func(db *gorm.DB) *gorm.DB {
			return db.Order("editeur, logiciel")
		}).
		First(&systeme).Error
	if err != nil {
		return nil, err
	}
	return &systeme, nil
}

// GetByIdentite retrieves a system by its identity tuple, trashed records
// included so a recreate cannot collide with a trashed row.
func (r *systemeRepository) GetByIdentite(tx *gorm.DB, localisationID uint, nom string, env models.Environnement, domaineID uint) (*models.SystemeIndustriel, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var systeme models.SystemeIndustriel
	err := db.Model(models.SystemeIndustriel{}).
		Where("localisation_id = ? AND nom = ? AND environnement = ? AND domaine_metier_id = ?",
			localisationID, nom, env, domaineID).
		Preload("FonctionsMetiers").
		First(&systeme).Error
	if err != nil {
		return nil, err
	}
	return &systeme, nil
}

// Search runs the system search. A nil filtre is the degraded mode used when
/// the query parameters were invalid: permission scope only. Equipment and
// licence criteria join their tables, so the id set is deduplicated before
// the final fetch.
func (r *systemeRepository) Search(tx *gorm.DB, zonesConsult []models.ZoneUsid, filtre *dto.RechercheSystemes) ([]models.SystemeIndustriel, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	matching := db.Table("inventaire_systeme AS s").
		Joins("JOIN inventaire_localisation AS l ON l.id = s.localisation_id").
		Where("l.zone_usid IN ?", zonesConsult).
		Where("s.fiche_corbeille = ?", false).
		Select("DISTINCT s.id")

	if filtre != nil {
		if len(filtre.ZonesUsid) > 0 {
			matching = matching.Where("l.zone_usid IN ?", filtre.ZonesUsid)
		}
		if len(filtre.Villes) > 0 {
			matching = matching.Where("l.nom_ville IN ?", filtre.Villes)
		}
		if len(filtre.Quartiers) > 0 {
			matching = matching.Where("l.nom_quartier IN ?", filtre.Quartiers)
		}

		if filtre.Nom != "" {
			matching = matching.Where("s.nom LIKE ?", "%"+filtre.Nom+"%")
		}
		if len(filtre.Domaines) > 0 {
			matching = matching.Where("s.domaine_metier_id IN ?", filtre.Domaines)
		}
		if len(filtre.Classes) > 0 {
			matching = matching.Where("s.homologation_classe IN ?", filtre.Classes)
		}
		if filtre.HomologationAvant != nil {
			matching = matching.Where("s.homologation_fin < ?", *filtre.HomologationAvant)
		}

		if len(filtre.FonctionsOrdi) > 0 || len(filtre.FamillesOs) > 0 || filtre.OrdiMarqueModele != "" {
			matching = matching.Joins("JOIN inventaire_ordinateur AS o ON o.systeme_id = s.id")
			if len(filtre.FonctionsOrdi) > 0 {
				matching = matching.Where("o.fonction IN ?", filtre.FonctionsOrdi)
			}
			if len(filtre.FamillesOs) > 0 {
				matching = matching.Where("o.os_famille IN ?", filtre.FamillesOs)
			}
			if filtre.OrdiMarqueModele != "" {
				motif := "%" + filtre.OrdiMarqueModele + "%"
				matching = matching.Where("o.marque LIKE ? OR o.modele LIKE ?", motif, motif)
			}
		}

		if len(filtre.TypesEffecteur) > 0 || filtre.EffecteurMarqueModele != "" {
			matching = matching.Joins("JOIN inventaire_effecteur AS e ON e.systeme_id = s.id")
			if len(filtre.TypesEffecteur) > 0 {
				matching = matching.Where("e.type IN ?", filtre.TypesEffecteur)
			}
			if filtre.EffecteurMarqueModele != "" {
				motif := "%" + filtre.EffecteurMarqueModele + "%"
				matching = matching.Where("e.marque LIKE ? OR e.modele LIKE ?", motif, motif)
			}
		}

		if filtre.EditeurLogiciel != "" || filtre.LicenceAvant != nil {
			matching = matching.Joins("JOIN inventaire_licence AS li ON li.systeme_id = s.id")
			if filtre.EditeurLogiciel != "" {
				motif := "%" + filtre.EditeurLogiciel + "%"
				matching = matching.Where("li.editeur LIKE ? OR li.logiciel LIKE ?", motif, motif)
			}
			if filtre.LicenceAvant != nil {
				matching = matching.Where("li.date_fin < ?", *filtre.LicenceAvant)
			}
		}
	}

	var systemes []models.SystemeIndustriel
	err := db.Model(models.SystemeIndustriel{}).
		Joins("JOIN inventaire_localisation ON inventaire_localisation.id = inventaire_systeme.localisation_id").
		Where("inventaire_systeme.id IN (?)", matching).
		Preload("Localisation").
		Preload("DomaineMetier").
		Preload("FonctionsMetiers").
		Order("inventaire_localisation.zone_usid, inventaire_localisation.nom_ville, inventaire_localisation.nom_quartier, inventaire_localisation.zone_quartier, inventaire_systeme.nom").
		Find(&systemes).Error
	if err != nil {
		return nil, err
	}
	return systemes, nil
}

// Create inserts the system row. Associations are written through their own
// methods, never as a side effect.
func (r *systemeRepository) Create(tx *gorm.DB, systeme *models.SystemeIndustriel) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Omit(clause.Associations).Create(systeme).Error
}

func (r *systemeRepository) Save(tx *gorm.DB, systeme *models.SystemeIndustriel) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Omit(clause.Associations).Save(systeme).Error
}

// ReplaceFonctions swaps the attached business functions for the given set.
func (r *systemeRepository) ReplaceFonctions(tx *gorm.DB, systeme *models.SystemeIndustriel, fonctions []models.FonctionMetier) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Model(systeme).Association("FonctionsMetiers").Replace(fonctions)
}

// AddFonctions attaches functions not already linked, keeping the existing
// ones.
func (r *systemeRepository) AddFonctions(tx *gorm.DB, systeme *models.SystemeIndustriel, fonctions []models.FonctionMetier) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Model(systeme).Association("FonctionsMetiers").Append(fonctions)
}

// DeleteByZone hard-deletes every system of the zone, along with its function
// links and the interconnections pointing at it from either side.
func (r *systemeRepository) DeleteByZone(tx *gorm.DB, zone models.ZoneUsid) error {
	db := tx
	if db == nil {
		db = r.db
	}
	cibles := db.Table("inventaire_systeme AS s").
		Joins("JOIN inventaire_localisation AS l ON l.id = s.localisation_id").
		Where("l.zone_usid = ?", zone).
		Select("s.id")

	if err := db.Exec("DELETE FROM inventaire_systeme_fonctions_metiers WHERE systemeindustriel_id IN (?)", cibles).Error; err != nil {
		return err
	}
	if err := db.Where("systeme_from_id IN (?) OR systeme_to_id IN (?)", cibles, cibles).
		Delete(&models.Interconnexion{}).Error; err != nil {
		return err
	}
	return db.Where("id IN (?)", cibles).Delete(&models.SystemeIndustriel{}).Error
}

func (r *systemeRepository) CountByZones(tx *gorm.DB, zones []models.ZoneUsid) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(models.SystemeIndustriel{}).
		Joins("JOIN inventaire_localisation ON inventaire_localisation.id = inventaire_systeme.localisation_id").
		Where("inventaire_localisation.zone_usid IN ?", zones).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountParDomaine breaks systems of the zones down by business domain name.
func (r *systemeRepository) CountParDomaine(tx *gorm.DB, zones []models.ZoneUsid) ([]CompteParLibelle, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var comptes []CompteParLibelle
	err := db.Table("inventaire_metier_domaine AS d").
		Joins("JOIN inventaire_systeme AS s ON s.domaine_metier_id = d.id").
		Joins("JOIN inventaire_localisation AS l ON l.id = s.localisation_id").
		Where("l.zone_usid IN ?", zones).
		Select("d.nom AS libelle, COUNT(s.id) AS nombre").
		Group("d.id, d.nom").
		Order("d.nom").
		Scan(&comptes).Error
	if err != nil {
		return nil, err
	}
	return comptes, nil
}

// CountParVille breaks systems of the zones down by city.
func (r *systemeRepository) CountParVille(tx *gorm.DB, zones []models.ZoneUsid) ([]CompteParLibelle, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var comptes []CompteParLibelle
	err := db.Table("inventaire_localisation AS l").
		Joins("JOIN inventaire_systeme AS s ON s.localisation_id = l.id").
		Where("l.zone_usid IN ?", zones).
		Select("l.nom_ville AS libelle, COUNT(s.id) AS nombre").
		Group("l.nom_ville").
		Order("l.nom_ville").
		Scan(&comptes).Error
	if err != nil {
		return nil, err
	}
	return comptes, nil
}

// CountParClasse breaks systems of the zones down by accreditation class.
func (r *systemeRepository) CountParClasse(tx *gorm.DB, zones []models.ZoneUsid) ([]CompteParClasse, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var comptes []CompteParClasse
	err := db.Table("inventaire_systeme AS s").
		Joins("JOIN inventaire_localisation AS l ON l.id = s.localisation_id").
		Where("l.zone_usid IN ?", zones).
		Select("s.homologation_classe AS classe, COUNT(s.id) AS nombre").
		Group("s.homologation_classe").
		Order("s.homologation_classe").
		Scan(&comptes).Error
	if err != nil {
		return nil, err
	}
	return comptes, nil
}

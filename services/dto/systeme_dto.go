package dto

import (
	"time"

	"s2inventory/models"
)

// LocalisationIdentite names an existing site by its full identity tuple.
// Writes never create sites on the fly; the referenced site must exist.
type LocalisationIdentite struct {
	ZoneUsid     string `json:"zone_usid" validate:"required,len=3"`
	NomVille     string `json:"nom_ville" validate:"required,max=50"`
	NomQuartier  string `json:"nom_quartier" validate:"required,max=50"`
	ZoneQuartier string `json:"zone_quartier" validate:"max=50"`
}

// InterconnexionModification is one link of a system write payload.
type InterconnexionModification struct {
	SystemeToID uint   `json:"systeme_to_id" validate:"required"`
	TypeReseau  int    `json:"type_reseau" validate:"min=0,max=7"`
	TypeLiaison int    `json:"type_liaison" validate:"min=0,max=9"`
	Protocole   string `json:"protocole" validate:"max=30"`
	Description string `json:"description" validate:"max=300"`
}

// OrdinateurModification is one IT component of a system write payload.
type OrdinateurModification struct {
	Fonction    int    `json:"fonction" validate:"min=0,max=7"`
	Marque      string `json:"marque" validate:"required,max=40"`
	Modele      string `json:"modele" validate:"required,max=40"`
	OsFamille   int    `json:"os_famille" validate:"min=0,max=20"`
	OsVersion   string `json:"os_version" validate:"max=50"`
	Nombre      int    `json:"nombre" validate:"min=1"`
	Description string `json:"description" validate:"max=300"`
}

// EffecteurModification is one OT component of a system write payload.
type EffecteurModification struct {
	Type        int    `json:"type" validate:"min=0,max=16"`
	Marque      string `json:"marque" validate:"required,max=50"`
	Modele      string `json:"modele" validate:"required,max=50"`
	Nombre      int    `json:"nombre" validate:"min=1"`
	Firmware    string `json:"firmware" validate:"max=50"`
	Cortec      string `json:"cortec" validate:"max=50"`
	Description string `json:"description" validate:"max=300"`
}

// LicenceModification is one software licence of a system write payload.
type LicenceModification struct {
	Editeur     string    `json:"editeur" validate:"required,max=50"`
	Logiciel    string    `json:"logiciel" validate:"required,max=50"`
	Version     string    `json:"version" validate:"max=50"`
	Licence     string    `json:"licence" validate:"max=100"`
	DateFin     time.Time `json:"date_fin" validate:"required"`
	Description string    `json:"description" validate:"max=300"`
}

// SystemeModification is the write payload for creating or updating a
// system. The nested collections replace the stored ones wholesale.
type SystemeModification struct {
	Localisation            LocalisationIdentite `json:"localisation" validate:"required"`
	ContratMcsID            *uint                `json:"contrat_mcs_id"`
	Nom                     string               `json:"nom" validate:"required,max=50"`
	Environnement           int                  `json:"environnement" validate:"min=0,max=3"`
	DomaineID               uint                 `json:"domaine_metier_id" validate:"required"`
	FonctionsIDs            []uint               `json:"fonctions_metiers"`
	NumeroGTP               string               `json:"numero_gtp" validate:"max=20"`
	HomologationClasse      int                  `json:"homologation_classe"`
	HomologationResponsable int                  `json:"homologation_responsable" validate:"min=0,max=5"`
	HomologationFin         *time.Time           `json:"homologation_fin"`
	SauvegardeConfig        *time.Time           `json:"sauvegarde_config"`
	SauvegardeDonnees       *time.Time           `json:"sauvegarde_donnees"`
	SauvegardeComptes       *time.Time           `json:"sauvegarde_comptes"`
	DateMaintenance         *time.Time           `json:"date_maintenance"`
	Description             string               `json:"description" validate:"max=300"`

	Interconnexions []InterconnexionModification `json:"interconnexions"`
	MaterielsIT     []OrdinateurModification     `json:"materiels_it"`
	MaterielsOT     []EffecteurModification      `json:"materiels_ot"`
	Licences        []LicenceModification        `json:"licences"`
}

// ContratModification is the write payload for creating or updating a
// maintenance contract.
type ContratModification struct {
	ZoneUsid     string    `json:"zone_usid" validate:"required,len=3"`
	NumeroMarche string    `json:"numero_marche" validate:"required,max=20"`
	DateFin      time.Time `json:"date_fin" validate:"required"`
	NomSociete   string    `json:"nom_societe" validate:"required,max=50"`
	NomPoc       string    `json:"nom_poc" validate:"max=200"`
	Description  string    `json:"description" validate:"max=300"`
	EstActif     bool      `json:"est_actif"`
}

// SystemeDetails is the read payload of a system: the entity with its
// children, plus the computed criticality score.
type SystemeDetails struct {
	models.SystemeIndustriel
	Criticite int `json:"criticite"`
}

// ContratDetails is the read payload of a contract: the entity plus the
// systems it covers.
type ContratDetails struct {
	models.ContratMaintenance
	Systemes []models.SystemeIndustriel `json:"systemes"`
}

package models

import "time"

// ContratMaintenance is an MCO/MCS maintenance contract covering systems of a zone.
type ContratMaintenance struct {
	ID               uint      `gorm:"primaryKey;column:id" json:"id,omitempty"`
	ZoneUsid         ZoneUsid  `gorm:"column:zone_usid;size:3" json:"zone_usid"`
	NumeroMarche     string    `gorm:"column:numero_marche;size:20;uniqueIndex" json:"numero_marche"`
	DateFin          time.Time `gorm:"column:date_fin" json:"date_fin"`
	NomSociete       string    `gorm:"column:nom_societe;size:50" json:"nom_societe"`
	NomPoc           string    `gorm:"column:nom_poc;size:200" json:"nom_poc,omitempty"`
	Description      string    `gorm:"column:description;size:300" json:"description,omitempty"`
	EstActif         bool      `gorm:"column:est_actif" json:"est_actif"`
	FicheDate        time.Time `gorm:"column:fiche_date;autoUpdateTime" json:"fiche_date"`
	FicheUtilisateur string    `gorm:"column:fiche_utilisateur;size:150" json:"fiche_utilisateur,omitempty"`
	FicheCorbeille   bool      `gorm:"column:fiche_corbeille" json:"fiche_corbeille"`
}

// TableName returns the database table name for ContratMaintenance model.
func (ContratMaintenance) TableName() string {
	return "inventaire_contrat"
}

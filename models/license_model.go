package models

import "time"

// LicenceLogiciel is a software licence used by a system.
type LicenceLogiciel struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id,omitempty"`
	SystemeID   uint      `gorm:"column:systeme_id" json:"systeme_id,omitempty"`
	Editeur     string    `gorm:"column:editeur;size:50" json:"editeur"`
	Logiciel    string    `gorm:"column:logiciel;size:50" json:"logiciel"`
	Version     string    `gorm:"column:version;size:50" json:"version"`
	Licence     string    `gorm:"column:licence;size:100" json:"licence"`
	DateFin     time.Time `gorm:"column:date_fin" json:"date_fin"`
	Description string    `gorm:"column:description;size:300" json:"description,omitempty"`
}

// TableName returns the database table name for LicenceLogiciel model.
func (LicenceLogiciel) TableName() string {
	return "inventaire_licence"
}

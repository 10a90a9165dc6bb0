package models

// DomaineMetier is one of the official business domains a system belongs to
// (CETID classification). The coefficient feeds the criticality score.
type DomaineMetier struct {
	ID             uint             `gorm:"primaryKey;column:id" json:"id,omitempty"`
	Code           string           `gorm:"column:code;size:3;uniqueIndex" json:"code"`
	Nom            string           `gorm:"column:nom;size:50;uniqueIndex" json:"nom"`
	CoeffCriticite int              `gorm:"column:coeff_criticite;default:1" json:"coeff_criticite"`
	Fonctions      []FonctionMetier `gorm:"foreignKey:DomaineID;constraint:OnDelete:CASCADE" json:"fonctions,omitempty"`
}

// TableName returns the database table name for DomaineMetier model.
func (DomaineMetier) TableName() string {
	return "inventaire_metier_domaine"
}

// FonctionMetier is a function fulfilled inside a business domain.
type FonctionMetier struct {
	ID             uint   `gorm:"primaryKey;column:id" json:"id,omitempty"`
	DomaineID      uint   `gorm:"column:domaine_id;uniqueIndex:uniq_fonction" json:"domaine,omitempty"`
	Code           string `gorm:"column:code;size:3;uniqueIndex:uniq_fonction" json:"code"`
	Nom            string `gorm:"column:nom;size:50;uniqueIndex:uniq_fonction" json:"nom"`
	CoeffCriticite int    `gorm:"column:coeff_criticite;default:1" json:"coeff_criticite"`
}

// TableName returns the database table name for FonctionMetier model.
func (FonctionMetier) TableName() string {
	return "inventaire_metier_fonctions"
}

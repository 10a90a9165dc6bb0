package models

// TypeEffecteur is the kind of an OT component (sensor, actuator, active
// network equipment).
type TypeEffecteur int

// OT component kinds.
const (
	EffAutre        TypeEffecteur = 0
	EffActionneur   TypeEffecteur = 1
	EffAntenne      TypeEffecteur = 2
	EffAutomate     TypeEffecteur = 3
	EffCamera       TypeEffecteur = 4
	EffCapteur      TypeEffecteur = 5
	EffMesure       TypeEffecteur = 6
	EffEnregistreur TypeEffecteur = 7
	EffHorloge      TypeEffecteur = 8
	EffHub          TypeEffecteur = 9
	EffImprimante   TypeEffecteur = 10
	EffOnduleur     TypeEffecteur = 11
	EffRouteur      TypeEffecteur = 12
	EffSonde        TypeEffecteur = 13
	EffSwitch       TypeEffecteur = 14
	EffTelecommande TypeEffecteur = 15
	EffVariateur    TypeEffecteur = 16
)

// MaterielEffecteur is a sensor, actuator or active network component of a system.
type MaterielEffecteur struct {
	ID          uint          `gorm:"primaryKey;column:id" json:"id,omitempty"`
	SystemeID   uint          `gorm:"column:systeme_id" json:"systeme_id,omitempty"`
	Type        TypeEffecteur `gorm:"column:type" json:"type"`
	Marque      string        `gorm:"column:marque;size:50" json:"marque"`
	Modele      string        `gorm:"column:modele;size:50" json:"modele"`
	Nombre      int           `gorm:"column:nombre;default:1" json:"nombre"`
	Firmware    string        `gorm:"column:firmware;size:50" json:"firmware,omitempty"`
	Cortec      string        `gorm:"column:cortec;size:50" json:"cortec,omitempty"`
	Description string        `gorm:"column:description;size:300" json:"description,omitempty"`
}

// TableName returns the database table name for MaterielEffecteur model.
func (MaterielEffecteur) TableName() string {
	return "inventaire_effecteur"
}

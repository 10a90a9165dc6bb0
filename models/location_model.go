package models

// Protection is the protection level of a military site.
type Protection string

// Protection levels, from open ground to vital area.
const (
	ProtectionMC   Protection = "MC"   // milieu civil
	ProtectionTM   Protection = "TM"   // terrain militaire
	ProtectionZP   Protection = "ZP"   // zone protégée
	ProtectionZDHS Protection = "ZDHS" // zone de défense hautement sensible
	ProtectionZR   Protection = "ZR"   // zone réservée
	ProtectionZNAR Protection = "ZNAR" // zone nucléaire d'accès réglementé
	ProtectionZV   Protection = "ZV"   // zone vitale
)

// Sensibilite is the sensitivity grade of a site.
type Sensibilite string

// Sensitivity grades.
const (
	SensibiliteVitale  Sensibilite = "V"
	SensibiliteHaute   Sensibilite = "H"
	SensibiliteMoindre Sensibilite = "M"
)

// CoeffCriticite returns the criticality weight of the sensitivity grade.
// Unknown or absent grades weigh like the lowest one.
func (s Sensibilite) CoeffCriticite() int {
	switch s {
	case SensibiliteVitale:
		return 3
	case SensibiliteHaute:
		return 2
	default:
		return 1
	}
}

// Localisation is a physical site hosting industrial systems. The identity of
// a site is the full tuple (zone, ville, quartier, zone de quartier).
type Localisation struct {
	ID           uint        `gorm:"primaryKey;column:id" json:"id,omitempty"`
	ZoneUsid     ZoneUsid    `gorm:"column:zone_usid;size:3;uniqueIndex:uniq_localisation" json:"zone_usid"`
	NomVille     string      `gorm:"column:nom_ville;size:50;uniqueIndex:uniq_localisation" json:"nom_ville"`
	NomQuartier  string      `gorm:"column:nom_quartier;size:50;uniqueIndex:uniq_localisation" json:"nom_quartier"`
	ZoneQuartier string      `gorm:"column:zone_quartier;size:50;uniqueIndex:uniq_localisation" json:"zone_quartier"`
	Protection   Protection  `gorm:"column:protection;size:4" json:"protection"`
	Sensibilite  Sensibilite `gorm:"column:sensibilite;size:1" json:"sensibilite"`
}

// TableName returns the database table name for Localisation model.
func (Localisation) TableName() string {
	return "inventaire_localisation"
}

// Libelle renders the site the way operators name it.
func (l *Localisation) Libelle() string {
	if l.ZoneQuartier != "" {
		return l.NomVille + " - " + l.NomQuartier + " - " + l.ZoneQuartier
	}
	return l.NomVille + " - " + l.NomQuartier
}

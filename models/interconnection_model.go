package models

// Reseau is the network a link belongs to.
type Reseau int

// Network types, by classification level and connectivity.
const (
	ReseauAutreConnecte Reseau = 0
	ReseauAutreIsole    Reseau = 1
	ReseauNPConnecte    Reseau = 2 // type internet
	ReseauNPIsole       Reseau = 3
	ReseauDRConnecte    Reseau = 4 // type intradef
	ReseauDRIsole       Reseau = 5
	ReseauSConnecte     Reseau = 6 // type intraced
	ReseauSIsole        Reseau = 7
)

// Liaison is the physical transport layer of a link.
type Liaison int

// Physical link types.
const (
	LiaisonAutre      Liaison = 0
	LiaisonFilaire    Liaison = 1
	LiaisonWifi       Liaison = 2
	LiaisonBluetooth  Liaison = 3
	LiaisonRadio      Liaison = 4
	LiaisonFH         Liaison = 5
	LiaisonGPRS       Liaison = 6
	LiaisonMobile     Liaison = 7 // 3G, 4G ou 5G
	LiaisonInfrarouge Liaison = 8
	LiaisonRFID       Liaison = 9
)

// Interconnexion is a directed link between two systems. Links are stored in
// mirrored pairs: every write or delete of (from, to) is applied to (to, from)
// in the same transaction, so both endpoints see the connection.
type Interconnexion struct {
	ID            uint               `gorm:"primaryKey;column:id" json:"id,omitempty"`
	SystemeFromID uint               `gorm:"column:systeme_from_id;uniqueIndex:uniq_interco" json:"systeme_from_id"`
	SystemeToID   uint               `gorm:"column:systeme_to_id;uniqueIndex:uniq_interco" json:"systeme_to_id"`
	SystemeTo     *SystemeIndustriel `gorm:"foreignKey:SystemeToID;constraint:OnDelete:CASCADE" json:"systeme_to,omitempty"`
	TypeReseau    Reseau             `gorm:"column:type_reseau" json:"type_reseau"`
	TypeLiaison   Liaison            `gorm:"column:type_liaison" json:"type_liaison"`
	Protocole     string             `gorm:"column:protocole;size:30" json:"protocole,omitempty"`
	Description   string             `gorm:"column:description;size:300" json:"description,omitempty"`
}

// TableName returns the database table name for Interconnexion model.
func (Interconnexion) TableName() string {
	return "inventaire_interconnexion"
}

package models

// FonctionOrdinateur is the main role of an IT machine inside a system.
type FonctionOrdinateur int

// IT machine roles.
const (
	OrdiMaintenance        FonctionOrdinateur = 0
	OrdiSupervision        FonctionOrdinateur = 1
	OrdiAdministration     FonctionOrdinateur = 2
	OrdiSupervisionEtAdmin FonctionOrdinateur = 3
	OrdiServeurAnnuaire    FonctionOrdinateur = 4
	OrdiServeurTemps       FonctionOrdinateur = 5
	OrdiServeurFichier     FonctionOrdinateur = 6
	OrdiServeurBaseDonnees FonctionOrdinateur = 7
)

// FamilleOs is the operating system family of an IT machine.
type FamilleOs int

// Operating system families.
const (
	OsAutre           FamilleOs = 0
	OsWinXP           FamilleOs = 1
	OsWinVista        FamilleOs = 2
	OsWin7            FamilleOs = 3
	OsWin8            FamilleOs = 4
	OsWin10           FamilleOs = 5
	OsWin11           FamilleOs = 6
	OsWinServeurNT    FamilleOs = 7
	OsWinServeur2000  FamilleOs = 8
	OsWinServeur2003  FamilleOs = 9
	OsWinServeur2008  FamilleOs = 10
	OsWinServeur2008R FamilleOs = 11
	OsWinServeur2012  FamilleOs = 12
	OsWinServeur2012R FamilleOs = 13
	OsWinServeur2016  FamilleOs = 14
	OsWinServeur2019  FamilleOs = 15
	OsWinServeur2022  FamilleOs = 16
	OsLinuxDesktop    FamilleOs = 17
	OsLinuxServeur    FamilleOs = 18
	OsAndroid         FamilleOs = 19
	OsIndustriel      FamilleOs = 20
)

// MaterielOrdinateur is a computer or server component of a system.
type MaterielOrdinateur struct {
	ID          uint               `gorm:"primaryKey;column:id" json:"id,omitempty"`
	SystemeID   uint               `gorm:"column:systeme_id" json:"systeme_id,omitempty"`
	Fonction    FonctionOrdinateur `gorm:"column:fonction" json:"fonction"`
	Marque      string             `gorm:"column:marque;size:40" json:"marque"`
	Modele      string             `gorm:"column:modele;size:40" json:"modele"`
	OsFamille   FamilleOs          `gorm:"column:os_famille" json:"os_famille"`
	OsVersion   string             `gorm:"column:os_version;size:50" json:"os_version"`
	Nombre      int                `gorm:"column:nombre;default:1" json:"nombre"`
	Description string             `gorm:"column:description;size:300" json:"description,omitempty"`
}

// TableName returns the database table name for MaterielOrdinateur model.
func (MaterielOrdinateur) TableName() string {
	return "inventaire_ordinateur"
}

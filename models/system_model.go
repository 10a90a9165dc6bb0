package models

import "time"

// Environnement is the mission a system takes part in.
type Environnement int

// Mission environments.
const (
	EnvAutre        Environnement = 0
	EnvNucleaire    Environnement = 1
	EnvCyber        Environnement = 2
	EnvOperationnel Environnement = 3
)

// CoeffCriticite returns the criticality weight of the environment.
func (e Environnement) CoeffCriticite() int {
	switch e {
	case EnvNucleaire:
		return 4
	case EnvCyber:
		return 3
	case EnvOperationnel:
		return 2
	default:
		return 1
	}
}

// ClasseHomologation is the accreditation track of a system.
type ClasseHomologation int

// Accreditation classes. NC marks a system without accreditation.
const (
	ClasseC1 ClasseHomologation = 1  // démarche sommaire
	ClasseC2 ClasseHomologation = 2  // démarche simplifiée
	ClasseC3 ClasseHomologation = 3  // démarche standard
	ClasseNC ClasseHomologation = 99 // non homologué
)

// Libelle returns the display name of the accreditation class.
func (c ClasseHomologation) Libelle() string {
	switch c {
	case ClasseC1:
		return "démarche sommaire"
	case ClasseC2:
		return "démarche simplifiée"
	case ClasseC3:
		return "démarche standard"
	case ClasseNC:
		return "non homologué"
	}
	return "inconnu"
}

// ResponsableHomologation is the authority owning the accreditation.
type ResponsableHomologation int

// Accreditation authorities.
const (
	RespNon  ResponsableHomologation = 0
	RespSID  ResponsableHomologation = 1
	RespSGA  ResponsableHomologation = 2
	RespDGA  ResponsableHomologation = 3
	RespDRSD ResponsableHomologation = 4
	RespEMA  ResponsableHomologation = 5
)

// SystemeIndustriel is an industrial infrastructure control system. Identity
// is (localisation, nom, environnement, domaine métier); deleting through the
// API only moves the record to the trash (fiche_corbeille).
type SystemeIndustriel struct {
	ID             uint                `gorm:"primaryKey;column:id" json:"id,omitempty"`
	LocalisationID *uint               `gorm:"column:localisation_id;uniqueIndex:uniq_systeme" json:"localisation_id,omitempty"`
	Localisation   *Localisation       `gorm:"foreignKey:LocalisationID;constraint:OnDelete:SET NULL" json:"localisation,omitempty"`
	ContratMcsID   *uint               `gorm:"column:contrat_mcs_id" json:"contrat_mcs_id,omitempty"`
	ContratMcs     *ContratMaintenance `gorm:"foreignKey:ContratMcsID;constraint:OnDelete:SET NULL" json:"contrat_mcs,omitempty"`
	Nom            string              `gorm:"column:nom;size:50;uniqueIndex:uniq_systeme" json:"nom"`
	Environnement  Environnement       `gorm:"column:environnement;uniqueIndex:uniq_systeme" json:"environnement"`
	DomaineID      uint                `gorm:"column:domaine_metier_id;uniqueIndex:uniq_systeme" json:"domaine_metier_id,omitempty"`
	DomaineMetier  *DomaineMetier      `gorm:"foreignKey:DomaineID;constraint:OnDelete:CASCADE" json:"domaine_metier,omitempty"`

	FonctionsMetiers []FonctionMetier `gorm:"many2many:inventaire_systeme_fonctions_metiers;joinForeignKey:SystemeindustrielID;joinReferences:FonctionsmetierID" json:"fonctions_metiers,omitempty"`

	NumeroGTP               string                  `gorm:"column:numero_gtp;size:20" json:"numero_gtp,omitempty"`
	HomologationClasse      ClasseHomologation      `gorm:"column:homologation_classe;default:99" json:"homologation_classe"`
	HomologationResponsable ResponsableHomologation `gorm:"column:homologation_responsable;default:0" json:"homologation_responsable"`
	HomologationFin         *time.Time              `gorm:"column:homologation_fin" json:"homologation_fin,omitempty"`
	SauvegardeConfig        *time.Time              `gorm:"column:sauvegarde_config" json:"sauvegarde_config,omitempty"`
	SauvegardeDonnees       *time.Time              `gorm:"column:sauvegarde_donnees" json:"sauvegarde_donnees,omitempty"`
	SauvegardeComptes       *time.Time              `gorm:"column:sauvegarde_comptes" json:"sauvegarde_comptes,omitempty"`
	DateMaintenance         *time.Time              `gorm:"column:date_maintenance" json:"date_maintenance,omitempty"`
	Description             string                  `gorm:"column:description;size:300" json:"description,omitempty"`
	FicheDate               time.Time               `gorm:"column:fiche_date;autoUpdateTime" json:"fiche_date"`
	FicheUtilisateur        string                  `gorm:"column:fiche_utilisateur;size:150" json:"fiche_utilisateur,omitempty"`
	FicheCorbeille          bool                    `gorm:"column:fiche_corbeille" json:"fiche_corbeille"`

	Interconnexions []Interconnexion     `gorm:"foreignKey:SystemeFromID;constraint:OnDelete:CASCADE" json:"interconnexions,omitempty"`
	MaterielsIT     []MaterielOrdinateur `gorm:"foreignKey:SystemeID;constraint:OnDelete:CASCADE" json:"materiels_it,omitempty"`
	MaterielsOT     []MaterielEffecteur  `gorm:"foreignKey:SystemeID;constraint:OnDelete:CASCADE" json:"materiels_ot,omitempty"`
	Licences        []LicenceLogiciel    `gorm:"foreignKey:SystemeID;constraint:OnDelete:CASCADE" json:"licences,omitempty"`
}

// TableName returns the database table name for SystemeIndustriel model.
func (SystemeIndustriel) TableName() string {
	return "inventaire_systeme"
}

// Libelle renders the system the way operators name it. Localisation must be
// preloaded when set.
func (s *SystemeIndustriel) Libelle() string {
	if s.Localisation != nil {
		return s.Localisation.Libelle() + " - " + s.Nom
	}
	return s.Nom
}

// Criticite computes the criticality score of the system, an integer in
// [0, 100] (higher means more critical):
//
//	somme(coeff fonctions) * coeff domaine * (coeff environnement + coeff sensibilité)
//
// normalized by the maximum reachable product. A system with no attached
// function counts a coefficient sum of 1, and a system whose site was removed
// weighs like the lowest sensitivity. DomaineMetier, FonctionsMetiers and
// Localisation must be preloaded.
func (s *SystemeIndustriel) Criticite() int {
	const (
		maxSommeFonctions = 13
		maxCoeffDomaine   = 4
		criticiteMax      = maxSommeFonctions * maxCoeffDomaine * (4 + 3)
	)

	somme := 0
	for _, f := range s.FonctionsMetiers {
		somme += f.CoeffCriticite
	}
	if somme == 0 {
		somme = 1
	}

	domaine := 1
	if s.DomaineMetier != nil {
		domaine = s.DomaineMetier.CoeffCriticite
	}

	sensibilite := 1
	if s.Localisation != nil {
		sensibilite = s.Localisation.Sensibilite.CoeffCriticite()
	}

	return somme * domaine * (s.Environnement.CoeffCriticite() + sensibilite) * 100 / criticiteMax
}

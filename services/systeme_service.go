package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/repository"
	"s2inventory/services/auth"
	"s2inventory/services/dto"
	"s2inventory/utils"

	"gorm.io/gorm"
)

// AvertissementRecherche is the non-fatal warning surfaced when search
// filters are invalid: the permission-scoped fallback is returned instead of
// an error.
const AvertissementRecherche = "paramètres de recherche invalides, filtres ignorés"

// SystemeService provides business logic for industrial system operations.
type SystemeService interface {
	Recherche(ctx context.Context, u *models.UserIdentity, params url.Values) ([]dto.SystemeDetails, string, error)
	Details(ctx context.Context, u *models.UserIdentity, id uint) (*dto.SystemeDetails, error)
	Create(ctx context.Context, u *models.UserIdentity, p *dto.SystemeModification) (*dto.SystemeDetails, error)
	Update(ctx context.Context, u *models.UserIdentity, id uint, p *dto.SystemeModification) (*dto.SystemeDetails, error)
	Delete(ctx context.Context, u *models.UserIdentity, id uint) error
}

type systemeService struct {
	baseRepo         repository.BaseRepository
	systemeRepo      repository.SystemeRepository
	localisationRepo repository.LocalisationRepository
	contratRepo      repository.ContratRepository
	metierRepo       repository.MetierRepository
	materielRepo     repository.MaterielRepository
	intercoService   InterconnexionService
}

// NewSystemeService creates a new industrial system service instance.
func NewSystemeService() SystemeService {
	return &systemeService{
		baseRepo:         repository.NewBaseRepository(),
		systemeRepo:      repository.NewSystemeRepository(),
		localisationRepo: repository.NewLocalisationRepository(),
		contratRepo:      repository.NewContratRepository(),
		metierRepo:       repository.NewMetierRepository(),
		materielRepo:     repository.NewMaterielRepository(),
		intercoService:   NewInterconnexionService(),
	}
}

// Recherche runs the permission-scoped system search. Invalid filters
// degrade to the unfiltered scoped result with a warning instead of failing.
func (s *systemeService) Recherche(ctx context.Context, u *models.UserIdentity, params url.Values) ([]dto.SystemeDetails, string, error) {
	zones := auth.ZonesConsultation(u)

	avertissement := ""
	filtre, err := dto.ParseRechercheSystemes(params)
	if err != nil {
		logger.Warnf("Recherche systèmes de %s : %v", u.Username, err)
		avertissement = AvertissementRecherche
		filtre = nil
	}

	systemes, err := s.systemeRepo.Search(nil, zones, filtre)
	if err != nil {
		return nil, "", err
	}
	resultats := make([]dto.SystemeDetails, 0, len(systemes))
	for i := range systemes {
		resultats = append(resultats, dto.SystemeDetails{
			SystemeIndustriel: systemes[i],
			Criticite:         systemes[i].Criticite(),
		})
	}
	return resultats, avertissement, nil
}

// Details returns a system with its children and criticality score,
// restricted to the caller's consultation zones.
func (s *systemeService) Details(ctx context.Context, u *models.UserIdentity, id uint) (*dto.SystemeDetails, error) {
	systeme, err := s.systemeRepo.GetById(nil, auth.ZonesConsultation(u), id)
	if err != nil {
		return nil, err
	}
	return &dto.SystemeDetails{
		SystemeIndustriel: *systeme,
		Criticite:         systeme.Criticite(),
	}, nil
}

// referentiel holds the resolved references of a validated write payload.
type referentiel struct {
	localisation *models.Localisation
	fonctions    []models.FonctionMetier
}

// valide checks a write payload against the caller's capabilities and
// resolves its references.
func (s *systemeService) valide(u *models.UserIdentity, p *dto.SystemeModification) (*referentiel, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return nil, err
	}

	zone, err := models.ParseZoneUsid(p.Localisation.ZoneUsid)
	if err != nil {
		return nil, err
	}
	localisation, err := s.localisationRepo.GetByIdentite(nil, zone,
		p.Localisation.NomVille, p.Localisation.NomQuartier, p.Localisation.ZoneQuartier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLocalisationInconnue
	} else if err != nil {
		return nil, err
	}
	if !auth.CanModifier(u, localisation.ZoneUsid) {
		return nil, ErrAccesRefuse
	}

	if p.ContratMcsID != nil {
		if _, err := s.contratRepo.GetById(nil, auth.ZonesConsultation(u), *p.ContratMcsID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContratInconnu
			}
			return nil, err
		}
	}

	switch models.ClasseHomologation(p.HomologationClasse) {
	case models.ClasseC1, models.ClasseC2, models.ClasseC3, models.ClasseNC:
	default:
		return nil, fmt.Errorf("classe d'homologation invalide: %d", p.HomologationClasse)
	}

	domaine, err := s.metierRepo.GetDomaineById(nil, p.DomaineID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDomaineInconnu
	} else if err != nil {
		return nil, err
	}
	fonctions, err := s.metierRepo.FonctionsByIds(nil, p.FonctionsIDs)
	if err != nil {
		return nil, err
	}
	if len(fonctions) != len(p.FonctionsIDs) {
		return nil, fmt.Errorf("une des fonctions métiers n'existe pas")
	}
	for _, fonction := range fonctions {
		if fonction.DomaineID != domaine.ID {
			return nil, fmt.Errorf("la fonction métier '%s' n'appartient pas au domaine métier '%s'", fonction.Nom, domaine.Nom)
		}
	}

	return &referentiel{localisation: localisation, fonctions: fonctions}, nil
}

// Create inserts a system with its nested collections in one transaction.
func (s *systemeService) Create(ctx context.Context, u *models.UserIdentity, p *dto.SystemeModification) (*dto.SystemeDetails, error) {
	refs, err := s.valide(u, p)
	if err != nil {
		return nil, err
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	systeme := &models.SystemeIndustriel{
		LocalisationID: &refs.localisation.ID,
		ContratMcsID:   p.ContratMcsID,
		Nom:            p.Nom,
		Environnement:  models.Environnement(p.Environnement),
		DomaineID:      p.DomaineID,
	}
	s.appliquePayload(systeme, p, u)
	if err := s.systemeRepo.Create(tx, systeme); err != nil {
		return nil, fmt.Errorf("impossible de sauvegarder le système '%s': %v", p.Nom, err)
	}
	if err := s.ecritCollections(tx, u, systeme, refs, p); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Infof("Système %d créé par %s", systeme.ID, u.Username)
	return s.Details(ctx, u, systeme.ID)
}

// Update rewrites a system and replaces its nested collections in one
// transaction. The caller must hold write access to the current zone of the
// system and to the target zone of the payload.
func (s *systemeService) Update(ctx context.Context, u *models.UserIdentity, id uint, p *dto.SystemeModification) (*dto.SystemeDetails, error) {
	systeme, err := s.systemeRepo.GetById(nil, auth.ZonesModification(u), id)
	if err != nil {
		return nil, err
	}
	refs, err := s.valide(u, p)
	if err != nil {
		return nil, err
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	systeme.LocalisationID = &refs.localisation.ID
	systeme.ContratMcsID = p.ContratMcsID
	systeme.Nom = p.Nom
	systeme.Environnement = models.Environnement(p.Environnement)
	systeme.DomaineID = p.DomaineID
	s.appliquePayload(systeme, p, u)
	if err := s.systemeRepo.Save(tx, systeme); err != nil {
		return nil, fmt.Errorf("impossible de sauvegarder le système '%s': %v", p.Nom, err)
	}
	if err := s.ecritCollections(tx, u, systeme, refs, p); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Infof("Système %d modifié par %s", systeme.ID, u.Username)
	return s.Details(ctx, u, systeme.ID)
}

// Delete moves a system to the trash. The record stays in place, scoped
// queries stop returning it.
func (s *systemeService) Delete(ctx context.Context, u *models.UserIdentity, id uint) error {
	systeme, err := s.systemeRepo.GetById(nil, auth.ZonesModification(u), id)
	if err != nil {
		return err
	}
	systeme.FicheCorbeille = true
	systeme.FicheUtilisateur = u.Username
	if err := s.systemeRepo.Save(nil, systeme); err != nil {
		return err
	}
	logger.Infof("Système %d placé dans la corbeille par %s", id, u.Username)
	return nil
}

func (s *systemeService) appliquePayload(systeme *models.SystemeIndustriel, p *dto.SystemeModification, u *models.UserIdentity) {
	systeme.NumeroGTP = p.NumeroGTP
	systeme.HomologationClasse = models.ClasseHomologation(p.HomologationClasse)
	systeme.HomologationResponsable = models.ResponsableHomologation(p.HomologationResponsable)
	systeme.HomologationFin = p.HomologationFin
	systeme.SauvegardeConfig = p.SauvegardeConfig
	systeme.SauvegardeDonnees = p.SauvegardeDonnees
	systeme.SauvegardeComptes = p.SauvegardeComptes
	systeme.DateMaintenance = p.DateMaintenance
	systeme.Description = p.Description
	systeme.FicheUtilisateur = u.Username
}

// ecritCollections replaces the functions, equipment, licences and mirrored
// links of the system with the payload's sets.
func (s *systemeService) ecritCollections(tx *gorm.DB, u *models.UserIdentity, systeme *models.SystemeIndustriel, refs *referentiel, p *dto.SystemeModification) error {
	if err := s.systemeRepo.ReplaceFonctions(tx, systeme, refs.fonctions); err != nil {
		return err
	}

	ordinateurs := make([]models.MaterielOrdinateur, 0, len(p.MaterielsIT))
	for _, m := range p.MaterielsIT {
		ordinateurs = append(ordinateurs, models.MaterielOrdinateur{
			Fonction:    models.FonctionOrdinateur(m.Fonction),
			Marque:      m.Marque,
			Modele:      m.Modele,
			OsFamille:   models.FamilleOs(m.OsFamille),
			OsVersion:   m.OsVersion,
			Nombre:      m.Nombre,
			Description: m.Description,
		})
	}
	if err := s.materielRepo.ReplaceOrdinateurs(tx, systeme.ID, ordinateurs); err != nil {
		return err
	}

	effecteurs := make([]models.MaterielEffecteur, 0, len(p.MaterielsOT))
	for _, m := range p.MaterielsOT {
		effecteurs = append(effecteurs, models.MaterielEffecteur{
			Type:        models.TypeEffecteur(m.Type),
			Marque:      m.Marque,
			Modele:      m.Modele,
			Nombre:      m.Nombre,
			Firmware:    m.Firmware,
			Cortec:      m.Cortec,
			Description: m.Description,
		})
	}
	if err := s.materielRepo.ReplaceEffecteurs(tx, systeme.ID, effecteurs); err != nil {
		return err
	}

	licences := make([]models.LicenceLogiciel, 0, len(p.Licences))
	for _, l := range p.Licences {
		licences = append(licences, models.LicenceLogiciel{
			Editeur:     l.Editeur,
			Logiciel:    l.Logiciel,
			Version:     l.Version,
			Licence:     l.Licence,
			DateFin:     l.DateFin,
			Description: l.Description,
		})
	}
	if err := s.materielRepo.ReplaceLicences(tx, systeme.ID, licences); err != nil {
		return err
	}

	// les interconnexions sont remplacées en bloc, miroirs compris
	if err := s.intercoService.DeleteAllMirrored(tx, systeme.ID); err != nil {
		return err
	}
	zonesModif := auth.ZonesModification(u)
	for _, im := range p.Interconnexions {
		if im.SystemeToID == systeme.ID {
			return fmt.Errorf("un système ne peut pas être interconnecté avec lui-même")
		}
		if _, err := s.systemeRepo.GetById(tx, zonesModif, im.SystemeToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("le système connecté %d n'existe pas ou n'est pas modifiable", im.SystemeToID)
			}
			return err
		}
		interco := models.Interconnexion{
			SystemeFromID: systeme.ID,
			SystemeToID:   im.SystemeToID,
			TypeReseau:    models.Reseau(im.TypeReseau),
			TypeLiaison:   models.Liaison(im.TypeLiaison),
			Protocole:     im.Protocole,
			Description:   im.Description,
		}
		if err := s.intercoService.SaveMirrored(tx, &interco); err != nil {
			return err
		}
	}
	return nil
}

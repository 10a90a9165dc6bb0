package services

import (
	"context"
	"errors"
	"net/url"

	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/repository"
	"s2inventory/services/auth"
	"s2inventory/services/dto"
	"s2inventory/utils"

	"gorm.io/gorm"
)

// ContratService provides business logic for maintenance contract operations.
type ContratService interface {
	Recherche(ctx context.Context, u *models.UserIdentity, params url.Values) ([]models.ContratMaintenance, string, error)
	Details(ctx context.Context, u *models.UserIdentity, id uint) (*dto.ContratDetails, error)
	Create(ctx context.Context, u *models.UserIdentity, p *dto.ContratModification) (*dto.ContratDetails, error)
	Update(ctx context.Context, u *models.UserIdentity, id uint, p *dto.ContratModification) (*dto.ContratDetails, error)
	Delete(ctx context.Context, u *models.UserIdentity, id uint) error
}

type contratService struct {
	contratRepo repository.ContratRepository
}

// NewContratService creates a new maintenance contract service instance.
func NewContratService() ContratService {
	return &contratService{
		contratRepo: repository.NewContratRepository(),
	}
}

// Recherche runs the permission-scoped contract search. Invalid filters
// degrade to the active-only scoped result with a warning instead of failing.
func (s *contratService) Recherche(ctx context.Context, u *models.UserIdentity, params url.Values) ([]models.ContratMaintenance, string, error) {
	zones := auth.ZonesConsultation(u)

	avertissement := ""
	filtre, err := dto.ParseRechercheContrats(params)
	if err != nil {
		logger.Warnf("Recherche contrats de %s : %v", u.Username, err)
		avertissement = AvertissementRecherche
		filtre = nil
	}

	contrats, err := s.contratRepo.Search(nil, zones, filtre)
	if err != nil {
		return nil, "", err
	}
	return contrats, avertissement, nil
}

// Details returns a contract with the systems it covers, restricted to the
// caller's consultation zones.
func (s *contratService) Details(ctx context.Context, u *models.UserIdentity, id uint) (*dto.ContratDetails, error) {
	contrat, err := s.contratRepo.GetById(nil, auth.ZonesConsultation(u), id)
	if err != nil {
		return nil, err
	}
	systemes, err := s.contratRepo.SystemesLies(nil, contrat.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ContratDetails{
		ContratMaintenance: *contrat,
		Systemes:           systemes,
	}, nil
}

func (s *contratService) valide(u *models.UserIdentity, p *dto.ContratModification) (models.ZoneUsid, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return "", err
	}
	zone, err := models.ParseZoneUsid(p.ZoneUsid)
	if err != nil {
		return "", err
	}
	if !auth.CanModifier(u, zone) {
		return "", ErrAccesRefuse
	}
	return zone, nil
}

// Create inserts a contract. The marché number must be unique across zones.
func (s *contratService) Create(ctx context.Context, u *models.UserIdentity, p *dto.ContratModification) (*dto.ContratDetails, error) {
	zone, err := s.valide(u, p)
	if err != nil {
		return nil, err
	}

	if _, err := s.contratRepo.GetByNumeroMarche(nil, p.NumeroMarche); err == nil {
		return nil, ErrNumeroMarcheExistant
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	contrat := &models.ContratMaintenance{
		ZoneUsid:         zone,
		NumeroMarche:     p.NumeroMarche,
		DateFin:          p.DateFin,
		NomSociete:       p.NomSociete,
		NomPoc:           p.NomPoc,
		Description:      p.Description,
		EstActif:         p.EstActif,
		FicheUtilisateur: u.Username,
	}
	if err := s.contratRepo.Create(nil, contrat); err != nil {
		return nil, err
	}
	logger.Infof("Contrat %d créé par %s", contrat.ID, u.Username)
	return s.Details(ctx, u, contrat.ID)
}

// Update rewrites a contract. Moving it to another zone requires write access
// on both the current and the target zone.
func (s *contratService) Update(ctx context.Context, u *models.UserIdentity, id uint, p *dto.ContratModification) (*dto.ContratDetails, error) {
	contrat, err := s.contratRepo.GetById(nil, auth.ZonesModification(u), id)
	if err != nil {
		return nil, err
	}
	zone, err := s.valide(u, p)
	if err != nil {
		return nil, err
	}

	if existant, err := s.contratRepo.GetByNumeroMarche(nil, p.NumeroMarche); err == nil {
		if existant.ID != contrat.ID {
			return nil, ErrNumeroMarcheExistant
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	contrat.ZoneUsid = zone
	contrat.NumeroMarche = p.NumeroMarche
	contrat.DateFin = p.DateFin
	contrat.NomSociete = p.NomSociete
	contrat.NomPoc = p.NomPoc
	contrat.Description = p.Description
	contrat.EstActif = p.EstActif
	contrat.FicheUtilisateur = u.Username
	if err := s.contratRepo.Save(nil, contrat); err != nil {
		return nil, err
	}
	logger.Infof("Contrat %d modifié par %s", contrat.ID, u.Username)
	return s.Details(ctx, u, contrat.ID)
}

// Delete moves a contract to the trash. Covered systems keep their reference.
func (s *contratService) Delete(ctx context.Context, u *models.UserIdentity, id uint) error {
	contrat, err := s.contratRepo.GetById(nil, auth.ZonesModification(u), id)
	if err != nil {
		return err
	}
	contrat.FicheCorbeille = true
	contrat.FicheUtilisateur = u.Username
	if err := s.contratRepo.Save(nil, contrat); err != nil {
		return err
	}
	logger.Infof("Contrat %d placé dans la corbeille par %s", id, u.Username)
	return nil
}

package services

import (
	"context"
	"net/url"
	"strconv"

	"s2inventory/models"
	"s2inventory/repository"
	"s2inventory/services/auth"
)

// LookupService feeds the cascading selectors of the search forms: cities of
// a zone, districts of a city, sub-areas of a district, functions of a
// domain. Invalid or missing parameters yield an empty list, never an error.
type LookupService interface {
	Villes(ctx context.Context, u *models.UserIdentity, params url.Values) ([]string, error)
	Quartiers(ctx context.Context, u *models.UserIdentity, params url.Values) ([]string, error)
	ZonesQuartier(ctx context.Context, u *models.UserIdentity, params url.Values) ([]string, error)
	Fonctions(ctx context.Context, u *models.UserIdentity, params url.Values) ([]models.FonctionMetier, error)
}

type lookupService struct {
	localisationRepo repository.LocalisationRepository
	metierRepo       repository.MetierRepository
}

// NewLookupService creates a new lookup service instance.
func NewLookupService() LookupService {
	return &lookupService{
		localisationRepo: repository.NewLocalisationRepository(),
		metierRepo:       repository.NewMetierRepository(),
	}
}

func (s *lookupService) Villes(ctx context.Context, u *models.UserIdentity, params url.Values) ([]string, error) {
	usid := make([]models.ZoneUsid, 0, len(params["usid"]))
	for _, brut := range params["usid"] {
		zone, err := models.ParseZoneUsid(brut)
		if err != nil {
			return []string{}, nil
		}
		usid = append(usid, zone)
	}
	if len(usid) == 0 {
		return []string{}, nil
	}
	return s.localisationRepo.Villes(nil, auth.ZonesConsultation(u), usid)
}

func (s *lookupService) Quartiers(ctx context.Context, u *models.UserIdentity, params url.Values) ([]string, error) {
	villes := params["ville"]
	if len(villes) == 0 {
		return []string{}, nil
	}
	return s.localisationRepo.Quartiers(nil, auth.ZonesConsultation(u), villes)
}

func (s *lookupService) ZonesQuartier(ctx context.Context, u *models.UserIdentity, params url.Values) ([]string, error) {
	quartiers := params["quartier"]
	if len(quartiers) == 0 {
		return []string{}, nil
	}
	return s.localisationRepo.ZonesQuartier(nil, auth.ZonesConsultation(u), quartiers)
}

// Fonctions lists the functions of a domain, ordered by id. Domains are
// global referential data, no zone scoping applies.
func (s *lookupService) Fonctions(ctx context.Context, u *models.UserIdentity, params url.Values) ([]models.FonctionMetier, error) {
	brut := params.Get("domaine")
	domaineID, err := strconv.ParseUint(brut, 10, 32)
	if err != nil {
		return []models.FonctionMetier{}, nil
	}
	fonctions, err := s.metierRepo.FonctionsByDomaine(nil, uint(domaineID))
	if err != nil {
		return nil, err
	}
	return fonctions, nil
}

package services

import (
	"context"

	"s2inventory/models"
	"s2inventory/repository"
	"s2inventory/services/auth"
	"s2inventory/services/dto"
)

// StatsService computes the inventory dashboard figures.
type StatsService interface {
	Statistiques(ctx context.Context, u *models.UserIdentity) (*dto.Statistiques, error)
}

type statsService struct {
	systemeRepo repository.SystemeRepository
	contratRepo repository.ContratRepository
}

// NewStatsService creates a new statistics service instance.
func NewStatsService() StatsService {
	return &statsService{
		systemeRepo: repository.NewSystemeRepository(),
		contratRepo: repository.NewContratRepository(),
	}
}

// Statistiques counts the systems and contracts of the caller's consultation
// zones and breaks the systems down by domain, city and accreditation class.
func (s *statsService) Statistiques(ctx context.Context, u *models.UserIdentity) (*dto.Statistiques, error) {
	zones := auth.ZonesConsultation(u)

	totalSystemes, err := s.systemeRepo.CountByZones(nil, zones)
	if err != nil {
		return nil, err
	}
	totalContrats, err := s.contratRepo.CountByZones(nil, zones)
	if err != nil {
		return nil, err
	}
	parDomaine, err := s.systemeRepo.CountParDomaine(nil, zones)
	if err != nil {
		return nil, err
	}
	parVille, err := s.systemeRepo.CountParVille(nil, zones)
	if err != nil {
		return nil, err
	}
	parClasse, err := s.systemeRepo.CountParClasse(nil, zones)
	if err != nil {
		return nil, err
	}

	stats := &dto.Statistiques{
		TotalSystemes: totalSystemes,
		TotalContrats: totalContrats,
		ParDomaine:    make([]dto.CompteLibelle, 0, len(parDomaine)),
		ParVille:      make([]dto.CompteLibelle, 0, len(parVille)),
		ParClasse:     make([]dto.CompteLibelle, 0, len(parClasse)),
	}
	for _, c := range parDomaine {
		stats.ParDomaine = append(stats.ParDomaine, dto.CompteLibelle{Libelle: c.Libelle, Nombre: c.Nombre})
	}
	for _, c := range parVille {
		stats.ParVille = append(stats.ParVille, dto.CompteLibelle{Libelle: c.Libelle, Nombre: c.Nombre})
	}
	for _, c := range parClasse {
		stats.ParClasse = append(stats.ParClasse, dto.CompteLibelle{Libelle: c.Classe.Libelle(), Nombre: c.Nombre})
	}
	return stats, nil
}

package services

import (
	"context"
	"errors"
	"sort"

	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/services/auth"
	"s2inventory/services/importer"
	"s2inventory/services/job"
)

// ErrTacheInconnue is returned when an import job id is unknown or already
// evicted.
var ErrTacheInconnue = errors.New("cette tâche d'importation n'existe pas")

// ImportService triggers workbook imports as background jobs and exposes
// their progress.
type ImportService interface {
	Lance(ctx context.Context, u *models.UserIdentity, zoneBrute string, contenu []byte, nettoie bool) (string, error)
	Statut(ctx context.Context, u *models.UserIdentity, jobID string) (*job.JobInfo, error)
	Taches(ctx context.Context, u *models.UserIdentity) ([]job.JobInfo, error)
}

type importService struct {
	jobs *job.JobMonitorService
}

// NewImportService creates a new import service instance.
func NewImportService() ImportService {
	return &importService{
		jobs: job.GetJobMonitorService(),
	}
}

// Lance starts an import of the zone in the background and returns the job
// id. The caller must hold write access to the zone.
func (s *importService) Lance(ctx context.Context, u *models.UserIdentity, zoneBrute string, contenu []byte, nettoie bool) (string, error) {
	zone, err := models.ParseZoneUsid(zoneBrute)
	if err != nil {
		return "", err
	}
	if !auth.CanModifier(u, zone) {
		return "", ErrAccesRefuse
	}

	utilisateur := u.Username
	jobID := s.jobs.Enqueue(zone, utilisateur, func() importer.Result {
		return importer.NewImporter(utilisateur).Importe(zone, contenu, nettoie)
	})
	logger.Infof("Import de la zone %s lancé par %s, tâche %s", zone, utilisateur, jobID)
	return jobID, nil
}

// Statut returns the state and, once finished, the report of an import job.
// The caller must hold read access to the zone of the job.
func (s *importService) Statut(ctx context.Context, u *models.UserIdentity, jobID string) (*job.JobInfo, error) {
	info, ok := s.jobs.GetJob(jobID)
	if !ok {
		return nil, ErrTacheInconnue
	}
	if !auth.CanConsult(u, info.ZoneUsid) {
		return nil, ErrAccesRefuse
	}
	return info, nil
}

// Taches lists the import jobs of the caller's consultation zones, most
// recent first.
func (s *importService) Taches(ctx context.Context, u *models.UserIdentity) ([]job.JobInfo, error) {
	taches := make([]job.JobInfo, 0)
	for _, info := range s.jobs.GetAllJobs() {
		if auth.CanConsult(u, info.ZoneUsid) {
			taches = append(taches, info)
		}
	}
	sort.Slice(taches, func(i, j int) bool {
		if taches[i].StartTime.Equal(taches[j].StartTime) {
			return taches[i].JobID < taches[j].JobID
		}
		return taches[i].StartTime.After(taches[j].StartTime)
	})
	return taches, nil
}

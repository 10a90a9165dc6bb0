package job

import (
	"sync"
	"time"

	"s2inventory/models"
	"s2inventory/pkg/logger"
	"s2inventory/services/importer"
	"s2inventory/utils"

	"github.com/google/uuid"
)

// Import job states.
const (
	StatusPending = "pending"
	StatusStarted = "started"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// JobInfo stores information about an import job. Terminal jobs carry the
// import result; a job in the failure state crashed before producing one.
type JobInfo struct {
	JobID       string           `json:"job_id"`
	ZoneUsid    models.ZoneUsid  `json:"zone_usid"`
	Utilisateur string           `json:"utilisateur"`
	Status      string           `json:"status"`
	StartTime   time.Time        `json:"start_time"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	Result      *importer.Result `json:"result,omitempty"`
}

// JobMonitorService tracks background import jobs. Jobs are kept in memory:
// a restart forgets finished jobs, the imported data itself is in the
// database.
type JobMonitorService struct {
	jobs map[string]*JobInfo
	mu   sync.RWMutex
}

var (
	jobMonitorInstance *JobMonitorService
	jobMonitorOnce     sync.Once
)

// GetJobMonitorService returns singleton instance of JobMonitorService.
func GetJobMonitorService() *JobMonitorService {
	jobMonitorOnce.Do(func() {
		jobMonitorInstance = &JobMonitorService{
			jobs: make(map[string]*JobInfo),
		}
	})
	return jobMonitorInstance
}

// Enqueue registers an import job and runs it in the background. The
// returned id is what clients poll with.
func (jms *JobMonitorService) Enqueue(zone models.ZoneUsid, utilisateur string, run func() importer.Result) string {
	jobID := uuid.NewString()

	jms.mu.Lock()
	jms.jobs[jobID] = &JobInfo{
		JobID:       jobID,
		ZoneUsid:    zone,
		Utilisateur: utilisateur,
		Status:      StatusPending,
		StartTime:   time.Now(),
	}
	jms.mu.Unlock()

	logger.Infof("Added import job %s for zone %s", jobID, zone)
	go jms.execute(jobID, run)
	return jobID
}

// GetJob returns job information.
func (jms *JobMonitorService) GetJob(jobID string) (*JobInfo, bool) {
	jms.mu.RLock()
	defer jms.mu.RUnlock()

	job, exists := jms.jobs[jobID]
	if exists {
		// Return a copy to avoid race conditions
		jobCopy := *job
		return &jobCopy, true
	}

	return nil, false
}

// GetAllJobs returns all jobs information.
func (jms *JobMonitorService) GetAllJobs() map[string]JobInfo {
	jms.mu.RLock()
	defer jms.mu.RUnlock()

	result := make(map[string]JobInfo)
	for id, job := range jms.jobs {
		result[id] = *job
	}
	return result
}

// RemoveJob removes a job from monitoring.
func (jms *JobMonitorService) RemoveJob(jobID string) {
	jms.mu.Lock()
	defer jms.mu.Unlock()

	delete(jms.jobs, jobID)
	logger.Debugf("Removed job %s from monitoring", jobID)
}

func (jms *JobMonitorService) execute(jobID string, run func() importer.Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Import job %s panicked: %v", jobID, r)
			jms.finish(jobID, StatusFailure, &importer.Result{
				Status: importer.StatusCrash,
				Messages: []importer.Message{
					{Type: importer.MessageError, Texte: "Crash inattendu, consulter les logs pour plus de détails"},
				},
			})
		}
	}()

	jms.setStatus(jobID, StatusStarted)
	result := run()
	jms.finish(jobID, StatusSuccess, &result)
	logger.Infof("Import job %s finished with status %s", jobID, result.Status)
}

func (jms *JobMonitorService) setStatus(jobID, status string) {
	jms.mu.Lock()
	defer jms.mu.Unlock()

	if job, exists := jms.jobs[jobID]; exists {
		job.Status = status
	}
}

func (jms *JobMonitorService) finish(jobID, status string, result *importer.Result) {
	jms.mu.Lock()
	defer jms.mu.Unlock()

	job, exists := jms.jobs[jobID]
	if !exists {
		return
	}
	now := time.Now()
	job.Status = status
	job.Result = result
	job.EndTime = &now
	utils.CountImportJob(status)
}

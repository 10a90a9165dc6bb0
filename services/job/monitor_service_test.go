package job

import (
	"testing"
	"time"

	"s2inventory/models"
	"s2inventory/services/importer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attendFin(t *testing.T, jms *JobMonitorService, jobID string) *JobInfo {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := jms.GetJob(jobID)
		require.True(t, ok)
		if job.Status == StatusSuccess || job.Status == StatusFailure {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s did not finish in time", jobID)
	return nil
}

func TestEnqueueSuccess(t *testing.T) {
	jms := GetJobMonitorService()

	jobID := jms.Enqueue(models.ZoneRVC, "jdupont", func() importer.Result {
		var res importer.Result
		res.Status = importer.StatusOK
		return res
	})
	defer jms.RemoveJob(jobID)

	job := attendFin(t, jms, jobID)
	assert.Equal(t, StatusSuccess, job.Status)
	require.NotNil(t, job.Result)
	assert.Equal(t, importer.StatusOK, job.Result.Status)
	assert.Equal(t, models.ZoneRVC, job.ZoneUsid)
	assert.Equal(t, "jdupont", job.Utilisateur)
	assert.NotNil(t, job.EndTime)
}

func TestEnqueuePanicBecomesCrash(t *testing.T) {
	jms := GetJobMonitorService()

	jobID := jms.Enqueue(models.ZoneCBG, "jdupont", func() importer.Result {
		panic("boom")
	})
	defer jms.RemoveJob(jobID)

	job := attendFin(t, jms, jobID)
	assert.Equal(t, StatusFailure, job.Status)
	require.NotNil(t, job.Result)
	assert.Equal(t, importer.StatusCrash, job.Result.Status)
	require.Len(t, job.Result.Messages, 1)
	assert.Equal(t, importer.MessageError, job.Result.Messages[0].Type)
	assert.Equal(t, "Crash inattendu, consulter les logs pour plus de détails", job.Result.Messages[0].Texte)
}

func TestGetJobUnknown(t *testing.T) {
	jms := GetJobMonitorService()
	_, ok := jms.GetJob("inconnu")
	assert.False(t, ok)
}

func TestGetJobReturnsCopy(t *testing.T) {
	jms := GetJobMonitorService()

	jobID := jms.Enqueue(models.ZoneTRS, "jdupont", func() importer.Result {
		return importer.Result{Status: importer.StatusOK}
	})
	defer jms.RemoveJob(jobID)
	attendFin(t, jms, jobID)

	job, ok := jms.GetJob(jobID)
	require.True(t, ok)
	job.Status = "trafiqué"

	relu, ok := jms.GetJob(jobID)
	require.True(t, ok)
	assert.Equal(t, StatusSuccess, relu.Status)
}

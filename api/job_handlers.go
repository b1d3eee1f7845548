package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-stringdist/internal/errors"
	"github.com/gcbaptista/go-stringdist/model"
)

// GetJobHandler handles requests to get job status by ID. A completed
// matrix job carries its result.
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.engine.GetJob(jobID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrJobNotFound) {
			SendJobNotFoundError(c, jobID)
			return
		}
		SendInternalError(c, "get job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobsHandler handles requests to list jobs for a corpus
func (api *API) ListJobsHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")
	statusParam := c.Query("status")

	var statusFilter *model.JobStatus
	if statusParam != "" {
		status := model.JobStatus(statusParam)
		statusFilter = &status
	}

	jobs := api.engine.ListJobs(corpusName, statusFilter)
	c.JSON(http.StatusOK, gin.H{
		"jobs":        jobs,
		"corpus_name": corpusName,
		"total":       len(jobs),
	})
}

// GetJobMetricsHandler handles requests to get job performance metrics
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics":      api.engine.JobMetrics(),
		"success_rate": api.engine.JobSuccessRate(),
	})
}

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-stringdist/services"
)

// maxRequestBodySize bounds distance request bodies (16 MB).
const maxRequestBodySize = 16 << 20

// API holds dependencies for API handlers, primarily the distance engine.
type API struct {
	engine services.DistanceService
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.DistanceService) *API {
	return &API{
		engine: engine,
	}
}

// SetupRoutes defines all the API routes for the distance service.
func SetupRoutes(router *gin.Engine, engine services.DistanceService) {
	apiHandler := NewAPI(engine)

	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Synchronous distance routes
	distanceRoutes := router.Group("/distance")
	{
		distanceRoutes.POST("/pairwise", apiHandler.PairwiseHandler) // Elementwise distances with recycling
		distanceRoutes.POST("/matrix", apiHandler.MatrixHandler)     // Full cross-product matrix
	}

	// Corpus management routes
	corpusRoutes := router.Group("/corpora")
	{
		corpusRoutes.GET("", apiHandler.ListCorporaHandler)                      // List all corpora
		corpusRoutes.PUT("/:corpusName", apiHandler.CreateCorpusHandler)         // Store a named string vector
		corpusRoutes.GET("/:corpusName", apiHandler.GetCorpusHandler)            // Describe a corpus
		corpusRoutes.DELETE("/:corpusName", apiHandler.DeleteCorpusHandler)      // Delete a corpus
		corpusRoutes.POST("/:corpusName/matrix", apiHandler.CorpusMatrixHandler) // Start an async matrix job
		corpusRoutes.GET("/:corpusName/jobs", apiHandler.ListJobsHandler)        // List jobs for a corpus
	}

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status by ID
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-stringdist",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

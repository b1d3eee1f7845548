package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-stringdist/internal/errors"
)

// CreateCorpusRequest defines the body for storing a named string vector.
type CreateCorpusRequest struct {
	Values []string `json:"values"`
}

// CreateCorpusHandler stores a named string vector for reuse as the A side
// of matrix computations.
// Request Body: CreateCorpusRequest
func (api *API) CreateCorpusHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")
	if result := ValidateCorpusName(corpusName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var req CreateCorpusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if err := api.engine.CreateCorpus(corpusName, req.Values); err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrCorpusAlreadyExists):
			SendCorpusExistsError(c, corpusName)
		case errors.Is(err, internalErrors.ErrInvalidInput):
			SendInvalidParametersError(c, err)
		default:
			SendInternalError(c, "create corpus", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"name": corpusName,
		"size": len(req.Values),
	})
}

// GetCorpusHandler describes one stored corpus.
func (api *API) GetCorpusHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")
	if result := ValidateCorpusName(corpusName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	info, err := api.engine.GetCorpus(corpusName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrCorpusNotFound) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		SendInternalError(c, "get corpus", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// DeleteCorpusHandler removes a stored corpus.
func (api *API) DeleteCorpusHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")
	if result := ValidateCorpusName(corpusName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.DeleteCorpus(corpusName); err != nil {
		if errors.Is(err, internalErrors.ErrCorpusNotFound) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		SendInternalError(c, "delete corpus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Corpus '" + corpusName + "' deleted"})
}

// ListCorporaHandler lists all stored corpora.
func (api *API) ListCorporaHandler(c *gin.Context) {
	corpora := api.engine.ListCorpora()
	c.JSON(http.StatusOK, gin.H{
		"corpora": corpora,
		"total":   len(corpora),
	})
}

// CorpusMatrixHandler starts an asynchronous matrix computation with the
// stored corpus as the A side. The request's A vector is ignored; B supplies
// the matrix columns. Returns 202 with the job ID tracking the computation.
// Request Body: DistanceRequest
func (api *API) CorpusMatrixHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")
	if result := ValidateCorpusName(corpusName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateDistanceRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	jobID, err := api.engine.MatrixAgainstCorpus(corpusName, req.toQuery())
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrCorpusNotFound):
			SendCorpusNotFoundError(c, corpusName)
		case errors.Is(err, internalErrors.ErrUnknownMethod):
			SendUnknownMethodError(c, err)
		case errors.Is(err, internalErrors.ErrInvalidInput):
			SendInvalidParametersError(c, err)
		default:
			SendJobExecutionError(c, "corpus matrix", err)
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"job_id":      jobID,
		"corpus_name": corpusName,
		"message":     "Matrix computation started",
	})
}

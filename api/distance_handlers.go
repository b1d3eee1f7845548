package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-stringdist/internal/errors"
	"github.com/gcbaptista/go-stringdist/services"
)

// DistanceRequest defines the JSON body shared by the pairwise, matrix, and
// corpus-matrix endpoints. A null entry in a vector is a missing string and
// produces a null (Unknown) distance.
type DistanceRequest struct {
	A       []*string `json:"a"`
	B       []*string `json:"b"`
	Method  string    `json:"method"`
	Weights []float64 `json:"weights,omitempty"` // (deletion, insertion, substitution, transposition)
	MaxDist *float64  `json:"max_dist,omitempty"`
	Q       *int      `json:"q,omitempty"`
	P       *float64  `json:"p,omitempty"`
	Workers int       `json:"workers,omitempty"`
}

func (req *DistanceRequest) toQuery() services.DistanceQuery {
	return services.DistanceQuery{
		A:       req.A,
		B:       req.B,
		Method:  req.Method,
		Weights: req.Weights,
		MaxDist: req.MaxDist,
		Q:       req.Q,
		P:       req.P,
		Workers: req.Workers,
	}
}

// PairwiseHandler computes elementwise distances between two vectors,
// recycling the shorter one.
// Request Body: DistanceRequest
func (api *API) PairwiseHandler(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateDistanceRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	result, err := api.engine.Pairwise(req.toQuery())
	if err != nil {
		sendDistanceServiceError(c, req.Method, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MatrixHandler computes the full cross-product distance matrix between two
// vectors, fanning the columns out across workers.
// Request Body: DistanceRequest
func (api *API) MatrixHandler(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateDistanceRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	result, err := api.engine.Matrix(c.Request.Context(), req.toQuery())
	if err != nil {
		sendDistanceServiceError(c, req.Method, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// sendDistanceServiceError maps engine errors onto the API error envelope.
func sendDistanceServiceError(c *gin.Context, method string, err error) {
	switch {
	case errors.Is(err, internalErrors.ErrUnknownMethod):
		SendUnknownMethodError(c, err)
	case errors.Is(err, internalErrors.ErrInvalidInput):
		SendInvalidParametersError(c, err)
	default:
		SendDistanceError(c, method, err)
	}
}

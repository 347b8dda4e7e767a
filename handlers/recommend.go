package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/myjobmatch/recommender/models"
	"github.com/myjobmatch/recommender/recommender"
	"github.com/myjobmatch/recommender/service"
	"github.com/myjobmatch/recommender/storage"
	"github.com/myjobmatch/recommender/tools"
)

// RecommendHandler handles ranking requests
type RecommendHandler struct {
	recommender *service.Recommender
	registry    *tools.ToolRegistry
	logger      *zap.Logger
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(rec *service.Recommender, registry *tools.ToolRegistry, logger *zap.Logger) *RecommendHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendHandler{
		recommender: rec,
		registry:    registry,
		logger:      logger.Named("handler"),
	}
}

// RegisterRoutes registers ranking endpoints on the given router group
func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recommend", h.Recommend)
	router.POST("/recommend/batch", h.RecommendBatch)
	router.POST("/similar", h.Similar)
	router.GET("/employees/:id/recommendations", h.EmployeeRecommendations)
	router.GET("/jobs/:id/similar", h.JobSimilar)
	router.GET("/tools", h.GetTools)
}

// Recommend ranks a job pool for an employee
// @Summary Recommend jobs for an employee
// @Description Rank the given jobs against the employee's career goal, skills and salary range
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Employee and job pool"
// @Param explain query bool false "Include per-signal scores"
// @Success 200 {array} models.RecommendationItem "Ranked jobs, best first"
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recommend [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidInput(c, err)
		return
	}

	recs, err := h.recommender.Recommend(c.Request.Context(), req.Employee, req.Jobs, req.K)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecommendationItems(recs, models.IndexJobIDs(req.Jobs), explain(c)))
}

// Similar ranks a job pool against one of its jobs
// @Summary Find similar jobs
// @Description Rank the given jobs against the job with the given id
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.SimilarRequest true "Target job id and job pool"
// @Param explain query bool false "Include per-signal scores"
// @Success 200 {array} models.RecommendationItem "Similar jobs, best first"
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Failure 404 {object} models.ErrorResponse "Job not in pool"
// @Router /similar [post]
func (h *RecommendHandler) Similar(c *gin.Context) {
	var req models.SimilarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidInput(c, err)
		return
	}
	if req.JobID.IsZero() {
		h.invalidInput(c, errors.New("jobId is required"))
		return
	}

	recs, err := h.recommender.Similar(c.Request.Context(), req.JobID.String(), req.Jobs, req.K)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecommendationItems(recs, models.IndexJobIDs(req.Jobs), explain(c)))
}

// RecommendBatch ranks one job pool for several employees
// @Summary Recommend jobs for many employees
// @Description Rank the given jobs for each employee; results follow the request order
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.BatchRecommendRequest true "Employees and job pool"
// @Param explain query bool false "Include per-signal scores"
// @Success 200 {object} models.BatchResponse "One ranking per employee"
// @Failure 400 {object} models.ErrorResponse "Invalid input"
// @Router /recommend/batch [post]
func (h *RecommendHandler) RecommendBatch(c *gin.Context) {
	var req models.BatchRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidInput(c, err)
		return
	}

	batch, err := h.recommender.RecommendBatch(c.Request.Context(), req.Employees, req.Jobs, req.K)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ids := models.IndexJobIDs(req.Jobs)
	withScores := explain(c)
	results := make([][]models.RecommendationItem, 0, len(batch))
	for _, recs := range batch {
		results = append(results, models.NewRecommendationItems(recs, ids, withScores))
	}

	c.JSON(http.StatusOK, models.BatchResponse{Results: results})
}

// EmployeeRecommendations ranks the catalog for a catalog employee
// @Summary Recommend catalog jobs for a catalog employee
// @Tags Catalog
// @Produce json
// @Param id path string true "Employee id"
// @Param k query int false "Number of results"
// @Param explain query bool false "Include per-signal scores"
// @Success 200 {array} models.RecommendationItem "Ranked jobs, best first"
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Failure 501 {object} models.ErrorResponse "No catalog configured"
// @Router /employees/{id}/recommendations [get]
func (h *RecommendHandler) EmployeeRecommendations(c *gin.Context) {
	k, err := queryK(c)
	if err != nil {
		h.invalidInput(c, err)
		return
	}

	recs, err := h.recommender.RecommendForEmployee(c.Request.Context(), c.Param("id"), k)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecommendationItems(recs, nil, explain(c)))
}

// JobSimilar ranks the catalog against one catalog job
// @Summary Find catalog jobs similar to a catalog job
// @Tags Catalog
// @Produce json
// @Param id path string true "Job id"
// @Param k query int false "Number of results"
// @Param explain query bool false "Include per-signal scores"
// @Success 200 {array} models.RecommendationItem "Similar jobs, best first"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 501 {object} models.ErrorResponse "No catalog configured"
// @Router /jobs/{id}/similar [get]
func (h *RecommendHandler) JobSimilar(c *gin.Context) {
	k, err := queryK(c)
	if err != nil {
		h.invalidInput(c, err)
		return
	}

	recs, err := h.recommender.SimilarForJob(c.Request.Context(), c.Param("id"), k)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewRecommendationItems(recs, nil, explain(c)))
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tools"
// @Router /tools [get]
func (h *RecommendHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.GetToolDefinitions(),
	})
}

func (h *RecommendHandler) invalidInput(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid input",
		Code:    http.StatusBadRequest,
		Details: err.Error(),
	})
}

func (h *RecommendHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recommender.ErrInvalidInput):
		h.invalidInput(c, err)
	case errors.Is(err, recommender.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Not found",
			Code:    http.StatusNotFound,
			Details: err.Error(),
		})
	case errors.Is(err, service.ErrCatalogUnavailable):
		c.JSON(http.StatusNotImplemented, models.ErrorResponse{
			Error: "No catalog configured",
			Code:  http.StatusNotImplemented,
		})
	default:
		h.logger.Error("ranking failed",
			zap.String("request_id", GetRequestID(c)),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Ranking failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
	}
}

func explain(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.Query("explain"))
	return err == nil && v
}

func queryK(c *gin.Context) (int, error) {
	raw := c.Query("k")
	if raw == "" {
		return 0, nil
	}
	k, err := strconv.Atoi(raw)
	if err != nil || k < 0 {
		return 0, errors.New("k must be a non-negative integer")
	}
	return k, nil
}

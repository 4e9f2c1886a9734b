package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spidergraph/internal/domain"
	"spidergraph/internal/ethos"
	"spidergraph/internal/llm"
	"spidergraph/internal/service"
)

const (
	minQueryLen = 2
	maxQueryLen = 100
)

// ProfileHandler mantiene dependencias para search, activities y analyze.
type ProfileHandler struct {
	logger      *zap.Logger
	ethosClient *ethos.Client
	analysisSvc *service.AnalysisService
	cache       service.AnalysisCache
}

// NewProfileHandler crea una instancia de ProfileHandler con sus dependencias.
func NewProfileHandler(
	logger *zap.Logger,
	ethosClient *ethos.Client,
	analysisSvc *service.AnalysisService,
	cache service.AnalysisCache,
) *ProfileHandler {
	return &ProfileHandler{
		logger:      logger,
		ethosClient: ethosClient,
		analysisSvc: analysisSvc,
		cache:       cache,
	}
}

// SearchGET maneja GET /api/search.
func (h *ProfileHandler) SearchGET(c *gin.Context) {
	query := c.Query("query")
	limit := c.DefaultQuery("limit", "10")
	offset := c.DefaultQuery("offset", "0")
	h.search(c, query, limit, offset)
}

// SearchPOST maneja POST /api/search.
func (h *ProfileHandler) SearchPOST(c *gin.Context) {
	var req struct {
		Query  string `json:"query"`
		Limit  string `json:"limit"`
		Offset string `json:"offset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Limit == "" {
		req.Limit = "10"
	}
	if req.Offset == "" {
		req.Offset = "0"
	}
	h.search(c, req.Query, req.Limit, req.Offset)
}

// search valida los limites de la query y reenvia el JSON upstream tal cual.
func (h *ProfileHandler) search(c *gin.Context, query, limit, offset string) {
	if len(query) < minQueryLen || len(query) > maxQueryLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must be between 2 and 100 characters"})
		return
	}

	raw, err := h.ethosClient.Search(c.Request.Context(), query, limit, offset)
	if err != nil {
		h.logger.Error("ethos search failed", zap.Error(err), zap.String("query", query))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data from Ethos API"})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// Activities maneja POST /api/activities: coleccion paginada completa,
// filtrada a reviews y vouches.
func (h *ProfileHandler) Activities(c *gin.Context) {
	var req struct {
		Userkey string `json:"userkey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userkey is required"})
		return
	}

	activities, err := h.ethosClient.CollectActivities(c.Request.Context(), req.Userkey)
	if err != nil {
		h.logger.Error("collect activities failed", zap.Error(err), zap.String("userkey", req.Userkey))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch activities from Ethos API",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, domain.ActivitiesPage{
		Values: activities,
		Total:  len(activities),
		Limit:  h.ethosClient.PageSize(),
		Offset: 0,
	})
}

// Analyze maneja POST /api/analyze: corre el pipeline de scoring sobre las
// actividades que manda el caller y cachea el resultado para el preview.
func (h *ProfileHandler) Analyze(c *gin.Context) {
	var req struct {
		Userkey    string            `json:"userkey" binding:"required"`
		Activities []domain.Activity `json:"activities" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userkey and activities array are required"})
		return
	}

	analysis, err := h.analysisSvc.Analyze(c.Request.Context(), req.Userkey, req.Activities)
	if err != nil {
		h.writeAnalyzeError(c, req.Userkey, err)
		return
	}

	// Cache best-effort: un fallo de cache nunca tumba el analisis.
	if h.cache != nil {
		if cacheErr := h.cache.Set(req.Userkey, analysis); cacheErr != nil {
			h.logger.Warn("analysis cache set failed", zap.Error(cacheErr), zap.String("userkey", req.Userkey))
		}
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *ProfileHandler) writeAnalyzeError(c *gin.Context, userkey string, err error) {
	switch {
	case errors.Is(err, service.ErrNoActivities):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No reviews or vouches found for analysis"})
	case errors.Is(err, llm.ErrMissingAPIKey):
		h.logger.Error("analysis misconfigured", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenRouter API key not configured"})
	default:
		h.logger.Error("analysis failed", zap.Error(err), zap.String("userkey", userkey))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to analyze profile",
			"details": err.Error(),
		})
	}
}

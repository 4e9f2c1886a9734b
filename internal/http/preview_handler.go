package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spidergraph/internal/ethos"
	"spidergraph/internal/render"
	"spidergraph/internal/service"
)

const (
	svgContentType = "image/svg+xml"
	// El preview exitoso cachea mas tiempo que el fallback.
	cacheControlSuccess  = "public, max-age=3600"
	cacheControlFallback = "public, max-age=300"
)

// PreviewHandler sirve la imagen de preview social. Su contrato es
// devolver siempre una imagen: cualquier error degrada al fallback.
type PreviewHandler struct {
	logger        *zap.Logger
	ethosClient   *ethos.Client
	cache         service.AnalysisCache
	categoryOrder []string
}

// NewPreviewHandler crea una instancia de PreviewHandler.
func NewPreviewHandler(
	logger *zap.Logger,
	ethosClient *ethos.Client,
	cache service.AnalysisCache,
	categoryOrder []string,
) *PreviewHandler {
	return &PreviewHandler{
		logger:        logger,
		ethosClient:   ethosClient,
		cache:         cache,
		categoryOrder: categoryOrder,
	}
}

// OGImage maneja GET /api/og-image?username=...
func (h *PreviewHandler) OGImage(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.String(http.StatusBadRequest, "Username parameter required")
		return
	}

	// Con analisis cacheado dibujamos el chart directo; el userkey de
	// perfiles de X coincide con la clave que arma el preview.
	if h.cache != nil {
		analysis, ok, err := h.cache.Get("service:x.com:" + username)
		if err != nil {
			h.logger.Warn("analysis cache get failed", zap.Error(err), zap.String("username", username))
		}
		if ok {
			svg := render.SpiderGraphSVG(username, username, analysis.Results, h.categoryOrder)
			h.writeSVG(c, svg, cacheControlSuccess)
			return
		}
	}

	// Sin cache: best-effort search para resolver el display name.
	name := username
	profiles, err := h.ethosClient.SearchProfiles(c.Request.Context(), username, 1)
	if err != nil {
		h.logger.Warn("preview search failed", zap.Error(err), zap.String("username", username))
	} else if len(profiles) > 0 {
		if profiles[0].Name != "" {
			name = profiles[0].Name
		} else if profiles[0].Username != "" {
			name = profiles[0].Username
		}
	}

	h.writeSVG(c, render.FallbackSVG(username, name), cacheControlFallback)
}

func (h *PreviewHandler) writeSVG(c *gin.Context, svg, cacheControl string) {
	c.Header("Cache-Control", cacheControl)
	c.Data(http.StatusOK, svgContentType, []byte(svg))
}

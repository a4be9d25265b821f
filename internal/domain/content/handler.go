package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/pkg/response"
)

// Handler serves the static site data.
type Handler struct {
	mapsAPIKey string
}

// NewHandler creates content handler
func NewHandler(mapsAPIKey string) *Handler {
	return &Handler{mapsAPIKey: mapsAPIKey}
}

// ListPrograms handles GET /api/v1/content/programs
func (h *Handler) ListPrograms(c *gin.Context) {
	response.Success(c, http.StatusOK, Programs)
}

// GetContactInfo handles GET /api/v1/content/contact-info
func (h *Handler) GetContactInfo(c *gin.Context) {
	response.Success(c, http.StatusOK, Office)
}

// GetMapConfig handles GET /api/v1/content/map-config
func (h *Handler) GetMapConfig(c *gin.Context) {
	if h.mapsAPIKey == "" {
		response.Error(c, http.StatusNotFound, "MAP_NOT_CONFIGURED", "Map display is not configured")
		return
	}
	response.Success(c, http.StatusOK, MapConfig{
		APIKey:    h.mapsAPIKey,
		CenterLat: MapCenterLat,
		CenterLng: MapCenterLng,
		Zoom:      MapZoom,
	})
}

// RegisterRoutes registers public content routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	ct := r.Group("/content")
	{
		ct.GET("/programs", handler.ListPrograms)
		ct.GET("/contact-info", handler.GetContactInfo)
		ct.GET("/map-config", handler.GetMapConfig)
	}
}

package export

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/XenomaCode/MVP-CATERING/internal/metrics"
	custom_error "github.com/XenomaCode/MVP-CATERING/pkg/errors"
	"github.com/XenomaCode/MVP-CATERING/pkg/roles"
	"github.com/XenomaCode/MVP-CATERING/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	exporter *Exporter
	log      *zap.Logger
}

func NewHandler(exporter *Exporter, log *zap.Logger) *Handler {
	return &Handler{
		exporter: exporter,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/events/:id/export", security.RequireCapability(roles.CapRead), h.DownloadEventPdf)
}

func (h *Handler) DownloadEventPdf(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	data, filename, err := h.exporter.Export(id)
	if err != nil {
		status := custom_error.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error("Error al generar PDF del evento", zap.Int("event_id", id), zap.Error(err))
			c.AbortWithStatusJSON(status, gin.H{"error": "Error al generar PDF del evento"})
			return
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}

	metrics.ExportsGenerated.Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

package events

import (
	"net/http"
	"strconv"

	"github.com/XenomaCode/MVP-CATERING/internal/metrics"
	custom_error "github.com/XenomaCode/MVP-CATERING/pkg/errors"
	"github.com/XenomaCode/MVP-CATERING/pkg/roles"
	"github.com/XenomaCode/MVP-CATERING/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	r   EventRepository
	log *zap.Logger
}

func NewEventHandler(r EventRepository, log *zap.Logger) *EventHandler {
	return &EventHandler{
		r:   r,
		log: log,
	}
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/events", security.RequireCapability(roles.CapRead), h.GetEvents)
	router.GET("/events/:id", security.RequireCapability(roles.CapRead), h.GetEvent)
	router.POST("/events", security.RequireCapability(roles.CapWriteEvents), h.CreateEvent)
	router.PUT("/events/:id", security.RequireCapability(roles.CapWriteEvents), h.UpdateEvent)
	router.DELETE("/events/:id", security.RequireCapability(roles.CapDelete), h.RemoveEvent)
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.r.GetEvents()
	if err != nil {
		h.respondError(c, err, "Error al obtener eventos")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := bindEventID(c)
	if !ok {
		return
	}

	event, err := h.r.GetEventDetail(id)
	if err != nil {
		h.respondError(c, err, "Error al obtener evento")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	userID, err := security.CurrentUserID(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return
	}

	event, err := h.r.CreateEvent(userID, req)
	if err != nil {
		metrics.EventMutations.WithLabelValues("create", "error").Inc()
		h.respondError(c, err, "Error al crear evento")
		return
	}

	metrics.EventMutations.WithLabelValues("create", "ok").Inc()
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := bindEventID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	event, err := h.r.UpdateEvent(id, req)
	if err != nil {
		metrics.EventMutations.WithLabelValues("update", "error").Inc()
		h.respondError(c, err, "Error al actualizar evento")
		return
	}

	metrics.EventMutations.WithLabelValues("update", "ok").Inc()
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) RemoveEvent(c *gin.Context) {
	id, ok := bindEventID(c)
	if !ok {
		return
	}

	if err := h.r.RemoveEvent(id); err != nil {
		metrics.EventMutations.WithLabelValues("delete", "error").Inc()
		h.respondError(c, err, "Error al eliminar evento")
		return
	}

	metrics.EventMutations.WithLabelValues("delete", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *EventHandler) respondError(c *gin.Context, err error, logMsg string) {
	status := custom_error.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error(logMsg, zap.Error(err))
		c.AbortWithStatusJSON(status, gin.H{"error": logMsg})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func bindEventID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return 0, false
	}
	return id, true
}

package inventory

import (
	"net/http"
	"strconv"

	custom_error "github.com/XenomaCode/MVP-CATERING/pkg/errors"
	"github.com/XenomaCode/MVP-CATERING/pkg/roles"
	"github.com/XenomaCode/MVP-CATERING/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ItemHandler struct {
	r   ItemRepository
	log *zap.Logger
}

func NewItemHandler(r ItemRepository, log *zap.Logger) *ItemHandler {
	return &ItemHandler{
		r:   r,
		log: log,
	}
}

func (h *ItemHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/inventory", security.RequireCapability(roles.CapRead), h.GetItems)
	router.GET("/inventory/:id", security.RequireCapability(roles.CapRead), h.GetItem)
	router.POST("/inventory", security.RequireCapability(roles.CapWriteInventory), h.CreateItem)
	router.PUT("/inventory/:id", security.RequireCapability(roles.CapWriteInventory), h.UpdateItem)
	router.DELETE("/inventory/:id", security.RequireCapability(roles.CapDelete), h.RemoveItem)
}

func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.r.GetItems()
	if err != nil {
		h.respondError(c, err, "Error al obtener artículos")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	item, err := h.r.GetItem(id)
	if err != nil {
		h.respondError(c, err, "Error al obtener artículo")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	item, err := h.r.PersistItem(req)
	if err != nil {
		h.respondError(c, err, "Error al crear artículo")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	item, err := h.r.UpdateItem(id, req)
	if err != nil {
		h.respondError(c, err, "Error al actualizar artículo")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) RemoveItem(c *gin.Context) {
	id, ok := bindItemID(c)
	if !ok {
		return
	}

	if err := h.r.RemoveItem(id); err != nil {
		h.respondError(c, err, "Error al eliminar artículo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ItemHandler) respondError(c *gin.Context, err error, logMsg string) {
	status := custom_error.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error(logMsg, zap.Error(err))
		c.AbortWithStatusJSON(status, gin.H{"error": logMsg})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func bindItemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return 0, false
	}
	return id, true
}

// server/internal/api/handlers/inventory_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharma-factory-api-server/internal/models"
	"pharma-factory-api-server/internal/repository"
	"pharma-factory-api-server/internal/socket"
	"pharma-factory-api-server/internal/stock"
)

// InventoryHandler serves one inventory collection. The raw-materials
// and end-products route groups each get an instance wired to the
// matching repository.
type InventoryHandler struct {
	Repo   *repository.InventoryRepository
	Hub    *socket.Hub
	Logger *zap.Logger
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) ListByCategory(c *gin.Context) {
	items, err := h.Repo.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListLowStock returns the under-threshold items, the candidates the
// operator selects when raising reorder requests.
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.Repo.ListBelowThreshold(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var input models.InventoryInput
	if err := bindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item, err := h.Repo.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.alertIfBelowThreshold(item)
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var input models.InventoryInput
	if err := bindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item, err := h.Repo.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.alertIfBelowThreshold(item)
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// alertIfBelowThreshold pushes a stock alert to the dashboards after a
// write leaves the item low or out of stock.
func (h *InventoryHandler) alertIfBelowThreshold(item *models.InventoryItem) {
	if item.Status == stock.StatusInStock {
		return
	}
	h.Logger.Info("broadcasting stock alert",
		zap.String("id", item.ID.Hex()),
		zap.String("status", string(item.Status)))
	h.Hub.Broadcast(socket.StockAlert{
		Type:      "stock_alert",
		ItemID:    item.ID.Hex(),
		Name:      item.Name,
		Status:    string(item.Status),
		Quantity:  item.Quantity,
		Timestamp: time.Now(),
	})
}

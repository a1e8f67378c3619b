package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"growroom/internal/biobizz"
)

// UpdateInventoryRequest is the payload of PATCH /api/v1/inventory/{product}.
// Omitted fields are left unchanged.
type UpdateInventoryRequest struct {
	Owned      *bool    `json:"owned,omitempty" example:"true"`
	BottleSize *float64 `json:"bottle_size_ml,omitempty" example:"500"`
	CurrentMl  *float64 `json:"current_ml,omitempty" example:"320"`
}

// @Summary      List inventory
// @Description  Every catalogue product with its bottle and a supply forecast from week onwards.
// @Tags         inventory
// @Produce      json
// @Param        week  query  int  false  "Grow week, omitted means the current week"  example(10)
// @Success      200  {array}   service.InventoryItem
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/inventory [get]
func (h *Handler) listInventory(c *gin.Context) {
	week, ok := queryWeek(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidWeek})
		return
	}
	items, err := h.services.Inventory.List(c.Request.Context(), week)
	if err != nil {
		h.serviceError(c, "inventory_list_failed", err, "week", week)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Update a bottle
// @Description  Marking a product owned without current_ml assumes a full bottle; unmarking it empties the bottle.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        product  path  string                  true  "Product id"  example(bio-bloom)
// @Param        body     body  UpdateInventoryRequest  true  "Fields to change"
// @Success      200  {object}  models.InventoryRecord
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/inventory/{product} [patch]
func (h *Handler) updateInventory(c *gin.Context) {
	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	product := c.Param("product")
	rec, err := h.services.Inventory.Update(c.Request.Context(), product, biobizz.InventoryPatch{
		Owned:      req.Owned,
		BottleSize: req.BottleSize,
		CurrentMl:  req.CurrentMl,
	})
	if err != nil {
		h.serviceError(c, "inventory_update_failed", err, "product", product)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Refill a bottle
// @Tags         inventory
// @Produce      json
// @Param        product  path  string  true  "Product id"  example(calmag)
// @Success      200  {object}  models.InventoryRecord
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/inventory/{product}/refill [post]
func (h *Handler) refillInventory(c *gin.Context) {
	product := c.Param("product")
	rec, err := h.services.Inventory.Refill(c.Request.Context(), product)
	if err != nil {
		h.serviceError(c, "inventory_refill_failed", err, "product", product)
		return
	}
	c.JSON(http.StatusOK, rec)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"growroom/internal/models"
	"growroom/internal/service"
)

// CreatePlantRequest is the payload of POST /api/v1/plants.
type CreatePlantRequest struct {
	Name   string `json:"name" binding:"required" example:"Northern Lights #3"`
	Strain string `json:"strain,omitempty" example:"Northern Lights"`
	// seedling | vegetative | flowering | harvested | empty
	Stage string `json:"stage,omitempty" example:"vegetative"`
	// RFC3339 or YYYY-MM-DD
	PlantedDate string `json:"planted_date,omitempty" example:"2025-05-01"`
	HarvestDate string `json:"harvest_date,omitempty" example:"2025-08-20"`
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseQueryTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// @Summary      List active plants
// @Description  Plants that are neither harvested nor empty, oldest planting first.
// @Tags         plants
// @Produce      json
// @Success      200  {array}   models.Plant
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/plants [get]
func (h *Handler) listPlants(c *gin.Context) {
	plants, err := h.services.Plants.ListActive(c.Request.Context())
	if err != nil {
		h.serviceError(c, "plants_list_failed", err)
		return
	}
	if plants == nil {
		plants = []models.Plant{}
	}
	c.JSON(http.StatusOK, plants)
}

// @Summary      Add a plant
// @Tags         plants
// @Accept       json
// @Produce      json
// @Param        body  body  CreatePlantRequest  true  "Plant"
// @Success      201  {object}  models.Plant
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/plants [post]
func (h *Handler) createPlant(c *gin.Context) {
	var req CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	planted, err := optionalDate(req.PlantedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'planted_date': " + err.Error()})
		return
	}
	harvest, err := optionalDate(req.HarvestDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'harvest_date': " + err.Error()})
		return
	}

	p, err := h.services.Plants.Create(c.Request.Context(), service.PlantParams{
		Name:        req.Name,
		Strain:      req.Strain,
		Stage:       req.Stage,
		PlantedDate: planted,
		HarvestDate: harvest,
	})
	if err != nil {
		h.serviceError(c, "plant_create_failed", err, "name", req.Name)
		return
	}
	c.JSON(http.StatusCreated, p)
}

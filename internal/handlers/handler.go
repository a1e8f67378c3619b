package handlers

import (
	"growroom/internal/logger"
	"growroom/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// live dashboard stream on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerCatalogueRoutes(api)
		h.registerDosageRoutes(api)
		h.registerStatusRoutes(api)
		h.registerInventoryRoutes(api)
		h.registerPlantRoutes(api)
		h.registerTelemetryRoutes(api)
		h.registerEventRoutes(api)
	}
}

func (h *Handler) registerCatalogueRoutes(api *gin.RouterGroup) {
	api.GET("/products", h.listProducts)
	api.GET("/phases", h.listPhases)
	api.GET("/substrates", h.listSubstrates)
	api.GET("/schedule", h.getSchedule)
	api.GET("/schedule/:week", h.getScheduleWeek)
}

func (h *Handler) registerDosageRoutes(api *gin.RouterGroup) {
	api.GET("/dosage", h.getDosage)
	doses := api.Group("/doses")
	{
		// Body example: {"liters":10,"week":0,"substrate":"lightMix"}
		doses.POST("", h.logDose)
		doses.GET("", h.listDoses)
	}
}

func (h *Handler) registerStatusRoutes(api *gin.RouterGroup) {
	api.GET("/status", h.getStatus)
	api.GET("/status/live", h.getLiveStatus)
	api.GET("/recommendations", h.getRecommendations)
	api.POST("/recommendations/evaluate", h.evaluateRecommendations)
}

func (h *Handler) registerInventoryRoutes(api *gin.RouterGroup) {
	inv := api.Group("/inventory")
	{
		inv.GET("", h.listInventory)
		inv.PATCH("/:product", h.updateInventory)
		inv.POST("/:product/refill", h.refillInventory)
	}
}

func (h *Handler) registerPlantRoutes(api *gin.RouterGroup) {
	plants := api.Group("/plants")
	{
		plants.GET("", h.listPlants)
		plants.POST("", h.createPlant)
	}
}

func (h *Handler) registerTelemetryRoutes(api *gin.RouterGroup) {
	tel := api.Group("/telemetry")
	{
		tel.GET("", h.getTelemetry)
		// ESP32 push, same JSON as its /api/status
		tel.POST("", h.pushTelemetry)
	}
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	api.GET("/events", h.getEvents)
}

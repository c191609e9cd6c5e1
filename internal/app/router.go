package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/evergrid/contract-timeline-backend/internal/handlers"
	"github.com/evergrid/contract-timeline-backend/internal/middleware"
	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
)

func wireRouter(cfg Config, log *logger.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// Events
	router.POST("/event", h.Event.Submit)
	router.GET("/:contract_number/contract_timeline", h.Event.Timeline)

	// Contracts
	contract := router.Group("/contract")
	{
		contract.POST("", h.Contract.Create)
		contract.GET("/:contract_number", h.Contract.Get)
		contract.DELETE("/:contract_number", h.Contract.Delete)
	}

	return router
}

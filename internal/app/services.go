package app

import (
	"gorm.io/gorm"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/services"
	"github.com/evergrid/contract-timeline-backend/internal/timeline"
)

type Services struct {
	Contract services.ContractService
	Event    services.EventService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, catalog *timeline.Catalog, reposet Repos) Services {
	cache := services.NewTimelineCache(cfg.RedisAddr, cfg.TimelineCacheTTL, log)
	if cache != nil {
		log.Info("Timeline cache enabled", "redis_addr", cfg.RedisAddr, "ttl", cfg.TimelineCacheTTL)
	}

	return Services{
		Contract: services.NewContractService(db, log, reposet.Contract, cache),
		Event:    services.NewEventService(db, log, catalog, reposet.Contract, reposet.Event, cache),
	}
}

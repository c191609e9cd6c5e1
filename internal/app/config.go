package app

import (
	"strings"
	"time"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/utils"
)

type Config struct {
	Port             string
	CatalogPath      string
	RedisAddr        string
	TimelineCacheTTL time.Duration
	CORSOrigins      []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	catalogPath := utils.GetEnv("COMPONENT_CATALOG_PATH", "", log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
	cacheTTLSeconds := utils.GetEnvAsInt("TIMELINE_CACHE_TTL", 300, log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)

	return Config{
		Port:             port,
		CatalogPath:      catalogPath,
		RedisAddr:        redisAddr,
		TimelineCacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
		CORSOrigins:      strings.Split(origins, ","),
	}
}

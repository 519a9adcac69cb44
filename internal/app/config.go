package app

import (
	"strings"

	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/utils"
)

type Config struct {
	HTTPPort      string
	LogMode       string
	StorageDriver string
	BoltPath      string
	SQLitePath    string
	RedisAddr     string
	RedisPrefix   string
	ActivityCap   int
	AllowOrigins  []string
}

func LoadConfig(log *logger.Logger) Config {
	origins := utils.GetEnv("ALLOW_ORIGINS", "", log)
	var allowOrigins []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowOrigins = append(allowOrigins, o)
		}
	}
	return Config{
		HTTPPort:      utils.GetEnv("HTTP_PORT", "8080", log),
		LogMode:       utils.GetEnv("LOG_MODE", "development", log),
		StorageDriver: strings.ToLower(utils.GetEnv("STORAGE_DRIVER", "memory", log)),
		BoltPath:      utils.GetEnv("BOLT_PATH", "learnhub.db", log),
		SQLitePath:    utils.GetEnv("SQLITE_PATH", "learnhub.sqlite", log),
		RedisAddr:     utils.GetEnv("REDIS_ADDR", "", log),
		RedisPrefix:   utils.GetEnv("REDIS_PREFIX", "learnhub", log),
		ActivityCap:   utils.GetEnvAsInt("ACTIVITY_CAP", 100, log),
		AllowOrigins:  allowOrigins,
	}
}

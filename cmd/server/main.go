package main

import (
	"kurumaya-backend/internal/api/routes"
	"kurumaya-backend/internal/config"
	"kurumaya-backend/internal/store"
	"kurumaya-backend/pkg/logger"
	"kurumaya-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.LogFile, cfg.LogLevel)

	// The rental ledger runs against an in-memory store; nothing survives a
	// restart, which is fine for the storefront demo this backs.
	st := store.New()
	if cfg.SeedData {
		if err := st.Seed(cfg.StaffEmail, cfg.StaffPassword); err != nil {
			logrus.WithError(err).Fatal("failed to seed store")
		}
		logrus.Info("seeded demo fleet and staff account")
	}

	// Redis backs the optional read cache
	var redisClient *redis.Client
	if cfg.CacheEnabled {
		redisClient = redis.NewClient(cfg.Redis)
		defer redisClient.Close()

		status := redisClient.HealthCheck()
		if status.IsConnected {
			logrus.WithField("addr", status.ConnectionInfo).Info("redis connected")
		} else {
			logrus.WithField("error", status.Error).Warn("redis unavailable, cache reads will miss")
		}
	}

	// Setup Gin router
	router := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, st, redisClient, cfg)

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

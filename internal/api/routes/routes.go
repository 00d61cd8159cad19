package routes

import (
	"kurumaya-backend/internal/api/handlers"
	"kurumaya-backend/internal/api/middleware"
	"kurumaya-backend/internal/config"
	"kurumaya-backend/internal/repository"
	"kurumaya-backend/internal/services"
	"kurumaya-backend/internal/store"
	"kurumaya-backend/pkg/cache"
	"kurumaya-backend/pkg/jwt"
	"kurumaya-backend/pkg/ratelimit"
	"kurumaya-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, st *store.Store, redisClient *redis.Client, cfg *config.Config) {
	// Repositories
	vehicleRepo := repository.NewVehicleRepository(st)
	rentalRepo := repository.NewRentalRepository(st)
	userRepo := repository.NewUserRepository(st)
	messageRepo := repository.NewMessageRepository(st)

	// Services
	jwtUtil := jwt.NewUtil(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(userRepo, jwtUtil)
	vehicleService := services.NewVehicleService(vehicleRepo)
	rentalService := services.NewRentalService(rentalRepo, vehicleRepo)
	messageService := services.NewMessageService(messageRepo, userRepo)

	if cfg.CacheEnabled && redisClient != nil {
		vehicleService.SetCacheManager(cache.NewRedisManager(redisClient.GetClient(), cache.DefaultConfig()))
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	rentalHandler := handlers.NewRentalHandler(rentalService)
	messageHandler := handlers.NewMessageHandler(messageService)
	healthHandler := handlers.NewHealthHandler(redisClient)

	api := router.Group("/api/v1")

	if cfg.RateLimitEnabled {
		limiter := ratelimit.NewMemoryLimiter(&ratelimit.Config{
			Enabled:           true,
			RequestsPerMinute: cfg.RateLimitPerMin,
			BurstSize:         cfg.RateLimitBurst,
			CleanupInterval:   ratelimit.DefaultConfig().CleanupInterval,
		})
		api.Use(middleware.RateLimitMiddleware(limiter))
	}

	api.GET("/health", healthHandler.Health)

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtUtil))
	{
		protected.GET("/auth/profile", authHandler.GetProfile)

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.POST("", middleware.StaffOnly(), vehicleHandler.CreateVehicle)
			vehicles.PATCH("/:id", middleware.StaffOnly(), vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", middleware.StaffOnly(), vehicleHandler.DeleteVehicle)
		}

		rentals := protected.Group("/rentals")
		{
			rentals.POST("/reserve", rentalHandler.Reserve)
			rentals.POST("/pay", rentalHandler.Pay)
			rentals.POST("/return/preview", rentalHandler.PreviewReturn)
			rentals.POST("/return/confirm", rentalHandler.ConfirmReturn)
			rentals.GET("/history", rentalHandler.History)
		}

		messages := protected.Group("/messages")
		{
			messages.POST("", messageHandler.CreateMessage)
			messages.GET("", middleware.StaffOnly(), messageHandler.GetMessages)
		}
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"rentmarket/internal/config"
	"rentmarket/internal/database"
	"rentmarket/internal/middleware"
	"rentmarket/internal/modules/auth"
	"rentmarket/internal/modules/booking"
	"rentmarket/internal/modules/catalog"
	jwtsvc "rentmarket/internal/pkg/jwt"
	"rentmarket/internal/repository"
	"rentmarket/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntime()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// Sessions live in Redis when configured; without it tokens are only
	// bounded by their own expiry.
	var sessionChecker middleware.SessionChecker
	var sessionStore auth.SessionStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		store := session.NewStore(rdb, cfg.SessionTTL)
		sessionChecker = store
		sessionStore = store
	} else {
		log.Println("REDIS_ADDR is empty, session revocation disabled")
	}

	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, providerRepo, j, sessionStore)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(equipmentRepo, providerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, equipmentRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// public with optional viewer context (is_owner / can_book flags)
		viewer := v1.Group("/")
		viewer.Use(middleware.OptionalJWTAuth(j, sessionChecker))
		{
			catalogHandler.RegisterRoutes(viewer)
			bookingHandler.RegisterPublicRoutes(viewer)
		}

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j, sessionChecker))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

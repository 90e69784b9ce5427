package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hospital-ops/ward-staffing-api/internal/config"
	"github.com/hospital-ops/ward-staffing-api/internal/database"
	"github.com/hospital-ops/ward-staffing-api/internal/handlers"
	"github.com/hospital-ops/ward-staffing-api/internal/httperr"
	"github.com/hospital-ops/ward-staffing-api/internal/middleware"
	"github.com/hospital-ops/ward-staffing-api/internal/repository"
	"github.com/hospital-ops/ward-staffing-api/internal/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info().Str("dialect", cfg.DBDialect).Msg("Database connection established")

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	wardRepo := repository.NewWardRepository(db)
	nurseRepo := repository.NewNurseRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	wardService := services.NewWardService(wardRepo)
	nurseService := services.NewNurseService(nurseRepo, wardRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	wardHandler := handlers.NewWardHandler(wardService)
	nurseHandler := handlers.NewNurseHandler(nurseService)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Default())

	// Health probe
	r.GET("/poll", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	// API routes (bearer-token protected)
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(cfg))
	{
		api.POST("/wards", wardHandler.CreateWard)
		api.GET("/wards", wardHandler.ListWards)
		api.DELETE("/wards/:id", wardHandler.DeleteWard)
		api.POST("/wards/bulk", wardHandler.CreateManyWards)

		api.POST("/nurses", nurseHandler.CreateNurse)
		api.GET("/nurses", nurseHandler.ListNurses)
		api.GET("/nurses/:id", nurseHandler.GetNurse)
		api.PUT("/nurses/:id", nurseHandler.UpdateNurse)
		api.DELETE("/nurses/:id", nurseHandler.DeleteNurse)
		api.POST("/nurses/bulk", nurseHandler.CreateManyNurses)

		api.GET("/filter", nurseHandler.FilterNurses)
	}

	// Unmatched routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.Response{Message: "No route found", Error: true})
	})

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

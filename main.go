package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"greenlab-checklist-be/internal/config"
	"greenlab-checklist-be/internal/controllers"
	"greenlab-checklist-be/internal/database"
	"greenlab-checklist-be/internal/logger"
	"greenlab-checklist-be/internal/middleware"
	"greenlab-checklist-be/internal/repository"
	"greenlab-checklist-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New()
	defer log.Sync() //nolint:errcheck // stdout sync errors are harmless on exit

	// Connect to database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)

	// Initialize controllers
	userController := controllers.NewUserController(userService, log)
	equipmentController := controllers.NewEquipmentController(equipmentRepo, log)
	checklistController := controllers.NewChecklistController(checklistRepo, log)
	incidentController := controllers.NewIncidentController(incidentRepo, log)
	healthController := controllers.NewHealthController(func(ctx context.Context) (bool, string) {
		return database.Check(ctx, db)
	})

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.HandleMethodNotAllowed = true
	router.NoRoute(controllers.NoRoute)
	router.NoMethod(controllers.NoMethod)
	router.LoadHTMLGlob("templates/*")

	// Status page and health check
	router.GET("/", healthController.Home)
	router.GET("/health", healthController.Health)

	// API routes
	api := router.Group("/api")
	api.Use(rateLimiter.LimitMiddleware())
	{
		api.GET("/usuarios", userController.List)
		api.POST("/usuarios", userController.Create)
		api.GET("/usuarios/:id", userController.GetByID)
		api.PUT("/usuarios/:id", userController.Update)
		api.PATCH("/usuarios/:id", userController.Update)
		api.DELETE("/usuarios/:id", userController.Delete)

		api.GET("/equipos", equipmentController.List)
		api.GET("/checklist/plantillas", checklistController.ListTemplates)
		api.GET("/checklist/registros", checklistController.ListEntries)
		api.GET("/incidencias", incidentController.List)
	}

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

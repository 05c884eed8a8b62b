package routes

import (
	"PulmoCare/cache"
	"PulmoCare/config"
	"PulmoCare/controllers"
	"PulmoCare/handlers"
	"PulmoCare/middlewares"
	"PulmoCare/realtime"
	"PulmoCare/repositories"
	"PulmoCare/services"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, hub *realtime.Hub) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Repositories
	wardRepo := repositories.NewWardRepository(db, cache)
	patientRepo := repositories.NewPatientRepository(db, cache)
	transferRepo := repositories.NewTransferRepository(db, cache)
	reportRepo := repositories.NewReportRepository(db)
	equipmentRepo := repositories.NewEquipmentRepository(db)
	procedureRepo := repositories.NewProcedureRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	cmeRepo := repositories.NewCmeRepository(db)
	journalRepo := repositories.NewJournalRepository(db)
	userRepo := repositories.NewUserRepository(db, cache)
	dashboardRepo := repositories.NewDashboardRepository(db, cache)

	// Services
	wardService := services.NewWardService(wardRepo, patientRepo)
	patientService := services.NewPatientService(patientRepo)
	transferService := services.NewTransferService(transferRepo, patientRepo, wardRepo, hub)
	reportService := services.NewReportService(reportRepo, notificationRepo, hub)
	equipmentService := services.NewEquipmentService(equipmentRepo)
	procedureService := services.NewProcedureService(procedureRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, hub)
	messageService := services.NewMessageService(messageRepo, hub)
	cmeService := services.NewCmeService(cmeRepo)
	journalService := services.NewJournalService(journalRepo)
	authService := services.NewAuthService(userRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)

	// Routes
	controllers.SetupAPIRoutes(router, &controllers.APIHandlers{
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
		Ward:         handlers.NewWardHandler(wardService),
		Patient:      handlers.NewPatientHandler(patientService),
		Transfer:     handlers.NewTransferHandler(transferService),
		Report:       handlers.NewReportHandler(reportService, config.UploadDir),
		Equipment:    handlers.NewEquipmentHandler(equipmentService),
		Procedure:    handlers.NewProcedureHandler(procedureService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Message:      handlers.NewMessageHandler(messageService),
		Cme:          handlers.NewCmeHandler(cmeService),
		Journal:      handlers.NewJournalHandler(journalService),
	})

	authController := controllers.NewAuthController(handlers.NewAuthHandler(authService))
	authController.RegisterRoutes(router)

	router.GET("/ws", middlewares.TokenAuthMiddleware(), realtime.ServeWS(hub))

	controllers.SetupRootRoute(router)

	return router
}

// allowedOrigins reads the comma-separated CORS_ORIGINS variable, with a
// local dev default.
func allowedOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173", "http://localhost:3000"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

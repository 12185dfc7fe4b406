// File: realtor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realtor/config"
	"realtor/database"
	propertyRepo "realtor/database/repository/property"
	"realtor/handlers"
	"realtor/middleware"
	"realtor/routes"
	"realtor/services/calendar"
	ai "realtor/services/intelligence"
	"realtor/services/property"
	"realtor/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitMemoryStore()

	ctx := context.Background()

	// External service handles are built once here and injected; nothing
	// below initializes them lazily.
	calendarAPI, err := calendar.NewGoogleCalendarAPI(ctx, config.AppConfig.ServiceAccountFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Google Calendar client: %v", err)
	}

	gemini, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// repositories.
	propRepo := propertyRepo.NewMongoPropertyRepo()
	if mongoRepo, ok := propRepo.(*propertyRepo.MongoPropertyRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure property indexes: %v", err)
		}
	}

	// services.
	searchService := &property.DefaultSearchService{
		Repo:       propRepo,
		MaxResults: config.AppConfig.MaxSearchResults,
	}

	viewingService := calendar.NewDefaultViewingService(calendarAPI)

	memoryClient := utils.GetMemoryClient()
	assistantService := ai.NewDefaultAssistantService(
		gemini,
		ai.NewConversationStore(memoryClient, utils.ConversationTTL),
		ai.NewProfileStore(memoryClient),
		searchService,
		viewingService,
	)

	// handlers.
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	propertyHandler := handlers.NewPropertyHandler(searchService)
	viewingHandler := handlers.NewViewingHandler(viewingService)

	routes.RegisterAssistantRoutes(router, assistantHandler)
	routes.RegisterPropertyRoutes(router, propertyHandler)
	routes.RegisterViewingRoutes(router, viewingHandler)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(memoryClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"dailydo/internal/config"
	"dailydo/internal/handlers"
	"dailydo/internal/repositories"
	"dailydo/internal/routes"
	"dailydo/internal/services"
)

func Run(configPath string) {
	cfg := config.LoadConfig(configPath)

	// === Repos ===
	documentRepo := repositories.NewDocumentRepository(cfg.Data.File)

	// === Services ===
	todoService := services.NewTodoService(documentRepo, cfg.Location)
	reportService := services.NewReportService(documentRepo, cfg.Location)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(cfg)
	todoHandler := handlers.NewTodoHandler(todoService)
	dashboardHandler := handlers.NewDashboardHandler(todoService, reportService)

	// === Gin ===
	router := gin.Default()
	router.LoadHTMLGlob("web/templates/*.html")

	routes.SetupRoutes(router, cfg, authHandler, todoHandler, dashboardHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[app] listening on %s (data=%s tz=%s)", listenAddr, cfg.Data.File, cfg.App.Timezone)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

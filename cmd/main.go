package main

import (
	"log"
	"net/http"

	"github.com/majidisadev/simple-project-management-rsud/internal/api/auth_api"
	"github.com/majidisadev/simple-project-management-rsud/internal/api/kanban_api"
	"github.com/majidisadev/simple-project-management-rsud/internal/api/report_api"
	"github.com/majidisadev/simple-project-management-rsud/internal/config"
	"github.com/majidisadev/simple-project-management-rsud/internal/database"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/auth_repository"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/kanban_repository"
	"github.com/majidisadev/simple-project-management-rsud/internal/repository/report_repository"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/auth_services"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/kanban_services"
	"github.com/majidisadev/simple-project-management-rsud/internal/services/report_services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func setupCORS(router http.Handler) http.Handler {
	cfg := config.Load()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CorsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		Debug:            false,
	})

	return c.Handler(router)
}

func main() {
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: database connection failed: %v", err)
	}
	defer db.Close()
	log.Println("INFO: Database connection successful")

	// AUTH
	userRepo := auth_repository.NewUserRepo(db)
	refreshRepo := auth_repository.NewRefreshRepo(db)
	authSvc := auth_services.NewAuthService(userRepo, refreshRepo)
	authHandler := auth_api.NewAuthHandler(authSvc)

	// DAILY REPORTS
	reportRepo := report_repository.NewReportRepo(db)
	reportSvc := report_services.NewReportService(reportRepo)
	reportHandler := report_api.NewReportHandler(reportSvc, authSvc)

	// KANBAN BOARD
	taskRepo := kanban_repository.NewTaskRepo(db)
	taskSvc := kanban_services.NewTaskService(taskRepo)
	taskHandler := kanban_api.NewTaskHandler(taskSvc, authSvc)

	r := mux.NewRouter()

	authHandler.RegisterRoutes(r)
	reportHandler.RegisterRoutes(r)
	taskHandler.RegisterRoutes(r)

	handlerWithCORS := setupCORS(r)

	log.Printf("INFO: Starting HTTP server on port %s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handlerWithCORS); err != nil {
		log.Fatalf("FATAL: failed to start HTTP server: %v", err)
	}
}

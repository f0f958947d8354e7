package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/handlers"
	"github.com/praxishq/praxis/internal/models"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/internal/utils"
	"github.com/praxishq/praxis/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()
	services.InitSystemLogger(db)

	// Workload pipeline: calendar, engine, cache
	workCalendar := services.NewRegionCalendar(cfg.Workload.CountryCode)
	workloadService := services.NewWorkloadService(db, workCalendar,
		time.Duration(cfg.Workload.CacheTTLSeconds)*time.Second)

	// Recompute queue: async when Redis is configured, inline otherwise
	recompute := func(ctx context.Context, task *services.RecomputeTask) error {
		return workloadService.PrewarmEmployee(task.EmployeeID)
	}
	queue := services.NewTaskQueue(&cfg.Redis, recompute)
	defer queue.Close()

	if worker := services.NewWorker(&cfg.Redis, recompute); worker != nil {
		worker.Start()
		defer worker.Stop()
	}

	// Daily team digest
	digest := services.NewDigestService(workloadService)
	if cfg.Workload.DigestEnabled {
		if err := digest.StartScheduler(cfg.Workload.DigestTime); err != nil {
			logger.Errorf("Failed to start digest scheduler: %v", err)
		}
		defer digest.StopScheduler()
	}

	// Create default admin user
	authHandler := handlers.NewAuthHandler(db, cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warnf("Failed to create admin user: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	r := setupRouter(cfg, authHandler, workloadService, queue)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

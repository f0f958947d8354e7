package main

import (
	"github.com/gin-gonic/gin"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/handlers"
	"github.com/praxishq/praxis/internal/middleware"
	"github.com/praxishq/praxis/internal/models"
	"github.com/praxishq/praxis/internal/services"
	"github.com/praxishq/praxis/pkg/logger"
)

func setupRouter(cfg *config.Config, authHandler *handlers.AuthHandler, workloadService *services.WorkloadService, queue services.TaskQueue) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS())

	rateLimiter := middleware.NewRateLimiter(20, 40)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "praxis"})
	})

	db := models.GetDB()

	api := r.Group("/api")
	api.Use(rateLimiter.Middleware())
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/auth/me", authHandler.GetCurrentUser)
			protected.POST("/auth/logout", authHandler.Logout)

			// Employees
			employeeHandler := handlers.NewEmployeeHandler(db)
			protected.GET("/employees", employeeHandler.List)
			protected.GET("/employees/:id", employeeHandler.GetByID)
			protected.POST("/employees", employeeHandler.Create)
			protected.PUT("/employees/:id", employeeHandler.Update)
			protected.DELETE("/employees/:id", employeeHandler.Delete)

			// Clients
			clientHandler := handlers.NewClientHandler(db)
			protected.GET("/clients", clientHandler.List)
			protected.GET("/clients/:id", clientHandler.GetByID)
			protected.POST("/clients", clientHandler.Create)
			protected.PUT("/clients/:id", clientHandler.Update)
			protected.DELETE("/clients/:id", clientHandler.Delete)

			// Tasks
			taskHandler := handlers.NewTaskHandler(db, queue)
			protected.GET("/tasks", taskHandler.List)
			protected.GET("/tasks/:id", taskHandler.GetByID)
			protected.POST("/tasks", taskHandler.Create)
			protected.POST("/tasks/import", taskHandler.Import)
			protected.PUT("/tasks/:id", taskHandler.Update)
			protected.DELETE("/tasks/:id", taskHandler.Delete)

			// Time entries
			timeEntryHandler := handlers.NewTimeEntryHandler(db, queue)
			protected.GET("/time-entries", timeEntryHandler.List)
			protected.POST("/time-entries", timeEntryHandler.Create)
			protected.POST("/time-entries/import", timeEntryHandler.Import)
			protected.DELETE("/time-entries/:id", timeEntryHandler.Delete)

			// Workload scoring
			workloadHandler := handlers.NewWorkloadHandler(workloadService)
			protected.GET("/workload/employees/:id", workloadHandler.EmployeeMetrics)
			protected.GET("/workload/team", workloadHandler.TeamMetrics)

			// System logs (admin)
			systemLogHandler := handlers.NewSystemLogHandler(db)
			admin := protected.Group("")
			admin.Use(middleware.AdminRequired())
			admin.GET("/system-logs", systemLogHandler.List)
		}
	}

	return r
}

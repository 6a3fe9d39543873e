// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gestionpro/backend/internal/integration/entrypoint/controller"
	"github.com/gestionpro/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	projectController      *controller.ProjectController
	employeeController     *controller.EmployeeController
	storageItemController  *controller.StorageItemController
	visitController        *controller.VisitController
	analyticsController    *controller.AnalyticsController
	notificationController *controller.NotificationController
	rateLimiter            *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	projectController *controller.ProjectController,
	employeeController *controller.EmployeeController,
	storageItemController *controller.StorageItemController,
	visitController *controller.VisitController,
	analyticsController *controller.AnalyticsController,
	notificationController *controller.NotificationController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		projectController:      projectController,
		employeeController:     employeeController,
		storageItemController:  storageItemController,
		visitController:        visitController,
		analyticsController:    analyticsController,
		notificationController: notificationController,
		rateLimiter:            rateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every business route
// requires authentication and passes through the shared rate limiter.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	if r.projectController != nil {
		projects := v1.Group("/projects")
		{
			projects.GET("", r.projectController.List)
			projects.POST("", r.projectController.Create)
			projects.GET("/:id", r.projectController.Get)
			projects.PUT("/:id", r.projectController.Update)
			projects.DELETE("/:id", r.projectController.Delete)
			projects.POST("/:id/quotes", r.projectController.AttachQuote)
			projects.GET("/:id/quotes/url", r.projectController.SignQuoteURL)
			projects.DELETE("/:id/quotes", r.projectController.RemoveQuote)
		}
	}

	if r.employeeController != nil {
		employees := v1.Group("/employees")
		{
			employees.GET("", r.employeeController.List)
			employees.POST("", r.employeeController.Create)
			employees.PUT("/:id", r.employeeController.Update)
			employees.DELETE("/:id", r.employeeController.Delete)
			employees.POST("/:id/overtime", r.employeeController.RecordOvertime)
		}
	}

	if r.storageItemController != nil {
		storageItems := v1.Group("/storage-items")
		{
			storageItems.GET("", r.storageItemController.List)
			storageItems.POST("", r.storageItemController.Create)
			storageItems.PUT("/:id", r.storageItemController.Update)
			storageItems.DELETE("/:id", r.storageItemController.Delete)
		}
	}

	if r.visitController != nil {
		visits := v1.Group("/visits")
		{
			visits.GET("", r.visitController.List)
			visits.POST("", r.visitController.Create)
			visits.PUT("/:id", r.visitController.Update)
			visits.DELETE("/:id", r.visitController.Delete)
		}
	}

	if r.analyticsController != nil {
		v1.GET("/analytics/profitability", r.analyticsController.ProfitabilitySummary)
	}

	if r.notificationController != nil {
		v1.GET("/notifications", r.notificationController.List)
	}
}

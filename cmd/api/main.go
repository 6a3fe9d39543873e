// Package main is the entry point for the GestionPro API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gestionpro/backend/config"
	"github.com/gestionpro/backend/internal/application/adapter"
	appsync "github.com/gestionpro/backend/internal/application/sync"
	"github.com/gestionpro/backend/internal/application/usecase/analytics"
	"github.com/gestionpro/backend/internal/application/usecase/employee"
	"github.com/gestionpro/backend/internal/application/usecase/project"
	"github.com/gestionpro/backend/internal/application/usecase/storageitem"
	"github.com/gestionpro/backend/internal/application/usecase/visit"
	"github.com/gestionpro/backend/internal/infra/db"
	"github.com/gestionpro/backend/internal/infra/server/router"
	"github.com/gestionpro/backend/internal/integration/cache"
	"github.com/gestionpro/backend/internal/integration/entrypoint/controller"
	"github.com/gestionpro/backend/internal/integration/entrypoint/middleware"
	"github.com/gestionpro/backend/internal/integration/notification"
	"github.com/gestionpro/backend/internal/integration/persistence"
	"github.com/gestionpro/backend/internal/integration/persistence/model"
	"github.com/gestionpro/backend/internal/integration/session"
	"github.com/gestionpro/backend/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting GestionPro API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection. A failed connection degrades to
	// cache-backed local-only mode rather than aborting startup.
	var database *db.Database
	dbHealthChecker := func() bool { return false }

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running in local-only mode",
			"error", err,
		)
		database = nil
	} else {
		if err := database.AutoMigrate(
			&model.ProjectRecord{},
			&model.EmployeeModel{},
			&model.StorageItemModel{},
			&model.VisitModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis for the local project cache.
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	cacheHealthChecker := func() bool {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer pingCancel()
		return redisClient.Ping(pingCtx).Err() == nil
	}

	// Initialize the blob store for quote attachments.
	blobStore, err := storage.NewGCSBlobStore(ctx, cfg.Storage.Bucket)
	if err != nil {
		slog.Error("Failed to initialize blob store", "error", err)
		os.Exit(1)
	}
	defer blobStore.Close()

	// Notifications: in-app feed plus best-effort admin email.
	emailSender := notification.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	notifier := notification.NewService(emailSender, cfg.Email.AdminEmail)

	// Sync engine over the remote store and local cache.
	projectStore := persistence.NewProjectStore(gormDB(database))
	projectCache := cache.NewProjectCache(redisClient)
	engine := appsync.NewEngine(projectStore, projectCache, notifier, appsync.Config{
		DebounceQuiet:  cfg.Sync.DebounceQuiet,
		ThrottleDelay:  cfg.Sync.ThrottleDelay,
		StatusPassGate: cfg.Sync.StatusPassGate,
		Snapshot:       model.StringifyProjects,
	})
	defer engine.Close()

	// Without a database there is no remote store; the engine starts
	// identity-less and serves the empty local collection.
	var identity *adapter.Identity
	if database != nil {
		identity = &adapter.Identity{ID: uuid.New(), Role: "system"}
	}
	// Loading happens in the background; mutations arriving before the
	// collection is ready are rejected with a loading error.
	go engine.Start(ctx, identity)
	go engine.StartStatusLoop(ctx, cfg.Sync.StatusInterval)

	// Health controller
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	// Project use cases and controller
	projectController := controller.NewProjectController(
		project.NewListProjectsUseCase(engine),
		project.NewGetProjectUseCase(engine),
		project.NewCreateProjectUseCase(engine),
		project.NewUpdateProjectUseCase(engine),
		project.NewDeleteProjectUseCase(engine, blobStore),
		project.NewAttachQuoteUseCase(engine, blobStore, storage.ObjectPath),
		project.NewSignQuoteURLUseCase(engine, blobStore),
		project.NewRemoveQuoteUseCase(engine, blobStore),
	)

	analyticsController := controller.NewAnalyticsController(
		analytics.NewProfitabilitySummaryUseCase(engine),
	)

	notificationController := controller.NewNotificationController(notifier)

	// Database-backed controllers are only wired when the database is up.
	var employeeController *controller.EmployeeController
	var storageItemController *controller.StorageItemController
	var visitController *controller.VisitController

	if database != nil {
		employeeRepo := persistence.NewEmployeeRepository(database.DB())
		storageItemRepo := persistence.NewStorageItemRepository(database.DB())
		visitRepo := persistence.NewVisitRepository(database.DB())

		employeeController = controller.NewEmployeeController(
			employee.NewCreateEmployeeUseCase(employeeRepo),
			employee.NewListEmployeesUseCase(employeeRepo),
			employee.NewUpdateEmployeeUseCase(employeeRepo),
			employee.NewDeleteEmployeeUseCase(employeeRepo),
			employee.NewRecordOvertimeUseCase(employeeRepo),
		)
		storageItemController = controller.NewStorageItemController(
			storageitem.NewCreateStorageItemUseCase(storageItemRepo),
			storageitem.NewListStorageItemsUseCase(storageItemRepo),
			storageitem.NewUpdateStorageItemUseCase(storageItemRepo),
			storageitem.NewDeleteStorageItemUseCase(storageItemRepo),
		)
		visitController = controller.NewVisitController(
			visit.NewCreateVisitUseCase(visitRepo),
			visit.NewListVisitsUseCase(visitRepo),
			visit.NewUpdateVisitUseCase(visitRepo),
			visit.NewDeleteVisitUseCase(visitRepo),
		)
	} else {
		slog.Warn("Employee, catalog and visit endpoints disabled without a database connection")
	}

	// Middleware
	rateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(session.NewJWTSessionService(cfg.JWT.Secret))

	// Setup router
	r := router.NewRouter(
		healthController,
		projectController,
		employeeController,
		storageItemController,
		visitController,
		analyticsController,
		notificationController,
		rateLimiter,
		authMiddleware,
	)
	ginEngine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      ginEngine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// gormDB unwraps the database handle, tolerating a nil database in
// local-only mode.
func gormDB(database *db.Database) *gorm.DB {
	if database == nil {
		return nil
	}
	return database.DB()
}

package main

import (
	"context"
	"log"

	"github.com/XenomaCode/MVP-CATERING/cmd"
	"github.com/XenomaCode/MVP-CATERING/internal/config"
	"github.com/XenomaCode/MVP-CATERING/internal/core/container"
	"github.com/XenomaCode/MVP-CATERING/internal/core/logger"
	"github.com/XenomaCode/MVP-CATERING/internal/core/routes"
	"github.com/XenomaCode/MVP-CATERING/internal/database"
	"github.com/XenomaCode/MVP-CATERING/internal/middleware"
	"github.com/XenomaCode/MVP-CATERING/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Handle migrate/seed subcommands before the server starts
	cmd.Execute(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zapLogger := logger.NewLogger(cfg.App.Env)
	defer zapLogger.Sync()

	db, err := database.NewPostgresConnection(cfg.DB.URL)
	if err != nil {
		zapLogger.Fatal("Unable to connect to the database", zap.Error(err))
	}
	defer db.Close()

	zapLogger.Info("Connected to the database successfully")

	security.Configure(cfg.JWT.Secret)

	appContainer := container.NewAppContainer(db, zapLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(zapLogger))

	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(cfg.App.Host); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}

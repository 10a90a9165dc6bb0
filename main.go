package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"s2inventory/bootstrap"
	"s2inventory/config"
	"s2inventory/controllers"
	_ "s2inventory/docs"
	"s2inventory/pkg/logger"
	"s2inventory/services"
	"s2inventory/services/auth"
	"s2inventory/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           s2inventory
// @version         1.0
// @description     Inventaire des systèmes industriels d'infrastructure

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Connect DB (GORM)
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}

	if err := bootstrap.LoadData(); err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	controllers.SetSystemeService(services.NewSystemeService())
	controllers.SetContratService(services.NewContratService())
	controllers.SetImportService(services.NewImportService())
	controllers.SetLookupService(services.NewLookupService())
	controllers.SetStatsService(services.NewStatsService())

	// 3) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting S2I inventory API with log level: %s", config.Cfg.LogLevel)

	// 4) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.MetricsMiddleware())

	jwtManager := auth.NewManager(config.Cfg.JWTSecret)

	v1 := router.Group("/api")
	v1.Use(utils.AuthMiddleware(jwtManager))
	{
		controllers.RegisterSystemeRoutes(v1)
		controllers.RegisterContratRoutes(v1)
		controllers.RegisterImportRoutes(v1)
		controllers.RegisterLookupRoutes(v1)
		controllers.RegisterStatsRoutes(v1)
	}

	// 5) Swagger and metrics routes
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", utils.MetricsHandler())

	// 6) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal")
		logger.Infof("Application shutdown complete")
		os.Exit(0)
	}()

	// 7) Run
	logger.Infof("Starting server at port %d", config.Cfg.Port)
	router.Run(fmt.Sprintf("0.0.0.0:%d", config.Cfg.Port))
}

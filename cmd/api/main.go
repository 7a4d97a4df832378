package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quantum-dispatch/internal/api/handlers"
	"quantum-dispatch/internal/api/middleware"
	"quantum-dispatch/internal/config"
	"quantum-dispatch/internal/logger"
	"quantum-dispatch/internal/metrics"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("QD_CONFIG"), "Path to YAML/JSON config (optional)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger.SetGlobalLevel(cfg.Logging.Level)
	log := logger.New("api")

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Errorf("register metrics: %v", err)
		os.Exit(1)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Middleware order: ids first so the logger can tag each line.
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	optimizeHandler := handlers.NewOptimizeHandler(cfg, logger.New("optimize"), collector)
	infoHandler := handlers.NewInfoHandler(cfg)
	profileHandler := handlers.NewProfileHandler(cfg.Profiles.Dir, logger.New("profiles"))

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.POST("/optimize", optimizeHandler.Optimize)
		api.GET("/quantum-info", infoHandler.QuantumInfo)
		api.GET("/profiles", profileHandler.ListProfiles)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infof("starting schedule optimization API on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Errorf("server exited: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"straddle-backtest/internal/api/handlers"
	"straddle-backtest/internal/api/middleware"
	"straddle-backtest/internal/backtest"
	"straddle-backtest/internal/config"
	"straddle-backtest/internal/logger"
	"straddle-backtest/internal/simulator"
	"straddle-backtest/internal/trace"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Optional server config YAML (env vars override it)")
	flag.Parse()

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.Init(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := trace.Init(cfg.Tracing); err != nil {
		zl.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() {
		if err := trace.Shutdown(context.Background()); err != nil {
			zl.Warn("trace shutdown", zap.Error(err))
		}
	}()

	if wd, err := os.Getwd(); err == nil {
		zl.Info("starting",
			zap.String("working_directory", wd),
			zap.String("simulator_bin", cfg.SimulatorBin),
			zap.String("work_dir", cfg.WorkDir),
		)
	}

	// Set up Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(zl))
	router.Use(middleware.ErrorHandler(zl))

	// Initialize handlers
	runner := simulator.NewRunner(cfg.SimulatorBin, cfg.WorkDir, cfg.SimulatorTimeout, zl)
	engine := backtest.New(runner, zl)
	simHandler := handlers.NewSimulationHandler(engine, cfg.MaxTrades, zl)
	strategyHandler := handlers.NewStrategyHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Endpoint the bundled UI posts to
	router.POST("/run", simHandler.Run)

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/run", simHandler.Run)
		api.POST("/parse", simHandler.Parse)
		api.GET("/strategies", strategyHandler.ListStrategies)
	}

	serveStatic(router, cfg.StaticDir, zl)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	zl.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}

// serveStatic serves the UI from dir, falling back to index.html for any
// non-API path so client-side routes resolve.
func serveStatic(router *gin.Engine, dir string, zl *zap.Logger) {
	if _, err := os.Stat(dir); err != nil {
		zl.Warn("static directory not found, skipping static file serving", zap.String("dir", dir))
		return
	}

	router.Static("/assets", filepath.Join(dir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(dir, "favicon.ico"))
	router.StaticFile("/", filepath.Join(dir, "index.html"))

	router.NoRoute(func(c *gin.Context) {
		// Don't serve index.html for API routes
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
	zl.Info("serving static files", zap.String("dir", dir))
}

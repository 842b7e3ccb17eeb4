package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"idcard/condb"
	"idcard/config"
	"idcard/controllers"
	"idcard/directory"
	"idcard/middleware"
	"idcard/routes"
	"idcard/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	utils.SecretKey = cfg.JWTSecret
	utils.SessionTTL = cfg.SessionTTL

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	dir := directory.New(
		condb.Open(cfg.Sheets, logger),
		logger.Named("directory"),
		directory.WithMetrics(directory.NewMetrics(registry)),
	)

	app := fiber.New(fiber.Config{AppName: "idcard"})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins, // comma separated
		AllowMethods:     "GET,POST,HEAD,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger(logger.Named("http")))

	routes.RegisterRoutes(app,
		controllers.NewHandler(dir, logger.Named("controllers")),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)

	logger.Info("idcard API listening", zap.String("addr", cfg.Addr()))
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"procurement/cmd"
	httpin "procurement/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// Missing .env is fine, plain environment variables are used then
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		StorageBackend:   envOrDefault("STORAGE_BACKEND", cmd.StorageBackendMemory),
		SnapshotPath:     envOrDefault("SNAPSHOT_PATH", "orders.json"),
		OrderVariant:     envOrDefault("ORDER_VARIANT", "purchase"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		ReportSchedule:   envOrDefault("REPORT_SCHEDULE", "0 0 * * * *"),
		ReportMaxAgeDays: envIntOrDefault("REPORT_MAX_AGE_DAYS", 14),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.Use(httpin.RequestID())
	e.Use(httpin.RequestLogger(logger))

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

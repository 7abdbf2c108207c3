package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"ordertracking/cmd"
	httpadapter "ordertracking/internal/adapters/in/http"
	"ordertracking/internal/adapters/out/postgres/orderrepo"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TrackingEventDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCompleteStaleOrdersCommandHandler(),
		configs.StaleCompletionSchedule,
		configs.Staleness(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                     goDotEnvVariable("HTTP_PORT"),
		DBHost:                       goDotEnvVariable("DB_HOST"),
		DBPort:                       goDotEnvVariable("DB_PORT"),
		DBUser:                       goDotEnvVariable("DB_USER"),
		DBPassword:                   goDotEnvVariable("DB_PASSWORD"),
		DBName:                       goDotEnvVariable("DB_NAME"),
		DBSslMode:                    goDotEnvVariable("DB_SSLMODE"),
		KafkaBrokers:                 goDotEnvVariable("KAFKA_BROKERS"),
		KafkaOrderStatusTopic:        envOrDefault("KAFKA_ORDER_STATUS_TOPIC", "order.status.changed"),
		StaleCompletionSchedule:      envOrDefault("STALE_COMPLETION_SCHEDULE", jobs.DefaultStaleCompletionSchedule),
		StaleCompletionStalenessDays: envIntOrDefault("STALE_COMPLETION_STALENESS_DAYS", int(commands.DefaultStaleness.Hours()/24)),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envOrDefault(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

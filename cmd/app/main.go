package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cargotrack/cmd"
	httpin "cargotrack/internal/adapters/in/http"
	"cargotrack/internal/adapters/out/postgres"
	"cargotrack/internal/jobs"
)

const defaultStuckThreshold = 48 * time.Hour

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := postgres.RunMigrations(gormDB); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		_ = root.Close()
	}()

	jobManager := jobs.NewJobManager(
		root.CreateGetStuckOrdersQueryHandler(),
		root.CreateAuditLogRepository(),
		stuckThreshold(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		StuckOrderThreshold:    goDotEnvVariable("STUCK_ORDER_THRESHOLD"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func stuckThreshold(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.StuckOrderThreshold == "" {
		return defaultStuckThreshold
	}
	threshold, err := time.ParseDuration(configs.StuckOrderThreshold)
	if err != nil || threshold <= 0 {
		logger.Warn("Invalid STUCK_ORDER_THRESHOLD, using default",
			"value", configs.StuckOrderThreshold, "default", defaultStuckThreshold.String())
		return defaultStuckThreshold
	}
	return threshold
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Validator = httpin.NewRequestValidator()

	server := httpin.NewServer(
		httpin.NewTokenIssuer(configs.JWTSecret),
		root.CreateEmployeeRepository(),
		httpin.Handlers{
			CreateOrder:       root.CreateCreateOrderCommandHandler(),
			ChangeOrderStatus: root.CreateChangeOrderStatusCommandHandler(),
			CreateBranch:      root.CreateCreateBranchCommandHandler(),
			RegisterEmployee:  root.CreateRegisterEmployeeCommandHandler(),

			GetOrders:           root.CreateGetOrdersQueryHandler(),
			GetOrderByTrack:     root.CreateGetOrderByTrackNumberQueryHandler(),
			GetAvailableActions: root.CreateGetAvailableActionsQueryHandler(),
			GetBranches:         root.CreateGetBranchesQueryHandler(),
			GetEmployees:        root.CreateGetEmployeesQueryHandler(),
			GetOrderStatistics:  root.CreateGetOrderStatisticsQueryHandler(),
			GetStuckOrders:      root.CreateGetStuckOrdersQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

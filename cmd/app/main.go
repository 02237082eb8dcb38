package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"retail/cmd"
	inhttp "retail/internal/adapters/in/http"
	"retail/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db := openDatabase(configs)
	if err := postgres.RunMigrations(db); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Job scheduling failed: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file, relying on the environment")
	}

	staleAfterDays, err := strconv.Atoi(envOrDefault("STALE_COLLECTION_AFTER_DAYS", "7"))
	if err != nil {
		log.Fatalf("Invalid STALE_COLLECTION_AFTER_DAYS: %v", err)
	}

	return cmd.Config{
		HTTPPort:                 envOrDefault("HTTP_PORT", "8080"),
		DBHost:                   os.Getenv("DB_HOST"),
		DBPort:                   envOrDefault("DB_PORT", "5432"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                envOrDefault("DB_SSLMODE", "disable"),
		StaleCollectionAfterDays: staleAfterDays,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := inhttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateAddProductCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateLinkStaffCommandHandler(),
		root.CreateAddCollectionDetailCommandHandler(),
		root.CreateAddDeliveryDetailCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetBiggestSellersQueryHandler(),
		root.CreateGetStaleCollectionsQueryHandler(),
		root.CreateGetStaffSalesQueryHandler(),
		root.CreateOrderUoWFactory(),
		logger,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

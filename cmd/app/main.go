package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ecobazaar/cmd"
	_ "ecobazaar/docs"
	ecohttp "ecobazaar/internal/adapters/in/http"
	"ecobazaar/internal/adapters/out/postgres/emissionrepo"
	"ecobazaar/internal/adapters/out/postgres/orderrepo"
	"ecobazaar/internal/adapters/out/postgres/productrepo"
	"ecobazaar/internal/adapters/out/postgres/userrepo"
	"ecobazaar/internal/generated/servers"
	"ecobazaar/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultOrderMaxAge = 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		OrderMaxAge: goDotEnvVariable("ORDER_MAX_AGE"),
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

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
		&emissionrepo.EmissionFactorDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	maxAge := defaultOrderMaxAge
	if configs.OrderMaxAge != "" {
		parsed, err := time.ParseDuration(configs.OrderMaxAge)
		if err != nil {
			log.Fatalf("Invalid ORDER_MAX_AGE: %v", err)
		}
		maxAge = parsed
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateExpireStaleOrdersCommandHandler(), maxAge, logger)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := ecohttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetBuyerOrdersQueryHandler(),
		app.CreateGetBuyerOrderQueryHandler(),
		app.CreateGetSellerOrdersQueryHandler(),
		app.CreateGetSellerOrderQueryHandler(),
		app.CreateCalculateFootprintQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

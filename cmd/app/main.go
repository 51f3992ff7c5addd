package main

import (
	"fmt"
	"net/http"
	"os"

	"fulfilment/cmd"
	httpin "fulfilment/internal/adapters/in/http"
	"fulfilment/internal/adapters/out/postgres/assignmentrepo"
	"fulfilment/internal/adapters/out/postgres/productrepo"
	"fulfilment/internal/adapters/out/postgres/storerepo"
	"fulfilment/internal/adapters/out/postgres/warehouserepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		KafkaHost:             os.Getenv("KAFKA_HOST"),
		KafkaStoreEventsTopic: os.Getenv("KAFKA_STORE_EVENTS_TOPIC"),
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the repositories map onto ObjectAlreadyExistsError.
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.PostgresDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&warehouserepo.WarehouseDTO{},
		&assignmentrepo.AssignmentDTO{},
		&productrepo.ProductDTO{},
		&storerepo.StoreDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

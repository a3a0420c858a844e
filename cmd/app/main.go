package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fleetops/cmd"
	httpin "fleetops/internal/adapters/in/http"
	"fleetops/internal/adapters/out/postgres/devicerepo"
	"fleetops/internal/adapters/out/postgres/staffrepo"
	"fleetops/internal/adapters/out/postgres/workorderrepo"
	"fleetops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// inProgressGuardIndex backs up the application-level conflict check: at
// most one in-progress order may exist per device and order type. The
// status literal matches the InProgress enum value.
const inProgressGuardIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS uniq_work_orders_in_progress
	ON work_orders (device_code, order_type)
	WHERE status = 2
`

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", configs.RedisHost, configs.RedisPort),
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateSweepStaleWorkOrdersCommandHandler(),
		configs.SweepSchedule,
		time.Duration(configs.StaleAfterDays)*24*time.Hour,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		RedisHost:      goDotEnvVariable("REDIS_HOST"),
		RedisPort:      goDotEnvVariable("REDIS_PORT"),
		StaleAfterDays: goDotEnvIntVariable("STALE_AFTER_DAYS"),
		SweepSchedule:  goDotEnvVariable("SWEEP_SCHEDULE"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as integer: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.WorkOrderDetailDTO{},
		&devicerepo.DeviceDTO{},
		&staffrepo.EmployeeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = gormDB.Exec(inProgressGuardIndex).Error; err != nil {
		log.Fatalf("Failed to create in-progress guard index: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateWorkOrderCommandHandler(),
		app.CreateCancelWorkOrderCommandHandler(),
		app.CreateGetWorkOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

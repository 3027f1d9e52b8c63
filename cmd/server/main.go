package main

import (
	"database/sql"
	"net/http"
	"os"

	"parkir/internal/api"
	"parkir/internal/config"
	"parkir/internal/repository"
	"parkir/internal/service"

	"github.com/gorilla/handlers"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		logrus.Fatalf("Failed to connect to DB: %v", err)
	}

	repo := repository.NewParkingRepository(db)
	svc := service.NewParkingService(repo)
	reports := service.NewReportService(repo)

	router := api.NewRouter(api.NewParkingHandler(svc))

	if cfg.RevenueSnapshotSchedule != "" {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(cfg.RevenueSnapshotSchedule, func() {
			if err := reports.LogRevenueSnapshot(); err != nil {
				logrus.WithError(err).Error("revenue snapshot failed")
			}
		})
		if err != nil {
			logrus.Fatalf("Invalid REVENUE_SNAPSHOT_SCHEDULE: %v", err)
		}
		scheduler.Start()
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	logrus.Infof("Server running on port %s", cfg.Port)
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, cors(router))))
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/api/http"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/config"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/jobs"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/logger"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/oracle"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository/postgres"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/scheduler"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HR core", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Oracle configuration", "base_url", cfg.Oracle.BaseURL)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	membershipOracle := oracle.NewClient(
		cfg.Oracle.BaseURL,
		cfg.Oracle.Token,
		time.Duration(cfg.Oracle.TimeoutSeconds)*time.Second,
	)

	roleSvc := service.NewRoleService(store.RoleRepository, membershipOracle)
	appSvc := service.NewApplicationService(store.ApplicationRepository, store.RecommendationRepository, store.ActivityLogRepository, roleSvc)
	recSvc := service.NewRecommendationService(store.RecommendationRepository, store.ApplicationRepository)
	noteSvc := service.NewNoteService(store.NoteRepository)
	hr := service.NewHR(appSvc, recSvc, noteSvc, roleSvc, membershipOracle)

	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(roleSvc, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	}

	server := api.NewServer(hr)
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), server.Router()); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vacations/internal/domain/reports"
	"vacations/internal/domain/vacation"
	"vacations/internal/platform/config"
	"vacations/internal/platform/metrics"
	"vacations/internal/platform/seed"
	"vacations/internal/transport/http/api"
	reportshandler "vacations/internal/transport/http/handlers/reports"
	vacationhandler "vacations/internal/transport/http/handlers/vacation"
	"vacations/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Router  http.Handler
	Metrics *metrics.Collector
}

// New assembles the service: roster seeding, the lifecycle engine, and the
// HTTP surface. State lives entirely in memory for the lifetime of the App.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	employees, managers, err := roster(cfg)
	if err != nil {
		return nil, err
	}

	directory := vacation.NewDirectory(employees, managers)
	ledger := vacation.NewLedger(employees, cfg.DefaultVacationDays)
	store := vacation.NewStore()
	vacationSvc := vacation.NewService(directory, ledger, store, cfg.RefundOnReject)
	reportsSvc := reports.NewService(vacationSvc)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		vacationhandler.NewHandler(vacationSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc, vacationSvc).RegisterRoutes(r)
	})

	return &App{Config: cfg, Router: router, Metrics: collector}, nil
}

func roster(cfg config.Config) ([]vacation.Employee, []vacation.Manager, error) {
	employeeEntries, err := seed.Parse(cfg.SeedEmployees)
	if err != nil {
		return nil, nil, fmt.Errorf("SEED_EMPLOYEES: %w", err)
	}
	if len(employeeEntries) == 0 {
		employeeEntries = seed.DefaultEmployees()
	}
	managerEntries, err := seed.Parse(cfg.SeedManagers)
	if err != nil {
		return nil, nil, fmt.Errorf("SEED_MANAGERS: %w", err)
	}
	if len(managerEntries) == 0 {
		managerEntries = seed.DefaultManagers()
	}

	employees := make([]vacation.Employee, 0, len(employeeEntries))
	for _, e := range employeeEntries {
		employees = append(employees, vacation.Employee{ID: e.ID, Name: e.Name})
	}
	managers := make([]vacation.Manager, 0, len(managerEntries))
	for _, m := range managerEntries {
		managers = append(managers, vacation.Manager{ID: m.ID, Name: m.Name})
	}
	return employees, managers, nil
}

func Run() {
	cfg := config.Load()
	app, err := New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	log.Printf("vacation server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

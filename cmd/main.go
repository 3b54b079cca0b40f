package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	bookAppointmentHandler "github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers/book_appointment"
	createSessionHandler "github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers/delete_session"
	estimateBillHandler "github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers/estimate_bill"
	getSlotSheetHandler "github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers/get_slot_sheet"
	listDepartmentsHandler "github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers/list_departments"
	listDoctorsHandler "github.com/m1shk4/HMS-AppointmentGateway/internal/api/handlers/list_doctors"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/api/middleware"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/config"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/infra/cache/catalogcache"
	sessionRepo "github.com/m1shk4/HMS-AppointmentGateway/internal/infra/storage/session"
	"github.com/m1shk4/HMS-AppointmentGateway/internal/integrations/hospitalapi"
	billingService "github.com/m1shk4/HMS-AppointmentGateway/internal/service/billing"
	catalogService "github.com/m1shk4/HMS-AppointmentGateway/internal/service/catalog"
	sessionsService "github.com/m1shk4/HMS-AppointmentGateway/internal/service/sessions"
	bookAppointmentUC "github.com/m1shk4/HMS-AppointmentGateway/internal/usecase/book_appointment"
	getSlotSheetUC "github.com/m1shk4/HMS-AppointmentGateway/internal/usecase/get_slot_sheet"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/dbmetrics"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/logger"
	"github.com/m1shk4/HMS-AppointmentGateway/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HMS-AppointmentGateway...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Session storage.
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var sessionRepository *sessionRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
	}

	// Upstream hospital API client.
	hospitalClient := hospitalapi.NewClient(
		cfg.HospitalAPI.URL,
		time.Duration(cfg.HospitalAPI.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Hospital API client initialized (url=%s, timeout=%ds)", cfg.HospitalAPI.URL, cfg.HospitalAPI.Timeout)

	// Optional redis catalog cache. The catalog service degrades to
	// upstream-only reads when the cache is disabled or unreachable.
	var catalogCache catalogService.Cache
	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		catalogCache = catalogcache.New(rdb, time.Duration(cfg.Cache.TTL)*time.Second)
		log.Info("Catalog cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Services.
	catalogSvc := catalogService.NewService(hospitalClient, catalogCache, log)
	sessionsSvc := sessionsService.NewService(sessionRepository, log)
	billingSvc := billingService.NewService(
		catalogSvc,
		cfg.Billing.ServiceCharge,
		cfg.Billing.GSTRatePercent,
		log,
	)

	// Use cases.
	getSlotSheetUseCase := getSlotSheetUC.NewUseCase(catalogSvc, hospitalClient, log)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(catalogSvc, hospitalClient, log)

	// Handlers.
	createSession := createSessionHandler.NewHandler(sessionsSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionsSvc, log)
	listDepartments := listDepartmentsHandler.NewHandler(catalogSvc, log)
	listDoctors := listDoctorsHandler.NewHandler(catalogSvc, log)
	getSlotSheet := getSlotSheetHandler.NewHandler(getSlotSheetUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	estimateBill := estimateBillHandler.NewHandler(billingSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Login is the only public route.
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Everything else requires a valid X-Session-ID.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionsSvc, log))

	protected.HandleFunc("/sessions", deleteSession.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/departments", listDepartments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/departments/{departmentId}/doctors", listDoctors.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/departments/{departmentId}/doctors/{doctorId}/slots",
		getSlotSheet.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/billing/estimate", estimateBill.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

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

	admitBookingHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/admit_booking"
	createTimeSlotsHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/create_time_slots"
	deleteTimeSlotHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/delete_time_slot"
	getAppointmentHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/get_catalog"
	getCustomerAppointmentsHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/get_customer_appointments"
	getGroomerAppointmentsHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/get_groomer_appointments"
	pricePreviewHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/price_preview"
	updateAppointmentStatusHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/update_appointment_status"
	upsertBreedHandler "github.com/shampooches/GroomingBookingService/internal/api/handlers/upsert_breed"
	"github.com/shampooches/GroomingBookingService/internal/api/middleware"
	"github.com/shampooches/GroomingBookingService/internal/cache"
	"github.com/shampooches/GroomingBookingService/internal/config"
	appointmentRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/appointment"
	breedRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/breed"
	customerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/customer"
	groomerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/groomer"
	serviceRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/service"
	siteConfigRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/siteconfig"
	timeSlotRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/timeslot"
	"github.com/shampooches/GroomingBookingService/internal/notifier"
	appointmentsService "github.com/shampooches/GroomingBookingService/internal/service/appointments"
	catalogService "github.com/shampooches/GroomingBookingService/internal/service/catalog"
	scheduleService "github.com/shampooches/GroomingBookingService/internal/service/schedule"
	admitBookingUC "github.com/shampooches/GroomingBookingService/internal/usecase/admit_booking"
	getAvailableSlotsUC "github.com/shampooches/GroomingBookingService/internal/usecase/get_available_slots"
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
	"github.com/shampooches/GroomingBookingService/pkg/logger"
	"github.com/shampooches/GroomingBookingService/pkg/metrics"
	"github.com/shampooches/GroomingBookingService/pkg/simpletxmanager"
	"github.com/shampooches/GroomingBookingService/pkg/txmanager"
)

const catalogCacheTTL = 5 * time.Minute

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

	log.Info("Starting GroomingBookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Transaction manager interface shared by usecases and services
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		appointmentRepository *appointmentRepo.Repository
		customerRepository    *customerRepo.Repository
		timeSlotRepository    *timeSlotRepo.Repository
		breedRepository       *breedRepo.Repository
		serviceRepository     *serviceRepo.Repository
		groomerRepository     *groomerRepo.Repository
		siteConfigRepository  *siteConfigRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		timeSlotRepository = timeSlotRepo.NewRepository(wrappedDB)
		breedRepository = breedRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		groomerRepository = groomerRepo.NewRepository(wrappedDB)
		siteConfigRepository = siteConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		timeSlotRepository = timeSlotRepo.NewRepository(db)
		breedRepository = breedRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		groomerRepository = groomerRepo.NewRepository(db)
		siteConfigRepository = siteConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	catalogCache := cache.New(catalogCacheTTL)
	statusNotifier := notifier.New(log)

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		statusNotifier,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		breedRepository,
		serviceRepository,
		groomerRepository,
		catalogCache,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		timeSlotRepository,
		appointmentRepository,
		groomerRepository,
		log,
	)

	admitBookingUseCase := admitBookingUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		timeSlotRepository,
		breedRepository,
		serviceRepository,
		groomerRepository,
		siteConfigRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		timeSlotRepository,
		groomerRepository,
		log,
	)

	admitBooking := admitBookingHandler.NewHandler(admitBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	pricePreview := pricePreviewHandler.NewHandler(catalogSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getGroomerAppointments := getGroomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	createTimeSlots := createTimeSlotsHandler.NewHandler(scheduleSvc, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(scheduleSvc, log)
	upsertBreed := upsertBreedHandler.NewHandler(catalogSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Catalog for the booking page
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Price preview before committing to a booking
	api.HandleFunc("/price-preview", pricePreview.Handle).Methods(http.MethodGet)

	// Open slots for a groomer on a date
	api.HandleFunc("/groomers/{groomerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Booking admission
	api.HandleFunc("/bookings", admitBooking.Handle).Methods(http.MethodPost)

	// Appointment lookups
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}/appointments",
		getCustomerAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Appointment lifecycle
	admin.HandleFunc("/appointments/{id}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Groomer day schedule
	admin.HandleFunc("/groomers/{groomerId}/appointments",
		getGroomerAppointments.Handle).Methods(http.MethodGet)

	// Schedule management
	admin.HandleFunc("/groomers/{groomerId}/time-slots",
		createTimeSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/time-slots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

	// Breed catalog management
	admin.HandleFunc("/breeds", upsertBreed.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/breeds/{breedId}", upsertBreed.HandleUpdate).Methods(http.MethodPut)

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

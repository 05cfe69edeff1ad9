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

	blockDateHandler "github.com/newcase/agendamento-service/internal/api/handlers/block_date"
	bootstrapAdminHandler "github.com/newcase/agendamento-service/internal/api/handlers/bootstrap_admin"
	cancelAppointmentHandler "github.com/newcase/agendamento-service/internal/api/handlers/cancel_appointment"
	checkAdminHandler "github.com/newcase/agendamento-service/internal/api/handlers/check_admin"
	createAppointmentHandler "github.com/newcase/agendamento-service/internal/api/handlers/create_appointment"
	createServiceTypeHandler "github.com/newcase/agendamento-service/internal/api/handlers/create_service_type"
	deleteServiceTypeHandler "github.com/newcase/agendamento-service/internal/api/handlers/delete_service_type"
	getAvailableSlotsHandler "github.com/newcase/agendamento-service/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/newcase/agendamento-service/internal/api/handlers/list_appointments"
	listBlockedDatesHandler "github.com/newcase/agendamento-service/internal/api/handlers/list_blocked_dates"
	listServiceTypesHandler "github.com/newcase/agendamento-service/internal/api/handlers/list_service_types"
	reorderServiceTypeHandler "github.com/newcase/agendamento-service/internal/api/handlers/reorder_service_type"
	trackAppointmentHandler "github.com/newcase/agendamento-service/internal/api/handlers/track_appointment"
	unblockDateHandler "github.com/newcase/agendamento-service/internal/api/handlers/unblock_date"
	updateAppointmentStatusHandler "github.com/newcase/agendamento-service/internal/api/handlers/update_appointment_status"
	updateServiceTypeHandler "github.com/newcase/agendamento-service/internal/api/handlers/update_service_type"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/config"
	"github.com/newcase/agendamento-service/internal/domain"
	appointmentRepo "github.com/newcase/agendamento-service/internal/infra/storage/appointment"
	blockedDateRepo "github.com/newcase/agendamento-service/internal/infra/storage/blockeddate"
	serviceTypeRepo "github.com/newcase/agendamento-service/internal/infra/storage/servicetype"
	userRoleRepo "github.com/newcase/agendamento-service/internal/infra/storage/userrole"
	"github.com/newcase/agendamento-service/internal/integrations/sheetsync"
	accessService "github.com/newcase/agendamento-service/internal/service/access"
	appointmentsService "github.com/newcase/agendamento-service/internal/service/appointments"
	calendarService "github.com/newcase/agendamento-service/internal/service/calendar"
	catalogService "github.com/newcase/agendamento-service/internal/service/catalog"
	createAppointmentUC "github.com/newcase/agendamento-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/newcase/agendamento-service/internal/usecase/get_available_slots"
	"github.com/newcase/agendamento-service/pkg/dbmetrics"
	"github.com/newcase/agendamento-service/pkg/logger"
	"github.com/newcase/agendamento-service/pkg/metrics"
	"github.com/newcase/agendamento-service/pkg/simpletxmanager"
	"github.com/newcase/agendamento-service/pkg/txmanager"
)

// noopSheetRelay stands in for the spreadsheet webhook when sheet_sync is
// disabled in the config.
type noopSheetRelay struct {
	log *logger.Logger
}

func (n *noopSheetRelay) PushAsync(appointment *domain.Appointment, _ time.Duration) {
	n.log.Debug("Sheet sync disabled, skipping relay for appointment code=%s", appointment.Code)
}

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

	log.Info("Starting agendamento-service...")
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

	// Spreadsheet relay for the workshop's planning sheet.
	var sheetRelay createAppointmentUC.SheetRelay
	if cfg.SheetSync.Enabled {
		sheetRelay = sheetsync.NewClient(
			cfg.SheetSync.WebhookURL,
			time.Duration(cfg.SheetSync.Timeout)*time.Second,
			log,
		)
		log.Info("Sheet sync enabled (timeout=%ds)", cfg.SheetSync.Timeout)
	} else {
		sheetRelay = &noopSheetRelay{log: log}
		log.Info("Sheet sync disabled")
	}

	// Repositories and transaction manager, instrumented when metrics are on.
	var (
		appointmentRepository *appointmentRepo.Repository
		serviceTypeRepository *serviceTypeRepo.Repository
		blockedDateRepository *blockedDateRepo.Repository
		userRoleRepository    *userRoleRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceTypeRepository = serviceTypeRepo.NewRepository(wrappedDB)
		blockedDateRepository = blockedDateRepo.NewRepository(wrappedDB)
		userRoleRepository = userRoleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceTypeRepository = serviceTypeRepo.NewRepository(db)
		blockedDateRepository = blockedDateRepo.NewRepository(db)
		userRoleRepository = userRoleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, userRoleRepository, log)
	catalogSvc := catalogService.NewService(serviceTypeRepository, userRoleRepository, txMgr, log)
	calendarSvc := calendarService.NewService(blockedDateRepository, userRoleRepository, log)
	accessSvc := accessService.NewService(userRoleRepository, txMgr, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceTypeRepository,
		blockedDateRepository,
		sheetRelay,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		blockedDateRepository,
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	trackAppointment := trackAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listServiceTypes := listServiceTypesHandler.NewHandler(catalogSvc, log)
	createServiceType := createServiceTypeHandler.NewHandler(catalogSvc, log)
	updateServiceType := updateServiceTypeHandler.NewHandler(catalogSvc, log)
	deleteServiceType := deleteServiceTypeHandler.NewHandler(catalogSvc, log)
	reorderServiceType := reorderServiceTypeHandler.NewHandler(catalogSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(calendarSvc, log)
	blockDate := blockDateHandler.NewHandler(calendarSvc, log)
	unblockDate := unblockDateHandler.NewHandler(calendarSvc, log)
	checkAdmin := checkAdminHandler.NewHandler(accessSvc, log)
	bootstrapAdmin := bootstrapAdminHandler.NewHandler(accessSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (booking form and tracking page)
	// ============================================================

	// Slot grid for one day
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Book an appointment
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Track an appointment by customer code
	api.HandleFunc("/appointments/track/{code}", trackAppointment.Handle).Methods(http.MethodGet)

	// Active service catalog
	api.HandleFunc("/service-types", listServiceTypes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (admin panel, require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth)

	// --- Access ---
	protected.HandleFunc("/me", checkAdmin.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bootstrap", bootstrapAdmin.Handle).Methods(http.MethodPost)

	// --- Appointments ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/batch-delete", cancelAppointment.HandleBatch).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Service catalog ---
	protected.HandleFunc("/service-types", listServiceTypes.HandleAll).Methods(http.MethodGet)
	protected.HandleFunc("/service-types", createServiceType.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/service-types/{serviceTypeId}", updateServiceType.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/service-types/{serviceTypeId}/active", updateServiceType.HandleSetActive).Methods(http.MethodPatch)
	protected.HandleFunc("/service-types/{serviceTypeId}/move", reorderServiceType.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/service-types/{serviceTypeId}", deleteServiceType.Handle).Methods(http.MethodDelete)

	// --- Blocked dates ---
	protected.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocked-dates", blockDate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-dates/{blockedDateId}", unblockDate.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	log.Info("Server exited")
}

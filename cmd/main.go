package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	cancelReservationHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/cancel_reservation"
	clearDayHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/clear_day"
	createReservationHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/get_available_slots"
	getDayScheduleHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/get_day_schedule"
	getReportHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/get_report"
	getServicesHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/get_services"
	listBackupsHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/list_backups"
	listReservationsHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/list_reservations"
	restoreBackupHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/restore_backup"
	sendRemindersHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/send_reminders"
	updateDayScheduleHandler "github.com/helenacolabronze/booking-service/internal/api/handlers/update_day_schedule"
	"github.com/helenacolabronze/booking-service/internal/api/middleware"
	"github.com/helenacolabronze/booking-service/internal/config"
	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/infra/storage/backup"
	"github.com/helenacolabronze/booking-service/internal/infra/storage/jsonfile"
	"github.com/helenacolabronze/booking-service/internal/infra/storage/postgres"
	sheetsStorage "github.com/helenacolabronze/booking-service/internal/infra/storage/sheets"
	"github.com/helenacolabronze/booking-service/internal/infra/storage/storemetrics"
	"github.com/helenacolabronze/booking-service/internal/integrations/whatsapp"
	backupsService "github.com/helenacolabronze/booking-service/internal/service/backups"
	reservationsService "github.com/helenacolabronze/booking-service/internal/service/reservations"
	scheduleService "github.com/helenacolabronze/booking-service/internal/service/schedule"
	createReservationUC "github.com/helenacolabronze/booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/helenacolabronze/booking-service/internal/usecase/get_available_slots"
	"github.com/helenacolabronze/booking-service/pkg/logger"
	"github.com/helenacolabronze/booking-service/pkg/metrics"
)

// Интерфейсы хранилищ, с которыми работает вся композиция.
// Конкретный бэкенд выбирается в config.toml.
type scheduleStore interface {
	Load(ctx context.Context) (domain.ScheduleDocument, error)
	Store(ctx context.Context, doc domain.ScheduleDocument) error
}

type reservationStore interface {
	Load(ctx context.Context) (domain.ReservationsDocument, error)
	Store(ctx context.Context, doc domain.ReservationsDocument) error
}

// measuredReservationUseCase учитывает исходы попыток бронирования в метриках
type measuredReservationUseCase struct {
	next      *createReservationUC.UseCase
	collector *metrics.Metrics
}

func (m *measuredReservationUseCase) Execute(ctx context.Context, req *createReservationUC.Request) (*createReservationUC.Response, error) {
	resp, err := m.next.Execute(ctx, req)
	switch {
	case err == nil:
		m.collector.IncReservationOutcome("created")
	case errors.Is(err, createReservationUC.ErrSlotTaken),
		errors.Is(err, createReservationUC.ErrSlotNotOffered):
		m.collector.IncReservationOutcome("conflict")
	case errors.Is(err, createReservationUC.ErrInternal):
		m.collector.IncReservationOutcome("error")
	default:
		m.collector.IncReservationOutcome("rejected")
	}
	return resp, err
}

func main() {
	// Загружаем секреты из .env (в production переменные заданы окружением)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml (storage backend=%s)", cfg.Storage.Backend)

	if os.Getenv("ADMIN_PASSWORD") == "" {
		log.Fatal("ADMIN_PASSWORD environment variable is required")
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем бэкенд хранилища документов
	var (
		scheduleRepo     scheduleStore
		reservationsRepo reservationStore
	)

	switch cfg.Storage.Backend {
	case config.BackendSheets:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		svc, err := sheetsStorage.NewService(ctx, cfg.Sheets.CredentialsFile)
		cancel()
		if err != nil {
			log.Fatal("Failed to initialize Google Sheets client: %v", err)
		}
		scheduleRepo = sheetsStorage.NewScheduleStore(svc, cfg.Sheets.SpreadsheetID, cfg.Sheets.ScheduleTab)
		reservationsRepo = sheetsStorage.NewReservationStore(svc, cfg.Sheets.SpreadsheetID, cfg.Sheets.ReservationsTab)
		log.Info("Using Google Sheets storage (spreadsheet=%s)", cfg.Sheets.SpreadsheetID)

	case config.BackendPostgres:
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

		scheduleRepo = postgres.NewScheduleStore(db)
		reservationsRepo = postgres.NewReservationStore(db)

	default:
		scheduleRepo = jsonfile.NewScheduleStore(cfg.Storage.ScheduleFile)
		reservationsRepo = jsonfile.NewReservationStore(cfg.Storage.ReservationsFile)
		log.Info("Using JSON file storage (schedule=%s, reservations=%s)",
			cfg.Storage.ScheduleFile, cfg.Storage.ReservationsFile)
	}

	// Оборачиваем хранилища метриками
	if cfg.Metrics.Enabled {
		scheduleRepo = storemetrics.WrapSchedule(scheduleRepo, metricsCollector)
		reservationsRepo = storemetrics.WrapReservations(reservationsRepo, metricsCollector)
		log.Info("Document store metrics collection enabled")
	}

	// Инициализируем менеджер бэкапов
	backupManager := backup.NewManager(cfg.Storage.BackupDir)
	backupsSvc := backupsService.NewService(scheduleRepo, reservationsRepo, backupManager, log)

	// Инициализируем WhatsApp клиент (если уведомления включены)
	var notifier reservationsService.Notifier
	if cfg.Notifications.Enabled {
		accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
		authToken := os.Getenv("TWILIO_AUTH_TOKEN")
		if accountSID == "" || authToken == "" {
			log.Fatal("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required when notifications are enabled")
		}
		notifier = whatsapp.NewClient(
			cfg.Notifications.APIURL,
			accountSID,
			authToken,
			cfg.Notifications.FromNumber,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("WhatsApp notifications enabled (from=%s)", cfg.Notifications.FromNumber)
	} else {
		log.Info("WhatsApp notifications disabled")
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepo, reservationsRepo, backupsSvc, log)
	reservationsSvc := reservationsService.NewService(reservationsRepo, notifier, backupsSvc, log)

	// Инициализируем use cases
	createUC := createReservationUC.NewUseCase(reservationsRepo, scheduleRepo, log)
	var createReservationUseCase createReservationHandler.CreateReservationUseCase = createUC
	if cfg.Metrics.Enabled {
		createReservationUseCase = &measuredReservationUseCase{next: createUC, collector: metricsCollector}
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationsRepo, scheduleRepo, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServices := getServicesHandler.NewHandler()
	getDaySchedule := getDayScheduleHandler.NewHandler(scheduleSvc, log)
	updateDaySchedule := updateDayScheduleHandler.NewHandler(scheduleSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	clearDay := clearDayHandler.NewHandler(reservationsSvc, log)
	getReport := getReportHandler.NewHandler(reservationsSvc, log)
	listBackups := listBackupsHandler.NewHandler(backupsSvc, log)
	restoreBackup := restoreBackupHandler.NewHandler(backupsSvc, log)
	sendReminders := sendRemindersHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская форма записи)
	// ============================================================

	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{date}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи под щадящим rate limit
	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	api.Handle("/reservations",
		rateLimiter.Middleware(http.HandlerFunc(createReservation.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Password header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Расписание ---
	admin.HandleFunc("/schedule/{date}", getDaySchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/{date}", updateDaySchedule.Handle).Methods(http.MethodPut)

	// --- Записи ---
	admin.HandleFunc("/reservations/{date}", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{date}", clearDay.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{date}/{position}", cancelReservation.Handle).Methods(http.MethodDelete)

	// --- Отчеты ---
	admin.HandleFunc("/reports", getReport.Handle).Methods(http.MethodGet)

	// --- Бэкапы ---
	admin.HandleFunc("/backups", listBackups.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/backups/{name}/restore", restoreBackup.Handle).Methods(http.MethodPost)

	// --- Напоминания ---
	admin.HandleFunc("/reminders/{date}", sendReminders.Handle).Methods(http.MethodPost)

	// Форма записи живет на отдельном домене
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", middleware.AdminPasswordHeader},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

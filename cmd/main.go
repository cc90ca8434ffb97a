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

	createBookingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_booking"
	createSlotHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_slot"
	getAvailableTimesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_times"
	getOwnerBookingsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_owner_bookings"
	listSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_slots"
	loginUserHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/login_user"
	registerUserHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/register_user"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
	slotsService "github.com/m04kA/SMC-ScheduleService/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	createSlotUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_slot"
	getAvailableTimesUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_times"
	loginUserUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/login_user"
	registerUserUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/register_user"
	"github.com/m04kA/SMC-ScheduleService/pkg/authtoken"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Менеджер токенов
	tokens := authtoken.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository    *userRepo.Repository
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		userRepository = userRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		userRepository = userRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, userRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, userRepository, log)

	// Инициализируем use cases
	registerUserUseCase := registerUserUC.NewUseCase(userRepository, tokens, cfg.Auth.BcryptCost, log)
	loginUserUseCase := loginUserUC.NewUseCase(userRepository, tokens, log)
	createSlotUseCase := createSlotUC.NewUseCase(slotRepository, userRepository, log)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(slotRepository, bookingRepository, userRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		userRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(registerUserUseCase, log)
	loginUser := loginUserHandler.NewHandler(loginUserUseCase, log)
	createSlot := createSlotHandler.NewHandler(createSlotUseCase, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация владельца (выдает ссылку бронирования и токен)
	api.HandleFunc("/users/register", registerUser.Handle).Methods(http.MethodPost)

	// Вход владельца
	api.HandleFunc("/users/login", loginUser.Handle).Methods(http.MethodPost)

	// Предстоящие слоты по ссылке бронирования
	api.HandleFunc("/links/{link}/slots", listSlots.Handle).Methods(http.MethodGet)

	// Доступные диапазоны на дату
	api.HandleFunc("/links/{link}/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Бронирование диапазона посетителем (ссылки достаточно, токен не нужен)
	api.HandleFunc("/links/{link}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens))

	// Создание слота владельцем
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)

	// Бронирования по ссылке владельца
	protected.HandleFunc("/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

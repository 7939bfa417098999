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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	endSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/end_session"
	getActiveSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_active_session"
	getRecentActivityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_recent_activity"
	getSessionHistoryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_session_history"
	getSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slot"
	getSlotStatisticsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slot_statistics"
	getSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slots"
	getTrafficFlowHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_traffic_flow"
	getZoneHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_zone"
	getZonesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_zones"
	reserveSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reserve_slot"
	startSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/start_session"
	toggleSlotStatusHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/toggle_slot_status"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	redisInfra "github.com/m04kA/SMC-ParkingService/internal/infra/redis"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
	identityClient "github.com/m04kA/SMC-ParkingService/internal/integrations/identity"
	"github.com/m04kA/SMC-ParkingService/internal/notify"
	parkingService "github.com/m04kA/SMC-ParkingService/internal/service/parking"
	statisticsService "github.com/m04kA/SMC-ParkingService/internal/service/statistics"
	endSessionUC "github.com/m04kA/SMC-ParkingService/internal/usecase/end_session"
	reserveSlotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_slot"
	startSessionUC "github.com/m04kA/SMC-ParkingService/internal/usecase/start_session"
	toggleSlotStatusUC "github.com/m04kA/SMC-ParkingService/internal/usecase/toggle_slot_status"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if path := os.Getenv("PARKING_CONFIG"); path != "" {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		storeObserver    records.Observer
		notifyObserver   notify.Observer
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		storeObserver = metricsCollector
		notifyObserver = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Redis нужен хранилищу и/или каналу уведомлений
	var redisClient *redisInfra.Client
	if cfg.Storage.Driver == config.StorageRedis || cfg.Notifications.RedisEnabled {
		redisClient, err = redisInfra.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}

	// Хранилище записей
	backend, closeBackend, err := openBackend(ctx, cfg, redisClient, log)
	if err != nil {
		log.Fatal("Failed to open record store: %v", err)
	}
	defer closeBackend()

	store := records.NewStore(backend, storeObserver)
	defer store.Close()

	if err := seedStore(ctx, store, cfg.Storage.SeedFile, log); err != nil {
		log.Fatal("Failed to seed record store: %v", err)
	}

	// Клиент сервиса идентификации
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s, timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Каналы уведомлений
	var (
		publishers []notify.Publisher
		hub        *notify.Hub
	)
	if cfg.Notifications.WebSocketEnabled {
		hub = notify.NewHub(log)
		go hub.Run(ctx)
		publishers = append(publishers, hub)
		log.Info("WebSocket notifications enabled at %s", cfg.Notifications.WebSocketPath)
	}
	if cfg.Notifications.RedisEnabled {
		publishers = append(publishers, notify.NewRedisPublisher(redisClient.Client, cfg.Notifications.RedisChannel))
		log.Info("Redis notifications enabled (channel=%s)", cfg.Notifications.RedisChannel)
	}
	emitter := notify.NewEmitter(log, notifyObserver, publishers...)

	location, err := cfg.Statistics.Location()
	if err != nil {
		log.Fatal("Failed to load statistics timezone: %v", err)
	}

	// Сервисы
	parkingSvc := parkingService.NewService(store, log)
	statisticsSvc := statisticsService.NewService(store, location, log)

	// Use cases
	reserveSlotUseCase := reserveSlotUC.NewUseCase(store, emitter, log)
	toggleSlotStatusUseCase := toggleSlotStatusUC.NewUseCase(store, emitter, log)
	startSessionUseCase := startSessionUC.NewUseCase(store, identity, emitter, log)
	endSessionUseCase := endSessionUC.NewUseCase(store, identity, emitter, log)

	// Handlers
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	toggleSlotStatus := toggleSlotStatusHandler.NewHandler(toggleSlotStatusUseCase, log)
	startSession := startSessionHandler.NewHandler(startSessionUseCase, log)
	endSession := endSessionHandler.NewHandler(endSessionUseCase, log)
	getActiveSession := getActiveSessionHandler.NewHandler(parkingSvc, log)
	getZones := getZonesHandler.NewHandler(parkingSvc, log)
	getZone := getZoneHandler.NewHandler(parkingSvc, log)
	getSlots := getSlotsHandler.NewHandler(parkingSvc, log)
	getSlot := getSlotHandler.NewHandler(parkingSvc, log)
	getSlotStatistics := getSlotStatisticsHandler.NewHandler(statisticsSvc, log)
	getSessionHistory := getSessionHistoryHandler.NewHandler(statisticsSvc, log)
	getTrafficFlow := getTrafficFlowHandler.NewHandler(statisticsSvc, log)
	getRecentActivity := getRecentActivityHandler.NewHandler(statisticsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.Use(middleware.Audit(log))

	if hub != nil {
		r.Handle(cfg.Notifications.WebSocketPath, hub).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1/parking").Subrouter()

	// --- Слоты ---
	api.HandleFunc("/reserve", reserveSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/toggle-status", toggleSlotStatus.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/zones", getZones.Handle).Methods(http.MethodGet)
	api.HandleFunc("/zones/{zoneId}", getZone.Handle).Methods(http.MethodGet)

	// --- Сессии ---
	api.HandleFunc("/sessions/start", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/end", endSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/active/{userId}", getActiveSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/history", getSessionHistory.Handle).Methods(http.MethodGet)

	// --- Статистика ---
	api.HandleFunc("/static", getSlotStatistics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/statistics/traffic-flow", getTrafficFlow.Handle).Methods(http.MethodGet)
	api.HandleFunc("/statistics/recent-activity", getRecentActivity.Handle).Methods(http.MethodGet)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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

	// Останавливаем websocket hub
	stop()

	log.Info("Server stopped gracefully")
}

// openBackend открывает backend хранилища по storage.driver
// Возвращаемая функция закрывает ресурсы, которыми backend не владеет
func openBackend(ctx context.Context, cfg *config.Config, redisClient *redisInfra.Client, log *logger.Logger) (records.Backend, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Info("Record store: memory")
		return records.NewMemoryBackend(), noop, nil

	case config.StorageBadger:
		backend, err := records.OpenBadger(cfg.Storage.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Record store: badger (path=%q)", cfg.Storage.BadgerPath)
		return backend, noop, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}

		backend := records.NewPostgresBackend(db)
		if err := backend.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("Record store: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return backend, func() { _ = db.Close() }, nil

	case config.StorageRedis:
		log.Info("Record store: redis (prefix=%s)", cfg.Storage.RedisKeyPrefix)
		return records.NewRedisBackend(redisClient.Client, cfg.Storage.RedisKeyPrefix), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// seedStore загружает начальные зоны и слоты в пустое хранилище
func seedStore(ctx context.Context, store *records.Store, seedFile string, log *logger.Logger) error {
	if seedFile == "" {
		return nil
	}

	empty, err := store.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		log.Info("Record store already populated, skipping seed file %s", seedFile)
		return nil
	}

	snapshot, err := records.ReadSnapshotFile(seedFile)
	if err != nil {
		return err
	}
	if err := store.Import(ctx, snapshot); err != nil {
		return err
	}

	log.Info("Record store seeded from %s: zones=%d, slots=%d, sessions=%d",
		seedFile, len(snapshot.Zones), len(snapshot.Slots), len(snapshot.Sessions))
	return nil
}

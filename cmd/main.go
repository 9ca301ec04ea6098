package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/proximity_alert_system/internal/alert"
	"github.com/shenikar/proximity_alert_system/internal/background"
	"github.com/shenikar/proximity_alert_system/internal/config"
	"github.com/shenikar/proximity_alert_system/internal/detector"
	v1 "github.com/shenikar/proximity_alert_system/internal/handler/http/v1"
	"github.com/shenikar/proximity_alert_system/internal/location"
	"github.com/shenikar/proximity_alert_system/internal/notifier"
	"github.com/shenikar/proximity_alert_system/internal/repository"
	"github.com/shenikar/proximity_alert_system/internal/scheduler"
	"github.com/shenikar/proximity_alert_system/internal/service"
	"github.com/shenikar/proximity_alert_system/pkg/logger"
	"github.com/shenikar/proximity_alert_system/pkg/postgres"
	redisclient "github.com/shenikar/proximity_alert_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/proximity_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Proximity Alert System API
// @version 1.0
// @description Location synchronization and proximity alerting service.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация репозиториев
	locationStore := repository.NewLocationStore(redisClient, log)
	alertRepo := repository.NewAlertRepository(dbpool)
	membershipRepo := repository.NewMembershipRepository(dbpool, cfg.DefaultRadiusMeters)
	taskStateRepo := repository.NewTaskStateRepository(dbpool)

	// Инициализация sink алертов и воркера доставки
	alertSink := notifier.NewRedisAlertSink(redisClient)
	deliveryWorker := notifier.NewDeliveryWorker(redisClient, log, cfg)
	deliveryWorker.Start(ctx)

	// Источник местоположений, питаемый показаниями устройства по HTTP
	source := location.NewPushSource(location.PushSourceConfig{
		FixTimeout:            cfg.FixTimeout,
		ForegroundMinInterval: cfg.ForegroundMinInterval,
		ForegroundMinDistance: cfg.ForegroundMinDistance,
		BackgroundMinInterval: cfg.BackgroundMinInterval,
	})

	// Конвейер синхронизации и детекции
	sched := scheduler.New(locationStore, membershipRepo, source, log, cfg.LocalUserID, scheduler.Config{
		ThrottleInterval:   cfg.SyncThrottleInterval,
		MinDistanceMeters:  cfg.SyncMinDistanceMeters,
		RetryDelay:         cfg.SyncRetryDelay,
		StalenessThreshold: cfg.SyncStalenessThreshold,
		RefreshInterval:    cfg.MembershipRefreshInterval,
	})

	debouncer := alert.New(alertRepo, membershipRepo, service.NewSchedulerBroadcastState(sched), alertSink, log, cfg.LocalUserID, alert.Config{
		Window:               cfg.DebounceWindow,
		PruneInterval:        cfg.DebouncePruneInterval,
		OnlyWhenBroadcasting: cfg.TriggerAlertsOnlyBroadcasting,
	})

	det := detector.New(locationStore, membershipRepo, membershipRepo, debouncer, source, log, cfg.LocalUserID, detector.Config{
		DefaultRadiusMeters: cfg.DefaultRadiusMeters,
		RefreshInterval:     cfg.MembershipRefreshInterval,
	})

	proximityService := service.NewProximityService(source, sched, det, debouncer, membershipRepo, alertRepo, locationStore, log, cfg.LocalUserID)
	proximityService.Start(ctx)

	// Фоновая задача: грубая каденция, долговременное состояние в бд.
	// Тикер моделирует планировщик ОС и гарантирует сериализацию запусков.
	backgroundTask := background.New(source, locationStore, locationStore, membershipRepo, taskStateRepo, alertSink, log, cfg.LocalUserID, background.Config{
		RadiusMeters:   cfg.DefaultRadiusMeters,
		DebounceWindow: cfg.BackgroundDebounceWindow,
		EvictAfter:     cfg.BackgroundEvictAfter,
	})
	go func() {
		ticker := time.NewTicker(cfg.BackgroundInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := backgroundTask.RunOnce(ctx); err != nil {
					log.WithError(err).Warn("Background duty cycle failed")
				}
			}
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(proximityService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// Останавливаем конвейер до остановки HTTP: подписки и таймеры
	// планировщика снимаются синхронно
	if err := proximityService.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("Proximity pipelines did not stop cleanly")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

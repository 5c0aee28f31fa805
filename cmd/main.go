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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/street_safety_system/internal/broadcast"
	"github.com/shenikar/street_safety_system/internal/config"
	v1 "github.com/shenikar/street_safety_system/internal/handler/http/v1"
	"github.com/shenikar/street_safety_system/internal/push"
	"github.com/shenikar/street_safety_system/internal/repository"
	"github.com/shenikar/street_safety_system/internal/service"
	"github.com/shenikar/street_safety_system/pkg/logger"
	"github.com/shenikar/street_safety_system/pkg/metrics"
	"github.com/shenikar/street_safety_system/pkg/postgres"
	redisclient "github.com/shenikar/street_safety_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/street_safety_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Street Safety System API
// @version 1.0
// @description This is a Street Safety System API server.
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
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики Prometheus
	m := metrics.New(prometheus.DefaultRegisterer)

	// Инициализация издателя событий и воркера широковещательной доставки
	eventPublisher := broadcast.NewRedisEventPublisher(redisClient)
	broadcastWorker := broadcast.NewWorker(redisClient, log, cfg)
	broadcastWorker.Start(ctx)

	// Шлюз push-уведомлений
	pushGateway := push.NewHTTPGateway(cfg.PushGatewayURL, cfg.PushGatewaySecret, cfg.PushTimeout, log)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	zoneRepo := repository.NewZoneRepository(dbpool)
	membershipRepo := repository.NewMembershipRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool, cfg.DefaultAlertRadiusMeters)
	clusterLock := repository.NewRedisClusterLock(redisClient)

	// Инициализация сервисов
	dispatcher := service.NewAlertDispatcher(userRepo, pushGateway, eventPublisher, log, cfg, m)
	incidentService := service.NewIncidentService(incidentRepo, dispatcher, eventPublisher, log, cfg, m)
	clusterService := service.NewClusterService(zoneRepo, clusterLock, eventPublisher, log, cfg, m)
	membershipService := service.NewMembershipService(membershipRepo, zoneRepo, userRepo, dispatcher, log, cfg, m)
	routeService := service.NewRouteService(incidentRepo, zoneRepo, log, cfg)

	// Фоновый цикл кластеризации
	go func() {
		ticker := time.NewTicker(cfg.ClusterInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := clusterService.RunClusteringCycle(ctx); err != nil && !errors.Is(err, service.ErrCycleRunning) {
					log.WithError(err).Error("Clustering cycle failed")
				}
			}
		}
	}()

	// Фоновая очистка просроченных инцидентов
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := incidentService.SweepExpired(ctx); err != nil {
					log.WithError(err).Error("Incident sweep failed")
				}
			}
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, membershipService, routeService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, v1.APIKeyAuthMiddleware(cfg, log))

	// Маршруты метрик и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

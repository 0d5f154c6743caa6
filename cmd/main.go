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

	configs "github.com/Payphone-Digital/roster/config"
	"github.com/Payphone-Digital/roster/internal/constants"
	"github.com/Payphone-Digital/roster/internal/handler"
	"github.com/Payphone-Digital/roster/internal/repository"
	"github.com/Payphone-Digital/roster/internal/router"
	"github.com/Payphone-Digital/roster/internal/service"
	"github.com/Payphone-Digital/roster/pkg/cache"
	"github.com/Payphone-Digital/roster/pkg/circuit"
	"github.com/Payphone-Digital/roster/pkg/database"
	"github.com/Payphone-Digital/roster/pkg/dataset"
	"github.com/Payphone-Digital/roster/pkg/health"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"github.com/Payphone-Digital/roster/pkg/metrics"
	"github.com/Payphone-Digital/roster/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", constants.AppVersion),
		zap.String("dataset_source", config.Dataset.Source),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, db, closeStore, err := openStore(ctx, config)
	if err != nil {
		logger.GetLogger().Fatal("Failed to open record store", zap.Error(err))
	}
	defer closeStore()

	// Snapshot cache: Redis when enabled, otherwise in-process
	var redisClient *redis.Client
	var snapshots repository.SnapshotCache
	if config.Redis.Enabled {
		redisClient, err = redis.NewClient(config)
		if err != nil {
			logger.GetLogger().Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		snapshots = redisClient

		// The store was just provisioned; snapshots from an earlier run may be stale
		if _, err := service.NewCacheService(redisClient).InvalidateSnapshots(ctx); err != nil {
			logger.GetLogger().Warn("Continuing with possibly stale snapshots", zap.Error(err))
		}
	} else {
		local := cache.NewCache[[]byte](time.Minute)
		defer local.Close()
		snapshots = repository.NewLocalSnapshotCache(local)
	}

	// Non-memory stores are the only ones worth caching
	if config.Dataset.Source != constants.DatasetSourceMemory {
		key := fmt.Sprintf("%s%s:%d", constants.CacheKeySnapshot, config.Dataset.Source, config.Dataset.Seed)
		store = repository.NewCachedStore(store, snapshots, key, config.Redis.TTL)
		logger.GetLogger().Info("Snapshot cache enabled",
			zap.String("key", key),
			zap.Bool("redis", redisClient != nil),
			zap.Duration("ttl", config.Redis.TTL),
		)
	}

	breaker := circuit.NewBreaker("store", circuit.Config{
		Threshold:   config.Breaker.MaxFailures,
		Timeout:     config.Breaker.ResetTimeout,
		MaxHalfOpen: config.Breaker.HalfOpenMax,
		OnStateChange: func(name string, _, to circuit.State) {
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
		},
	}, logger.GetLogger())
	metrics.BreakerState.WithLabelValues(breaker.Name()).Set(float64(breaker.State()))
	store = repository.NewResilientStore(store, breaker, config.Breaker.FetchTimeout)

	// Services
	personService := service.NewPersonService(store)

	// Handlers
	personHandler := handler.NewPersonHandler(personService)
	// Typed nils would defeat the handler's nil checks
	var dbPinger handler.Pinger
	if db != nil {
		dbPinger = db
	}
	var cachePinger handler.CachePinger
	if redisClient != nil {
		cachePinger = redisClient
	}
	healthHandler := handler.NewHealthHandler(config.Dataset.Source, dbPinger, cachePinger, breaker)

	monitor := health.NewMonitor(30*time.Second, logger.GetLogger(), func(name string, status health.Status) {
		up := 0.0
		if status == health.StatusHealthy {
			up = 1
		}
		metrics.DependencyUp.WithLabelValues(name).Set(up)
	})
	if dbPinger != nil {
		monitor.Register(config.Dataset.Source, dbPinger.PingContext)
	}
	if cachePinger != nil {
		monitor.Register("redis", cachePinger.Ping)
	}
	monitor.Start()
	defer monitor.Stop()

	if !config.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := router.NewRouter(personHandler, healthHandler, config).SetupRoutes()
	if err != nil {
		logger.GetLogger().Fatal("Failed to set up routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().Error("Server forced to shutdown", zap.Error(err))
	}
}

// openStore provisions the configured dataset source. db is the underlying
// SQL handle for health checks, nil for the in-memory source.
func openStore(ctx context.Context, config *configs.Config) (repository.PersonStore, *sql.DB, func(), error) {
	noop := func() {}

	switch config.Dataset.Source {
	case constants.DatasetSourcePostgres:
		gdb, err := database.NewPostgresDB(config)
		if err != nil {
			return nil, nil, noop, err
		}
		closeFn := func() { _ = database.CloseDB(gdb) }

		if err := database.AutoMigrate(gdb); err != nil {
			closeFn()
			return nil, nil, noop, fmt.Errorf("failed to run database migrations: %w", err)
		}
		seeded, err := database.SeedPersons(ctx, gdb, dataset.Generate(config.Dataset.Seed, config.Dataset.Size))
		if err != nil {
			closeFn()
			return nil, nil, noop, fmt.Errorf("failed to seed database: %w", err)
		}
		logger.GetLogger().Info("Database ready", zap.Int("seeded", seeded))

		sqlDB, err := gdb.DB()
		if err != nil {
			closeFn()
			return nil, nil, noop, err
		}
		return repository.NewPostgresStore(gdb), sqlDB, closeFn, nil

	case constants.DatasetSourceSQLite:
		sdb, err := database.OpenSQLite(config.SQLite.Path)
		if err != nil {
			return nil, nil, noop, err
		}
		closeFn := func() { _ = sdb.Close() }

		if err := database.MigrateSQLite(ctx, sdb); err != nil {
			closeFn()
			return nil, nil, noop, err
		}
		seeded, err := database.SeedSQLite(ctx, sdb, dataset.Generate(config.Dataset.Seed, config.Dataset.Size))
		if err != nil {
			closeFn()
			return nil, nil, noop, err
		}
		logger.GetLogger().Info("SQLite ready",
			zap.String("path", config.SQLite.Path),
			zap.Int("seeded", seeded),
		)
		return repository.NewSQLiteStore(sdb), sdb, closeFn, nil

	default:
		store, err := repository.NewSeededMemoryStore(config.Dataset.Seed, config.Dataset.Size, config.Dataset.Latency)
		if err != nil {
			return nil, nil, noop, err
		}
		logger.GetLogger().Info("In-memory dataset provisioned",
			zap.Int64("seed", config.Dataset.Seed),
			zap.Int("size", config.Dataset.Size),
			zap.Duration("latency", config.Dataset.Latency),
		)
		return store, nil, noop, nil
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gym-membership-go/internal/config"
	"gym-membership-go/internal/db"
	checkinsdomain "gym-membership-go/internal/domain/checkins"
	membersdomain "gym-membership-go/internal/domain/members"
	membershipsdomain "gym-membership-go/internal/domain/memberships"
	plansdomain "gym-membership-go/internal/domain/plans"
	"gym-membership-go/internal/metrics"
	inmemoryrepo "gym-membership-go/internal/repository/inmemory"
	checkinsrepo "gym-membership-go/internal/repository/postgres/checkins"
	membersrepo "gym-membership-go/internal/repository/postgres/members"
	membershipsrepo "gym-membership-go/internal/repository/postgres/memberships"
	plansrepo "gym-membership-go/internal/repository/postgres/plans"
	redisrepo "gym-membership-go/internal/repository/redis"
	"gym-membership-go/internal/transport/httpserver"
	"gym-membership-go/internal/transport/httpserver/handler"
	checkinshandler "gym-membership-go/internal/transport/httpserver/handler/checkins"
	commonhandler "gym-membership-go/internal/transport/httpserver/handler/common"
	membershandler "gym-membership-go/internal/transport/httpserver/handler/members"
	membershipshandler "gym-membership-go/internal/transport/httpserver/handler/memberships"
	"gym-membership-go/migrations"
	"gym-membership-go/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	redis      *goredis.Client
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, db: dbConn, log: log}

	log.Info("app: applying migrations", "dir", cfg.DB.MigrationsDir)
	if err := db.Migrate(dbConn, db.MigrationSource(cfg.DB.MigrationsDir, migrations.FS), log); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	plansCache, err := a.plansCache()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	m := metrics.New()

	plansService := plansdomain.NewService(plansrepo.NewPostgres(dbConn), plansCache, cfg.Plans.CacheTTL)
	membershipsService := membershipsdomain.NewService(membershipsrepo.NewPostgres(dbConn), m)
	checkInsService := checkinsdomain.NewService(checkinsrepo.NewPostgres(dbConn), membershipsService, m)
	membersService := membersdomain.NewService(membersrepo.NewPostgres(dbConn), membershipsService, checkInsService, m)

	ping := commonhandler.PingFunc(func(ctx context.Context) error {
		return db.Ping(ctx, dbConn)
	})
	handlers := handler.New(
		commonhandler.New(ping, log),
		membershandler.New(membersService, log),
		membershipshandler.New(plansService, membershipsService, log),
		checkinshandler.New(checkInsService, log),
	)

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = m.Handler()
	}

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, metricsHandler)

	log.Info("app: initializing http server")
	a.httpServer = httpserver.New(cfg, router)

	return a, nil
}

// plansCache picks Redis when configured, the in-process cache otherwise.
func (a *App) plansCache() (plansdomain.Cache, error) {
	if !a.cfg.Redis.Enabled() {
		a.log.Info("app: plans cache in process", "ttl", a.cfg.Plans.CacheTTL)
		return inmemoryrepo.NewPlansCache(), nil
	}

	client, err := db.NewRedis(a.cfg.Redis, a.log)
	if err != nil {
		return nil, err
	}
	a.redis = client
	a.log.Info("app: plans cache in redis", "ttl", a.cfg.Plans.CacheTTL)
	return redisrepo.NewPlansCache(client, a.log), nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err != nil {
			errs = append(errs, err)
		} else if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}
	return errors.Join(errs...)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/auth"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	conn  *db.Conn
	redis *redis.Client
	http  *http.Server

	warmer    *question.CategoryWarmer
	bgCancels []context.CancelFunc
}

// New bootstraps logger, Postgres, the optional Redis cache and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	conn, err := db.Open(ctx, cfg.Postgres, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	readiness := map[string]server.Pinger{"postgres": conn}

	var (
		redisClient *redis.Client
		cache       question.CategoryCache = question.NopCategoryCache{}
		warmer      *question.CategoryWarmer
	)
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		cache = question.NewRedisCategoryCache(redisClient, cfg.Cache.CategoryTTL)
		readiness["redis"] = redisPinger{redisClient}
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("category cache backed by redis")
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; category cache disabled")
	}

	questionRepo := repository.NewQuestionRepository(conn.Gorm)
	categoryRepo := repository.NewCategoryRepository(conn.Gorm)

	questionSvc := question.NewService(questionRepo, categoryRepo, question.ServiceOptions{
		PageSize: cfg.Pagination.QuestionsPerPage,
		Cache:    cache,
	}, logger)
	if redisClient != nil {
		warmer = question.NewCategoryWarmer(questionSvc, cfg.Cache.WarmInterval, logger)
	}

	authSvc := auth.NewService(cfg.Security, logger)
	guard := auth.NewGuard(authSvc)
	if guard.Enabled() {
		logger.Info().Msg("editor guard enabled for question writes")
	} else {
		logger.Warn().Msg("editor guard not configured; question writes are open")
	}

	apiServer := server.NewHTTPServer(cfg, logger, server.Options{
		Routes: []server.Routes{
			auth.NewHTTPHandlers(authSvc, logger),
			question.NewHTTPHandler(questionSvc, guard, logger),
		},
		Readiness: readiness,
	})

	return &Application{
		cfg:       cfg,
		logger:    logger,
		conn:      conn,
		redis:     redisClient,
		http:      apiServer,
		warmer:    warmer,
		bgCancels: make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.conn.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return runErr
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.warmer != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.warmer.Run(bgCtx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Warn().Err(err).Msg("category warmer stopped")
			}
		}()
	}
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

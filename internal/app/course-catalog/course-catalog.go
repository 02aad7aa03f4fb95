package coursecatalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/asmolenkov/course-catalog/internal/config"
	"github.com/asmolenkov/course-catalog/internal/lib/jwt"
	sessionservice "github.com/asmolenkov/course-catalog/internal/services/session"
	"github.com/asmolenkov/course-catalog/internal/storage"
	"github.com/asmolenkov/course-catalog/internal/storage/filekv"
	"github.com/asmolenkov/course-catalog/internal/storage/rediskv"
)

// App связывает хранилище, сервис сессии и HTTP-сервер.
type App struct {
	server *http.Server
	logger *slog.Logger
	redis  *rediskv.Store // nil при файловом хранилище
}

// New собирает приложение: выбирает бэкенд хранилища по конфигу,
// восстанавливает сессию и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var (
		store      storage.Storage
		redisStore *rediskv.Store
	)
	switch cfg.Kind {
	case "redis":
		rs, err := rediskv.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		store, redisStore = rs, rs
	case "file", "":
		fs, err := filekv.New(cfg.Dir)
		if err != nil {
			return nil, err
		}
		store = fs
	default:
		return nil, fmt.Errorf("unknown storage kind: %q", cfg.Kind)
	}

	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	sessionService := sessionservice.New(logger, store, tokens)
	sessionService.Init()

	router := chi.NewRouter()
	RegisterRoutes(router, logger, sessionService, tokens, cfg.PurchaseDelay)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		redis:  redisStore,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.redis != nil {
			if cerr := a.redis.Close(); cerr != nil {
				a.logger.Warn("failed to close redis connection", slog.Any("err", cerr))
			}
		}
		return err
	}
}

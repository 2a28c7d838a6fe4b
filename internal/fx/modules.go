package fx

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dom/prodle/internal/api"
	"github.com/dom/prodle/internal/config"
	"github.com/dom/prodle/internal/logger"
	"github.com/dom/prodle/internal/ratelimit"
	"github.com/dom/prodle/internal/repository"
	"github.com/dom/prodle/internal/repository/memory"
	"github.com/dom/prodle/internal/service"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const (
	shutdownTimeout = 15 * time.Second
	limiterTTL      = 10 * time.Minute
)

func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.LogLevel, cfg.Environment)
}

// ProvideRepositories loads the data files before anything else starts. A
// bad roster fails the whole application.
func ProvideRepositories(cfg *config.Config, log zerolog.Logger) (*repository.Repositories, error) {
	return memory.Load(context.Background(), cfg.PlayersFile, cfg.TeamImagesFile, log)
}

func ProvideRateLimiter(lc fx.Lifecycle, cfg *config.Config) *ratelimit.KeyedRateLimiter {
	limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst, limiterTTL)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiter.Stop()
			return nil
		},
	})

	return limiter
}

func ProvideRouter(services *service.Services, limiter *ratelimit.KeyedRateLimiter, cfg *config.Config, log zerolog.Logger) http.Handler {
	return api.NewRouter(services, limiter, cfg, log)
}

// ProvideServer binds the listener on start so a busy port fails startup
// instead of a background goroutine.
func ProvideServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, handler http.Handler, cfg *config.Config, log zerolog.Logger) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			go func() {
				log.Info().Str("addr", srv.Addr).Str("environment", cfg.Environment).Msg("server starting")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("server failed")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})

	return srv
}

var Module = fx.Options(
	fx.Provide(ProvideLogger),
	// data
	fx.Provide(ProvideRepositories),
	// svc
	fx.Provide(service.NewServices),
	// http
	fx.Provide(ProvideRateLimiter),
	fx.Provide(ProvideRouter),
	fx.Provide(ProvideServer),
)

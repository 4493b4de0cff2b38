package main // Entry point package

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/config"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/handler"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/middleware"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/repository"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/router"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/service"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected", "host", cfg.DBHost, "db", cfg.DBName, "max_conns", cfg.DBMaxConns)

	repos := repository.New(database.NewTracer(db, logger))
	resetter := database.NewSchemaResetter(database.DriverConfig(cfg), cfg.SchemaPath)

	var pub service.Publisher = service.Noop{}
	if cfg.EventsEnabled {
		pub = service.NewAMQPPublisher(cfg.AMQPURL, logger)
		go func() {
			if err := queue.StartAuditConsumer(ctx, cfg.AMQPURL, cfg.AuditLogPath, logger); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("audit consumer stopped", "err", err)
			}
		}()
	}

	renderer, err := view.New()
	if err != nil {
		return err
	}

	h := handler.NewInventoryHandler(repos, resetter, db, pub, logger, handler.Options{
		ResetSecret: cfg.ResetSecret,
		ResetTTL:    cfg.ResetTokenTTL,
	})

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(logger))

	rl := config.LoadRateLimitConfig()
	var rdb *redis.Client
	if rl.Enabled {
		if rdb = config.NewRedisClient(); rdb != nil {
			defer rdb.Close()
		} else {
			logger.Warn("redis unreachable, rate limiting per process")
		}
	}
	e.Use(middleware.NewTokenBucket(rl, rdb, logger))

	router.Register(e, h)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.Error("request", append(attrs, "err", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}

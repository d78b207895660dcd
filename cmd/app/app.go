package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/oktoberfest-api/internal/api"
	"github.com/vietanh2810/oktoberfest-api/internal/clock"
	"github.com/vietanh2810/oktoberfest-api/internal/config"
	"github.com/vietanh2810/oktoberfest-api/internal/db"
	"github.com/vietanh2810/oktoberfest-api/internal/logger"
)

const (
	configPath      = "./cmd/app/config.yml"
	shutdownTimeout = 10 * time.Second
)

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if _, statErr := os.Stat(configPath); statErr == nil {
		config.Watch(configPath, func(e fsnotify.Event) {
			zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := openStores(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s, err := api.NewServer(ctx, conf, stores, clock.NewSystem())
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr), zap.String("storage", conf.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

func openStores(conf *config.AppConfig) (api.Stores, error) {
	if conf.Storage.Driver != config.StoragePostgres {
		return api.MemoryStores(), nil
	}

	dbURL := os.Getenv("DATABASE_URL")
	var (
		postgresDB *gorm.DB
		err        error
	)
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return api.Stores{}, fmt.Errorf("failed to initialize database -> %w", err)
	}

	return api.PostgresStores(postgresDB), nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pedroShimpa/retro-inventory/config"
	"github.com/pedroShimpa/retro-inventory/internal/models"
	"github.com/pedroShimpa/retro-inventory/internal/routes"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "retro-inventory",
		Short:         "HTTP API for a retro game and console inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate the schema and start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the consoles and games tables, then exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, db, closeFn, err := bootstrap()
				if err != nil {
					return err
				}
				defer closeFn()
				if err := models.AutoMigrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				slog.Info("schema migrated")
				return nil
			},
		},
	)
	return root
}

// bootstrap loads config, installs the logger and opens the store.
func bootstrap() (*config.Config, *gorm.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return nil, nil, nil, err
	}
	logCloser := config.SetupLogger(cfg.Log)

	db, err := config.OpenDB(cfg.Database, cfg.Log.Level)
	if err != nil {
		slog.Error("database unavailable", "driver", cfg.Database.Driver, "error", err)
		logCloser.Close()
		return nil, nil, nil, err
	}

	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		logCloser.Close()
	}
	return cfg, db, closeFn, nil
}

func serve(ctx context.Context) error {
	cfg, db, closeFn, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := models.AutoMigrate(db); err != nil {
		slog.Error("migrate failed", "error", err)
		return err
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.New(db, cfg.CORSOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr, "driver", cfg.Database.Driver, "cors_origin", cfg.CORSOrigin)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server stopped", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Erasmo-Dev/Cervejaria/internal/core/config"
	"github.com/Erasmo-Dev/Cervejaria/internal/core/container"
	"github.com/Erasmo-Dev/Cervejaria/internal/core/logger"
	"github.com/Erasmo-Dev/Cervejaria/internal/core/routes"
	"github.com/Erasmo-Dev/Cervejaria/internal/core/tracing"
	"github.com/Erasmo-Dev/Cervejaria/internal/database"
	"github.com/Erasmo-Dev/Cervejaria/internal/database/migration"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run migrations manually.",
	Long:  `Applies every pending migration from --dir to DATABASE_URL.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.NewLogger()
		defer log.Sync()

		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
		migrationDir, _ := cmd.Flags().GetString("dir")

		sourceURL, err := migration.SourceURL(migrationDir)
		if err != nil {
			return err
		}

		if err := migration.Migrate(dbURL, sourceURL, true, log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cervejaria",
		Short:         "Cervejaria stock service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	MigrateCmd.Flags().String("dir", "./migrations", "Directory containing the migration files")
	rootCmd.AddCommand(ServeCmd, MigrateCmd)

	return rootCmd
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewLogger()
	defer log.Sync()

	shutdownTracing, err := tracing.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("Tracing shutdown failed", zap.Error(err))
		}
	}()

	var db *sql.DB
	if cfg.StoreDriver == config.StoreDriverPostgres {
		if cfg.AutoMigrate {
			sourceURL, err := migration.SourceURL(cfg.MigrationsDir)
			if err != nil {
				return err
			}
			if err := migration.Migrate(cfg.DatabaseURL, sourceURL, false, log); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
		}

		db, err = database.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		log.Info("Connected to the database successfully")
	}

	app, err := container.NewAppContainer(cfg, db, log)
	if err != nil {
		return err
	}
	defer app.Close()

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    cfg.AppHost,
		Handler: otelhttp.NewHandler(routes.NewRouter(app), config.ServiceName),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server",
			zap.String("addr", cfg.AppHost),
			zap.String("store", cfg.StoreDriver),
			zap.String("decrement_policy", cfg.DecrementPolicy),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	app.Health.UpdateStatus("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

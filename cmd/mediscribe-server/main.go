package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/randsley/MediScribe-sub004/internal/config"
	"github.com/randsley/MediScribe-sub004/internal/domain/export"
	"github.com/randsley/MediScribe-sub004/internal/domain/scribe"
	"github.com/randsley/MediScribe-sub004/internal/platform/auth"
	"github.com/randsley/MediScribe-sub004/internal/platform/db"
	"github.com/randsley/MediScribe-sub004/internal/platform/hipaa"
	"github.com/randsley/MediScribe-sub004/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mediscribe-server",
		Short: "Clinical draft validation and FHIR assembly server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scribe API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func newLogger(dev bool) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg.IsDev())
	ctx := context.Background()

	// Export store is optional: without DATABASE_URL the server runs
	// validate/assemble only.
	var exports *export.Service
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		cipher, err := hipaa.NewCipherFromHex(cfg.PHIEncryptionKey)
		if err != nil {
			return err
		}
		exports = export.NewService(export.NewRepo(pool), cipher)
		logger.Info().Msg("export store enabled")
	} else {
		logger.Warn().Msg("DATABASE_URL not set, export endpoints disabled")
	}

	svc := scribe.NewService(exports, cfg.ModelName, cfg.DefaultLanguage, logger)
	handler := scribe.NewHandler(svc, cfg.IsDev(), logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))

	switch cfg.ResolvedAuthMode() {
	case "development":
		logger.Warn().Msg("development auth mode, all requests get a fixed identity")
		e.Use(auth.DevMiddleware())
	default:
		e.Use(auth.Middleware([]byte(cfg.JWTSecret), auth.Skipper))
	}

	handler.RegisterRoutes(e)

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <kind> <file>",
		Short: "Validate a draft file offline (kind: imaging, lab, soap)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("language")

			kind := export.Kind(args[0])
			if !kind.Valid() {
				return fmt.Errorf("unknown draft kind %q", args[0])
			}
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			svc := scribe.NewService(nil, "offline", lang, zerolog.Nop())
			if err := svc.Validate(kind, raw, lang); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "draft rejected:\n  %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "draft passed all validation gates")
			return nil
		},
	}
	cmd.Flags().String("language", "en", "deny-list language (en, es, fr, de)")
	return cmd
}

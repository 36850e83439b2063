package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yoockh/devprofiles/config"
	"github.com/yoockh/devprofiles/internal/api/handlers"
	"github.com/yoockh/devprofiles/internal/api/middleware"
	"github.com/yoockh/devprofiles/internal/api/routes"
	"github.com/yoockh/devprofiles/internal/cache"
	"github.com/yoockh/devprofiles/internal/logger"
	"github.com/yoockh/devprofiles/internal/models"
	"github.com/yoockh/devprofiles/internal/repositories/memory"
	"github.com/yoockh/devprofiles/internal/services"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "devprofiles",
		Short:        "In-memory developer profiles API",
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newSeedCmd())
	return root
}

type serveFlags struct {
	port     string
	logLevel string
	noSeed   bool
}

func newServeCmd() *cobra.Command {
	var f serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = f.port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = f.logLevel
			}
			if f.noSeed {
				cfg.SeedProfiles = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&f.port, "port", "8080", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "log level (overrides LOG_LEVEL)")
	cmd.Flags().BoolVar(&f.noSeed, "no-seed", false, "start with an empty store")
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the seed profiles as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(models.SeedProfiles())
		},
	}
}

// buildRouter wires store, service, handlers and middleware.
func buildRouter(cfg *config.Config, log *logrus.Logger, c cache.Cache) *gin.Engine {
	var seed []models.Profile
	if cfg.SeedProfiles {
		seed = models.SeedProfiles()
	}
	repo := memory.NewProfileRepo(seed)
	svc := services.NewProfileService(repo, services.ProfileServiceOptions{
		Cache:    c,
		CacheTTL: cfg.CacheTTL,
		Logger:   log,
	})

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(r, routes.Deps{
		Profile:     handlers.NewProfileHandler(svc),
		GuardSecret: cfg.AuthJWTSecret,
	})

	log.WithFields(logrus.Fields{
		"profiles": repo.Len(),
		"guard":    cfg.AuthJWTSecret != "",
		"cache":    c != nil,
	}).Info("profile store ready")
	return r
}

func serve(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)
	log := logger.New(cfg.LogLevel)

	var c cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := config.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, running without cache")
		} else {
			defer rdb.Close()
			c = cache.NewRedisCache(rdb, "devprofiles:")
			log.Info("redis connected")
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: buildRouter(cfg, log, c),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"blog-service/internal/config"
	"blog-service/internal/handler"
	"blog-service/internal/infrastructure/database"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/middleware"
	"blog-service/internal/repository"
	"blog-service/internal/service"
	"blog-service/internal/validator"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(cfg.MetricsInterval)
	defer poolStatsCollector.Stop()

	blogService := service.NewBlogService(
		repository.NewPostgresPostRepository(pool),
		repository.NewPostgresAuthorRepository(pool),
		validator.NewValidator(),
		cfg.PageSize,
	)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      newRouter(blogService, handler.NewHealthHandler(pool, Version)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
	return nil
}

// newRouter builds the HTTP surface. The gin engine is wrapped by the method
// override so HTML forms reach the PUT and DELETE routes.
func newRouter(blogService service.BlogServiceInterface, healthHandler *handler.HealthHandler) http.Handler {
	blogHandler := handler.NewBlogHandler(blogService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics("/health", "/ready", "/live"))
	router.Use(middleware.RequestLogger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.RequireAuth()

	blog := router.Group("/", middleware.Identity(blogService))
	{
		blog.GET("/blog", blogHandler.Index)
		blog.GET("/blog/novo", auth, blogHandler.New)
		blog.GET("/blog/:slug", blogHandler.Show)
		blog.GET("/blog/:slug/edit", auth, blogHandler.Edit)
		blog.POST("/blog", auth, blogHandler.Create)
		blog.PUT("/blog/:slug", auth, blogHandler.Update)
		blog.DELETE("/blog/:slug", auth, blogHandler.Delete)

		// Kept for links and forms that still address posts by id.
		blog.PUT("/articles/:id", auth, blogHandler.UpdateByID)
	}

	return middleware.MethodOverride(router)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alicia-green/storefront/internal/config"
	"github.com/alicia-green/storefront/internal/handlers"
	"github.com/alicia-green/storefront/internal/metrics"
	"github.com/alicia-green/storefront/internal/middleware"
	"github.com/alicia-green/storefront/internal/notify"
	"github.com/alicia-green/storefront/internal/repository"
	"github.com/alicia-green/storefront/internal/service"
	"github.com/alicia-green/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"version", version,
	)

	if !cfg.Telegram.Configured() {
		log.Warn("telegram credentials missing, leads will be accepted but not dispatched")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	leadMetrics := metrics.NewLeadMetrics(registry)

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()

	// Initialize services
	productService := service.NewProductService(productRepo)
	quizService := service.NewQuizService()
	leadService := service.NewLeadService(notify.NewTelegramNotifier(cfg.Telegram), leadMetrics, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(version, log)
	productHandler := handlers.NewProductHandler(productService, log)
	quizHandler := handlers.NewQuizHandler(quizService, log)
	leadHandler := handlers.NewLeadHandler(leadService, leadMetrics, cfg.Lead.MaxBodyBytes, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "api_key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	if len(cfg.Metrics.APIKeys) > 0 {
		r.With(middleware.APIKeyAuth(cfg.Metrics)).
			Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{slug}", productHandler.GetProduct)
		r.Get("/product/{slug}/related", productHandler.RelatedProducts)

		r.Post("/quiz", quizHandler.Recommend)
		r.Post("/lead", leadHandler.SubmitLead)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mediweb/website/internal"
	"github.com/mediweb/website/internal/email"
	"github.com/mediweb/website/internal/handler"
	"github.com/mediweb/website/internal/metrics"
	"github.com/mediweb/website/internal/middleware"
	"github.com/mediweb/website/internal/seo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize template renderer
	renderer, err := handler.NewRenderer(handler.RendererConfig{
		TemplatesDir: cfg.TemplatesDir,
		Logger:       logger,
		IsDev:        cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("renderer initialization failed: %w", err)
	}
	logger.Info("Templates loaded", "count", len(renderer.ListTemplates()))

	// Initialize mailer. Without Postmark credentials outbound mail is
	// written to disk instead; NewConfig rejects that combination in
	// production.
	var mailer email.Mailer
	if cfg.PostmarkServerToken != "" {
		mailer, err = email.NewPostmarkMailer(email.PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			Sender:       cfg.EmailSender,
		}, logger)
		if err != nil {
			return fmt.Errorf("postmark initialization failed: %w", err)
		}
		logger.Info("Email configured", "provider", "postmark", "sender", cfg.EmailSender)
	} else {
		mailer = email.NewDevMailer(cfg.EmailDevDir, logger)
		logger.Info("Email configured", "provider", "dev", "dir", cfg.EmailDevDir)
	}

	contactMailer, err := email.NewContactMailer(mailer, cfg.ContactRecipient, cfg.EmailReplyTo, logger)
	if err != nil {
		return fmt.Errorf("contact mailer initialization failed: %w", err)
	}

	// Initialize handlers
	isSecure := !cfg.IsDevelopment()
	seoBuilder := seo.NewBuilder(cfg.BaseURL)

	pageHandler := handler.NewPageHandler(renderer, seoBuilder, logger)
	contactHandler := handler.NewContactHandler(contactMailer, renderer, logger)
	themeHandler := handler.NewThemeHandler(logger, isSecure)
	staticHandler := handler.NewStaticHandler(cfg.StaticDir)

	// Initialize middleware
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	contactLimit := middleware.NewRateLimitMiddleware(
		middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow, logger),
		logger,
	)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	staticHandler.RegisterRoutes(mux)
	pageHandler.RegisterRoutes(mux)
	themeHandler.RegisterRoutes(mux)

	// Contact routes are registered directly so the rate limit only guards
	// submissions, not the form page.
	mux.HandleFunc("GET /contact", contactHandler.Show)
	mux.Handle("POST /contact", contactLimit.Limit(http.HandlerFunc(contactHandler.Submit)))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	// Wrap the mux with the global middleware chain
	root := securityMw.Handler(loggingMw.Handler(metrics.Middleware(mux)))

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

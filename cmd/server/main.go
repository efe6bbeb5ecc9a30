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

	"solnet-sms/internal/config"
	"solnet-sms/internal/domain/notification"
	"solnet-sms/internal/infra/provider"
	"solnet-sms/internal/infra/store"
	"solnet-sms/internal/router"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "port", cfg.Server.Port, "mode", cfg.Server.Mode)

	// ==========================================
	// Dependency Injection (Manual Wiring)
	// ==========================================

	// Supabase stores (settings + templates). The service still runs
	// without Supabase: the gateway falls back to the environment config
	// and the notifier to the built-in templates.
	var settingsStore notification.SettingsStore
	var templateStore notification.TemplateStore

	if cfg.Supabase.URL != "" {
		supaClient, err := store.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
		if err != nil {
			slog.Error("failed to initialize supabase client", "error", err)
			os.Exit(1)
		}
		settingsStore = store.NewSupabaseSettingsStore(supaClient)

		supaTemplates := store.NewSupabaseTemplateStore(supaClient)
		if cfg.TemplateCache.Enabled {
			cached := store.NewCachedTemplateStore(
				cfg.Redis.Address,
				cfg.Redis.Password,
				cfg.Redis.DB,
				supaTemplates,
				cfg.TemplateCache.TTL(),
			)
			defer cached.Close()
			templateStore = cached
			slog.Info("template cache initialized", "redis", cfg.Redis.Address, "ttl", cfg.TemplateCache.TTL())
		} else {
			templateStore = supaTemplates
		}
		slog.Info("supabase stores initialized")
	} else {
		slog.Warn("no supabase configured, using environment settings and built-in templates")
	}

	// Resolve the gateway configuration once, at startup.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	envFallback := notification.GatewayConfig{
		Provider:       notification.ProviderKind(cfg.SMS.Provider),
		APIKey:         cfg.SMS.APIKey,
		Username:       cfg.SMS.Username,
		Password:       cfg.SMS.Password,
		SenderID:       cfg.SMS.SenderID,
		BaseURL:        cfg.SMS.BaseURL,
		CustomEndpoint: cfg.SMS.CustomEndpoint,
		CustomHeaders:  cfg.SMS.ParsedCustomHeaders(),
	}
	gatewayConfig := notification.LoadGatewayConfig(loadCtx, settingsStore, envFallback)
	loadCancel()

	slog.Info("sms gateway configured",
		"provider", gatewayConfig.Provider,
		"sender_id", gatewayConfig.Sender(),
		"live", gatewayConfig.HasCredentials(),
	)

	// Provider adapters share one outbound HTTP client.
	httpClient := provider.NewHTTPClient(cfg.SMS.SendTimeout())
	gateway := notification.NewGateway(gatewayConfig,
		provider.NewAfricasTalking(gatewayConfig, httpClient),
		provider.NewBulkSMS(gatewayConfig, httpClient),
		provider.NewEthioTelecom(gatewayConfig, httpClient),
		provider.NewLocalAggregator(gatewayConfig, httpClient),
		provider.NewCustom(gatewayConfig, httpClient),
	)

	// Notifier + handler
	notifier := notification.NewNotifier(gateway, templateStore)
	notificationHandler := notification.NewHandler(notifier, cfg.SMS.SendTimeout())

	// Router
	r := router.New(cfg, notificationHandler)

	// ==========================================
	// HTTP Server with Graceful Shutdown
	// ==========================================

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Give outstanding requests and in-flight sends time to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

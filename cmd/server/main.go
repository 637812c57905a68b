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

	"github.com/joho/godotenv"
	"github.com/rtaweb/backend/internal/config"
	"github.com/rtaweb/backend/internal/handler"
	"github.com/rtaweb/backend/internal/logging"
	"github.com/rtaweb/backend/internal/metrics"
	"github.com/rtaweb/backend/internal/monitoring"
	"github.com/rtaweb/backend/internal/repository"
	"github.com/rtaweb/backend/internal/service"
	"github.com/rtaweb/backend/internal/storage"
	"github.com/rtaweb/backend/pkg/auth"
)

// release is set at build time via -ldflags "-X main.release=...".
var release = "dev"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(logging.Options{Level: cfg.Logging.Level, Development: cfg.Logging.Development})

	if err := monitoring.Init(cfg.Monitoring.SentryDSN, cfg.Server.Environment, release); err != nil {
		slog.Warn("error tracking disabled", "error", err)
	}
	defer monitoring.Flush()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := repository.MigrateUp(cfg.Database.URL); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
	}

	// ストレージ（ドライバ未設定ならアップロードは 503）
	blogImageStore, err := storage.Open(cfg.Storage.BlogImages, cfg.Storage.Local)
	if err != nil {
		logging.Fatal("failed to open blog image storage", "error", err)
	}
	logoStore, err := storage.Open(cfg.Storage.Logos, cfg.Storage.Local)
	if err != nil {
		logging.Fatal("failed to open logo storage", "error", err)
	}
	if blogImageStore == nil {
		slog.Warn("blog image storage not configured; image uploads are disabled")
	}
	if logoStore == nil {
		slog.Warn("logo storage not configured; logo uploads are disabled")
	}

	adminUserRepo := repository.NewPgAdminUserRepository(pool)
	clientRepo := repository.NewPgClientRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	faqRepo := repository.NewPgFAQRepository(pool)
	imageRepo := repository.NewPgImageRepository(pool)
	logoRepo := repository.NewPgLogoRepository(pool)
	newsletterRepo := repository.NewPgNewsletterRepository(pool)
	blogPostRepo := repository.NewPgBlogPostRepository(pool)

	authService := service.NewAuthService(adminUserRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)
	clientService := service.NewClientService(clientRepo)
	contactService := service.NewContactService(contactRepo, newsletterService)
	faqService := service.NewFAQService(faqRepo)
	imageService := service.NewImageService(imageRepo, blogImageStore, cfg.Storage.BlogImages.Prefix)
	logoService := service.NewLogoService(logoRepo, logoStore, cfg.Storage.Logos.Prefix)
	blogPostService := service.NewBlogPostService(blogPostRepo)

	if cfg.Auth.BootstrapUsername != "" && cfg.Auth.BootstrapPassword != "" {
		created, err := authService.EnsureAdmin(ctx, cfg.Auth.BootstrapUsername, cfg.Auth.BootstrapPassword)
		if err != nil {
			logging.Fatal("failed to bootstrap admin user", "error", err)
		}
		if created {
			slog.Info("bootstrap admin user created", "username", cfg.Auth.BootstrapUsername)
		}
	}

	sessionSecret := auth.SessionSecretBytes(cfg.Auth.SessionSecret)
	rateLimiter := handler.NewRateLimiter(cfg.RateLimit.PerMinute)
	defer rateLimiter.Stop()

	extra := map[string]http.Handler{
		"GET /metrics": metrics.Handler(),
	}
	if cfg.UsesLocalStorage() {
		prefix := cfg.Storage.Local.URLPrefix
		extra["GET "+prefix+"/"] = http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Storage.Local.Dir)))
	}

	router := &handler.Router{
		Base:        handler.New(pool, cfg.Server.FrontendURL),
		Auth:        handler.NewAuthHandler(authService, sessionSecret, cfg.Auth.SessionTTL, cfg.Auth.SecureCookie),
		Clients:     handler.NewClientHandler(clientService),
		Contacts:    handler.NewContactHandler(contactService),
		FAQs:        handler.NewFAQHandler(faqService),
		Images:      handler.NewImageHandler(imageService),
		Logos:       handler.NewLogoHandler(logoService),
		Newsletter:  handler.NewNewsletterHandler(newsletterService),
		Blog:        handler.NewBlogHandler(blogPostService),
		Bots:        handler.NewBotClassifier(cfg.Edge.BlogPrefix, cfg.Edge.ExtraBotAgents),
		RequireAuth: auth.RequireAuth(sessionSecret),
		RateLimit:   rateLimiter,
		Extra:       extra,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.Handler(metrics.Middleware),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

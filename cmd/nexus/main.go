package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/linguanexus/nexus-service/internal/config"
	"github.com/linguanexus/nexus-service/internal/repository/memory"
	"github.com/linguanexus/nexus-service/internal/seed"
	"github.com/linguanexus/nexus-service/internal/service"
	"github.com/linguanexus/nexus-service/internal/session"
	"github.com/linguanexus/nexus-service/internal/summarize"
	myhttp "github.com/linguanexus/nexus-service/internal/transport/http"
	"github.com/linguanexus/nexus-service/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting nexus-service", slog.String("env", cfg.Env))

	store := memory.New()

	dataset, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		return fmt.Errorf("failed to load seed dataset: %v", err)
	}
	store.Load(dataset)

	log.Info("seed dataset loaded",
		slog.Int("users", len(dataset.Users)),
		slog.Int("articles", len(dataset.Articles)),
	)

	sessions := session.NewManager()

	userService := service.NewUserService(store, log, store, store, sessions)
	articleService := service.NewArticleService(store, log, store, store, store)
	messageService := service.NewMessageService(store, log, store, store, store)
	notificationService := service.NewNotificationService(store, log, store)
	groupService := service.NewGroupService(store, log, store, store)
	institutionService := service.NewInstitutionService(store, log, store)
	eventService := service.NewEventService(store, log, store, store, store)
	summarizer := summarize.NewOpenAIClient(cfg.Summarizer)

	// Seeded events trigger their discipline-match notifications once,
	// right after the dataset is in place.
	if _, err := eventService.AnnounceSeeded(ctx); err != nil {
		return fmt.Errorf("failed to announce seeded events: %v", err)
	}

	srv := myhttp.NewServer(
		log,
		sessions,
		userService,
		articleService,
		messageService,
		notificationService,
		groupService,
		institutionService,
		eventService,
		summarizer,
	)

	httpServer := &http.Server{
		Addr:        net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:     srv.Routes(),
		ReadTimeout: cfg.Server.Timeout,
		IdleTimeout: cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("http server error: %v", err)

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shuting down http server: %v", err)
	}

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errChan <- fmt.Errorf("error listening and serving: %v", err)
	}
}

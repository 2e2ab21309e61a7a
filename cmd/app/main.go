package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/config"
	"github.com/DB3NJ4/StackFlow/internal/events"
	"github.com/DB3NJ4/StackFlow/internal/logger"
	"github.com/DB3NJ4/StackFlow/internal/notify"
	"github.com/DB3NJ4/StackFlow/internal/repository/postgres"
	"github.com/DB3NJ4/StackFlow/internal/session"
	"github.com/DB3NJ4/StackFlow/internal/sharing"
	httpTransport "github.com/DB3NJ4/StackFlow/internal/transport/http"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/handler"
	"github.com/DB3NJ4/StackFlow/internal/usecase"
	"github.com/DB3NJ4/StackFlow/internal/workspace"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	// Подключаемся к базе данных
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		logg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logg.Fatal("failed to ping database", zap.Error(err))
	}
	logg.Info("connected to database", zap.String("host", cfg.DatabaseHost), zap.String("database", cfg.DatabaseName))

	// Применяем миграции
	if err := runMigrations(cfg.MigrationsPath, cfg.GetDSN()); err != nil {
		logg.Fatal("failed to run migrations", zap.Error(err))
	}
	logg.Info("migrations applied")

	// Инициализируем репозитории
	repos := usecase.Repositories{
		Projects:     postgres.NewProjectRepository(pool),
		Teams:        postgres.NewTeamRepository(pool),
		Members:      postgres.NewTeamMemberRepository(pool),
		ProjectTeams: postgres.NewProjectTeamRepository(pool),
		Issues:       postgres.NewIssueRepository(pool),
		Profiles:     postgres.NewProfileRepository(pool),
		Statistics:   postgres.NewStatisticsRepository(pool),
		TxManager:    postgres.NewTransactionManager(pool, logg),
	}

	sessions := session.NewManager(cfg.JWTSecret, cfg.JWTIssuer, logg)
	spaces := workspace.NewRegistry(sessions, logg)
	defer spaces.Close()
	resolver := sharing.NewResolver(repos.Projects, repos.Members, repos.ProjectTeams, logg)

	var notifier notify.Notifier = notify.NewLogNotifier(logg)
	if cfg.MailEnabled() {
		notifier = notify.NewMailgunNotifier(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailSender, logg)
		logg.Info("invitations are sent through mailgun", zap.String("domain", cfg.MailgunDomain))
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.EventsEnabled() {
		amqpPublisher, err := events.Connect(ctx, cfg.RabbitMQURL, logg)
		if err != nil {
			logg.Fatal("failed to connect to rabbitmq", zap.Error(err))
		}
		publisher = amqpPublisher
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logg.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	// Инициализируем use cases
	projectUseCase := usecase.NewProjectUseCase(repos, resolver, spaces, publisher, logg)
	teamUseCase := usecase.NewTeamUseCase(repos, spaces, notifier, publisher, logg)
	issueUseCase := usecase.NewIssueUseCase(repos, resolver, spaces, publisher, logg)
	statsUseCase := usecase.NewStatisticsUseCase(repos, resolver, logg)

	// Создаем роутер
	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		HealthHandler:     handler.NewHealthHandler(pool),
		SessionHandler:    handler.NewSessionHandler(sessions),
		ProjectHandler:    handler.NewProjectHandler(projectUseCase),
		TeamHandler:       handler.NewTeamHandler(teamUseCase),
		IssueHandler:      handler.NewIssueHandler(issueUseCase),
		StatisticsHandler: handler.NewStatisticsHandler(statsUseCase),
		Authenticator:     sessions,
		Logger:            logg,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logg.Info("starting http server", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logg.Info("server exited")
}

// runMigrations применяет миграции базы данных
func runMigrations(source, dsn string) error {
	m, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

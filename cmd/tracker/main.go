// Package main - точка входа Learning Progress Tracker.
//
// Одиночная интерактивная сессия: оператор управляет трекером
// построчными командами, всё состояние живёт в памяти процесса
// и не переживает завершение сессии.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries)
// - Infrastructure: in-memory репозитории, шина событий
// - Interface: консольная сессия и презентеры
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/progress-hub/learning-tracker/config"
	"github.com/progress-hub/learning-tracker/internal/application/command"
	"github.com/progress-hub/learning-tracker/internal/application/query"
	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/notification"
	"github.com/progress-hub/learning-tracker/internal/domain/shared"
	"github.com/progress-hub/learning-tracker/internal/infrastructure/messaging"
	"github.com/progress-hub/learning-tracker/internal/infrastructure/persistence/memory"
	"github.com/progress-hub/learning-tracker/internal/interface/console"
)

func main() {
	// .env опционален: отсутствие файла не является ошибкой.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "learning-tracker: %v\n", err)
		os.Exit(1)
	}
}

// run собирает зависимости и запускает консольную сессию.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Каталог курсов создаётся один раз на сессию.
	catalog, err := course.NewCatalog(cfg.Catalog.Definitions)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	// Хранилища и шина событий.
	studentRepo := memory.NewStudentRepository()
	eventBus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{Logger: logger})
	defer eventBus.Close()

	// Аудит доменных событий на debug-уровне.
	if err := eventBus.SubscribeAll(func(ctx context.Context, event shared.Event) error {
		logger.Debug("domain event",
			"event_type", event.EventType(),
			"aggregate_id", event.AggregateID(),
			"payload", event.Payload(),
		)
		return nil
	}); err != nil {
		return fmt.Errorf("subscribe audit handler: %w", err)
	}

	pipeline := notification.NewPipeline(notification.PipelineConfig{
		NewID: uuid.NewString,
	})
	channel := console.NewChannel(os.Stdout)

	session := console.NewSession(console.SessionConfig{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: logger,
		Handlers: console.Handlers{
			RegisterStudent:      command.NewRegisterStudentHandler(studentRepo, eventBus),
			ApplySubmission:      command.NewApplySubmissionHandler(studentRepo, catalog, pipeline, eventBus),
			DeliverNotifications: command.NewDeliverNotificationsHandler(pipeline, channel, eventBus),
			ListStudents:         query.NewListStudentsHandler(studentRepo),
			FindStudent:          query.NewFindStudentHandler(studentRepo),
			GetRankings:          query.NewGetCourseRankingsHandler(catalog),
			GetLeaderboard:       query.NewGetCourseLeaderboardHandler(catalog, studentRepo),
		},
	})

	logger.Info("session started",
		"app", cfg.App.Name,
		"environment", cfg.App.Environment,
	)
	return session.Run(ctx)
}

// newLogger настраивает структурное логирование в stderr,
// чтобы не смешивать логи с выводом сессии.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.App.Debug {
		level = slog.LevelDebug
	}
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

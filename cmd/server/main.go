package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	httpHandlers "github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/mailer"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе. Недоступный Postgres не валит процесс:
	// сервис продолжает отвечать, а health отражает состояние хранилища.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: некорректная конфигурация базы: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		logger.Log.Warnf("main: миграции не выполнены, хранилище деградировано: %v", err)
	}

	// Файловое хранилище изображений проектов.
	imageStorage, err := storage.NewImageStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Мейлер. Без учётных данных контактная форма деградирует до логирования.
	var sender mailer.Sender
	if cfg.SMTP.Configured() {
		sender = mailer.NewSMTPMailer(cfg.SMTP)
		logger.Log.Infof("main: почта настроена, уведомления идут на %s", cfg.RecipientEmail)
	} else {
		logger.Log.Warn("main: EMAIL_USER/EMAIL_PASS не заданы, заявки будут только логироваться")
	}

	// Репозитории.
	projectRepo := repository.NewProjectRepository(dbConn)

	// Сервисы.
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(sender, cfg.SMTP, cfg.RecipientEmail)
	seedService := service.NewSeedService(projectRepo)

	// HTTP хэндлеры.
	projectHandler := httpHandlers.NewProjectHandler(projectService)
	contactHandler := httpHandlers.NewContactHandler(contactService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	mediaHandler := httpHandlers.NewMediaHandler(imageStorage)
	seedHandler := httpHandlers.NewSeedHandler(seedService)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, projectHandler, contactHandler, healthHandler, mediaHandler, seedHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}

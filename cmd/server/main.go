package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"creative-studio/internal/certificate"
	"creative-studio/internal/config"
	"creative-studio/internal/events"
	"creative-studio/internal/llm"
	"creative-studio/internal/magazine"
	"creative-studio/internal/mindmap"
	"creative-studio/internal/mood"
	"creative-studio/internal/todo"
	"creative-studio/internal/web"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	client, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider))
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	store, err := events.NewStore(cfg.EventsFilePath)
	if err != nil {
		log.Fatalf("failed to open events store: %v", err)
	}

	var backup *events.Backup
	if cfg.BackupSchedule != "" {
		backup = events.NewBackup(store, cfg.BackupDir)
		if err := backup.Start(cfg.BackupSchedule); err != nil {
			log.Fatalf("failed to start events backup: %v", err)
		}
	}

	handler := web.NewHandler(web.Options{
		Events:                 events.NewService(client, store),
		Mindmap:                mindmap.NewService(client),
		Certificate:            certificate.NewService(client),
		Magazine:               magazine.NewService(client),
		Mood:                   mood.NewService(client),
		Todo:                   todo.NewService(client),
		StaticRoot:             cfg.StaticRoot,
		DashboardUser:          cfg.DashboardUser,
		DashboardPassword:      cfg.DashboardPassword,
		CertificateDefaultDate: cfg.CertificateDefaultDate,
	})

	server := web.NewServer(cfg.Host, cfg.Port, handler.Routes())

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Printf("Received %v, shutting down", sig)
	case err := <-done:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}

	if backup != nil {
		backup.Stop()
	}
	if err := server.Stop(); err != nil {
		log.Printf("⚠️ Shutdown: %v", err)
	}
}

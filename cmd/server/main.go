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

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/technotes/internal/config"
	"github.com/Skotchmaster/technotes/internal/db"
	"github.com/Skotchmaster/technotes/internal/httpserver"
	"github.com/Skotchmaster/technotes/internal/logging"
	"github.com/Skotchmaster/technotes/internal/middleware"
	"github.com/Skotchmaster/technotes/internal/repo"
	"github.com/Skotchmaster/technotes/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.AccessSecret, "ACCESS_TOKEN_SECRET")
	config.MustNonEmptyBytes(cfg.RefreshSecret, "REFRESH_TOKEN_SECRET")

	logger := logging.New(cfg.LogLevel)
	files := logging.NewFileLogger(cfg.LogDir)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	conn, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		files.Error(fmt.Sprintf("db init error: %v", err))
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: conn}

	httpserver.Register(e, &httpserver.Deps{
		Auth: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Repo:          gormRepo,
			AccessSecret:  cfg.AccessSecret,
			RefreshSecret: cfg.RefreshSecret,
		}},
		Notes:          &httpserver.NoteHTTP{Svc: &service.NoteService{Repo: gormRepo}},
		Users:          &httpserver.UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		AuthMW:         middleware.NewAuth(cfg.AccessSecret),
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		Logger:         logger,
		Files:          files,
	})

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	if sqlDB, err := conn.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}
}

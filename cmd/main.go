package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auth_backend/internal/config"
	"auth_backend/internal/handlers"
	"auth_backend/internal/logger"
	"auth_backend/internal/mailer"
	"auth_backend/internal/password"
	"auth_backend/internal/repository"
	"auth_backend/internal/repository/db"
	"auth_backend/internal/server"
	"auth_backend/internal/service"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

// @title        Auth Backend API
// @version      1.0
// @description  Registration, login and password-reset codes.
// @host         localhost:3001
// @BasePath     /
func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	repos, err := openRepository(cfg.Store, log)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.Store.Driver, "err", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()

	sender, err := mailer.New(cfg.Mail.Provider, cfg.Mail.APIKey, log)
	if err != nil {
		log.Fatalw("failed to init mailer", "provider", cfg.Mail.Provider, "err", err)
	}

	services := service.NewService(repos, service.Deps{
		Hasher: password.New(cfg.Password.Algorithm, cfg.Password.BcryptCost),
		Sender: sender,
		Reset: service.ResetOptions{
			From:    cfg.Mail.From,
			CodeTTL: cfg.Reset.CodeTTL,
		},
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		StaticDir:    cfg.Static.Dir,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// openRepository picks the store backend from config.
func openRepository(cfg config.StoreConfig, log *logger.Logger) (*repository.Repository, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		log.Infow("store_open", "driver", cfg.Driver, "path", cfg.SQLitePath)
		sqlDB, err := db.InitDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLiteRepository(sqlDB), nil
	default:
		log.Infow("store_open", "driver", config.StoreDriverJSON, "path", cfg.Path)
		doc, err := repository.OpenDocumentStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return repository.NewDocumentRepository(doc), nil
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("server_listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

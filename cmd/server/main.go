package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/groupdir/backend/internal/config"
	"github.com/groupdir/backend/internal/database"
	"github.com/groupdir/backend/internal/handlers"
	"github.com/groupdir/backend/internal/metrics"
	"github.com/groupdir/backend/internal/middleware"
	"github.com/groupdir/backend/internal/services"
	"github.com/groupdir/backend/internal/store"
	"github.com/groupdir/backend/pkg/logger"
)

func main() {
	logger.Init()

	cfg := config.Load()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	st := store.New(db)
	userService := services.NewUserService(st)
	groupService := services.NewGroupService(st)

	usersHandler := handlers.NewUsersHandler(userService)
	groupsHandler := handlers.NewGroupsHandler(groupService)

	collector := metrics.NewCollector()

	app := fiber.New()
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Metrics(collector))

	handlers.Register(app, usersHandler, groupsHandler)

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", collector.Handler())
			addr := fmt.Sprintf(":%s", cfg.Metrics.Port)
			logger.Info("metrics_listener_starting", map[string]interface{}{"address": addr})
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("metrics_listener_failed", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server_starting", map[string]interface{}{
		"port":    cfg.Server.Port,
		"address": listenAddr,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("shutting down server due to signal: %s", sig)
		shutdownDone := make(chan struct{})
		go func() {
			_ = app.Shutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(10 * time.Second):
			log.Print("forced shutdown timeout reached")
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}

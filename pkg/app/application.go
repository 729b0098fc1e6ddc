// Package app owns the process lifecycle: middleware assembly, session
// bootstrap, serving, and graceful shutdown.
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"homegate/pkg/config"
	"homegate/pkg/contracts"
	"homegate/pkg/middleware"
	"homegate/pkg/session"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg      *config.Config
	sessions *session.Store
	server   *http.Server
}

func NewApplication(cfg *config.Config, sessions *session.Store) *Application {
	return &Application{
		cfg:      cfg,
		sessions: sessions,
	}
}

func (a *Application) SetApp(appHandler contracts.Handler) {
	router := httprouter.New()
	appHandler.RegisterRoutes(router)

	var handler http.Handler = router
	handler = middleware.RequestTimeout(a.cfg.RequestTimeout)(handler)
	handler = middleware.RequestLogging(a.cfg.Log)(handler)
	handler = middleware.Recovery(a.cfg.Log)(handler)

	a.server = &http.Server{
		Addr:         "127.0.0.1:" + a.cfg.Port,
		Handler:      handler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "addr", a.server.Addr)
}

func (a *Application) Run() {
	// Restore any stored session before the first request: the guard keeps
	// protected routes held back until this resolves.
	a.sessions.Bootstrap(context.Background())

	serverErrors := make(chan error, 1)
	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	// Let background logout reconciliation finish before exit.
	a.sessions.Wait()

	a.cfg.Log.Info("Server stopped gracefully")
}

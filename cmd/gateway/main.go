package main

import (
	"homegate/internal/gateway/handler"
	"homegate/internal/gateway/service"
	"homegate/internal/gateway/validator"
	"homegate/pkg/app"
	"homegate/pkg/cache"
	"homegate/pkg/client"
	"homegate/pkg/config"
	"homegate/pkg/middleware"
	"homegate/pkg/session"
)

const ServiceName = "gateway"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting dashboard gateway")

	tokens, err := session.NewTokenStore(cfg.TokenFile)
	if err != nil {
		cfg.Log.Fatal("Failed to open token store", "path", cfg.TokenFile, "error", err)
	}

	core := client.New(cfg.APIBaseURL, tokens, cfg.APITimeout)
	api := client.NewAPI(core)

	sessions := session.NewStore(api.Auth, tokens, cfg.Log)
	// expiry observed anywhere drops the session exactly once, here
	core.SetUnauthorizedHook(sessions.Invalidate)

	cacheStore := cache.New(cfg.CacheTTL)
	forms := validator.New(cfg.Log)
	guard := middleware.NewGuard(sessions, cfg.Log)

	bookings := service.NewBookings(api, sessions, cacheStore, forms, cfg.Log)
	payments := service.NewPayments(api, sessions, cacheStore, cfg.PaymentPublicKey, cfg.Log)
	dashboard := service.NewDashboard(api, bookings, sessions, cacheStore, cfg.Log)

	gatewayHandler := handler.New(
		sessions,
		guard,
		api,
		bookings,
		payments,
		dashboard,
		forms,
		cacheStore,
		cfg.Log,
	)

	serverApp := app.NewApplication(cfg, sessions)
	serverApp.SetApp(gatewayHandler)
	serverApp.Run()
}

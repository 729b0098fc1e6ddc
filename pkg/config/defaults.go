package config

import "time"

const (
	DefaultAPIBaseURL = "https://real-estatemanagement-backend-api.onrender.com/api/v1"
	DefaultAPITimeout = 15 * time.Second

	DefaultPort = "8080"

	DefaultCacheTTL = 30 * time.Second

	DefaultRequestTimeout  = 30 * time.Second
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLogLevel = "info"

	DefaultTokenFileName = ".homegate/token"
)

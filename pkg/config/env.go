package config

const (
	EnvAPIBaseURL       = "API_BASE_URL"
	EnvAPITimeout       = "API_TIMEOUT"
	EnvPaymentPublicKey = "PAYMENT_PUBLIC_KEY"
	EnvTokenFile        = "TOKEN_FILE"
	EnvCacheTTL         = "CACHE_TTL"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

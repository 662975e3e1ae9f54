package config

import (
	"os"
	"time"
)

type Config struct {
	// Database (local sqlite file)
	DBPath string

	// Gemini provider
	GeminiAPIKey string
	GeminiAPIURL string
	GeminiModel  string
	AITimeout    time.Duration

	// Share / QR
	ShareBaseURL string
	QRAPIURL     string
	QRSize       int

	// Error tracking
	SentryDSN string
}

func Load() *Config {
	return &Config{
		DBPath: getEnv("BENIOV_DB_PATH", "beni-ov.db"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiAPIURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AITimeout:    parseDuration(getEnv("AI_TIMEOUT", "60s")),

		ShareBaseURL: getEnv("SHARE_BASE_URL", "https://beni-ov.app"),
		QRAPIURL:     getEnv("QR_API_URL", "https://api.qrserver.com/v1/create-qr-code/"),
		QRSize:       300,

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

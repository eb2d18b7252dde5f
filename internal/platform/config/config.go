package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	PostgresDSN   string
	JWTSecret     string
	TokenTTLHours int
	CORSOrigins   []string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "taskboard"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "taskboard-dev-secret"
	}

	var origins []string
	for _, value := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			origins = append(origins, value)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return Config{
		ServiceName:   service,
		HTTPPort:      port,
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		JWTSecret:     secret,
		TokenTTLHours: envInt("TOKEN_TTL_HOURS", 24),
		CORSOrigins:   origins,
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

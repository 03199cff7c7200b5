package config

import "os"

type Config struct {
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	ServerPort         string
	JWTSecret          string
	WebhookURL         string
	RedisAddr          string
	CacheTTLSeconds    string
	TrustedEmailDomain string
	AdminEmails        string
}

func Load() *Config {
	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "lightningtalks"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-me"),
		WebhookURL:         getEnv("WEBHOOK_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		CacheTTLSeconds:    getEnv("CACHE_TTL_SECONDS", "60"),
		TrustedEmailDomain: getEnv("TRUSTED_EMAIL_DOMAIN", ""),
		AdminEmails:        getEnv("ADMIN_EMAILS", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

package config

import "os"

type Config struct {
	AppPort       string
	AppEnv        string
	DBDSN         string
	JWTSecret     string
	AdminSecret   string
	FrontendURL   string
	RedisAddr     string
	RedisPassword string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() Config {
	return Config{
		AppPort:       get("APP_PORT", "8080"),
		AppEnv:        get("APP_ENV", "development"),
		DBDSN:         must("DB_DSN"),
		JWTSecret:     must("JWT_SECRET"),
		AdminSecret:   get("ADMIN_SECRET", ""),
		FrontendURL:   get("FRONTEND_URL", "http://localhost:3000"),
		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}

package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/kenjummy/booking-api/internal/config"
	"github.com/kenjummy/booking-api/internal/db"
	"github.com/kenjummy/booking-api/internal/log"
	"github.com/kenjummy/booking-api/internal/models"
	"github.com/kenjummy/booking-api/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(cfg.AppEnv)

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Booking{}); err != nil {
		logger.Fatal().Err(err).Msg("database migration failed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}

	app := server.New(cfg, logger, gdb, rdb)

	logger.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Msg("server starting")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

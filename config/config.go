package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is built once in main and handed to every component that needs
// it. Nothing reads the environment after startup.
type Config struct {
	Addr     string
	MongoURI string
	Database string

	JWTSecret string
	TokenTTL  time.Duration

	// UserDoubleBookingGuard also rejects a booking when the requesting
	// user already holds an overlapping active booking on any room.
	UserDoubleBookingGuard bool

	// UseTransactions runs the conflict check and insert inside a Mongo
	// session transaction. Requires a replica set (Atlas qualifies).
	UseTransactions bool

	SweepInterval time.Duration

	ServeStatic bool
	StaticDir   string
	UploadDir   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:                   getEnv("ADDR", ":5000"),
		MongoURI:               os.Getenv("MONGODB_URI"),
		Database:               getEnv("MONGODB_DATABASE", "hotel_booking"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		TokenTTL:               getDuration("TOKEN_TTL", 24*time.Hour),
		UserDoubleBookingGuard: getBool("USER_DOUBLE_BOOKING_GUARD", true),
		UseTransactions:        getBool("MONGO_TRANSACTIONS", false),
		SweepInterval:          getDuration("SWEEP_INTERVAL", time.Minute),
		ServeStatic:            getBool("SERVE_STATIC", false),
		StaticDir:              getEnv("STATIC_DIR", "./static"),
		UploadDir:              getEnv("UPLOAD_DIR", "./uploads"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/controllers"
	"github.com/MuhammadAnus6529/KingsHotel6529/router"
	"github.com/MuhammadAnus6529/KingsHotel6529/scheduler"
	"github.com/MuhammadAnus6529/KingsHotel6529/validations"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Str("service", "kings-hotel").Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client, err := config.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	if err := validations.Register(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	r := gin.Default()
	r.Use(cors.Default())

	router.AuthRoutes(r, client, cfg)
	router.RoomRoutes(r, client, cfg)
	router.BookingRoutes(r, client, cfg)
	router.AdminRoutes(r, client, cfg)

	// Uploaded room images; the SPA itself only when the flag is on.
	r.Static("/uploads", cfg.UploadDir)
	if cfg.ServeStatic {
		r.StaticFile("/", cfg.StaticDir+"/index.html")
		r.Static("/assets", cfg.StaticDir+"/assets")
		r.NoRoute(func(c *gin.Context) {
			// SPA fallback: unknown paths get the app shell.
			c.File(cfg.StaticDir + "/index.html")
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bookingController := controllers.NewBookingController(
		config.GetCollection(client, cfg.Database, "bookings"),
		config.GetCollection(client, cfg.Database, "rooms"),
		client,
		cfg,
	)
	go scheduler.New(bookingController, cfg.SweepInterval).Start(ctx)

	log.Info().Str("addr", cfg.Addr).Msg("server listening")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

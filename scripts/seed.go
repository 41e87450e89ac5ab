package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/models"
)

var rooms = []models.Room{
	{RoomNumber: "STD-1", Category: models.CategoryStandard, PricePerNight: 150,
		Description: "A refined space featuring a plush Queen bed and artisanal coffee station. Perfect for the business traveler.",
		Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?q=80&w=2000"},
	{RoomNumber: "STD-2", Category: models.CategoryStandard, PricePerNight: 180,
		Description: "The Classic Twin room offers sophisticated comfort with two twin beds and a dedicated workspace.",
		Image:       "https://images.unsplash.com/photo-1598928506311-c55ded91a20c?q=80&w=2000"},
	{RoomNumber: "DLX-1", Category: models.CategoryDeluxe, PricePerNight: 280,
		Description: "Panoramic city views with a King-sized bed and a complimentary premium mini-bar curated for royalty.",
		Image:       "https://images.unsplash.com/photo-1618773928121-c32242e63f39?q=80&w=2000"},
	{RoomNumber: "DLX-2", Category: models.CategoryDeluxe, PricePerNight: 320,
		Description: "Garden Terrace Deluxe. Features a private outdoor seating area to enjoy the morning sunrise.",
		Image:       "https://images.unsplash.com/photo-1631049552057-403cdb8f0658?q=80&w=2000"},
	{RoomNumber: "DLX-3", Category: models.CategoryDeluxe, PricePerNight: 350,
		Description: "Ocean View Haven. Floor-to-ceiling windows providing an unobstructed view of the horizon.",
		Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=2000"},
	{RoomNumber: "STE-1", Category: models.CategorySuite, PricePerNight: 550,
		Description: "The Executive Suite. Features a private kitchenette, marble balcony, and a walk-in rainfall shower.",
		Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?q=80&w=2000"},
	{RoomNumber: "STE-2", Category: models.CategorySuite, PricePerNight: 850,
		Description: "The Presidential Sanctuary. A sprawling three-room suite with a private library and grand piano.",
		Image:       "https://images.unsplash.com/photo-1631049552057-403cdb8f0658?q=80&w=2000"},
	{RoomNumber: "STE-3", Category: models.CategorySuite, PricePerNight: 1200,
		Description: "The Royal Penthouse. The ultimate Kings Hotel experience with 360-degree views and private butler service.",
		Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?q=80&w=2000"},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	roomColl := config.GetCollection(client, cfg.Database, "rooms")
	userColl := config.GetCollection(client, cfg.Database, "users")

	if _, err := roomColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear rooms")
	}
	if _, err := userColl.DeleteMany(ctx, bson.M{"role": models.RoleAdmin}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear admin users")
	}

	docs := make([]interface{}, 0, len(rooms))
	for _, r := range rooms {
		r.ID = primitive.NewObjectID()
		r.CreatedAt = time.Now()
		r.UpdatedAt = time.Now()
		docs = append(docs, r)
	}
	if _, err := roomColl.InsertMany(ctx, docs); err != nil {
		log.Fatal().Err(err).Msg("failed to insert rooms")
	}

	seedUser(ctx, userColl, "admin@hotel.com", models.RoleAdmin)
	seedUser(ctx, userColl, "user@hotel.com", models.RoleCustomer)

	log.Info().Int("rooms", len(rooms)).Msg("rooms and accounts seeded")
}

func seedUser(ctx context.Context, coll *mongo.Collection, email, role string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Re-seeding keeps an existing account, matching the unique email rule.
	count, err := coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check existing account")
	}
	if count > 0 {
		return
	}

	if _, err := coll.InsertOne(ctx, user); err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("failed to seed account")
	}
}

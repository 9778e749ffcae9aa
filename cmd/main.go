package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kshiteeshhh/qkart-backend/internal/router"
	"github.com/kshiteeshhh/qkart-backend/internal/service"
	"github.com/kshiteeshhh/qkart-backend/pkg/ai"
	"github.com/kshiteeshhh/qkart-backend/pkg/events"
	"github.com/kshiteeshhh/qkart-backend/pkg/global"
	"github.com/kshiteeshhh/qkart-backend/pkg/mongo"
	"github.com/kshiteeshhh/qkart-backend/pkg/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	ctx := context.Background()

	client, err := mongo.Connect(ctx, global.GetMongoURI())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	db := client.Database(global.GetDatabaseName())
	if err := mongo.EnsureIndexes(db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	cartRepo := mongo.NewCartRepository(db)

	productCache := redis.NewProductCache(redis.RedisClient())

	var publisher *events.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher, err = events.NewProducer(strings.Split(brokers, ","))
		if err != nil {
			log.Printf("Kafka producer unavailable, continuing without events: %v", err)
		} else {
			defer publisher.Close()
			log.Printf("Kafka producer connected to %s", brokers)
		}
	}

	ai.InitializeAIService()

	h := &router.Handler{
		Auth:      service.NewAuthService(userRepo, publisher),
		Users:     service.NewUserService(userRepo),
		Products:  service.NewProductService(productRepo, productCache),
		Carts:     service.NewCartService(cartRepo, productRepo, userRepo, publisher),
		Analytics: service.NewAnalyticsService(userRepo),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
	}

	engine := router.NewRouter(h)

	port := global.GetEnvOrDefault("PORT", "8082")
	log.Printf("Server is running on port %s", port)

	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

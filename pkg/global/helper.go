package global

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func GetMongoURI() string {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is not set in environment variables")
	}
	return mongoURI
}

func GetDatabaseName() string {
	return GetEnvOrDefault("MONGODB_DATABASE", "qkart")
}

func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set in environment variables")
	}
	return secret
}

// GetAccessExpiry returns the access token lifetime, configured in minutes.
func GetAccessExpiry() time.Duration {
	minutes := getEnvInt("JWT_ACCESS_EXPIRATION_MINUTES", 30)
	return time.Duration(minutes) * time.Minute
}

// GetDefaultWalletMoney returns the wallet balance granted on registration.
func GetDefaultWalletMoney() float64 {
	v := os.Getenv("DEFAULT_WALLET_MONEY")
	if v == "" {
		return 500
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid DEFAULT_WALLET_MONEY %q, using 500", v)
		return 500
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

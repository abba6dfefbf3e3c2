package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, read once at process start.
type Config struct {
	Port            string
	Env             string
	MongoURI        string
	DatabaseName    string
	PostCollection  string
	MediaCollection string
	UserCollection  string
	TokenEndpoint   string
	ClientID        string
	RedirectURI     string
	AllowedOrigin   string
	CookieDomain    string
	AuthRequired    bool
}

// Load reads configuration from the environment. Missing required variables
// are a startup failure, never a per-request one.
func Load() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		MongoURI:        os.Getenv("MONGO_URI"),
		DatabaseName:    getEnv("MONGO_DATABASE", "quillpress"),
		PostCollection:  getEnv("POST_COLLECTION", "posts"),
		MediaCollection: getEnv("MEDIA_COLLECTION", "media"),
		UserCollection:  getEnv("USER_COLLECTION", "users"),
		TokenEndpoint:   os.Getenv("OAUTH_TOKEN_ENDPOINT"),
		ClientID:        os.Getenv("OAUTH_CLIENT_ID"),
		RedirectURI:     os.Getenv("OAUTH_REDIRECT_URI"),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", ""),
		CookieDomain:    getEnv("COOKIE_DOMAIN", ""),
		AuthRequired:    getEnv("AUTH_REQUIRED", "false") == "true",
	}

	required := map[string]string{
		"MONGO_URI":            cfg.MongoURI,
		"OAUTH_TOKEN_ENDPOINT": cfg.TokenEndpoint,
		"OAUTH_CLIENT_ID":      cfg.ClientID,
		"OAUTH_REDIRECT_URI":   cfg.RedirectURI,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable not set", name)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
